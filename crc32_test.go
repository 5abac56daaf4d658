package tacozip

import "testing"

func TestCRCAccumulatorMatchesHello(t *testing.T) {
	// S1 from spec: CRC-32 of "hello" is 0x3610A686.
	c := newCRCAccumulator()
	c.update([]byte("hello"))
	if got, want := c.sum32(), uint32(0x3610A686); got != want {
		t.Fatalf("sum32() = %#08x, want %#08x", got, want)
	}
}

func TestCRCAccumulatorChunked(t *testing.T) {
	whole := newCRCAccumulator()
	whole.update([]byte("hello, world"))

	chunked := newCRCAccumulator()
	chunked.update([]byte("hello, "))
	chunked.update([]byte("world"))

	if whole.sum32() != chunked.sum32() {
		t.Fatalf("chunked sum32() = %#08x, want %#08x", chunked.sum32(), whole.sum32())
	}
}

func TestCRCAccumulatorEmpty(t *testing.T) {
	c := newCRCAccumulator()
	if got := c.sum32(); got != 0 {
		t.Fatalf("sum32() of empty input = %#08x, want 0", got)
	}
}
