package tacozip

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIsClassification(t *testing.T) {
	wrapped := fmt.Errorf("%w: empty archive path", ErrInvalidParam)
	if !errors.Is(wrapped, ErrInvalidParam) {
		t.Fatal("fmt.Errorf(\"%w: ...\", ErrInvalidParam) should satisfy errors.Is")
	}
	if errors.Is(wrapped, ErrIO) {
		t.Fatal("ErrInvalidParam wrap should not satisfy errors.Is against ErrIO")
	}
}

func TestCreateMultiReturnsInvalidParam(t *testing.T) {
	var table [metaSlotCount]MetaEntry
	err := CreateMulti("", nil, table, Config{})
	if !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("CreateMulti(\"\") error = %v, want errors.Is ErrInvalidParam", err)
	}
}
