// Command tacozip-inspect is a smoke-test binary for the tacozip
// library, not a supported CLI. It creates a small archive from its
// own arguments, patches the ghost table, and prints a summary.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tacofoundation/tacozip"
)

func main() {
	out := flag.String("out", "out.zip", "archive path to write")
	flag.Parse()
	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: tacozip-inspect [-out out.zip] file...")
	}

	entries := make([]tacozip.FileEntry, len(files))
	for i, path := range files {
		entries[i] = tacozip.FileEntry{SourcePath: path, ArchiveName: path}
	}

	var table [7]tacozip.MetaEntry
	table[0] = tacozip.MetaEntry{Offset: 0, Length: uint64(len(files))}

	if err := tacozip.CreateMulti(*out, entries, table, tacozip.Config{}); err != nil {
		log.Fatal(err)
	}

	if err := tacozip.PatchGhost(*out, table); err != nil {
		log.Fatal(err)
	}

	summary, err := tacozip.Inspect(*out)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %d bytes, ghost count %d, slot 0 = (%d, %d)\n",
		summary.Path, summary.SizeBytes, summary.Ghost.Count,
		summary.Ghost.Entries[0].Offset, summary.Ghost.Entries[0].Length)
}
