// bsdump encodes and decodes binary records described by a YAML layout.
//
//	bsdump decode --layout header.yaml record.bin
//	bsdump decode --layout header.yaml --hex record.hex
//	bsdump encode --layout header.yaml --values values.yaml --out record.bin.zst --zstd
//
// Input compressed with zstd is detected and decompressed automatically.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
