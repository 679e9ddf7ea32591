package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seiflotfy/huffpack"
)

const archiveExt = ".hpk"

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprint(os.Stderr, "Pack:   huffpack <input> [output"+archiveExt+"]\nUnpack: huffpack <input"+archiveExt+"> [output]\n")
		os.Exit(1)
	}

	inputPath := os.Args[1]

	// If input is an archive, unpack it.
	if strings.EqualFold(filepath.Ext(inputPath), archiveExt) {
		outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		if len(os.Args) == 3 {
			outputPath = os.Args[2]
		}
		n, err := unpack(inputPath, outputPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unpack error:", err)
			os.Exit(1)
		}
		fmt.Printf("Unpacked %s → %s (%d bytes)\n", inputPath, outputPath, n)
		return
	}

	outputPath := inputPath + archiveExt
	if len(os.Args) == 3 {
		outputPath = os.Args[2]
	}
	original, packed, err := pack(inputPath, outputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pack error:", err)
		os.Exit(1)
	}
	ratio := 0.0
	if original > 0 {
		ratio = 100 * float64(packed) / float64(original)
	}
	fmt.Printf("Packed %s → %s (%d → %d bytes, %.1f%%)\n", inputPath, outputPath, original, packed, ratio)
}

func pack(inPath, outPath string) (original, packed int64, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, err
	}
	defer out.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, 0, err
	}
	original = info.Size()
	packed, err = huffpack.Compress(in, out)
	if err != nil {
		return original, packed, err
	}
	return original, packed, nil
}

func unpack(inPath, outPath string) (int64, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	return huffpack.Decompress(in, out)
}
