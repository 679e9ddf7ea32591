package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestPackReportsOriginalSizeAndUnpackRestores(t *testing.T) {
	dir := t.TempDir()
	payload := bytes.Repeat([]byte("pack me through the cli "), 64)

	inPath := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(inPath, payload, 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	outPath := filepath.Join(dir, "input.txt"+archiveExt)
	original, packed, err := pack(inPath, outPath)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	if original != int64(len(payload)) {
		t.Fatalf("pack reported original size %d, want %d", original, len(payload))
	}
	if packed <= 0 {
		t.Fatalf("pack reported %d packed bytes", packed)
	}

	restoredPath := filepath.Join(dir, "restored.txt")
	n, err := unpack(outPath, restoredPath)
	if err != nil {
		t.Fatalf("unpack failed: %v", err)
	}
	if n != int64(len(payload)) {
		t.Fatalf("unpack reported %d bytes, want %d", n, len(payload))
	}
	restored, err := os.ReadFile(restoredPath)
	if err != nil {
		t.Fatalf("reading restored file: %v", err)
	}
	if !bytes.Equal(restored, payload) {
		t.Fatal("restored file differs from original input")
	}
}
