package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/seiflotfy/huffpack"
)

func newTestService(t *testing.T, capacity int) *ArchiveService {
	t.Helper()
	svc, err := NewArchiveService(capacity)
	if err != nil {
		t.Fatalf("NewArchiveService failed: %v", err)
	}
	return svc
}

func TestCompressStoreAndDecompress(t *testing.T) {
	svc := newTestService(t, 16)
	data := []byte("payload stored through the archive service")

	a, err := svc.Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if a.OriginalSize != len(data) {
		t.Errorf("OriginalSize = %d, want %d", a.OriginalSize, len(data))
	}
	if a.CompressedSize != len(a.Data) {
		t.Errorf("CompressedSize = %d, Data holds %d bytes", a.CompressedSize, len(a.Data))
	}

	stored, ok := svc.Get(a.ID)
	if !ok {
		t.Fatalf("Get(%q) did not find the stored archive", a.ID)
	}
	restored, err := svc.Decompress(stored.Data)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(restored, data) {
		t.Fatal("round trip through the service mismatched")
	}
}

func TestCompressDedupesIdenticalPayloads(t *testing.T) {
	svc := newTestService(t, 16)
	data := []byte("identical content")

	first, err := svc.Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	second, err := svc.Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("identical payloads got distinct IDs %q and %q", first.ID, second.ID)
	}

	other, err := svc.Compress([]byte("different content"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if other.ID == first.ID {
		t.Error("different payloads share an ID")
	}
}

func TestEvictionDropsOldArchives(t *testing.T) {
	svc := newTestService(t, 1)

	a, err := svc.Compress([]byte("first"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if _, err := svc.Compress([]byte("second")); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if _, ok := svc.Get(a.ID); ok {
		t.Error("evicted archive still retrievable")
	}
}

func TestDecompressRejectsGarbage(t *testing.T) {
	svc := newTestService(t, 4)
	_, err := svc.Decompress([]byte("not an archive"))
	if !errors.Is(err, huffpack.ErrBadMagic) {
		t.Fatalf("error = %v, want ErrBadMagic", err)
	}
}
