// Package service implements the archive store behind the huffpackd HTTP API.
package service

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/seiflotfy/huffpack"
)

var log = logging.MustGetLogger("huffpackd/service")

// Archive is a stored compression result.
type Archive struct {
	ID             string  `json:"id"`
	OriginalSize   int     `json:"original_size"`
	CompressedSize int     `json:"compressed_size"`
	Ratio          float64 `json:"ratio"`
	Data           []byte  `json:"-"`
}

// ArchiveService compresses uploads and retains recent archives in memory.
// Identical payloads (by content hash) resolve to the same archive ID. The
// compression pipeline itself keeps no state between calls; retention lives
// entirely in this layer.
type ArchiveService struct {
	archives *lru.Cache[string, *Archive] // id -> archive
	byHash   *lru.Cache[uint64, string]   // content hash -> id
}

// NewArchiveService creates a store retaining up to capacity archives.
func NewArchiveService(capacity int) (*ArchiveService, error) {
	archives, err := lru.New[string, *Archive](capacity)
	if err != nil {
		return nil, errors.Wrap(err, "creating archive cache")
	}
	byHash, err := lru.New[uint64, string](capacity)
	if err != nil {
		return nil, errors.Wrap(err, "creating dedupe index")
	}
	return &ArchiveService{archives: archives, byHash: byHash}, nil
}

// Compress compresses data, stores the result and returns its metadata.
// Re-uploading content already in the store returns the existing archive.
func (s *ArchiveService) Compress(data []byte) (*Archive, error) {
	sum := xxhash.Sum64(data)
	if id, ok := s.byHash.Get(sum); ok {
		if a, ok := s.archives.Get(id); ok {
			return a, nil
		}
	}

	packed, err := huffpack.CompressBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "compressing payload")
	}

	a := &Archive{
		ID:             uuid.NewString(),
		OriginalSize:   len(data),
		CompressedSize: len(packed),
		Data:           packed,
	}
	if a.CompressedSize > 0 {
		a.Ratio = float64(a.OriginalSize) / float64(a.CompressedSize)
	}
	s.archives.Add(a.ID, a)
	s.byHash.Add(sum, a.ID)
	log.Infof("stored archive %s: %d -> %d bytes", a.ID, a.OriginalSize, a.CompressedSize)
	return a, nil
}

// Get returns a stored archive by ID.
func (s *ArchiveService) Get(id string) (*Archive, bool) {
	return s.archives.Get(id)
}

// Decompress inflates an uploaded archive without storing anything. Format
// errors pass through unwrapped so callers can classify them.
func (s *ArchiveService) Decompress(archive []byte) ([]byte, error) {
	return huffpack.DecompressBytes(archive)
}
