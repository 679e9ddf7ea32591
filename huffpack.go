// Package huffpack implements a self-describing lossless compressor built on
// a per-symbol Huffman code derived from the input's own byte-frequency
// distribution. The code table travels with the compressed data as a
// bit-packed tree header, so no external dictionary is needed to decompress.
//
// Compression makes two passes over the input (count, then encode), so the
// input must be seekable. Decompression is single-pass.
package huffpack

import (
	"bytes"
	"io"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffpack")

// Config holds tunables shared by Encoder and Decoder.
type Config struct {
	BufferSize int // buffered-reader size per input pass (0 = default 64 KiB)
}

// Option is a functional option for configuring an Encoder or Decoder.
type Option func(*Config)

// WithBufferSize sets the buffered-reader size used when scanning and
// re-reading the input.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		c.BufferSize = n
	}
}

func (c Config) bufferSize() int {
	if c.BufferSize > 0 {
		return c.BufferSize
	}
	return defaultBufferSize
}

// Encoder compresses byte streams into huffpack archives. The zero-value
// configuration is ready to use; an Encoder may be reused, but it keeps no
// state between calls: histogram, tree and code table are all local to one
// Encode.
type Encoder struct {
	config Config
}

// NewEncoder creates a new encoder with the given options.
func NewEncoder(opts ...Option) *Encoder {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder{config: cfg}
}

// Decoder decompresses huffpack archives.
type Decoder struct {
	config Config
}

// NewDecoder creates a new decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Decoder{config: cfg}
}

// Compress compresses in to out with a default Encoder and returns the number
// of compressed bytes written.
func Compress(in io.ReadSeeker, out io.Writer) (int64, error) {
	return NewEncoder().Encode(in, out)
}

// Decompress decompresses in to out with a default Decoder and returns the
// number of decoded bytes written.
func Decompress(in io.Reader, out io.Writer) (int64, error) {
	return NewDecoder().Decode(in, out)
}

// CompressBytes compresses data into a freshly allocated archive.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes decompresses a huffpack archive into a freshly allocated
// slice.
func DecompressBytes(archive []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(bytes.NewReader(archive), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
