package huffpack

import (
	"bufio"
	"io"

	"github.com/icza/bitio"

	"github.com/seiflotfy/huffpack/huffman"
)

// Encode compresses in to out. It scans the whole input once to build the
// frequency histogram, rewinds, then writes the magic tag, the tree header
// and the encoded body. The final byte is zero-padded. The returned count is
// the number of compressed bytes written to out.
//
// Encode fully consumes in but does not close it or out; it does flush its
// own bit writer.
func (e *Encoder) Encode(in io.ReadSeeker, out io.Writer) (int64, error) {
	var hist huffman.Histogram
	if err := hist.Scan(bufio.NewReaderSize(in, e.config.bufferSize())); err != nil {
		return 0, err
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	root := huffman.Build(&hist)
	table := huffman.NewTable(root)

	cw := &countingWriter{w: out}
	bw := bitio.NewWriter(cw)
	if err := bw.WriteBits(uint64(archiveMagic), magicBits); err != nil {
		return cw.n, err
	}
	if err := huffman.WriteTree(bw, root); err != nil {
		return cw.n, err
	}

	br := bufio.NewReaderSize(in, e.config.bufferSize())
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return cw.n, err
		}
		code := table[b]
		if err := bw.WriteBits(code.Bits, code.Len); err != nil {
			return cw.n, err
		}
	}
	eos := table[huffman.EOS]
	if err := bw.WriteBits(eos.Bits, eos.Len); err != nil {
		return cw.n, err
	}
	if err := bw.Close(); err != nil {
		return cw.n, err
	}

	log.Debugf("compressed %d bytes to %d", root.Weight-1, cw.n)
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
