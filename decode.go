package huffpack

import (
	"bufio"
	"errors"
	"io"

	"github.com/icza/bitio"

	"github.com/seiflotfy/huffpack/huffman"
)

// Decode decompresses in to out and returns the number of decoded bytes
// written. The input must start with the archive magic tag; anything else is
// rejected before a tree is read. Exhausting the input before the
// end-of-stream code is a hard error, never a silently short output. Bits
// following the end-of-stream code are the final byte's zero padding and are
// ignored.
func (d *Decoder) Decode(in io.Reader, out io.Writer) (int64, error) {
	br := bitio.NewReader(bufio.NewReaderSize(in, d.config.bufferSize()))

	magic, err := br.ReadBits(magicBits)
	if err != nil {
		if isEOF(err) {
			return 0, ErrBadMagic
		}
		return 0, err
	}
	if uint32(magic) != archiveMagic {
		return 0, ErrBadMagic
	}

	root, err := huffman.ReadTree(br)
	if err != nil {
		switch {
		case errors.Is(err, huffman.ErrSymbolRange), errors.Is(err, huffman.ErrTreeTooDeep):
			return 0, ErrCorruptTree
		case isEOF(err):
			return 0, ErrTruncatedTree
		}
		return 0, err
	}
	if root.Leaf() {
		// Never produced by Encode, and it leaves the walker nowhere to step.
		return 0, ErrCorruptTree
	}

	bw := bufio.NewWriter(out)
	var written int64
	node := root
	for {
		right, err := br.ReadBool()
		if err != nil {
			if isEOF(err) {
				return written, ErrTruncatedBody
			}
			return written, err
		}
		if right {
			node = node.Right
		} else {
			node = node.Left
		}
		if !node.Leaf() {
			continue
		}
		if node.Symbol == huffman.EOS {
			break
		}
		if err := bw.WriteByte(byte(node.Symbol)); err != nil {
			return written, err
		}
		written++
		node = root
	}
	if err := bw.Flush(); err != nil {
		return written, err
	}

	log.Debugf("decompressed %d bytes", written)
	return written, nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
