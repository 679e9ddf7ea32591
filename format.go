package huffpack

// Wire format, most-significant-bit-first with no alignment padding between
// fields:
//
//	magic = 32 bits, archiveMagic
//	tree  = preorder header: 0 -> internal node, two subtrees follow;
//	        1 -> leaf, followed by a 9-bit symbol value (0-255 literal
//	        bytes, 256 end-of-stream)
//	body  = variable-length prefix codes, one per input byte, terminated
//	        by the end-of-stream symbol's code
//
// The final byte is zero-padded on close. Weights never appear on the wire;
// the decoder rebuilds a structurally identical tree from the header alone.
const archiveMagic uint32 = 0xface8201

const magicBits = 32

// defaultBufferSize is the buffered-reader size used for each input pass.
const defaultBufferSize = 64 * 1024
