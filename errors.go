package huffpack

// A FormatError reports input that is not a valid huffpack archive: a missing
// magic tag, a truncated or corrupt tree header, or a body that ends before
// the end-of-stream code. It is unrecoverable for the current operation;
// callers should discard any partially written output.
//
// I/O errors from the underlying streams are propagated unchanged and are
// never wrapped in a FormatError.
type FormatError string

func (e FormatError) Error() string { return "huffpack: " + string(e) }

var (
	// ErrBadMagic indicates the input does not begin with the archive magic
	// tag.
	ErrBadMagic = FormatError("bad magic tag")
	// ErrTruncatedTree indicates the input ended in the middle of the tree
	// header.
	ErrTruncatedTree = FormatError("truncated tree header")
	// ErrCorruptTree indicates the tree header decodes to an unusable tree.
	ErrCorruptTree = FormatError("corrupt tree header")
	// ErrTruncatedBody indicates the compressed body ended before the
	// end-of-stream code was reached.
	ErrTruncatedBody = FormatError("truncated body: missing end-of-stream code")
)
