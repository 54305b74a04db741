// Package u8 converts between UTF-8 bytes and code points, maps character
// indexes to byte offsets, escapes and unescapes text, and finds code points
// in byte buffers.
//
// The routines assume their input is already valid UTF-8 and do not check
// it: validation belongs at the boundary where untrusted text comes in.
// Malformed input decodes to garbage rather than an error.
//
// Most operations come in two flavours: an ...Into function that writes
// into a caller-provided buffer and reports truncation through its returned
// count, and an allocating convenience function that always fits.
package u8

// Decode returns the code points of src. It allocates once.
func Decode(src []byte) []uint32 {
	if len(src) == 0 {
		return nil
	}
	// A character needs at least one byte, so len(src)+1 always fits.
	dst := make([]uint32, len(src)+1)
	n := DecodeInto(dst, src)
	return dst[:n:n]
}

// Encode returns the UTF-8 form of src, skipping code points above MaxRune.
// It allocates once.
func Encode(src []uint32) []byte {
	if len(src) == 0 {
		return nil
	}
	size := 0
	for _, cp := range src {
		size += runeLen(cp)
	}
	dst := make([]byte, size)
	_, written := encodeRunes(dst, src, false)
	return dst[:written]
}
