package u8

// DecodeInto decodes the UTF-8 bytes of src into dst, one code point per
// element, and returns the number of code points written. len(dst) is the
// capacity including room for a trailing 0, which is always written when
// dst is non-empty. Decoding stops early when dst is full or when the next
// sequence would run past the end of src.
//
// Trailing bytes are not validated: malformed input decodes to garbage.
func DecodeInto(dst []uint32, src []byte) int {
	n, _ := decodeRunes(dst, src, false)
	return n
}

// DecodeCStringInto is DecodeInto for zero-terminated input: it also stops
// at the first zero byte of src.
func DecodeCStringInto(dst []uint32, src []byte) int {
	n, _ := decodeRunes(dst, src, true)
	return n
}

// DecodeStrict behaves like DecodeInto but reports why it stopped short.
// It returns ErrShortBuffer when dst filled up first and ErrIncomplete when
// src ends in the middle of a sequence.
func DecodeStrict(dst []uint32, src []byte) (int, error) {
	n, p := decodeRunes(dst, src, false)
	if p == len(src) {
		return n, nil
	}
	kind := KindShortBuffer
	if len(dst) > 0 && n < len(dst)-1 {
		kind = KindIncomplete
	}
	return n, &Error{Op: "decode", Kind: kind, Written: n, Offset: p}
}

// decodeRunes returns the number of code points written and the number of
// source bytes consumed.
func decodeRunes(dst []uint32, src []byte, zeroTerminated bool) (int, int) {
	if len(dst) == 0 {
		return 0, 0
	}

	i, p := 0, 0
	for i < len(dst)-1 && p < len(src) {
		if zeroTerminated && src[p] == 0 {
			break
		}
		nb := int(trailingBytesLUT[src[p]])
		if p+nb >= len(src) {
			break
		}
		dst[i] = accumulate(src, p, nb+1)
		p += nb + 1
		i++
	}
	dst[i] = 0
	return i, p
}

// EncodeInto writes the UTF-8 form of the code points in src to dst and
// returns the number of code points fully written. Each code point uses its
// shortest form; code points above MaxRune are skipped but still counted as
// consumed. A sequence that does not fit stops the conversion.
//
// A 0 byte is appended only when all of src was written and a byte of room
// is left, so truncated output is never terminated: compare the returned
// count with len(src) to detect truncation.
func EncodeInto(dst []byte, src []uint32) int {
	n, _ := encodeRunes(dst, src, false)
	return n
}

// EncodeCStringInto is EncodeInto for zero-terminated input: it also stops
// at the first 0 code point of src.
func EncodeCStringInto(dst []byte, src []uint32) int {
	n, _ := encodeRunes(dst, src, true)
	return n
}

// EncodeStrict behaves like EncodeInto but returns ErrShortBuffer when dst
// is too small and ErrOutOfRange at the first code point above MaxRune
// instead of skipping it. The returned count is in code points.
func EncodeStrict(dst []byte, src []uint32) (int, error) {
	d := 0
	for i, cp := range src {
		size := runeLen(cp)
		if size == 0 {
			return i, &Error{Op: "encode", Kind: KindOutOfRange, Written: d, Offset: i, Value: cp}
		}
		if d+size > len(dst) {
			return i, &Error{Op: "encode", Kind: KindShortBuffer, Written: d, Offset: i}
		}
		d += EncodeRune(dst[d:], cp)
	}
	if d < len(dst) {
		dst[d] = 0
	}
	return len(src), nil
}

// encodeRunes returns the number of code points consumed and the number of
// bytes written.
func encodeRunes(dst []byte, src []uint32, zeroTerminated bool) (int, int) {
	d := 0
	i := 0
	for ; i < len(src); i++ {
		cp := src[i]
		if zeroTerminated && cp == 0 {
			break
		}
		size := runeLen(cp)
		if size == 0 {
			continue
		}
		if d+size > len(dst) {
			return i, d
		}
		d += EncodeRune(dst[d:], cp)
	}
	if d < len(dst) {
		dst[d] = 0
	}
	return i, d
}
