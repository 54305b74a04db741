package u8

// EncodeRune writes the UTF-8 form of cp into dst and returns the number of
// bytes written, or 0 when cp is above MaxRune. There is no capacity check
// beyond Go's own: callers reserve UTFMax bytes up front.
func EncodeRune(dst []byte, cp uint32) int {
	if cp < 0x80 {
		dst[0] = byte(cp)
		return 1
	}

	if cp < 0x800 {
		_ = dst[1]
		dst[0] = byte(0xC0 | cp>>6)
		dst[1] = byte(0x80 | cp&0x3F)
		return 2
	}

	if cp < 0x10000 {
		_ = dst[2]
		dst[0] = byte(0xE0 | cp>>12)
		dst[1] = byte(0x80 | (cp>>6)&0x3F)
		dst[2] = byte(0x80 | cp&0x3F)
		return 3
	}

	if cp <= MaxRune {
		_ = dst[3]
		dst[0] = byte(0xF0 | cp>>18)
		dst[1] = byte(0x80 | (cp>>12)&0x3F)
		dst[2] = byte(0x80 | (cp>>6)&0x3F)
		dst[3] = byte(0x80 | cp&0x3F)
		return 4
	}

	return 0
}

// runeLen is the number of bytes EncodeRune would write for cp.
func runeLen(cp uint32) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	case cp <= MaxRune:
		return 4
	}
	return 0
}

// accumulate decodes the n-byte sequence at s[i:i+n]. The caller has
// already checked that the bytes are there.
func accumulate(s []byte, i, n int) uint32 {
	var cp uint32
	for k := 0; k < n; k++ {
		cp = cp<<6 + uint32(s[i+k])
	}
	return cp - decodeOffsets[n-1]
}

// NextRune decodes the character starting at byte offset i and returns it
// together with the offset of the following character. A zero byte or the
// end of s yields 0 without advancing.
//
// The sequence ends at the first byte that is not a continuation byte, so
// a truncated sequence decodes to whatever its bytes add up to.
func NextRune(s []byte, i int) (uint32, int) {
	if i < 0 || i >= len(s) || s[i] == 0 {
		return 0, i
	}

	var cp uint32
	n := 0
	for {
		cp = cp<<6 + uint32(s[i])
		n++
		i++
		if n == maxSeqLen || leadAt(s, i) {
			break
		}
	}
	return cp - decodeOffsets[n-1], i
}

// Inc returns the offset of the character after the one at i. It skips at
// most three continuation bytes and never moves past len(s).
func Inc(s []byte, i int) int {
	if i >= len(s) {
		return len(s)
	}
	i++
	for k := 0; k < 3 && !leadAt(s, i); k++ {
		i++
	}
	return i
}

// Dec returns the offset of the character before offset i. It walks back
// over at most three continuation bytes and never moves before 0.
func Dec(s []byte, i int) int {
	if i > len(s) {
		i = len(s)
	}
	if i <= 0 {
		return 0
	}
	i--
	for k := 0; k < 3 && i > 0 && !IsLeadByte(s[i]); k++ {
		i--
	}
	return i
}
