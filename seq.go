package u8

// SeqLen returns the length in bytes (1..6) of the sequence introduced by
// lead byte b.
func SeqLen(b byte) int {
	return int(trailingBytesLUT[b]) + 1
}

// IsLeadByte reports whether b starts a character, i.e. it is ASCII or a
// sequence lead byte rather than a 10xxxxxx continuation byte.
func IsLeadByte(b byte) bool {
	return b&0xC0 != 0x80
}

// leadAt is IsLeadByte with the end of s treated as a terminating zero.
func leadAt(s []byte, i int) bool {
	return i >= len(s) || IsLeadByte(s[i])
}

// byteAt returns s[i], or 0 past the end of s.
func byteAt(s []byte, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
