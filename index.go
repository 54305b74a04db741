package u8

// Offset converts a character index into a byte offset by advancing n
// characters from the start of s. It stops early at a zero byte or at the
// end of s.
func Offset(s []byte, n int) int {
	off := 0
	for n > 0 && byteAt(s, off) != 0 {
		off = Inc(s, off)
		n--
	}
	return off
}

// CharNum converts a byte offset into a character index: the number of
// character advances needed to reach or pass off.
func CharNum(s []byte, off int) int {
	charnum, i := 0, 0
	for i < off && byteAt(s, i) != 0 {
		i = Inc(s, i)
		charnum++
	}
	return charnum
}

// Len returns the number of characters in s, up to the first zero byte.
func Len(s []byte) int {
	count, i := 0, 0
	for {
		cp, next := NextRune(s, i)
		if cp == 0 {
			return count
		}
		count++
		i = next
	}
}

// LenString is Len for a string, without copying it.
func LenString(s string) int {
	return Len(unsafeStringToBytes(s))
}
