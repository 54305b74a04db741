package u8

// NotFound is the offset StrIndex, MemIndex and Index report on a miss.
const NotFound = -1

// StrIndex finds the first character equal to cp in the zero-terminated
// string s. It returns the byte offset where that character starts and its
// character index, or NotFound and the number of characters scanned.
func StrIndex(s []byte, cp uint32) (int, int) {
	i, charn := 0, 0
	for byteAt(s, i) != 0 {
		c, next := NextRune(s, i)
		if c == cp {
			return i, charn
		}
		i = next
		charn++
	}
	return NotFound, charn
}

// MemIndex is StrIndex over the first size bytes of s (clamped to len(s)).
// Zero bytes are ordinary characters here.
func MemIndex(s []byte, cp uint32, size int) (int, int) {
	n := min(size, len(s))
	i, last, charn := 0, 0, 0
	for i < n {
		var c uint32
		csz := 0
		for {
			c = c<<6 + uint32(s[i])
			i++
			csz++
			if i >= n || IsLeadByte(s[i]) || csz == maxSeqLen {
				break
			}
		}
		c -= decodeOffsets[csz-1]

		if c == cp {
			return last, charn
		}
		last = i
		charn++
	}
	return NotFound, charn
}

// Index finds the first occurrence of sub in s that starts on a character
// boundary and returns its byte offset and character index. An empty sub
// matches at (0, 0). On a miss it returns NotFound and the character count
// of s.
func Index(s, sub []byte) (int, int) {
	if len(sub) == 0 {
		return 0, 0
	}

	firstByte := sub[0]
	lastByte := sub[len(sub)-1]
	limit := len(s) - len(sub)

	charn := 0
	for i := 0; i < len(s); i = Inc(s, i) {
		// Quick first/last byte check before the full comparison
		if i <= limit && s[i] == firstByte && s[i+len(sub)-1] == lastByte &&
			memEqual(s[i:], sub, len(sub)) {
			return i, charn
		}
		charn++
	}
	return NotFound, charn
}
