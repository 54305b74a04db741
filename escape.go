package u8

const upperhex = "0123456789ABCDEF"

// maxEscapeLen is the longest form AppendEscapedRune produces (\UXXXXXXXX).
const maxEscapeLen = 10

func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }

func hexValue(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// readHex accumulates up to max hex digits from s and returns the value
// and the number of digits read.
func readHex(s []byte, max int) (uint32, int) {
	var v uint32
	n := 0
	for n < max && n < len(s) {
		d, ok := hexValue(s[n])
		if !ok {
			break
		}
		v = v<<4 | d
		n++
	}
	return v, n
}

// ReadEscape parses the escape sequence that follows a backslash and
// returns its code point and the number of bytes of s it consumed.
//
// Recognized forms are the C letters n t r b f v a, up to three octal
// digits, \xHH, \uHHHH and \UHHHHHHHH (each with at least one and at most
// the given number of hex digits). Anything else, including a hex escape
// with no digits, is taken literally as one byte. Empty input yields (0, 0).
func ReadEscape(s []byte) (uint32, int) {
	if len(s) == 0 {
		return 0, 0
	}

	c := s[0]
	switch c {
	case 'n':
		return '\n', 1
	case 't':
		return '\t', 1
	case 'r':
		return '\r', 1
	case 'b':
		return '\b', 1
	case 'f':
		return '\f', 1
	case 'v':
		return '\v', 1
	case 'a':
		return '\a', 1
	}

	if isOctalDigit(c) {
		var v uint32
		n := 0
		for n < 3 && n < len(s) && isOctalDigit(s[n]) {
			v = v<<3 | uint32(s[n]-'0')
			n++
		}
		return v, n
	}

	digits := 0
	switch c {
	case 'x':
		digits = 2
	case 'u':
		digits = 4
	case 'U':
		digits = 8
	default:
		return uint32(c), 1
	}
	v, n := readHex(s[1:], digits)
	if n == 0 {
		return uint32(c), 1
	}
	return v, 1 + n
}

func appendHex(dst []byte, v uint32, width int) []byte {
	for shift := (width - 1) * 4; shift >= 0; shift -= 4 {
		dst = append(dst, upperhex[(v>>uint(shift))&0xF])
	}
	return dst
}

// AppendEscapedRune appends the printable escaped form of cp to dst.
//
//	\n \t \r \b \f \v \a \\   named escapes
//	\xHH                      other control characters and DEL
//	\uHHHH                    0x80 through 0xFFFF
//	\UHHHHHHHH                above 0xFFFF, including values past MaxRune
//
// Printable ASCII is appended as is.
func AppendEscapedRune(dst []byte, cp uint32) []byte {
	switch cp {
	case '\n':
		return append(dst, '\\', 'n')
	case '\t':
		return append(dst, '\\', 't')
	case '\r':
		return append(dst, '\\', 'r')
	case '\b':
		return append(dst, '\\', 'b')
	case '\f':
		return append(dst, '\\', 'f')
	case '\v':
		return append(dst, '\\', 'v')
	case '\a':
		return append(dst, '\\', 'a')
	case '\\':
		return append(dst, '\\', '\\')
	}

	switch {
	case cp < 0x20 || cp == 0x7F:
		return appendHex(append(dst, '\\', 'x'), cp, 2)
	case cp > 0xFFFF:
		return appendHex(append(dst, '\\', 'U'), cp, 8)
	case cp >= 0x80:
		return appendHex(append(dst, '\\', 'u'), cp, 4)
	}
	return append(dst, byte(cp))
}

// EscapeRune returns the escaped form of cp. See AppendEscapedRune.
func EscapeRune(cp uint32) string {
	var buf [maxEscapeLen]byte
	return string(AppendEscapedRune(buf[:0], cp))
}

// escapeNext escapes the character at src[i] into buf and returns the
// escaped bytes and the offset of the next character.
func escapeNext(buf []byte, src []byte, i int, quotes bool) ([]byte, int) {
	if quotes && src[i] == '"' {
		return append(buf[:0], '\\', '"'), i + 1
	}
	cp, next := NextRune(src, i)
	if next == i {
		// A zero byte; only reachable from the stream escaper.
		next++
	}
	return AppendEscapedRune(buf[:0], cp), next
}

// EscapeInto writes the escaped form of every character of src to dst and
// returns the number of bytes written. With quotes set, '"' is escaped as
// well. src ends at its first zero byte. An escape that does not fit stops
// the conversion; the 0 terminator is written only when all of src was
// escaped and a byte of room is left.
func EscapeInto(dst, src []byte, quotes bool) int {
	var buf [maxEscapeLen]byte
	c, i := 0, 0
	for i < len(src) && src[i] != 0 && c < len(dst) {
		esc, next := escapeNext(buf[:], src, i, quotes)
		if len(esc) > len(dst)-c {
			return c
		}
		c += copy(dst[c:], esc)
		i = next
	}
	if byteAt(src, i) == 0 && c < len(dst) {
		dst[c] = 0
	}
	return c
}

// Escape returns the escaped form of src, stopping at its first zero byte.
func Escape(src []byte, quotes bool) []byte {
	var buf [maxEscapeLen]byte
	out := make([]byte, 0, len(src)+len(src)/4)
	for i := 0; i < len(src) && src[i] != 0; {
		var esc []byte
		esc, i = escapeNext(buf[:], src, i, quotes)
		out = append(out, esc...)
	}
	return out
}

// EscapeString is Escape for strings.
func EscapeString(s string, quotes bool) string {
	return unsafeBytesToString(Escape(unsafeStringToBytes(s), quotes))
}

// unescapeNext decodes the unit at src[p] (a backslash escape or a literal
// byte) into buf and returns the bytes to emit and the next offset.
func unescapeNext(buf []byte, src []byte, p int) ([]byte, int) {
	if src[p] != '\\' {
		return append(buf[:0], src[p]), p + 1
	}
	if byteAt(src, p+1) == 0 {
		// A trailing backslash has nothing to escape.
		return append(buf[:0], '\\'), p + 1
	}
	if byteAt(src, p+1) >= 0xC0 {
		// An escaped multi-byte character stands for itself.
		end := p + 2
		for end < len(src) && end-p <= maxSeqLen && !IsLeadByte(src[end]) {
			end++
		}
		return src[p+1 : end], end
	}
	cp, n := ReadEscape(src[p+1:])
	buf = buf[:UTFMax]
	return buf[:EncodeRune(buf, cp)], p + 1 + n
}

// UnescapeInto expands the backslash escapes of src into dst and returns
// the number of bytes written. Bytes outside escapes are copied as is, and
// a backslash before a multi-byte character is dropped.
// Escaped code points above MaxRune produce no output. src ends at its
// first zero byte. A unit that does not fit stops the conversion; the 0
// terminator is written only when all of src was consumed and a byte of
// room is left.
//
// The output is never longer than src.
func UnescapeInto(dst, src []byte) int {
	var buf [UTFMax]byte
	c, p := 0, 0
	for p < len(src) && src[p] != 0 && c < len(dst) {
		out, next := unescapeNext(buf[:], src, p)
		if len(out) > len(dst)-c {
			return c
		}
		c += copy(dst[c:], out)
		p = next
	}
	if byteAt(src, p) == 0 && c < len(dst) {
		dst[c] = 0
	}
	return c
}

// Unescape returns src with its escapes expanded.
func Unescape(src []byte) []byte {
	dst := make([]byte, len(src)+1)
	return dst[:UnescapeInto(dst, src)]
}

// UnescapeString is Unescape for strings.
func UnescapeString(s string) string {
	return unsafeBytesToString(Unescape(unsafeStringToBytes(s)))
}
