package u8

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// EscapedEncoding is the escaped text form as an encoding.Encoding: its
// encoder escapes UTF-8 text and its decoder expands the escapes again.
var EscapedEncoding encoding.Encoding = escapedEncoding{}

type escapedEncoding struct{}

func (escapedEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: NewUnescaper()}
}

func (escapedEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: NewEscaper(false)}
}

// NewEscaper returns a transformer producing the same output as Escape.
// Unlike Escape it does not stop at a zero byte: that is written as \x00.
func NewEscaper(quotes bool) transform.Transformer {
	return escaper{quotes: quotes}
}

// NewUnescaper returns a transformer producing the same output as
// Unescape, with zero bytes passed through as data.
func NewUnescaper() transform.Transformer {
	return unescaper{}
}

type escaper struct {
	transform.NopResetter
	quotes bool
}

// charComplete reports whether s starts with a character whose end is
// known: NextRune runs until the next lead byte or maxSeqLen bytes.
func charComplete(s []byte) bool {
	if s[0] == 0 {
		return true
	}
	for k := 1; k < maxSeqLen; k++ {
		if k >= len(s) {
			return false
		}
		if IsLeadByte(s[k]) {
			return true
		}
	}
	return true
}

func (e escaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [maxEscapeLen]byte
	for nSrc < len(src) {
		if !atEOF && !charComplete(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		esc, next := escapeNext(buf[:], src, nSrc, e.quotes)
		if len(esc) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], esc)
		nSrc = next
	}
	return nDst, nSrc, nil
}

type unescaper struct {
	transform.NopResetter
}

// escapeComplete reports whether the escape body s (the bytes after a
// backslash) cannot grow any longer with more input.
func escapeComplete(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] >= 0xC0 {
		return charComplete(s)
	}

	if isOctalDigit(s[0]) {
		n := 0
		for n < 3 && n < len(s) && isOctalDigit(s[n]) {
			n++
		}
		return n == 3 || n < len(s)
	}

	digits := 0
	switch s[0] {
	case 'x':
		digits = 2
	case 'u':
		digits = 4
	case 'U':
		digits = 8
	default:
		return true
	}
	n := 0
	for n < digits && 1+n < len(s) {
		if _, ok := hexValue(s[1+n]); !ok {
			break
		}
		n++
	}
	return n == digits || 1+n < len(s)
}

func (unescaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [UTFMax]byte
	for nSrc < len(src) {
		if !atEOF && src[nSrc] == '\\' && !escapeComplete(src[nSrc+1:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out, next := unescapeNext(buf[:], src, nSrc)
		if len(out) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc = next
	}
	return nDst, nSrc, nil
}
