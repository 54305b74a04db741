package u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestReadEscape(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		expected     uint32
		expectedUsed int
	}{
		{"newline", "n", '\n', 1},
		{"tab", "tail", '\t', 1},
		{"bell", "a", '\a', 1},
		{"vertical tab", "v", '\v', 1},
		{"octal three digits", "110", 'H', 3},
		{"octal stops after three digits", "1109", 'H', 3},
		{"octal single digit", "7x", 7, 1},
		{"eight is not octal", "8", '8', 1},
		{"hex two digits", "x41", 'A', 3},
		{"hex one digit", "x4g", 4, 2},
		{"hex without digits is literal", "xg", 'x', 1},
		{"short unicode", "u00e9", 0xE9, 5},
		{"unicode stops after four digits", "u12345", 0x1234, 5},
		{"long unicode", "U0001F600", 0x1F600, 9},
		{"long unicode past MaxRune", "UFFFFFFFF", 0xFFFFFFFF, 9},
		{"unicode without digits is literal", "u", 'u', 1},
		{"quote passes through", "\"", '"', 1},
		{"backslash passes through", "\\", '\\', 1},
		{"other letter passes through", "q", 'q', 1},
		{"empty", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, n := ReadEscape([]byte(tt.text))
			assert.Equal(t, tt.expected, cp)
			assert.Equal(t, tt.expectedUsed, n)
		})
	}
}

func TestEscapeRune(t *testing.T) {
	tests := []struct {
		cp       uint32
		expected string
	}{
		{'\n', `\n`},
		{'\t', `\t`},
		{'\r', `\r`},
		{'\b', `\b`},
		{'\f', `\f`},
		{'\v', `\v`},
		{'\a', `\a`},
		{'\\', `\\`},
		{0x00, `\x00`},
		{0x1B, `\x1B`},
		{0x7F, `\x7F`},
		{'A', `A`},
		{'"', `"`},
		{0xE9, `\u00E9`},
		{0xFFFF, `\uFFFF`},
		{0x1F600, `\U0001F600`},
		{0xFFFFFFFF, `\UFFFFFFFF`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EscapeRune(tt.cp), "code point %#x", tt.cp)
	}
}

func TestAppendEscapedRune(t *testing.T) {
	dst := AppendEscapedRune([]byte("x="), 0x4E2D)
	assert.Equal(t, `x=\u4E2D`, string(dst))
}

func TestEscapeInto(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		quotes     bool
		capacity   int
		expected   string
		terminated bool
	}{
		{
			name:       "fits with terminator",
			src:        "a\nb",
			capacity:   10,
			expected:   `a\nb`,
			terminated: true,
		},
		{
			name:     "exact fit is not terminated",
			src:      "a\nb",
			capacity: 4,
			expected: `a\nb`,
		},
		{
			name:     "escape that does not fit stops",
			src:      "a\nb",
			capacity: 2,
			expected: `a`,
		},
		{
			name:       "quotes escaped on request",
			src:        `say "hi"`,
			quotes:     true,
			capacity:   32,
			expected:   `say \"hi\"`,
			terminated: true,
		},
		{
			name:       "quotes left alone by default",
			src:        `say "hi"`,
			capacity:   32,
			expected:   `say "hi"`,
			terminated: true,
		},
		{
			name:       "non-ASCII",
			src:        "é😀",
			capacity:   32,
			expected:   `\u00E9\U0001F600`,
			terminated: true,
		},
		{
			name:       "stops at zero byte",
			src:        "ab\x00cd",
			capacity:   32,
			expected:   `ab`,
			terminated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.capacity)
			for i := range dst {
				dst[i] = 0xFF
			}

			n := EscapeInto(dst, []byte(tt.src), tt.quotes)
			require.Equal(t, len(tt.expected), n)
			assert.Equal(t, tt.expected, string(dst[:n]))
			if n < len(dst) {
				if tt.terminated {
					assert.Equal(t, byte(0), dst[n])
				} else {
					assert.Equal(t, byte(0xFF), dst[n])
				}
			}
		})
	}
}

func TestUnescapeInto(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		capacity   int
		expected   string
		terminated bool
	}{
		{
			name:       "unicode escape",
			src:        `hello\u220e`,
			capacity:   16,
			expected:   "hello∎",
			terminated: true,
		},
		{
			name:     "sequence that does not fit stops",
			src:      `hello\u220e`,
			capacity: 6,
			expected: "hello",
		},
		{
			name:       "mixed escapes",
			src:        `\t\x41\101\"\\\q`,
			capacity:   16,
			expected:   "\tAA\"\\q",
			terminated: true,
		},
		{
			name:       "literal UTF-8 copied as is",
			src:        "é\\n",
			capacity:   16,
			expected:   "é\n",
			terminated: true,
		},
		{
			name:       "escape past MaxRune produces nothing",
			src:        `a\UFFFFFFFFb`,
			capacity:   16,
			expected:   "ab",
			terminated: true,
		},
		{
			name:       "trailing backslash kept",
			src:        `ab\`,
			capacity:   16,
			expected:   `ab\`,
			terminated: true,
		},
		{
			name:       "escaped multi-byte character stands for itself",
			src:        `caf\é \中`,
			capacity:   16,
			expected:   "café 中",
			terminated: true,
		},
		{
			name:       "stops at zero byte",
			src:        "a\x00\\n",
			capacity:   16,
			expected:   "a",
			terminated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.capacity)
			for i := range dst {
				dst[i] = 0xFF
			}

			n := UnescapeInto(dst, []byte(tt.src))
			require.Equal(t, len(tt.expected), n)
			assert.Equal(t, tt.expected, string(dst[:n]))
			if n < len(dst) {
				if tt.terminated {
					assert.Equal(t, byte(0), dst[n])
				} else {
					assert.Equal(t, byte(0xFF), dst[n])
				}
			}
		})
	}
}

// EscapeRoundTripSuite checks that unescaping undoes escaping.
type EscapeRoundTripSuite struct {
	suite.Suite
	samples []string
}

func (s *EscapeRoundTripSuite) SetupTest() {
	s.samples = []string{
		"",
		"plain ASCII text",
		"tab\there\nnewline\r\n",
		"\a\b\f\v",
		"\x01\x1FA\x7F1",
		`back\slash and "quotes"`,
		"é中😀 mixed",
		"é1 digits after a short escape",
		"\U0001F6001",
		"石田花子 developer",
	}
}

func (s *EscapeRoundTripSuite) TestWithoutQuotes() {
	for _, sample := range s.samples {
		escaped := EscapeString(sample, false)
		s.Equal(sample, UnescapeString(escaped), "escaped form %q", escaped)
	}
}

func (s *EscapeRoundTripSuite) TestWithQuotes() {
	for _, sample := range s.samples {
		escaped := EscapeString(sample, true)
		s.NotContains(stripEscapedQuotes(escaped), `"`)
		s.Equal(sample, UnescapeString(escaped))
	}
}

func (s *EscapeRoundTripSuite) TestEscapedFormIsPrintableASCII() {
	for _, sample := range s.samples {
		for _, b := range Escape([]byte(sample), false) {
			s.True(b >= 0x20 && b < 0x7F, "byte %#x in escaped %q", b, sample)
		}
	}
}

func (s *EscapeRoundTripSuite) TestIntoMatchesAllocating() {
	for _, sample := range s.samples {
		expected := Escape([]byte(sample), true)
		dst := make([]byte, len(expected)+1)
		n := EscapeInto(dst, []byte(sample), true)
		s.Equal(string(expected), string(dst[:n]))
	}
}

func stripEscapedQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

func TestEscapeRoundTripSuite(t *testing.T) {
	suite.Run(t, new(EscapeRoundTripSuite))
}
