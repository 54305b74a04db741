package u8

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := &Error{Op: "encode", Kind: KindOutOfRange, Offset: 2, Value: 0x110000}
	assert.Equal(t, "u8: encode: out_of_range (code point 0x110000 at index 2)", err.Error())

	err = &Error{Op: "decode", Kind: KindShortBuffer, Offset: 7, Written: 3}
	assert.Equal(t, "u8: decode: short_buffer (stopped at index 7 after 3 units)", err.Error())
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("writing header: %w", &Error{Op: "encode", Kind: KindShortBuffer})

	assert.True(t, errors.Is(err, ErrShortBuffer))
	assert.False(t, errors.Is(err, ErrOutOfRange))
	assert.False(t, errors.Is(err, ErrIncomplete))
	assert.False(t, errors.Is(err, errors.New("short_buffer")))
}
