package u8

// Pre-computed lookup table of trailing-byte counts, indexed by lead byte.
// Continuation bytes (0x80-0xBF) map to 0; they are never consulted as a
// lead byte in well-formed input.
var trailingBytesLUT = [256]uint8{
	0xC0: 1, 0xC1: 1, 0xC2: 1, 0xC3: 1, 0xC4: 1, 0xC5: 1, 0xC6: 1, 0xC7: 1,
	0xC8: 1, 0xC9: 1, 0xCA: 1, 0xCB: 1, 0xCC: 1, 0xCD: 1, 0xCE: 1, 0xCF: 1,
	0xD0: 1, 0xD1: 1, 0xD2: 1, 0xD3: 1, 0xD4: 1, 0xD5: 1, 0xD6: 1, 0xD7: 1,
	0xD8: 1, 0xD9: 1, 0xDA: 1, 0xDB: 1, 0xDC: 1, 0xDD: 1, 0xDE: 1, 0xDF: 1,
	0xE0: 2, 0xE1: 2, 0xE2: 2, 0xE3: 2, 0xE4: 2, 0xE5: 2, 0xE6: 2, 0xE7: 2,
	0xE8: 2, 0xE9: 2, 0xEA: 2, 0xEB: 2, 0xEC: 2, 0xED: 2, 0xEE: 2, 0xEF: 2,
	0xF0: 3, 0xF1: 3, 0xF2: 3, 0xF3: 3, 0xF4: 3, 0xF5: 3, 0xF6: 3, 0xF7: 3,
	0xF8: 4, 0xF9: 4, 0xFA: 4, 0xFB: 4,
	0xFC: 5, 0xFD: 5, 0xFE: 5, 0xFF: 5,
}

// decodeOffsets holds, per trailing-byte count, the sum of the tag bits
// that the shift-and-add accumulation leaves behind. Same index space as
// trailingBytesLUT.
var decodeOffsets = [6]uint32{
	0x00000000,
	0x00003080,
	0x000E2080,
	0x03C82080,
	0xFA082080,
	0x82082080,
}

// maxSeqLen is the longest sequence the lead-byte table can describe.
const maxSeqLen = len(decodeOffsets)

const (
	// MaxRune is the largest code point the encoders will emit.
	MaxRune = 0x10FFFF

	// UTFMax is the worst-case number of bytes EncodeRune writes.
	UTFMax = 4
)
