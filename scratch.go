package u8

import "sync"

// Scratch buffers above this capacity are dropped instead of pooled.
const maxPooledScratch = 64 << 10

// scratch holds the temporary buffers of one Printf call.
type scratch struct {
	formatted []byte   // fmt output
	runes     []uint32 // formatted output as code points, 0-terminated
	encoded   []byte   // code points re-encoded for the writer
}

var scratchPool = sync.Pool{
	New: func() interface{} {
		return &scratch{
			formatted: make([]byte, 0, defaultPrintfSize),
		}
	},
}

func getScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

// release returns sc to the pool, discarding oversized buffers.
func (sc *scratch) release() {
	sc.reset()
	scratchPool.Put(sc)
}

func (sc *scratch) reset() {
	if cap(sc.formatted) > maxPooledScratch {
		sc.formatted = make([]byte, 0, defaultPrintfSize)
	}
	if cap(sc.runes) > maxPooledScratch {
		sc.runes = nil
	}
	if cap(sc.encoded) > maxPooledScratch {
		sc.encoded = nil
	}
	sc.formatted = sc.formatted[:0]
	sc.runes = sc.runes[:0]
	sc.encoded = sc.encoded[:0]
}

// runeBuf returns sc.runes resized to n elements.
func (sc *scratch) runeBuf(n int) []uint32 {
	if cap(sc.runes) < n {
		sc.runes = make([]uint32, n)
	}
	sc.runes = sc.runes[:n]
	return sc.runes
}

// byteBuf returns sc.encoded resized to n bytes.
func (sc *scratch) byteBuf(n int) []byte {
	if cap(sc.encoded) < n {
		sc.encoded = make([]byte, n)
	}
	sc.encoded = sc.encoded[:n]
	return sc.encoded
}
