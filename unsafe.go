package u8

import "unsafe"

// unsafeBytesToString views b as a string without copying.
// Only used on freshly allocated output that nothing else references.
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// unsafeStringToBytes views s as a byte slice without copying.
// The codec only reads from it.
func unsafeStringToBytes(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// memEqual compares the first length bytes of a and b a machine word at a
// time. Both slices must hold at least length bytes.
func memEqual(a, b []byte, length int) bool {
	if length == 0 {
		return true
	}
	_ = a[length-1]
	_ = b[length-1]

	const wordSize = int(unsafe.Sizeof(uintptr(0)))

	words := length / wordSize
	for i := 0; i < words; i++ {
		off := i * wordSize
		if *(*uintptr)(unsafe.Pointer(&a[off])) != *(*uintptr)(unsafe.Pointer(&b[off])) {
			return false
		}
	}

	for i := words * wordSize; i < length; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
