package bytesutil

import "errors"

// ErrShortBuffer is returned when a read would run past the end of src.
var ErrShortBuffer = errors.New("bytesutil: short buffer")

// PutUint64LE writes v as 8 little-endian bytes into dst[0:8].
func PutUint64LE(dst []byte, v uint64) {
	_ = dst[7]
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
	dst[4] = byte(v >> 32)
	dst[5] = byte(v >> 40)
	dst[6] = byte(v >> 48)
	dst[7] = byte(v >> 56)
}

// Uint64LE reads 8 little-endian bytes from src[0:8].
func Uint64LE(src []byte) (uint64, error) {
	if len(src) < 8 {
		return 0, ErrShortBuffer
	}
	return uint64(src[0]) | uint64(src[1])<<8 | uint64(src[2])<<16 | uint64(src[3])<<24 |
		uint64(src[4])<<32 | uint64(src[5])<<40 | uint64(src[6])<<48 | uint64(src[7])<<56, nil
}

// Uint32LE reads 4 little-endian bytes from src[0:4].
func Uint32LE(src []byte) (uint32, error) {
	if len(src) < 4 {
		return 0, ErrShortBuffer
	}
	return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24, nil
}

// PutUint32LE writes v as 4 little-endian bytes into dst[0:4].
func PutUint32LE(dst []byte, v uint32) {
	_ = dst[3]
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

// Uint16LE reads 2 little-endian bytes from src[0:2].
func Uint16LE(src []byte) (uint16, error) {
	if len(src) < 2 {
		return 0, ErrShortBuffer
	}
	return uint16(src[0]) | uint16(src[1])<<8, nil
}

// BigEndianUint64 reads up to 8 big-endian bytes (shorter inputs are treated
// as having implicit leading zero bytes), matching RLP/MPT's canonical
// "no leading zero bytes" big-endian integer encoding on decode.
func BigEndianUint64(src []byte) (uint64, error) {
	if len(src) > 8 {
		return 0, errors.New("bytesutil: big-endian value overflows uint64")
	}
	var v uint64
	for _, b := range src {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// TrimLeadingZeroes strips leading zero bytes, canonicalizing a big-endian
// numeric byte string the way RLP and MPT value comparisons require.
func TrimLeadingZeroes(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// PadLeft left-pads b with zero bytes to length n. If b is already >= n
// bytes it is returned unchanged (never truncated).
func PadLeft(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}
