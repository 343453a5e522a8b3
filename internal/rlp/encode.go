package rlp

// EncodeItem canonically RLP-encodes a single byte-string item: a single
// byte value < 0x80 encodes as itself; strings under 56 bytes get a
// single-byte 0x80+len prefix; longer strings get a 0xb7+len(len) prefix
// followed by the big-endian length.
func EncodeItem(item []byte) []byte {
	if len(item) == 1 && item[0] < 0x80 {
		return []byte{item[0]}
	}
	return encodeWithPrefix(item, 0x80, 0xb7)
}

// EncodeList wraps the concatenation of already-encoded items as an RLP
// list, using the 0xc0/0xf7 prefix family.
func EncodeList(encodedItems ...[]byte) []byte {
	var payload []byte
	for _, it := range encodedItems {
		payload = append(payload, it...)
	}
	return encodeWithPrefix(payload, 0xc0, 0xf7)
}

func encodeWithPrefix(payload []byte, shortBase, longBase byte) []byte {
	if len(payload) < 56 {
		out := make([]byte, 1+len(payload))
		out[0] = shortBase + byte(len(payload))
		copy(out[1:], payload)
		return out
	}
	lenBytes := minimalBigEndian(uint64(len(payload)))
	out := make([]byte, 1+len(lenBytes)+len(payload))
	out[0] = longBase + byte(len(lenBytes))
	copy(out[1:], lenBytes)
	copy(out[1+len(lenBytes):], payload)
	return out
}

// EncodeUint canonically encodes a uint64 as a minimal big-endian byte
// string (no leading zero bytes; zero itself encodes as the empty string).
func EncodeUint(v uint64) []byte {
	return EncodeItem(minimalBigEndian(v))
}

func minimalBigEndian(v uint64) []byte {
	if v == 0 {
		return []byte{}
	}
	var buf [8]byte
	buf[0] = byte(v >> 56)
	buf[1] = byte(v >> 48)
	buf[2] = byte(v >> 40)
	buf[3] = byte(v >> 32)
	buf[4] = byte(v >> 24)
	buf[5] = byte(v >> 16)
	buf[6] = byte(v >> 8)
	buf[7] = byte(v)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	out := make([]byte, 8-i)
	copy(out, buf[i:])
	return out
}
