// Package mpt implements the Ethereum variant of a Merkle-Patricia Trie:
// nibble-path encoding, leaf/extension/branch node RLP framing, proof
// verification against an untrusted node list, and a writable in-memory
// trie used to assemble the transactions/receipts tries during block
// verification.
//
// This is a from-scratch implementation rather than a wrapper around
// go-ethereum's trie.Trie: go-ethereum's Prove/VerifyProof work against an
// ethdb.KeyValueReader-backed store and return a single value-or-error,
// not the FOUND/NOT_EXISTING/INVALID-with-bounded-depth contract this
// package's verifier needs to expose to callers that only ever hold a
// flat, ordered list of node encodings (exactly what an execution-layer
// proof bundle carries over the wire).
package mpt

// ToNibbles expands each byte of path into two nibbles (high nibble
// first), producing one nibble per entry.
func ToNibbles(path []byte) []byte {
	out := make([]byte, len(path)*2)
	for i, b := range path {
		out[i*2] = b >> 4
		out[i*2+1] = b & 0x0f
	}
	return out
}

// FromNibbles packs an even-length nibble slice back into bytes.
func FromNibbles(nibbles []byte) []byte {
	if len(nibbles)%2 != 0 {
		panic("mpt: odd nibble count cannot pack into bytes")
	}
	out := make([]byte, len(nibbles)/2)
	for i := 0; i < len(out); i++ {
		out[i] = nibbles[i*2]<<4 | nibbles[i*2+1]
	}
	return out
}

// EncodeHexPrefix applies the Yellow-Paper hex-prefix encoding: the first
// byte's high nibble is 2*isLeaf + (len(nibbles)%2), and its low nibble
// holds the first path nibble when the length is odd; remaining nibbles
// pack two-per-byte as usual.
func EncodeHexPrefix(nibbles []byte, isLeaf bool) []byte {
	odd := len(nibbles)%2 == 1
	flag := byte(0)
	if isLeaf {
		flag += 2
	}
	if odd {
		flag += 1
	}
	if odd {
		out := make([]byte, 1+(len(nibbles)-1)/2)
		out[0] = flag<<4 | nibbles[0]
		copy(out[1:], FromNibbles(nibbles[1:]))
		return out
	}
	out := make([]byte, 1+len(nibbles)/2)
	out[0] = flag << 4
	copy(out[1:], FromNibbles(nibbles))
	return out
}

// DecodeHexPrefix reverses EncodeHexPrefix, returning the path's nibbles
// and whether the flag marked it as a leaf.
func DecodeHexPrefix(enc []byte) (nibbles []byte, isLeaf bool, err error) {
	if len(enc) == 0 {
		return nil, false, errEmptyPath
	}
	flag := enc[0] >> 4
	isLeaf = flag&0x02 != 0
	odd := flag&0x01 != 0

	rest := ToNibbles(enc[1:])
	if odd {
		nibbles = append([]byte{enc[0] & 0x0f}, rest...)
	} else {
		nibbles = rest
	}
	return nibbles, isLeaf, nil
}

// commonPrefixLen returns how many leading nibbles a and b share.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
