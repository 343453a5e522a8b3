package mpt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexPrefixRoundTrip(t *testing.T) {
	cases := [][]byte{
		{1, 2, 3, 4},
		{1, 2, 3},
		{},
		{0xf},
	}
	for _, nibbles := range cases {
		for _, leaf := range []bool{true, false} {
			enc := EncodeHexPrefix(nibbles, leaf)
			got, isLeaf, err := DecodeHexPrefix(enc)
			require.NoError(t, err)
			require.Equal(t, leaf, isLeaf)
			require.Equal(t, nibbles, got)
		}
	}
}

func TestToFromNibbles(t *testing.T) {
	b := []byte{0xab, 0xcd}
	n := ToNibbles(b)
	require.Equal(t, []byte{0xa, 0xb, 0xc, 0xd}, n)
	require.Equal(t, b, FromNibbles(n))
}

func TestTrieEmptyRoot(t *testing.T) {
	tr := NewTrie()
	require.Equal(t, EmptyRootHash, tr.Hash())
}

func TestTrieSetAndProveFound(t *testing.T) {
	tr := NewTrie()
	entries := map[string]string{
		"do":    "verb",
		"dog":   "puppy",
		"doge":  "coin",
		"horse": "stallion",
	}
	for k, v := range entries {
		tr.Set([]byte(k), []byte(v))
	}
	root := tr.Hash()

	for k, v := range entries {
		proof := tr.CreateMerkleProof([]byte(k))
		require.NotEmpty(t, proof)

		res, value, err := VerifyProof(root, []byte(k), proof)
		require.NoError(t, err)
		require.Equal(t, Found, res)
		require.Equal(t, []byte(v), value)
	}
}

func TestTrieProveAbsence(t *testing.T) {
	tr := NewTrie()
	tr.Set([]byte("dog"), []byte("puppy"))
	tr.Set([]byte("doge"), []byte("coin"))
	root := tr.Hash()

	proof := tr.CreateMerkleProof([]byte("cat"))
	res, _, err := VerifyProof(root, []byte("cat"), proof)
	require.NoError(t, err)
	require.Equal(t, NotExisting, res)
}

func TestVerifyProofRejectsTamperedRoot(t *testing.T) {
	tr := NewTrie()
	tr.Set([]byte("dog"), []byte("puppy"))
	root := tr.Hash()
	root[0] ^= 0xff

	proof := tr.CreateMerkleProof([]byte("dog"))
	res, _, err := VerifyProof(root, []byte("dog"), proof)
	require.Error(t, err)
	require.Equal(t, Invalid, res)
}

func TestTrieUpdateOverwritesValue(t *testing.T) {
	tr := NewTrie()
	tr.Set([]byte("key"), []byte("v1"))
	r1 := tr.Hash()
	tr.Set([]byte("key"), []byte("v2"))
	r2 := tr.Hash()
	require.NotEqual(t, r1, r2)

	proof := tr.CreateMerkleProof([]byte("key"))
	res, value, err := VerifyProof(r2, []byte("key"), proof)
	require.NoError(t, err)
	require.Equal(t, Found, res)
	require.Equal(t, []byte("v2"), value)
}
