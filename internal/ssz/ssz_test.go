package ssz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func u64Bytes(v uint64) []byte {
	return uintToBytes(v, 8)
}

func TestValidateUintLength(t *testing.T) {
	def := Uint(8)
	ok, err := Validate(def, u64Bytes(42), true)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = Validate(def, []byte{1, 2, 3}, true)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestValidateBoolean(t *testing.T) {
	ok, err := Validate(Boolean(), []byte{1}, true)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = Validate(Boolean(), []byte{2}, true)
	require.ErrorIs(t, err, ErrInvalidBoolean)
}

func TestValidateContainerOffsets(t *testing.T) {
	def := Container(
		Field{"a", Uint(8)},
		Field{"b", List(Uint(1), 10)},
	)
	b := NewBuilder()
	require.NoError(t, b.PutFixed(u64Bytes(7)))
	require.NoError(t, b.PutDynamic([]byte{1, 2, 3}))
	enc, err := b.Finalize()
	require.NoError(t, err)

	ok, err := Validate(def, enc, true)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGindexContainer(t *testing.T) {
	def := Container(
		Field{"a", Uint(8)},
		Field{"b", Uint(8)},
		Field{"c", Uint(8)},
	)
	g, err := GindexOf(def, FieldPath(0))
	require.NoError(t, err)
	require.Equal(t, Gindex(4), g) // next_pow2(3)=4, field 0 -> 4

	g2, err := GindexOf(def, FieldPath(2))
	require.NoError(t, err)
	require.Equal(t, Gindex(6), g2)
}

func TestAddGindex(t *testing.T) {
	// root's left child is 2, that node's left child should be 4.
	require.Equal(t, Gindex(4), AddGindex(2, 2))
	require.Equal(t, Gindex(5), AddGindex(2, 3))
}

func TestHashTreeRootContainerDeterministic(t *testing.T) {
	def := Container(
		Field{"a", Uint(8)},
		Field{"b", Uint(8)},
	)
	b := NewBuilder()
	require.NoError(t, b.PutFixed(u64Bytes(1)))
	require.NoError(t, b.PutFixed(u64Bytes(2)))
	enc, err := b.Finalize()
	require.NoError(t, err)

	r1, err := HashTreeRoot(def, enc)
	require.NoError(t, err)
	r2, err := HashTreeRoot(def, enc)
	require.NoError(t, err)
	require.Equal(t, r1, r2)

	b2 := NewBuilder()
	require.NoError(t, b2.PutFixed(u64Bytes(1)))
	require.NoError(t, b2.PutFixed(u64Bytes(3)))
	enc2, err := b2.Finalize()
	require.NoError(t, err)
	r3, err := HashTreeRoot(def, enc2)
	require.NoError(t, err)
	require.NotEqual(t, r1, r3)
}

func TestProveAndVerifyGindex(t *testing.T) {
	def := Container(
		Field{"a", Uint(8)},
		Field{"b", Uint(8)},
		Field{"c", Uint(8)},
		Field{"d", Uint(8)},
	)
	b := NewBuilder()
	for _, v := range []uint64{10, 20, 30, 40} {
		require.NoError(t, b.PutFixed(u64Bytes(v)))
	}
	enc, err := b.Finalize()
	require.NoError(t, err)

	root, err := HashTreeRoot(def, enc)
	require.NoError(t, err)

	g, err := GindexOf(def, FieldPath(2))
	require.NoError(t, err)

	proof, err := ProveGindex(def, enc, g)
	require.NoError(t, err)

	fieldEnc := u64Bytes(30)
	fieldRoot, err := HashTreeRoot(Uint(8), fieldEnc)
	require.NoError(t, err)
	require.Equal(t, fieldRoot, proof.Leaf)

	ok, err := VerifyGindex(root, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyGindexRejectsWrongLeaf(t *testing.T) {
	def := Container(
		Field{"a", Uint(8)},
		Field{"b", Uint(8)},
	)
	b := NewBuilder()
	require.NoError(t, b.PutFixed(u64Bytes(1)))
	require.NoError(t, b.PutFixed(u64Bytes(2)))
	enc, err := b.Finalize()
	require.NoError(t, err)

	root, err := HashTreeRoot(def, enc)
	require.NoError(t, err)

	g, err := GindexOf(def, FieldPath(0))
	require.NoError(t, err)
	proof, err := ProveGindex(def, enc, g)
	require.NoError(t, err)

	proof.Leaf[0] ^= 0xff
	ok, err := VerifyGindex(root, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCalculateMultiMerkleRoot(t *testing.T) {
	def := Container(
		Field{"a", Uint(8)},
		Field{"b", Uint(8)},
		Field{"c", Uint(8)},
		Field{"d", Uint(8)},
	)
	b := NewBuilder()
	for _, v := range []uint64{1, 2, 3, 4} {
		require.NoError(t, b.PutFixed(u64Bytes(v)))
	}
	enc, err := b.Finalize()
	require.NoError(t, err)
	root, err := HashTreeRoot(def, enc)
	require.NoError(t, err)

	g0, _ := GindexOf(def, FieldPath(0))
	g3, _ := GindexOf(def, FieldPath(3))

	p0, err := ProveGindex(def, enc, g0)
	require.NoError(t, err)
	p3, err := ProveGindex(def, enc, g3)
	require.NoError(t, err)

	indices := []Gindex{g0, g3}
	leaves := map[Gindex][32]byte{g0: p0.Leaf, g3: p3.Leaf}
	helpers := helperIndices(indices)
	witness := make([][32]byte, len(helpers))
	// Build a witness map from both single proofs' branches keyed by the
	// sibling gindex at each depth, then pull what each helper needs.
	branchByGindex := map[Gindex][32]byte{}
	collectBranch(g0, p0.Branch, branchByGindex)
	collectBranch(g3, p3.Branch, branchByGindex)
	for i, h := range helpers {
		v, ok := branchByGindex[h]
		require.True(t, ok, "missing witness for helper gindex %d", h)
		witness[i] = v
	}

	got, err := CalculateMultiMerkleRoot(leaves, witness, indices)
	require.NoError(t, err)
	require.Equal(t, root, got)
}

// collectBranch re-derives, for each level of a single-leaf proof, the
// gindex of the sibling the branch hash corresponds to.
func collectBranch(g Gindex, branch [][32]byte, out map[Gindex][32]byte) {
	cur := g
	for _, h := range branch {
		sib := cur ^ 1
		out[sib] = h
		cur >>= 1
	}
}

func TestJSONRoundTripContainer(t *testing.T) {
	def := Container(
		Field{"blockNumber", Uint(8)},
		Field{"ok", Boolean()},
	)
	in := map[string]interface{}{
		"block_number": "0x2a",
		"Ok":           true,
	}
	enc, err := FromJSON(def, in)
	require.NoError(t, err)

	out, err := ToJSON(def, enc)
	require.NoError(t, err)
	m := out.(map[string]interface{})
	require.EqualValues(t, 42, m["blockNumber"])
	require.Equal(t, true, m["ok"])
}

func TestJSONListRoundTrip(t *testing.T) {
	def := List(Uint(1), 8)
	in := []interface{}{float64(1), float64(2), float64(3)}
	enc, err := FromJSON(def, in)
	require.NoError(t, err)
	require.Len(t, enc, 3)

	out, err := ToJSON(def, enc)
	require.NoError(t, err)
	arr := out.([]interface{})
	require.Len(t, arr, 3)
}
