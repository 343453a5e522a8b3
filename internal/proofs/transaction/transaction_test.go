package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
)

// makeBlobTx builds a syntactically valid (but unsigned/unkeyed) EIP-4844
// envelope carrying n blob versioned hashes, enough structure for
// blobVersionedHashCount and the Verify boundary check to walk.
func makeBlobTx(n int) []byte {
	hashes := make([][]byte, n)
	for i := range hashes {
		item := make([]byte, 32)
		item[0] = byte(i + 1)
		hashes[i] = rlp.EncodeItem(item)
	}
	fields := [][]byte{
		rlp.EncodeUint(1),
		rlp.EncodeUint(0),
		rlp.EncodeUint(1),
		rlp.EncodeUint(1),
		rlp.EncodeUint(21000),
		rlp.EncodeItem(make([]byte, 20)),
		rlp.EncodeUint(0),
		rlp.EncodeItem(nil),
		rlp.EncodeList(),
		rlp.EncodeUint(1),
		rlp.EncodeList(hashes...),
		rlp.EncodeUint(0),
		rlp.EncodeItem(make([]byte, 32)),
		rlp.EncodeItem(make([]byte, 32)),
	}
	body := rlp.EncodeList(fields...)
	return append([]byte{0x03}, body...)
}

func TestTypeOfClassifiesEnvelopes(t *testing.T) {
	cases := []struct {
		raw  []byte
		want Type
	}{
		{[]byte{0xf8, 0x01}, TypeLegacy},
		{[]byte{0x01, 0x02}, TypeAccessList},
		{[]byte{0x02, 0x02}, TypeDynamicFee},
		{[]byte{0x03, 0x02}, TypeBlob},
		{[]byte{0x04, 0x02}, TypeSetCode},
	}
	for _, c := range cases {
		got, err := TypeOf(c.raw)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}

func TestTypeOfRejectsEmptyAndUnknown(t *testing.T) {
	_, err := TypeOf(nil)
	require.ErrorIs(t, err, ErrInvalidType)

	_, err = TypeOf([]byte{0x05})
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestCheckByHash(t *testing.T) {
	raw := []byte{0xf8, 0x01, 0x02}
	hash := [32]byte(cryptoprim.Keccak256(raw))
	require.NoError(t, CheckByHash(raw, hash))

	var wrong [32]byte
	wrong[0] = 0xff
	require.Error(t, CheckByHash(raw, wrong))
}

func TestCheckByBlockAndIndex(t *testing.T) {
	blockHash := [32]byte{1}
	blockNumber := uint64(42)
	res := &Result{BlockHash: blockHash, BlockNumber: blockNumber}

	require.NoError(t, CheckByBlockAndIndex(res, 3, 3, &blockHash, &blockNumber))

	require.Error(t, CheckByBlockAndIndex(res, 3, 4, nil, nil))

	wrongHash := [32]byte{2}
	require.Error(t, CheckByBlockAndIndex(res, 3, 3, &wrongHash, nil))

	wrongNumber := uint64(1)
	require.Error(t, CheckByBlockAndIndex(res, 3, 3, nil, &wrongNumber))
}

func TestBlobVersionedHashCount(t *testing.T) {
	for _, n := range []int{0, 1, maxBlobVersionedHashes} {
		raw := makeBlobTx(n)
		got, err := blobVersionedHashCount(raw)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestVerifyRejectsTooManyBlobVersionedHashes(t *testing.T) {
	raw := makeBlobTx(maxBlobVersionedHashes + 1)
	_, err := Verify(nil, nil, &Request{Raw: raw, ChainID: 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "blob versioned hashes exceeds max")
}

func TestTransactionLeafDeterministic(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	l1, err := transactionLeaf(raw)
	require.NoError(t, err)
	l2, err := transactionLeaf(raw)
	require.NoError(t, err)
	require.Equal(t, l1, l2)

	l3, err := transactionLeaf([]byte{0x01, 0x02, 0x04})
	require.NoError(t, err)
	require.NotEqual(t, l1, l3)
}
