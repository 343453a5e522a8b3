package account

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
	"github.com/corpus-core/colibri-stateless-sub002/internal/mpt"
	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
)

func encodeAccount(nonce uint64, balance []byte, storageHash, codeHash [32]byte) []byte {
	return rlp.EncodeList(
		rlp.EncodeUint(nonce),
		rlp.EncodeItem(balance),
		rlp.EncodeItem(storageHash[:]),
		rlp.EncodeItem(codeHash[:]),
	)
}

func TestDecodeAccountRLPRoundTrip(t *testing.T) {
	var storageHash, codeHash [32]byte
	storageHash[0] = 0x11
	codeHash[0] = 0x22
	enc := encodeAccount(7, []byte{0x01, 0x02}, storageHash, codeHash)

	a, err := DecodeAccountRLP(enc)
	require.NoError(t, err)
	require.Equal(t, uint64(7), a.Nonce)
	require.Equal(t, []byte{0x01, 0x02}, a.Balance)
	require.Equal(t, storageHash, a.StorageHash)
	require.Equal(t, codeHash, a.CodeHash)
}

func TestDecodeAccountRLPRejectsBareItem(t *testing.T) {
	_, err := DecodeAccountRLP(rlp.EncodeItem([]byte{0x01}))
	require.Error(t, err)
}

func TestVerifyAccountOnlyNoStorage(t *testing.T) {
	var addr [20]byte
	addr[19] = 1
	enc := encodeAccount(3, []byte{0x05}, EmptyRoot, EmptyCodeHash)

	tr := mpt.NewTrie()
	addrHash := cryptoprim.Keccak256(addr[:])
	tr.Set(addrHash, enc)
	root := tr.Hash()
	proof := tr.CreateMerkleProof(addrHash)

	var stateRoot [32]byte
	copy(stateRoot[:], root)

	acct, err := verifyAccountLeaf(addr, proof, stateRoot)
	require.NoError(t, err)
	require.Equal(t, uint64(3), acct.Nonce)
	require.Equal(t, EmptyRoot, acct.StorageHash)
}

func TestVerifyStorageValueMismatchFails(t *testing.T) {
	tr := mpt.NewTrie()
	var key [32]byte
	key[31] = 1
	keyHash := cryptoprim.Keccak256(key[:])
	tr.Set(keyHash, rlp.EncodeItem([]byte{0x2a}))
	storageHash := tr.Hash()
	proof := tr.CreateMerkleProof(keyHash)

	var sh [32]byte
	copy(sh[:], storageHash)

	entry := StorageEntry{Key: key, Proof: proof, Value: []byte{0x2b}}
	_, err := verifyStorageLeaf(entry, sh)
	require.Error(t, err)
}

func TestVerifyStorageValueMatch(t *testing.T) {
	tr := mpt.NewTrie()
	var key [32]byte
	key[31] = 1
	keyHash := cryptoprim.Keccak256(key[:])
	tr.Set(keyHash, rlp.EncodeItem([]byte{0x2a}))
	storageHash := tr.Hash()
	proof := tr.CreateMerkleProof(keyHash)

	var sh [32]byte
	copy(sh[:], storageHash)

	entry := StorageEntry{Key: key, Proof: proof, Value: []byte{0x2a}}
	got, err := verifyStorageLeaf(entry, sh)
	require.NoError(t, err)
	require.Equal(t, []byte{0x2a}, got)
}

func TestVerifyRejectsStorageUnderEmptyRoot(t *testing.T) {
	var addr [20]byte
	addr[19] = 1
	enc := encodeAccount(0, nil, EmptyRoot, EmptyCodeHash)

	tr := mpt.NewTrie()
	addrHash := cryptoprim.Keccak256(addr[:])
	tr.Set(addrHash, enc)
	root := tr.Hash()
	proof := tr.CreateMerkleProof(addrHash)

	var stateRoot [32]byte
	copy(stateRoot[:], root)

	req := &Request{
		Address:      addr,
		AccountProof: proof,
		Storage: []StorageEntry{{
			Key:   [32]byte{1},
			Proof: [][]byte{{0x01}},
			Value: []byte{0x01},
		}},
	}
	_, err := Verify(nil, nil, 1, req, stateRoot)
	require.Error(t, err)
}
