package call

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/codecache"
	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
	"github.com/corpus-core/colibri-stateless-sub002/internal/mpt"
	"github.com/corpus-core/colibri-stateless-sub002/internal/proofs/account"
	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
)

func encodeAccount(nonce uint64, balance []byte, storageHash, codeHash [32]byte) []byte {
	fields := rlp.EncodeList(
		rlp.EncodeUint(nonce),
		rlp.EncodeItem(balance),
		rlp.EncodeItem(storageHash[:]),
		rlp.EncodeItem(codeHash[:]),
	)
	return fields
}

func buildAccountTrie(t *testing.T, address [20]byte, nonce uint64, balance []byte, storageHash, codeHash [32]byte) (root []byte, proof [][]byte) {
	t.Helper()
	tr := mpt.NewTrie()
	addrHash := cryptoprim.Keccak256(address[:])
	tr.Set(addrHash, encodeAccount(nonce, balance, storageHash, codeHash))
	root = tr.Hash()
	proof = tr.CreateMerkleProof(addrHash)
	require.NotEmpty(t, proof)
	return
}

func TestVerifyAccountLeafWithCodeHashResolvesPendingWhenUncached(t *testing.T) {
	code := []byte{0x60, 0x01}
	codeHash := cryptoprim.Keccak256(code)
	var codeHash32 [32]byte
	copy(codeHash32[:], codeHash)

	var addr [20]byte
	addr[19] = 1
	rootHash, proof := buildAccountTrie(t, addr, 1, []byte{0x10}, account.EmptyRoot, codeHash32)
	var stateRoot [32]byte
	copy(stateRoot[:], rootHash)

	acct, existed, err := verifyAccountLeaf(addr, proof, stateRoot)
	require.NoError(t, err)
	require.True(t, existed)
	require.Equal(t, codeHash32, acct.CodeHash)

	cache := codecache.NewCache()
	resolution, _, err := codecache.Resolve(cache, acct.CodeHash, nil)
	require.NoError(t, err)
	require.Equal(t, codecache.Pending, resolution)
}

func TestVerifyAccountLeafAbsentAccount(t *testing.T) {
	tr := mpt.NewTrie()
	var present [20]byte
	present[19] = 2
	tr.Set(cryptoprim.Keccak256(present[:]), encodeAccount(1, []byte{1}, account.EmptyRoot, account.EmptyCodeHash))
	rootHash := tr.Hash()
	var stateRoot [32]byte
	copy(stateRoot[:], rootHash)

	var absent [20]byte
	absent[19] = 9
	proof := tr.CreateMerkleProof(cryptoprim.Keccak256(absent[:]))

	acct, existed, err := verifyAccountLeaf(absent, proof, stateRoot)
	require.NoError(t, err)
	require.False(t, existed)
	require.Equal(t, account.EmptyCodeHash, acct.CodeHash)
	require.Equal(t, account.EmptyRoot, acct.StorageHash)
}

func TestVerifyAccountLeafRejectsTamperedProof(t *testing.T) {
	var addr [20]byte
	addr[19] = 1
	rootHash, proof := buildAccountTrie(t, addr, 1, []byte{1}, account.EmptyRoot, account.EmptyCodeHash)
	var stateRoot [32]byte
	copy(stateRoot[:], rootHash)
	stateRoot[0] ^= 0xff

	_, _, err := verifyAccountLeaf(addr, proof, stateRoot)
	require.Error(t, err)
}

func TestPendingCodeErrorMessage(t *testing.T) {
	var addr [20]byte
	addr[0] = 0xde
	addr[19] = 0xad
	err := &PendingCode{Address: addr, CodeHash: [32]byte{1}}
	require.Contains(t, err.Error(), "0xde")
}
