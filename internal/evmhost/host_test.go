package evmhost

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSource() map[[20]byte]*Account {
	var addr [20]byte
	addr[19] = 1
	return map[[20]byte]*Account{
		addr: {
			Balance: big.NewInt(100),
			Code:    []byte{0x60, 0x01},
			Storage: map[[32]byte][32]byte{{1}: {2}},
		},
	}
}

func testAddr() [20]byte {
	var addr [20]byte
	addr[19] = 1
	return addr
}

func TestRootFrameReadsThroughToSource(t *testing.T) {
	f := NewRootFrame(testSource())
	addr := testAddr()

	require.True(t, f.AccountExists(addr))
	require.Equal(t, big.NewInt(100), f.GetBalance(addr))
	require.Equal(t, [32]byte{2}, f.GetStorage(addr, [32]byte{1}))
	require.Equal(t, 2, f.GetCodeSize(addr))
}

func TestSetStorageClassifiesTransitions(t *testing.T) {
	f := NewRootFrame(testSource())
	addr := testAddr()

	require.Equal(t, StorageUnchanged, f.SetStorage(addr, [32]byte{1}, [32]byte{2}))
	require.Equal(t, StorageModified, f.SetStorage(addr, [32]byte{1}, [32]byte{3}))

	var unknown [20]byte
	unknown[19] = 9
	require.Equal(t, StorageAdded, f.SetStorage(unknown, [32]byte{5}, [32]byte{6}))
}

func TestSetStorageDeletedWhenClearedFromOriginal(t *testing.T) {
	f := NewRootFrame(testSource())
	addr := testAddr()
	require.Equal(t, StorageDeleted, f.SetStorage(addr, [32]byte{1}, [32]byte{}))
}

func TestChildFrameWritesAreIsolatedUntilCommit(t *testing.T) {
	root := NewRootFrame(testSource())
	addr := testAddr()
	child := root.Child()

	child.SetStorage(addr, [32]byte{1}, [32]byte{9})
	require.Equal(t, [32]byte{9}, child.GetStorage(addr, [32]byte{1}))
	require.Equal(t, [32]byte{2}, root.GetStorage(addr, [32]byte{1}), "parent must not see child overlay before Commit")

	child.Commit()
	require.Equal(t, [32]byte{9}, root.GetStorage(addr, [32]byte{1}), "parent must see child overlay after Commit")
}

func TestChildFrameDiscardNeverMerges(t *testing.T) {
	root := NewRootFrame(testSource())
	addr := testAddr()
	child := root.Child()

	child.SetStorage(addr, [32]byte{1}, [32]byte{9})
	child.Discard()
	require.Equal(t, [32]byte{2}, root.GetStorage(addr, [32]byte{1}))
}

func TestSelfDestructMarksDeletedAndClearsStorage(t *testing.T) {
	f := NewRootFrame(testSource())
	addr := testAddr()
	f.SelfDestruct(addr)

	require.False(t, f.AccountExists(addr))
	require.Equal(t, [32]byte{}, f.GetStorage(addr, [32]byte{1}))
}

func TestCommitOnRootFrameIsNoop(t *testing.T) {
	root := NewRootFrame(testSource())
	require.NotPanics(t, func() { root.Commit() })
}

func TestUnknownAddressReadsZeroValues(t *testing.T) {
	f := NewRootFrame(testSource())
	var unknown [20]byte
	unknown[19] = 0xff

	require.False(t, f.AccountExists(unknown))
	require.Equal(t, new(big.Int), f.GetBalance(unknown))
	require.Equal(t, [32]byte{}, f.GetCodeHash(unknown))
	require.Nil(t, f.CopyCode(unknown))
}
