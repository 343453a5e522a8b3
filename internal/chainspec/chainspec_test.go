package chainspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mainnetLike() *ChainSpec {
	return &ChainSpec{
		ChainID: 1,
		Name:    "mainnet",
		Settings: Settings{
			SlotsPerEpoch:                32,
			EpochsPerSyncCommitteePeriod: 256,
			SecondsPerSlot:               12,
		},
		Forks: []ForkEpoch{
			{Fork: ForkBellatrix, Epoch: 144896, Version: [4]byte{0x02, 0x00, 0x00, 0x00}},
			{Fork: ForkCapella, Epoch: 194048, Version: [4]byte{0x03, 0x00, 0x00, 0x00}},
			{Fork: ForkDeneb, Epoch: 269568, Version: [4]byte{0x04, 0x00, 0x00, 0x00}},
		},
	}
}

func TestSlotToEpoch(t *testing.T) {
	c := mainnetLike()
	require.Equal(t, uint64(0), c.SlotToEpoch(31))
	require.Equal(t, uint64(1), c.SlotToEpoch(32))
}

func TestSyncCommitteePeriod(t *testing.T) {
	c := mainnetLike()
	require.Equal(t, uint64(0), c.SyncCommitteePeriod(32*256-1))
	require.Equal(t, uint64(1), c.SyncCommitteePeriod(32*256))
}

func TestForkAtPicksHighestApplicable(t *testing.T) {
	c := mainnetLike()
	f, err := c.ForkAt(150000)
	require.NoError(t, err)
	require.Equal(t, ForkBellatrix, f)

	f, err = c.ForkAt(300000)
	require.NoError(t, err)
	require.Equal(t, ForkDeneb, f)
}

func TestForkAtBeforeAnyFork(t *testing.T) {
	c := mainnetLike()
	_, err := c.ForkAt(10)
	require.Error(t, err)
}

func TestRegistryPutGet(t *testing.T) {
	reg := NewRegistry()
	reg.Put(mainnetLike())
	got, ok := reg.Get(1)
	require.True(t, ok)
	require.Equal(t, "mainnet", got.Name)

	_, ok = reg.Get(999)
	require.False(t, ok)
}
