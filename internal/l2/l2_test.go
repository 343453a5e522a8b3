package l2

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/beaconproof"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
)

func TestOutputRootIsDeterministic(t *testing.T) {
	o := Output{StateRoot: [32]byte{1}, WithdrawalsStorageRoot: [32]byte{2}, LatestBlockHash: [32]byte{3}}
	r1 := o.Root()
	r2 := o.Root()
	require.Equal(t, r1, r2)
}

func TestOutputRootChangesWithAnyField(t *testing.T) {
	base := Output{StateRoot: [32]byte{1}, WithdrawalsStorageRoot: [32]byte{2}, LatestBlockHash: [32]byte{3}}
	changed := base
	changed.LatestBlockHash[0] = 0xff
	require.NotEqual(t, base.Root(), changed.Root())
}

func TestSlotDistinctForDifferentIndices(t *testing.T) {
	s1 := Slot(1, 3)
	s2 := Slot(2, 3)
	require.NotEqual(t, s1, s2)
}

func TestSlotDeterministic(t *testing.T) {
	require.Equal(t, Slot(7, 3), Slot(7, 3))
}

func testChainSpec() *chainspec.ChainSpec {
	return &chainspec.ChainSpec{
		ChainID: 10,
		Settings: chainspec.Settings{
			SlotsPerEpoch:                32,
			EpochsPerSyncCommitteePeriod: 256,
		},
		Forks: []chainspec.ForkEpoch{
			{Fork: chainspec.ForkDeneb, Epoch: 0, Version: [4]byte{4}},
		},
	}
}

func TestVerifyRejectsBrokenOracleProof(t *testing.T) {
	store := synccommittee.NewStore()
	c := testChainSpec()
	req := &Request{
		Output:        Output{StateRoot: [32]byte{1}},
		OutputIndex:   0,
		MappingSlot:   3,
		OracleAddress: [20]byte{0xAA},
		OracleProof:   [][]byte{{0x01, 0x02}}, // not a valid MPT node
		StorageProof:  nil,
		State:         beaconproof.StateProof{Fork: chainspec.ForkDeneb},
	}
	_, err := Verify(store, c, 10, req, [32]byte{0xbb})
	require.Error(t, err)
}
