package synccommittee

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
)

func testChainSpec() *chainspec.ChainSpec {
	return &chainspec.ChainSpec{
		ChainID: 1,
		Name:    "mainnet",
		Settings: chainspec.Settings{
			SlotsPerEpoch:                32,
			EpochsPerSyncCommitteePeriod: 256,
			SecondsPerSlot:               12,
		},
		Forks: []chainspec.ForkEpoch{
			{Fork: chainspec.ForkDeneb, Epoch: 0, Version: [4]byte{0x04, 0x00, 0x00, 0x00}},
		},
	}
}

func TestComputeDomainDeterministic(t *testing.T) {
	c := testChainSpec()
	d1, err := ComputeDomain(c, 1000)
	require.NoError(t, err)
	d2, err := ComputeDomain(c, 1000)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
	require.Equal(t, DomainSyncCommittee[:], d1[0:4])
}

func TestSigningRootChangesWithDomain(t *testing.T) {
	header := BeaconBlockHeader{Slot: 10, ProposerIndex: 3}
	var d1, d2 [32]byte
	d2[0] = 1
	r1, err := ComputeSigningRoot(header, d1)
	require.NoError(t, err)
	r2, err := ComputeSigningRoot(header, d2)
	require.NoError(t, err)
	require.NotEqual(t, r1, r2)
}

func TestStorePutGetAndPrune(t *testing.T) {
	s := NewStore()
	pubkeys := make([][48]byte, 512)
	s.SetSyncPeriod(1, 5, 1000, common.Hash{0xaa}, pubkeys)

	entry, err := s.GetValidators(1, 5)
	require.NoError(t, err)
	require.Equal(t, uint64(5), entry.Period)
	require.Equal(t, uint64(1000), entry.LastSlot)

	_, err = s.GetValidators(1, 999)
	require.ErrorIs(t, err, ErrPeriodUnknown)

	_, err = s.GetValidators(2, 5)
	require.ErrorIs(t, err, ErrPeriodUnknown)

	for p := uint64(6); p < 6+MaxStoredPeriods+10; p++ {
		s.SetSyncPeriod(1, p, p*100, common.Hash{}, pubkeys)
	}
	_, err = s.GetValidators(1, 5)
	require.ErrorIs(t, err, ErrPeriodUnknown, "oldest period should have been pruned")

	latest, ok := s.LatestPeriod(1)
	require.True(t, ok)
	require.Equal(t, uint64(6+MaxStoredPeriods+9), latest)
}

func TestParticipantPubkeysSelectsBits(t *testing.T) {
	var entry PeriodEntry
	entry.Pubkeys = make([][48]byte, 512)
	bits := make([]byte, 64)
	bits[0] = 0b00000101 // bits 0 and 2 set

	// Seats 0 and 2 are selected; their all-zero pubkeys fail
	// DeserializePublicKey, so the call errors. This checks only that a
	// selected seat is deserialized, not how many are.
	_, err := ParticipantPubkeys(entry, bits)
	require.Error(t, err) // all-zero compressed pubkeys aren't valid G1 points
}

func TestParticipantPubkeysRejectsShortBitfield(t *testing.T) {
	var entry PeriodEntry
	entry.Pubkeys = make([][48]byte, 512)
	_, err := ParticipantPubkeys(entry, make([]byte, 4))
	require.Error(t, err)
}

func TestSniffFramingLengthPrefixed(t *testing.T) {
	blob := make([]byte, 16)
	blob[0] = 4 // length = 4, little-endian, bytes 4..8 stay zero
	require.Equal(t, FramingLengthPrefixed, sniffFraming(blob))
}

func TestSniffFramingLighthouse(t *testing.T) {
	blob := make([]byte, 16)
	blob[0] = 8 // first offset = 8
	blob[4] = 12 // second offset = 12, non-zero
	require.Equal(t, FramingLighthouseOffsetTable, sniffFraming(blob))
}

func TestDecodeLightClientUpdateRoundTrip(t *testing.T) {
	u := &LightClientUpdate{
		AttestedHeader:  BeaconBlockHeader{Slot: 100, ProposerIndex: 7},
		FinalizedHeader: BeaconBlockHeader{Slot: 64, ProposerIndex: 2},
	}
	u.NextSyncCommitteeBranch = make([][32]byte, 5) // altair NSC depth
	u.FinalityBranch = make([][32]byte, 6)          // altair FIN depth
	for i := range u.NextSyncCommitteeBranch {
		u.NextSyncCommitteeBranch[i][0] = byte(i + 1)
	}
	for i := range u.FinalityBranch {
		u.FinalityBranch[i][0] = byte(i + 100)
	}
	u.SyncAggregateBits[0] = 0xff
	u.SyncAggregateSignature[0] = 0x01
	u.SignatureSlot = 101

	payload := encodeUpdateForTest(u)
	decoded, err := DecodeLightClientUpdate(chainspec.ForkDeneb, payload)
	require.NoError(t, err)
	require.Equal(t, u.AttestedHeader, decoded.AttestedHeader)
	require.Equal(t, u.FinalizedHeader, decoded.FinalizedHeader)
	require.Equal(t, u.NextSyncCommitteeBranch, decoded.NextSyncCommitteeBranch)
	require.Equal(t, u.FinalityBranch, decoded.FinalityBranch)
	require.Equal(t, u.SyncAggregateBits, decoded.SyncAggregateBits)
	require.Equal(t, u.SyncAggregateSignature, decoded.SyncAggregateSignature)
	require.Equal(t, u.SignatureSlot, decoded.SignatureSlot)
}

func encodeUpdateForTest(u *LightClientUpdate) []byte {
	out := append([]byte{}, encodeBeaconBlockHeader(u.AttestedHeader)...)
	out = append(out, u.NextSyncCommittee.encode()...)
	for _, h := range u.NextSyncCommitteeBranch {
		out = append(out, h[:]...)
	}
	out = append(out, encodeBeaconBlockHeader(u.FinalizedHeader)...)
	for _, h := range u.FinalityBranch {
		out = append(out, h[:]...)
	}
	out = append(out, u.SyncAggregateBits[:]...)
	out = append(out, u.SyncAggregateSignature[:]...)
	var slotBuf [8]byte
	putUint64LE(slotBuf[:], u.SignatureSlot)
	out = append(out, slotBuf[:]...)
	return out
}

func TestProcessLightClientUpdateRejectsWrongTrustedCheckpoint(t *testing.T) {
	store := NewStore()
	c := testChainSpec()
	u := &LightClientUpdate{
		AttestedHeader:          BeaconBlockHeader{Slot: 100},
		NextSyncCommitteeBranch: make([][32]byte, 5),
		FinalizedHeader:         BeaconBlockHeader{Slot: 64},
		FinalityBranch:          make([][32]byte, 6),
	}
	var wrongCheckpoint [32]byte
	wrongCheckpoint[0] = 0xff
	err := ProcessLightClientUpdate(store, c, 1, chainspec.ForkDeneb, u, &wrongCheckpoint)
	require.Error(t, err)
}

func TestProcessLightClientUpdateMerkleMismatchWithTrustedCheckpoint(t *testing.T) {
	store := NewStore()
	c := testChainSpec()
	u := &LightClientUpdate{
		AttestedHeader:          BeaconBlockHeader{Slot: 100},
		NextSyncCommitteeBranch: make([][32]byte, 5),
		FinalizedHeader:         BeaconBlockHeader{Slot: 64},
		FinalityBranch:          make([][32]byte, 6),
	}
	checkpoint, err := HashTreeRootHeader(u.AttestedHeader)
	require.NoError(t, err)

	err = ProcessLightClientUpdate(store, c, 1, chainspec.ForkDeneb, u, &checkpoint)
	require.ErrorIs(t, err, ErrMerkleMismatch)
}
