package synccommittee

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/ssz"
)

// ErrMerkleMismatch is returned when a light-client update's committee or
// finality branch does not verify against the header's state_root.
var ErrMerkleMismatch = errors.New("synccommittee: merkle mismatch")

// SyncCommitteeData is next_sync_committee: 512 committee pubkeys plus
// their BLS aggregate pubkey.
type SyncCommitteeData struct {
	Pubkeys         [512][48]byte
	AggregatePubkey [48]byte
}

func (d SyncCommitteeData) encode() []byte {
	out := make([]byte, 0, 512*48+48)
	for _, pk := range d.Pubkeys {
		out = append(out, pk[:]...)
	}
	out = append(out, d.AggregatePubkey[:]...)
	return out
}

// LightClientUpdate is the container spec.md §3 describes: an attested
// header trusted (directly or via signature) to anchor a Merkle proof of
// the next sync committee and a finalized checkpoint.
type LightClientUpdate struct {
	AttestedHeader          BeaconBlockHeader
	NextSyncCommittee       SyncCommitteeData
	NextSyncCommitteeBranch [][32]byte
	FinalizedHeader         BeaconBlockHeader
	FinalityBranch          [][32]byte
	SyncAggregateBits       [64]byte // 512-bit participation vector
	SyncAggregateSignature  [96]byte
	SignatureSlot           uint64
}

const headerLen = 112 // slot(8) + proposerIndex(8) + 3*root(32)
const committeeLen = 512*48 + 48
const syncAggregateLen = 64 + 96

func decodeHeader(b []byte) (BeaconBlockHeader, error) {
	if len(b) != headerLen {
		return BeaconBlockHeader{}, fmt.Errorf("synccommittee: header must be %d bytes, got %d", headerLen, len(b))
	}
	slot, err := bytesutil.Uint64LE(b[0:8])
	if err != nil {
		return BeaconBlockHeader{}, err
	}
	proposerIndex, err := bytesutil.Uint64LE(b[8:16])
	if err != nil {
		return BeaconBlockHeader{}, err
	}
	var h BeaconBlockHeader
	h.Slot = slot
	h.ProposerIndex = proposerIndex
	copy(h.ParentRoot[:], b[16:48])
	copy(h.StateRoot[:], b[48:80])
	copy(h.BodyRoot[:], b[80:112])
	return h, nil
}

// DecodeLightClientUpdate parses payload (the SSZ(LightClientUpdate_of_fork)
// portion of one client-updates blob entry) according to fork's branch
// depths. Every field in this container is fixed-size once the fork's
// branch depths are known, so decoding is a flat sequence of byte-range
// reads, not a generic SSZ container decode.
func DecodeLightClientUpdate(fork chainspec.Fork, payload []byte) (*LightClientUpdate, error) {
	nscGindex, err := NSCGindex(fork)
	if err != nil {
		return nil, err
	}
	finGindex, err := FINGindex(fork)
	if err != nil {
		return nil, err
	}
	nscDepth := nscGindex.Depth()
	finDepth := finGindex.Depth()

	want := headerLen + committeeLen + nscDepth*32 + headerLen + finDepth*32 + syncAggregateLen + 8
	if len(payload) != want {
		return nil, fmt.Errorf("synccommittee: light client update for fork %q must be %d bytes, got %d", fork, want, len(payload))
	}

	pos := 0
	attested, err := decodeHeader(payload[pos : pos+headerLen])
	if err != nil {
		return nil, err
	}
	pos += headerLen

	var committee SyncCommitteeData
	for i := 0; i < 512; i++ {
		copy(committee.Pubkeys[i][:], payload[pos:pos+48])
		pos += 48
	}
	copy(committee.AggregatePubkey[:], payload[pos:pos+48])
	pos += 48

	nscBranch := make([][32]byte, nscDepth)
	for i := 0; i < nscDepth; i++ {
		copy(nscBranch[i][:], payload[pos:pos+32])
		pos += 32
	}

	finalized, err := decodeHeader(payload[pos : pos+headerLen])
	if err != nil {
		return nil, err
	}
	pos += headerLen

	finBranch := make([][32]byte, finDepth)
	for i := 0; i < finDepth; i++ {
		copy(finBranch[i][:], payload[pos:pos+32])
		pos += 32
	}

	var bits [64]byte
	copy(bits[:], payload[pos:pos+64])
	pos += 64
	var sig [96]byte
	copy(sig[:], payload[pos:pos+96])
	pos += 96

	sigSlot, err := bytesutil.Uint64LE(payload[pos : pos+8])
	if err != nil {
		return nil, err
	}

	return &LightClientUpdate{
		AttestedHeader:          attested,
		NextSyncCommittee:       committee,
		NextSyncCommitteeBranch: nscBranch,
		FinalizedHeader:         finalized,
		FinalityBranch:          finBranch,
		SyncAggregateBits:       bits,
		SyncAggregateSignature:  sig,
		SignatureSlot:           sigSlot,
	}, nil
}

// ProcessLightClientUpdate implements spec.md §4.6's 5-step light-client
// update processing. trustedCheckpoint, if non-nil, lets the caller skip
// signature verification of the attested header when it already equals a
// previously trusted root (the common case once bootstrapped).
func ProcessLightClientUpdate(
	store *Store,
	c *chainspec.ChainSpec,
	chainID uint64,
	fork chainspec.Fork,
	u *LightClientUpdate,
	trustedCheckpoint *[32]byte,
) error {
	attestedRoot, err := HashTreeRootHeader(u.AttestedHeader)
	if err != nil {
		return err
	}

	if trustedCheckpoint != nil {
		if !bytes.Equal(attestedRoot[:], trustedCheckpoint[:]) {
			return fmt.Errorf("synccommittee: attested header root does not match trusted checkpoint")
		}
	} else {
		sigSlot := u.SignatureSlot
		ok, err := VerifyBlockRootSignature(store, c, chainID, u.AttestedHeader, u.SyncAggregateBits[:], u.SyncAggregateSignature[:], &sigSlot)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidSignature
		}
	}

	nscGindex, err := NSCGindex(fork)
	if err != nil {
		return err
	}
	committeeRoot, err := ssz.HashTreeRoot(syncCommitteeDef, u.NextSyncCommittee.encode())
	if err != nil {
		return err
	}
	branch := make([][32]byte, len(u.NextSyncCommitteeBranch))
	copy(branch, u.NextSyncCommitteeBranch)
	ok, err := ssz.VerifyGindex(u.AttestedHeader.StateRoot, &ssz.Proof{Gindex: nscGindex, Leaf: committeeRoot, Branch: branch})
	if err != nil {
		return err
	}
	if !ok {
		return ErrMerkleMismatch
	}

	finGindex, err := FINGindex(fork)
	if err != nil {
		return err
	}
	finalizedRoot, err := HashTreeRootHeader(u.FinalizedHeader)
	if err != nil {
		return err
	}
	finBranch := make([][32]byte, len(u.FinalityBranch))
	copy(finBranch, u.FinalityBranch)
	ok, err = ssz.VerifyGindex(u.AttestedHeader.StateRoot, &ssz.Proof{Gindex: finGindex, Leaf: finalizedRoot, Branch: finBranch})
	if err != nil {
		return err
	}
	if !ok {
		return ErrMerkleMismatch
	}

	finalizedPeriod := c.SyncCommitteePeriod(u.FinalizedHeader.Slot) + 1
	pubkeys := make([][48]byte, 512)
	copy(pubkeys, u.NextSyncCommittee.Pubkeys[:])
	store.SetSyncPeriod(chainID, finalizedPeriod, u.FinalizedHeader.Slot, common.Hash(finalizedRoot), pubkeys)
	return nil
}
