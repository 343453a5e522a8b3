package synccommittee

import (
	"errors"

	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim/blsverify"
)

// ErrInvalidSignature is returned when the aggregate BLS signature does
// not verify against either the target period's committee or (on retry)
// the previous period's.
var ErrInvalidSignature = errors.New("synccommittee: invalid aggregate signature")

// committeeBitsLen is the fixed width of sync_aggregate.sync_committee_bits.
const committeeBitsLen = 512

// ParticipantPubkeys deserializes the compressed pubkeys selected by bits
// (a 512-bit vector, one bit per committee seat, LSB-first per byte) out
// of a period's committee.
func ParticipantPubkeys(entry PeriodEntry, bits []byte) ([]*blsverify.PublicKey, error) {
	if len(bits)*8 < committeeBitsLen {
		return nil, errors.New("synccommittee: sync_committee_bits too short")
	}
	var out []*blsverify.PublicKey
	for i, pk := range entry.Pubkeys {
		if i >= committeeBitsLen {
			break
		}
		byteIdx, bitIdx := i/8, uint(i%8)
		if bits[byteIdx]&(1<<bitIdx) == 0 {
			continue
		}
		dpk, err := blsverify.DeserializePublicKey(pk[:])
		if err != nil {
			return nil, err
		}
		out = append(out, dpk)
	}
	return out, nil
}

// VerifyBlockRootSignature implements spec.md §4.6's block-root signature
// verification: derive the signing period from slot (or header.slot+1 if
// slot is unset), obtain that period's committee, compute the signing
// root, and verify. On failure with period > 0 it retries once against
// the previous period's committee, since the old committee still signs
// blocks right up to the period boundary.
func VerifyBlockRootSignature(
	store *Store,
	c *chainspec.ChainSpec,
	chainID uint64,
	header BeaconBlockHeader,
	bits []byte,
	signature []byte,
	targetSlot *uint64,
) (bool, error) {
	slot := header.Slot + 1
	if targetSlot != nil {
		slot = *targetSlot
	}
	period := c.SyncCommitteePeriod(slot)

	ok, err := verifyAgainstPeriod(store, c, chainID, period, header, bits, signature)
	if err == nil && ok {
		return true, nil
	}
	if period == 0 {
		if err != nil {
			return false, err
		}
		return false, ErrInvalidSignature
	}

	ok, err2 := verifyAgainstPeriod(store, c, chainID, period-1, header, bits, signature)
	if err2 == nil && ok {
		return true, nil
	}
	if err2 != nil {
		return false, err2
	}
	return false, ErrInvalidSignature
}

func verifyAgainstPeriod(
	store *Store,
	c *chainspec.ChainSpec,
	chainID uint64,
	period uint64,
	header BeaconBlockHeader,
	bits []byte,
	signature []byte,
) (bool, error) {
	entry, err := store.GetValidators(chainID, period)
	if err != nil {
		return false, err
	}
	participants, err := ParticipantPubkeys(entry, bits)
	if err != nil {
		return false, err
	}
	domain, err := ComputeDomain(c, header.Slot)
	if err != nil {
		return false, err
	}
	signingRoot, err := ComputeSigningRoot(header, domain)
	if err != nil {
		return false, err
	}
	return blsverify.VerifySigningRoot(participants, signingRoot[:], signature)
}
