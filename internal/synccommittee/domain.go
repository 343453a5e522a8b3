package synccommittee

import (
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/ssz"
)

// DomainSyncCommittee is the 4-byte domain type spec.md §4.6 prepends to
// a fork-data root to produce a signing domain (0x07000000).
var DomainSyncCommittee = [4]byte{0x07, 0x00, 0x00, 0x00}

// ComputeDomain derives the 32-byte signing domain for chain c at slot s:
// the fork version active the epoch before s, hashed together with the
// chain's genesis validators root per ForkData, with DOMAIN_SYNC_COMMITTEE
// prepended.
func ComputeDomain(c *chainspec.ChainSpec, slot uint64) ([32]byte, error) {
	version, err := c.ForkVersionAt(EpochBeforeSlot(c, slot))
	if err != nil {
		return [32]byte{}, err
	}
	forkDataRoot, err := ssz.HashTreeRoot(forkDataDef, encodeForkData(ForkData{
		CurrentVersion:        version,
		GenesisValidatorsRoot: c.GenesisValidatorsRoot,
	}))
	if err != nil {
		return [32]byte{}, err
	}
	var domain [32]byte
	copy(domain[0:4], DomainSyncCommittee[:])
	copy(domain[4:32], forkDataRoot[0:28])
	return domain, nil
}

// ComputeSigningRoot is hash_tree_root(SigningData{root: hash_tree_root(header), domain}).
func ComputeSigningRoot(header BeaconBlockHeader, domain [32]byte) ([32]byte, error) {
	headerRoot, err := HashTreeRootHeader(header)
	if err != nil {
		return [32]byte{}, err
	}
	return ssz.HashTreeRoot(signingDataDef, encodeSigningData(SigningData{
		ObjectRoot: headerRoot,
		Domain:     domain,
	}))
}

// EpochBeforeSlot returns the epoch a slot's fork_version lookup uses:
// the epoch of slot-1, per spec.md §4.6's fork_version_for(epoch_of(s-1)).
// Slot 0 has no predecessor, so it falls back to epoch 0.
func EpochBeforeSlot(c *chainspec.ChainSpec, slot uint64) uint64 {
	if slot == 0 {
		return 0
	}
	return c.SlotToEpoch(slot - 1)
}
