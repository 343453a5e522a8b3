// Package synccommittee implements the trust engine described in spec.md
// §4.6: a per-chain store of sync-committee periods, the beacon chain's
// signing-domain/signing-root computation, and light-client update
// processing that advances the trusted period.
//
// The period store is modeled directly on the teacher's
// relays/beacon/cache.BeaconCache: a mutex-guarded struct with an ordered
// slot list and bounded pruning, just keyed by sync-committee period and
// storing a committee's pubkeys instead of a block-roots Merkle tree.
package synccommittee

import (
	"github.com/corpus-core/colibri-stateless-sub002/internal/ssz"
)

// BeaconBlockHeader is the 5-field beacon block header spec.md §3
// describes: slot, proposer_index, parent_root, state_root, body_root.
type BeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// ForkData is the two-field container hashed to derive a signing domain's
// fork-specific component.
type ForkData struct {
	CurrentVersion        [4]byte
	GenesisValidatorsRoot [32]byte
}

// SigningData wraps an object root with a signing domain to produce the
// final signing root a BLS signature is verified against.
type SigningData struct {
	ObjectRoot [32]byte
	Domain     [32]byte
}

// beaconBlockHeaderDef mirrors BeaconBlockHeader's field order; roots are
// modeled as 32-byte "uint" leaves since this package's ssz engine only
// cares about a basic value's byte length for packing/merkleization, not
// its numeric interpretation.
var beaconBlockHeaderDef = ssz.Container(
	ssz.Field{Name: "slot", Def: ssz.Uint(8)},
	ssz.Field{Name: "proposerIndex", Def: ssz.Uint(8)},
	ssz.Field{Name: "parentRoot", Def: ssz.Uint(32)},
	ssz.Field{Name: "stateRoot", Def: ssz.Uint(32)},
	ssz.Field{Name: "bodyRoot", Def: ssz.Uint(32)},
)

var forkDataDef = ssz.Container(
	ssz.Field{Name: "currentVersion", Def: ssz.Uint(4)},
	ssz.Field{Name: "genesisValidatorsRoot", Def: ssz.Uint(32)},
)

var signingDataDef = ssz.Container(
	ssz.Field{Name: "objectRoot", Def: ssz.Uint(32)},
	ssz.Field{Name: "domain", Def: ssz.Uint(32)},
)

// syncCommitteeDef is the 512-pubkey committee plus its aggregate pubkey,
// the shape next_sync_committee carries in a light-client update.
var syncCommitteeDef = ssz.Container(
	ssz.Field{Name: "pubkeys", Def: ssz.Vector(ssz.Uint(48), 512)},
	ssz.Field{Name: "aggregatePubkey", Def: ssz.Uint(48)},
)

// encodeBeaconBlockHeader is a plain byte concatenation: every field is
// fixed-size, so no offset bookkeeping is needed.
func encodeBeaconBlockHeader(h BeaconBlockHeader) []byte {
	out := make([]byte, 0, 112)
	var buf [8]byte
	putUint64LE(buf[:], h.Slot)
	out = append(out, buf[:]...)
	putUint64LE(buf[:], h.ProposerIndex)
	out = append(out, buf[:]...)
	out = append(out, h.ParentRoot[:]...)
	out = append(out, h.StateRoot[:]...)
	out = append(out, h.BodyRoot[:]...)
	return out
}

func encodeForkData(f ForkData) []byte {
	out := make([]byte, 0, 36)
	out = append(out, f.CurrentVersion[:]...)
	out = append(out, f.GenesisValidatorsRoot[:]...)
	return out
}

func encodeSigningData(s SigningData) []byte {
	out := make([]byte, 0, 64)
	out = append(out, s.ObjectRoot[:]...)
	out = append(out, s.Domain[:]...)
	return out
}

func putUint64LE(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * uint(i)))
	}
}

// HashTreeRootHeader computes hash_tree_root(header).
func HashTreeRootHeader(h BeaconBlockHeader) ([32]byte, error) {
	return ssz.HashTreeRoot(beaconBlockHeaderDef, encodeBeaconBlockHeader(h))
}
