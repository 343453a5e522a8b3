// Package beaconproof binds an execution-layer datum to a trusted beacon
// header: it verifies the Merkle branch from an execution-payload field
// (or the payload's own root, for the block verifier) up to
// header.BodyRoot, then verifies the beacon header itself is the one the
// sync committee actually signed, via internal/synccommittee. Every
// execution-layer verifier in internal/proofs/* shares this one anchoring
// step, matching spec.md §4.8 step 4 / §4.11 step 2-3's common tail.
package beaconproof

import (
	"bytes"
	"errors"

	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/ssz"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
	"github.com/corpus-core/colibri-stateless-sub002/internal/verrors"
)

// StateProof is the "state_proof" spec.md §3 attaches to account,
// transaction, receipt, and logs proofs: a Merkle branch from one
// execution-payload field up to a beacon header, plus the sync-committee
// signature that authenticates that header.
type StateProof struct {
	Fork      chainspec.Fork
	Header    synccommittee.BeaconBlockHeader
	Gindex    ssz.Gindex
	Branch    [][32]byte
	Bits      []byte
	Signature []byte
	// SignatureSlot, when non-nil, is the slot the sync committee actually
	// signed (used to pick the signing period when it differs from
	// Header.Slot+1, e.g. a finality-boundary proof).
	SignatureSlot *uint64
}

// BlockProof is the "block_proof" spec.md §3 attaches to block and call
// proofs: a Merkle branch from the whole execution-payload root (rather
// than one field) up to a beacon header.
type BlockProof = StateProof

// Verify checks that leaf is bound to sp.Header.BodyRoot at sp.Gindex, and
// that sp.Header is the header the sync committee for its period actually
// signed. leaf is typically a 32-byte field value (e.g. execution
// payload's state_root) or, for a BlockProof, hash_tree_root(execution_payload)
// itself.
func Verify(store *synccommittee.Store, c *chainspec.ChainSpec, chainID uint64, sp *StateProof, leaf [32]byte) error {
	ok, err := ssz.VerifyGindex(sp.Header.BodyRoot, &ssz.Proof{Gindex: sp.Gindex, Leaf: leaf, Branch: sp.Branch})
	if err != nil {
		return verrors.Errorf(verrors.ErrMerkleMismatch, "state proof: %v", err)
	}
	if !ok {
		return verrors.Errorf(verrors.ErrMerkleMismatch, "state proof does not bind to beacon body root")
	}

	ok, err = synccommittee.VerifyBlockRootSignature(store, c, chainID, sp.Header, sp.Bits, sp.Signature, sp.SignatureSlot)
	if err != nil {
		if errors.Is(err, synccommittee.ErrPeriodUnknown) {
			return verrors.Errorf(verrors.ErrPending, "sync committee signature: %v", err)
		}
		return verrors.Errorf(verrors.ErrCryptoFailure, "sync committee signature: %v", err)
	}
	if !ok {
		return verrors.Errorf(verrors.ErrCryptoFailure, "invalid sync committee signature")
	}
	return nil
}

// VerifyAgainstTrustedRoot is the trusted-checkpoint bootstrap variant:
// instead of checking a sync-committee signature, it requires
// sp.Header's own hash_tree_root to equal trustedRoot exactly (spec.md §2's
// "Trusted checkpoint" — no signature needed for period zero).
func VerifyAgainstTrustedRoot(sp *StateProof, leaf [32]byte, trustedRoot [32]byte) error {
	headerRoot, err := synccommittee.HashTreeRootHeader(sp.Header)
	if err != nil {
		return verrors.Errorf(verrors.ErrCryptoFailure, "header hash: %v", err)
	}
	if !bytes.Equal(headerRoot[:], trustedRoot[:]) {
		return verrors.Errorf(verrors.ErrMerkleMismatch, "header does not match trusted checkpoint")
	}
	ok, err := ssz.VerifyGindex(sp.Header.BodyRoot, &ssz.Proof{Gindex: sp.Gindex, Leaf: leaf, Branch: sp.Branch})
	if err != nil {
		return verrors.Errorf(verrors.ErrMerkleMismatch, "state proof: %v", err)
	}
	if !ok {
		return verrors.Errorf(verrors.ErrMerkleMismatch, "state proof does not bind to beacon body root")
	}
	return nil
}
