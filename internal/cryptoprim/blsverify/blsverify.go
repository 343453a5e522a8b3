// Package blsverify implements BLS12-381 aggregate signature verification
// for sync-committee attestations: 512 compressed G1 public keys signing
// one G2 signature over a signing root, using the "min-pubkey-size"
// scheme (48-byte compressed pubkeys, 96-byte compressed signatures) the
// beacon chain uses.
//
// The teacher's own relayer verifies sync-committee BLS signatures
// on-chain in the Snowbridge Solidity light client, not in Go — blst is
// only pulled in transitively (via go-ethereum's KZG/blob machinery), so
// the aggregate-verify call pattern here is grounded on the wider pack's
// BLS vocabulary (prysmaticlabs-prysm's FastAggregateVerify-shaped calls
// over deserialized pubkeys) rather than on Go code the teacher itself
// runs.
package blsverify

import (
	"errors"
	"fmt"

	blst "github.com/supranational/blst/bindings/go"
)

// DST is the domain-separation tag the beacon chain's BLS signature
// scheme signs under (the "proof of possession" ciphersuite used for
// both individual and aggregate signature verification of
// sync-committee/attestation signing roots).
const DST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSZ_POP_"

var (
	ErrInvalidPubkey    = errors.New("blsverify: pubkey does not decompress to a valid G1 point")
	ErrInvalidSignature = errors.New("blsverify: signature does not decompress to a valid G2 point")
	ErrNoPubkeys        = errors.New("blsverify: no participating pubkeys")
)

// PublicKey wraps a decompressed G1 point. Nothing in this module caches
// them: synccommittee.ParticipantPubkeys decompresses the selected
// committee pubkeys again on every verification.
type PublicKey struct {
	p *blst.P1Affine
}

// DeserializePublicKey decompresses a 48-byte compressed G1 pubkey.
func DeserializePublicKey(compressed []byte) (*PublicKey, error) {
	p := new(blst.P1Affine).Uncompress(compressed)
	if p == nil {
		return nil, ErrInvalidPubkey
	}
	if !p.KeyValidate() {
		return nil, ErrInvalidPubkey
	}
	return &PublicKey{p: p}, nil
}

// AggregateVerify verifies that sig is the aggregate BLS signature
// produced by every key in participants signing msg (the sync-committee
// signing root), using the beacon chain's proof-of-possession
// ciphersuite. participants MUST be non-empty; callers are expected to
// have already filtered to the sync-committee members whose
// participation bit was set.
func AggregateVerify(participants []*PublicKey, msg []byte, sig []byte) (bool, error) {
	if len(participants) == 0 {
		return false, ErrNoPubkeys
	}
	sigPoint := new(blst.P2Affine).Uncompress(sig)
	if sigPoint == nil {
		return false, ErrInvalidSignature
	}

	pks := make([]*blst.P1Affine, len(participants))
	for i, p := range participants {
		pks[i] = p.p
	}

	ok := sigPoint.FastAggregateVerify(true, pks, msg, []byte(DST))
	return ok, nil
}

// HashedSigningRoot is a thin alias documenting that AggregateVerify's msg
// argument is always a 32-byte SSZ signing root, never raw unstructured
// data, per the beacon chain's Verify-is-over-signing-roots-only
// convention.
type HashedSigningRoot [32]byte

func mustLen32(b []byte) (HashedSigningRoot, error) {
	if len(b) != 32 {
		return HashedSigningRoot{}, fmt.Errorf("blsverify: signing root must be 32 bytes, got %d", len(b))
	}
	var out HashedSigningRoot
	copy(out[:], b)
	return out, nil
}

// VerifySigningRoot is AggregateVerify specialized to a 32-byte signing
// root, the shape every sync-committee/light-client-update verification
// call site in this module actually has on hand.
func VerifySigningRoot(participants []*PublicKey, signingRoot []byte, sig []byte) (bool, error) {
	root, err := mustLen32(signingRoot)
	if err != nil {
		return false, err
	}
	return AggregateVerify(participants, root[:], sig)
}
