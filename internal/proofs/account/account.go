// Package account implements spec.md §4.8: verifying an MPT account proof
// (and any storage proofs under it) against a beacon-anchored execution
// state root, the way internal/mpt's writer/verify pair is exercised for
// transaction and receipt tries elsewhere in this module.
package account

import (
	"bytes"

	"github.com/corpus-core/colibri-stateless-sub002/internal/beaconproof"
	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
	"github.com/corpus-core/colibri-stateless-sub002/internal/execpayload"
	"github.com/corpus-core/colibri-stateless-sub002/internal/mpt"
	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
	"github.com/corpus-core/colibri-stateless-sub002/internal/verrors"
)

// EmptyRoot is keccak256(rlp("")), the Ethereum empty-trie root an account
// with no storage carries as its storage_hash.
var EmptyRoot = mustHex("56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

// EmptyCodeHash is keccak256(""), the code_hash of an externally owned
// account (no contract code).
var EmptyCodeHash = mustHex("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")

func mustHex(s string) [32]byte {
	b, err := bytesutil.DecodeHex(s)
	if err != nil {
		panic(err)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

// Account is the 4-field RLP account record a Merkle-Patricia leaf stores.
type Account struct {
	Nonce       uint64
	Balance     []byte // big-endian, leading zeroes trimmed
	StorageHash [32]byte
	CodeHash    [32]byte
}

// StorageEntry is one proven storage slot: key, proof, and the decoded
// value (leading zeroes trimmed, as the trie itself stores it).
type StorageEntry struct {
	Key   [32]byte
	Proof [][]byte
	Value []byte
}

// Request is everything §4.8 needs to verify one account (and optionally
// its storage): the address, the account's MPT proof, any storage
// entries' MPT proofs, and the state_proof binding the execution state
// root up to a trusted beacon header.
type Request struct {
	Address      [20]byte
	AccountProof [][]byte
	Storage      []StorageEntry
	State        beaconproof.StateProof
}

// Result is the decoded, beacon-anchored account the caller asked about.
type Result struct {
	Account Account
	Storage map[[32]byte][]byte
}

// Verify implements spec.md §4.8 steps 1-4: decode and verify the account
// leaf against the execution state root, verify each storage entry under
// the account's storage_hash, reject storage claimed under an empty
// storage root, then bind the execution state root to the trusted beacon
// header.
func Verify(store *synccommittee.Store, c *chainspec.ChainSpec, chainID uint64, req *Request, stateRoot [32]byte) (*Result, error) {
	acct, err := verifyAccountLeaf(req.Address, req.AccountProof, stateRoot)
	if err != nil {
		return nil, err
	}

	if len(req.Storage) > 0 && bytes.Equal(acct.StorageHash[:], EmptyRoot[:]) {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent,
			"invalid storage proof because an empty storage hash can not have values")
	}

	values := make(map[[32]byte][]byte, len(req.Storage))
	for _, entry := range req.Storage {
		v, err := verifyStorageLeaf(entry, acct.StorageHash)
		if err != nil {
			return nil, err
		}
		values[entry.Key] = v
	}

	g, err := execpayload.StateRootBodyGindex(req.State.Fork)
	if err != nil {
		return nil, err
	}
	sp := req.State
	sp.Gindex = g
	if err := beaconproof.Verify(store, c, chainID, &sp, stateRoot); err != nil {
		return nil, err
	}

	return &Result{Account: acct, Storage: values}, nil
}

// verifyAccountLeaf walks accountProof against stateRoot, keyed by
// keccak256(address), and decodes the 4-field RLP account record found.
// An absent account (NotExisting) yields the all-zero/empty-hash account
// spec.md §4.8 step 1 describes.
func verifyAccountLeaf(address [20]byte, accountProof [][]byte, stateRoot [32]byte) (Account, error) {
	addrHash := cryptoprim.Keccak256(address[:])
	result, leaf, err := mpt.VerifyProof(stateRoot[:], addrHash, accountProof)
	if err != nil {
		return Account{}, verrors.Errorf(verrors.ErrMerkleMismatch, "invalid account proof: %v", err)
	}
	switch result {
	case mpt.NotExisting:
		return Account{StorageHash: EmptyRoot, CodeHash: EmptyCodeHash}, nil
	case mpt.Invalid:
		return Account{}, verrors.Errorf(verrors.ErrMerkleMismatch, "invalid account proof")
	}
	return DecodeAccountRLP(leaf)
}

// DecodeAccountRLP decodes a trie leaf's value field into the 4-field
// account record it carries. Exported so other proof-kind verifiers
// (internal/proofs/call) that also walk account leaves share this one
// decoder rather than re-deriving it.
func DecodeAccountRLP(enc []byte) (Account, error) {
	var a Account
	// enc is the leaf's value field: a byte string whose content is itself
	// the account's RLP list encoding, so its own list header must be
	// stripped before the 4 fields can be addressed positionally.
	payload, err := rlp.Unwrap(enc)
	if err != nil {
		return a, verrors.Errorf(verrors.ErrProofInconsistent, "account RLP: not a list")
	}
	enc = payload
	nonceB, kind, err := rlp.Decode(enc, 0)
	if err != nil || kind != rlp.Item {
		return a, verrors.Errorf(verrors.ErrProofInconsistent, "account RLP: bad nonce field")
	}
	a.Nonce = beUint(nonceB)

	balanceB, kind, err := rlp.Decode(enc, 1)
	if err != nil || kind != rlp.Item {
		return a, verrors.Errorf(verrors.ErrProofInconsistent, "account RLP: bad balance field")
	}
	a.Balance = bytesutil.TrimLeadingZeroes(balanceB)

	storageRootB, kind, err := rlp.Decode(enc, 2)
	if err != nil || kind != rlp.Item || len(storageRootB) != 32 {
		return a, verrors.Errorf(verrors.ErrProofInconsistent, "account RLP: bad storage root field")
	}
	copy(a.StorageHash[:], storageRootB)

	codeHashB, kind, err := rlp.Decode(enc, 3)
	if err != nil || kind != rlp.Item || len(codeHashB) != 32 {
		return a, verrors.Errorf(verrors.ErrProofInconsistent, "account RLP: bad code hash field")
	}
	copy(a.CodeHash[:], codeHashB)
	return a, nil
}

func beUint(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// verifyStorageLeaf walks entry's proof against storageHash keyed by
// keccak256(key), and compares the decoded (leading-zero-trimmed) value
// to the one the entry asserts.
func verifyStorageLeaf(entry StorageEntry, storageHash [32]byte) ([]byte, error) {
	keyHash := cryptoprim.Keccak256(entry.Key[:])
	result, leaf, err := mpt.VerifyProof(storageHash[:], keyHash, entry.Proof)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrMerkleMismatch, "invalid storage proof: %v", err)
	}
	var got []byte
	switch result {
	case mpt.NotExisting:
		got = nil
	case mpt.Invalid:
		return nil, verrors.Errorf(verrors.ErrMerkleMismatch, "invalid storage proof")
	case mpt.Found:
		decoded, err := DecodeStorageValueRLP(leaf)
		if err != nil {
			return nil, err
		}
		got = decoded
	}
	want := bytesutil.TrimLeadingZeroes(entry.Value)
	if !bytes.Equal(got, want) {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent,
			"storage value for key %x does not match asserted value", entry.Key)
	}
	return got, nil
}

// DecodeStorageValueRLP decodes a storage trie leaf's value (a plain RLP
// scalar item) into its leading-zero-trimmed bytes.
func DecodeStorageValueRLP(leaf []byte) ([]byte, error) {
	decoded, kind, err := rlp.Decode(leaf, 0)
	if err != nil || kind != rlp.Item {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "storage leaf: bad RLP value")
	}
	return bytesutil.TrimLeadingZeroes(decoded), nil
}
