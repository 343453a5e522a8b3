// Package call implements spec.md §4.12: building a proof-backed EVM host
// overlay (internal/evmhost), resolving each account's code via
// internal/codecache, and verifying every account proof against the
// state_proof's state root before comparing an externally-executed EVM
// result to the asserted eth_call response. Executing the EVM itself is
// an external collaborator (spec.md §1 scopes the interpreter out); this
// package drives it through an injected Executor.
package call

import (
	"bytes"
	"math/big"

	"github.com/corpus-core/colibri-stateless-sub002/internal/beaconproof"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/codecache"
	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
	"github.com/corpus-core/colibri-stateless-sub002/internal/evmhost"
	"github.com/corpus-core/colibri-stateless-sub002/internal/execpayload"
	"github.com/corpus-core/colibri-stateless-sub002/internal/mpt"
	"github.com/corpus-core/colibri-stateless-sub002/internal/proofs/account"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
	"github.com/corpus-core/colibri-stateless-sub002/internal/verrors"
)

// AccountProof is one proof-supplied account: its MPT account proof, the
// storage keys proven under it, and (optionally) the account's code
// bytes embedded directly in the proof.
type AccountProof struct {
	Address      [20]byte
	AccountProof [][]byte
	Storage      []StorageProof
	Code         []byte // nil if not embedded; resolved via codecache instead
}

// StorageProof is one proven storage slot under an AccountProof's account.
type StorageProof struct {
	Key   [32]byte
	Proof [][]byte
}

// Message is the caller-supplied tx-like object eth_call accepts.
type Message struct {
	To       [20]byte
	From     [20]byte
	Data     []byte
	Value    []byte
	Gas      uint64
	GasPrice []byte
}

// Executor runs a fully-staged call against host and msg, returning the
// EVM's return data. The actual interpreter is supplied by the host
// program; this package only verifies its inputs and checks its output.
type Executor func(host *evmhost.Frame, msg Message) ([]byte, error)

// Request is everything §4.12 needs to verify one eth_call.
type Request struct {
	Accounts []AccountProof
	State    beaconproof.StateProof
	Message  Message
	Execute  Executor
}

// Result is the verified call's outcome.
type Result struct {
	ReturnData []byte
}

// PendingCode is returned by Verify when an account's code is neither
// EMPTY_HASH, cached, nor embedded in its AccountProof: the caller must
// perform an eth_getCode(Address, "latest") fetch, hash-check it against
// CodeHash, install it via codecache.ResolveFetched, and resubmit.
type PendingCode struct {
	Address  [20]byte
	CodeHash [32]byte
}

func (e *PendingCode) Error() string {
	return "call: code resolution pending for " + hexAddr(e.Address)
}

func hexAddr(addr [20]byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 2+len(addr)*2)
	out[0], out[1] = '0', 'x'
	for i, b := range addr {
		out[2+i*2] = hexdigits[b>>4]
		out[2+i*2+1] = hexdigits[b&0xf]
	}
	return string(out)
}

// Verify implements spec.md §4.12: resolve every account's code, build
// the read-only overlay root frame, verify each account (and its storage
// entries) against the state_proof's state root, run Execute if supplied,
// and compare its return bytes to wantResult when non-nil.
func Verify(store *synccommittee.Store, c *chainspec.ChainSpec, chainID uint64, cache *codecache.Cache, req *Request, stateRoot [32]byte, wantResult []byte) (*Result, error) {
	source := make(map[[20]byte]*evmhost.Account, len(req.Accounts))

	for _, ap := range req.Accounts {
		acct, existed, err := verifyAccountLeaf(ap.Address, ap.AccountProof, stateRoot)
		if err != nil {
			return nil, err
		}

		balance := new(big.Int).SetBytes(acct.Balance)
		hostAcct := &evmhost.Account{Balance: balance, CodeHash: acct.CodeHash, Storage: make(map[[32]byte][32]byte)}

		if existed {
			resolution, code, err := codecache.Resolve(cache, acct.CodeHash, ap.Code)
			if err != nil {
				return nil, err
			}
			if resolution == codecache.Pending {
				return nil, &PendingCode{Address: ap.Address, CodeHash: acct.CodeHash}
			}
			hostAcct.Code = code
		}

		for _, sp := range ap.Storage {
			val, err := verifyStorageLeaf(sp.Key, sp.Proof, acct.StorageHash)
			if err != nil {
				return nil, err
			}
			hostAcct.Storage[sp.Key] = val
		}

		source[ap.Address] = hostAcct
	}

	root := evmhost.NewRootFrame(source)

	g, err := execpayload.StateRootBodyGindex(req.State.Fork)
	if err != nil {
		return nil, err
	}
	sp := req.State
	sp.Gindex = g
	if err := beaconproof.Verify(store, c, chainID, &sp, stateRoot); err != nil {
		return nil, err
	}

	var ret []byte
	if req.Execute != nil {
		ret, err = req.Execute(root, req.Message)
		if err != nil {
			return nil, verrors.Errorf(verrors.ErrCryptoFailure, "call execution failed: %v", err)
		}
	}
	if wantResult != nil && !bytes.Equal(ret, wantResult) {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "eth_call result does not match executed return data")
	}

	return &Result{ReturnData: ret}, nil
}

// verifyAccountLeaf mirrors internal/proofs/account's own leaf walk (it
// cannot import that package's unexported helpers directly since this
// verifier needs the raw Account record, not a *Result); existed reports
// whether the account actually has a leaf (false for a valid absence
// proof, which code resolution must skip).
func verifyAccountLeaf(address [20]byte, accountProof [][]byte, stateRoot [32]byte) (account.Account, bool, error) {
	addrHash := cryptoprim.Keccak256(address[:])
	result, leaf, err := mpt.VerifyProof(stateRoot[:], addrHash, accountProof)
	if err != nil {
		return account.Account{}, false, verrors.Errorf(verrors.ErrMerkleMismatch, "invalid account proof: %v", err)
	}
	switch result {
	case mpt.NotExisting:
		return account.Account{StorageHash: account.EmptyRoot, CodeHash: account.EmptyCodeHash}, false, nil
	case mpt.Invalid:
		return account.Account{}, false, verrors.Errorf(verrors.ErrMerkleMismatch, "invalid account proof")
	}
	acct, err := account.DecodeAccountRLP(leaf)
	return acct, true, err
}

func verifyStorageLeaf(key [32]byte, proof [][]byte, storageHash [32]byte) ([32]byte, error) {
	keyHash := cryptoprim.Keccak256(key[:])
	result, leaf, err := mpt.VerifyProof(storageHash[:], keyHash, proof)
	if err != nil {
		return [32]byte{}, verrors.Errorf(verrors.ErrMerkleMismatch, "invalid storage proof: %v", err)
	}
	var out [32]byte
	if result == mpt.Found {
		decoded, err := account.DecodeStorageValueRLP(leaf)
		if err != nil {
			return [32]byte{}, err
		}
		copy(out[32-len(decoded):], decoded)
	}
	return out, nil
}
