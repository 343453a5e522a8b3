// Package block implements spec.md §4.11: verifying an execution payload's
// hash_tree_root against a trusted beacon body root, then assembling the
// JSON-RPC block result's derived fields — most notably the transactions
// trie root built fresh from the raw transaction bytes the payload carries.
package block

import (
	"github.com/corpus-core/colibri-stateless-sub002/internal/beaconproof"
	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/execpayload"
	"github.com/corpus-core/colibri-stateless-sub002/internal/mpt"
	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
	"github.com/corpus-core/colibri-stateless-sub002/internal/verrors"
)

// EmptyUnclesHash is keccak256(rlp([])), the constant sha3Uncles value
// every post-merge block reports (uncles no longer exist).
var EmptyUnclesHash = mustHex("1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347")

func mustHex(s string) [32]byte {
	b, err := bytesutil.DecodeHex(s)
	if err != nil {
		panic(err)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

// Request is everything §4.11 needs to verify one execution payload and
// derive its RPC-shaped block fields.
type Request struct {
	State execpayload.Payload
	Proof beaconproof.BlockProof
}

// Result is the verified block's RPC-visible derived fields. Payload
// itself (already verified) carries the rest.
type Result struct {
	Payload           execpayload.Payload
	TransactionsRoot  [32]byte
	Sha3Uncles        [32]byte
	MixHash           [32]byte
	Nonce             uint64
	Difficulty        uint64
}

// Verify implements spec.md §4.11 steps 1-4: hash the execution payload,
// verify its Merkle proof up to the beacon body root, verify the beacon
// header's committee signature, then build the transactions trie fresh
// from the payload's raw transaction bytes.
func Verify(store *synccommittee.Store, c *chainspec.ChainSpec, chainID uint64, req *Request) (*Result, error) {
	execRoot, err := execpayload.HashTreeRoot(req.Proof.Fork, &req.State)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrCryptoFailure, "execution payload hash: %v", err)
	}

	sp := req.Proof
	sp.Gindex = execpayload.ExecutionPayloadGindex
	if err := beaconproof.Verify(store, c, chainID, &sp, execRoot); err != nil {
		return nil, err
	}

	txRoot := TransactionsRoot(req.State.Transactions)

	return &Result{
		Payload:          req.State,
		TransactionsRoot: txRoot,
		Sha3Uncles:       EmptyUnclesHash,
		MixHash:          req.State.PrevRandao,
		Nonce:            0,
		Difficulty:       0,
	}, nil
}

// TransactionsRoot builds a fresh Merkle-Patricia trie over txs (each
// inserted under RLP(index) as key, per spec.md's transactions-trie
// construction) and returns its root.
func TransactionsRoot(txs [][]byte) [32]byte {
	tr := mpt.NewTrie()
	for i, tx := range txs {
		key := rlp.EncodeUint(uint64(i))
		tr.Set(key, tx)
	}
	var root [32]byte
	copy(root[:], tr.Hash())
	return root
}

// VerifyAgainstTrustedRoot is the trusted-checkpoint bootstrap variant of
// Verify, used when no sync-committee signature is needed because the
// header itself is the trusted checkpoint.
func VerifyAgainstTrustedRoot(req *Request, trustedRoot [32]byte) (*Result, error) {
	execRoot, err := execpayload.HashTreeRoot(req.Proof.Fork, &req.State)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrCryptoFailure, "execution payload hash: %v", err)
	}
	sp := req.Proof
	sp.Gindex = execpayload.ExecutionPayloadGindex
	if err := beaconproof.VerifyAgainstTrustedRoot(&sp, execRoot, trustedRoot); err != nil {
		return nil, err
	}
	return &Result{
		Payload:          req.State,
		TransactionsRoot: TransactionsRoot(req.State.Transactions),
		Sha3Uncles:       EmptyUnclesHash,
		MixHash:          req.State.PrevRandao,
	}, nil
}
