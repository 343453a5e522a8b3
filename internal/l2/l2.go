// Package l2 implements spec.md §4.14: verifying an OP-stack-style L2's
// output root against an L1 storage proof of its L2OutputOracle contract,
// reusing internal/proofs/account for the L1-side account+storage walk
// and cryptoprim for the output-root/slot hashing.
package l2

import (
	"encoding/binary"

	"github.com/corpus-core/colibri-stateless-sub002/internal/beaconproof"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
	"github.com/corpus-core/colibri-stateless-sub002/internal/proofs/account"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
)

// Output is the 4-field L2 output root preimage an OP-stack rollup
// commits to its L1 oracle contract.
type Output struct {
	Version                [32]byte
	StateRoot              [32]byte
	WithdrawalsStorageRoot [32]byte
	LatestBlockHash        [32]byte
}

// Root computes output_root := keccak(version || state_root ||
// withdrawals_storage_root || latest_block_hash).
func (o Output) Root() [32]byte {
	buf := make([]byte, 0, 128)
	buf = append(buf, o.Version[:]...)
	buf = append(buf, o.StateRoot[:]...)
	buf = append(buf, o.WithdrawalsStorageRoot[:]...)
	buf = append(buf, o.LatestBlockHash[:]...)
	return [32]byte(cryptoprim.Keccak256(buf))
}

// Slot computes the L2OutputOracle mapping slot an output at outputIndex
// lives under: keccak(output_index_be32 || mapping_slot_be32).
func Slot(outputIndex uint64, mappingSlot uint64) [32]byte {
	var key [64]byte
	binary.BigEndian.PutUint64(key[24:32], outputIndex)
	binary.BigEndian.PutUint64(key[56:64], mappingSlot)
	return [32]byte(cryptoprim.Keccak256(key[:]))
}

// Request is everything §4.14 needs: the claimed L2 output, its index and
// the oracle's mapping slot, the L1 account+storage proof of the
// L2OutputOracle contract, and the L1 state_proof binding its account
// proof's state root up to a trusted beacon header.
type Request struct {
	Output        Output
	OutputIndex   uint64
	MappingSlot   uint64
	OracleAddress [20]byte
	OracleProof   [][]byte
	StorageProof  [][]byte
	State         beaconproof.StateProof
}

// Result is the verified L2 output and the oracle slot it was found at.
type Result struct {
	Output Output
	Slot   [32]byte
}

// Verify implements spec.md §4.14: compute output_root and the oracle
// storage slot it must occupy, then verify that slot's value against the
// L1 state root via the account/storage proof verifier (which itself
// binds to a trusted beacon header through §4.8's existing machinery).
func Verify(store *synccommittee.Store, c *chainspec.ChainSpec, chainID uint64, req *Request, l1StateRoot [32]byte) (*Result, error) {
	outputRoot := req.Output.Root()
	slot := Slot(req.OutputIndex, req.MappingSlot)

	acctReq := &account.Request{
		Address:      req.OracleAddress,
		AccountProof: req.OracleProof,
		Storage: []account.StorageEntry{{
			Key:   slot,
			Proof: req.StorageProof,
			Value: outputRoot[:],
		}},
		State: req.State,
	}

	// account.Verify already rejects a mismatched storage value against
	// outputRoot (the asserted entry.Value), so a successful return here
	// means the oracle's slot holds exactly this output root.
	if _, err := account.Verify(store, c, chainID, acctReq, l1StateRoot); err != nil {
		return nil, err
	}
	return &Result{Output: req.Output, Slot: slot}, nil
}
