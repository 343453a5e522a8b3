// Package execpayload models the fork-parameterized execution-payload
// container spec.md §3 describes: its SSZ shape, hash-tree-root, and the
// generalized indices that bind one of its fields (or its own root) up to
// a beacon block's body_root. Every execution-layer proof verifier
// (account, transaction, receipt, block, call) anchors through this
// package rather than re-deriving the container shape itself.
//
// The container layout and field order follow the consensus-specs
// ExecutionPayload (Bellatrix/Capella/Deneb/Electra); EXECUTION_PAYLOAD_GINDEX
// (25) is the published constant for execution_payload's position in
// BeaconBlockBody, stable across these forks because the field's index
// within the body never moves even as later forks append new body fields.
package execpayload

import (
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/ssz"
)

// Real consensus-spec capacity constants. These bound the SSZ list types'
// Merkle-tree capacity (and therefore gindex depth); they do not affect
// actual encoded length, which tracks the real data only.
const (
	maxBytesPerTransaction  = 1073741824
	maxTransactionsPerBlock = 1048576
	maxWithdrawalsPerBlock  = 16
	maxExtraDataBytes       = 32
	withdrawalEncodedLen    = 44 // index(8) + validatorIndex(8) + address(20) + amount(8)
)

// Field indices, in declaration order, per spec.md §3's execution-payload
// field list. Capella adds Withdrawals after Transactions;
// Deneb/Electra further add BlobGasUsed/ExcessBlobGas.
const (
	fieldParentHash = iota
	fieldFeeRecipient
	fieldStateRoot
	fieldReceiptsRoot
	fieldLogsBloom
	fieldPrevRandao
	fieldBlockNumber
	fieldGasLimit
	fieldGasUsed
	fieldTimestamp
	fieldExtraData
	fieldBaseFeePerGas
	fieldBlockHash
	fieldTransactions
	fieldWithdrawals   // Capella+
	fieldBlobGasUsed   // Deneb+
	fieldExcessBlobGas // Deneb+
)

// ExecutionPayloadGindex is EXECUTION_PAYLOAD_GINDEX: execution_payload's
// generalized index within BeaconBlockBody. Stable across every fork this
// package supports.
const ExecutionPayloadGindex ssz.Gindex = 25

// Payload is the decoded execution-payload value every verifier reasons
// about. Withdrawals are carried as opaque pre-encoded SSZ container bytes
// since no verifier in this module inspects their fields.
type Payload struct {
	ParentHash    [32]byte
	FeeRecipient  [20]byte
	StateRoot     [32]byte
	ReceiptsRoot  [32]byte
	LogsBloom     [256]byte
	PrevRandao    [32]byte
	BlockNumber   uint64
	GasLimit      uint64
	GasUsed       uint64
	Timestamp     uint64
	ExtraData     []byte
	BaseFeePerGas [32]byte // little-endian uint256
	BlockHash     [32]byte
	Transactions  [][]byte // raw typed-transaction bytes, one per tx
	Withdrawals   [][]byte // Capella+, opaque encoded Withdrawal containers
	BlobGasUsed   uint64   // Deneb+
	ExcessBlobGas uint64   // Deneb+
}

func withdrawalsSupported(fork chainspec.Fork) bool {
	switch fork {
	case chainspec.ForkCapella, chainspec.ForkDeneb, chainspec.ForkElectra:
		return true
	default:
		return false
	}
}

func blobFieldsSupported(fork chainspec.Fork) bool {
	switch fork {
	case chainspec.ForkDeneb, chainspec.ForkElectra:
		return true
	default:
		return false
	}
}

// Def returns the SSZ container definition for fork, with Withdrawals and
// the two blob-gas fields present only from the fork that introduced them
// onward.
func Def(fork chainspec.Fork) *ssz.Def {
	fields := []ssz.Field{
		{Name: "parentHash", Def: ssz.Uint(32)},
		{Name: "feeRecipient", Def: ssz.Uint(20)},
		{Name: "stateRoot", Def: ssz.Uint(32)},
		{Name: "receiptsRoot", Def: ssz.Uint(32)},
		{Name: "logsBloom", Def: ssz.Vector(ssz.Uint(1), 256)},
		{Name: "prevRandao", Def: ssz.Uint(32)},
		{Name: "blockNumber", Def: ssz.Uint(8)},
		{Name: "gasLimit", Def: ssz.Uint(8)},
		{Name: "gasUsed", Def: ssz.Uint(8)},
		{Name: "timestamp", Def: ssz.Uint(8)},
		{Name: "extraData", Def: ssz.List(ssz.Uint(1), maxExtraDataBytes)},
		{Name: "baseFeePerGas", Def: ssz.Uint(32)},
		{Name: "blockHash", Def: ssz.Uint(32)},
		{Name: "transactions", Def: ssz.List(ssz.List(ssz.Uint(1), maxBytesPerTransaction), maxTransactionsPerBlock)},
	}
	if withdrawalsSupported(fork) {
		fields = append(fields, ssz.Field{Name: "withdrawals", Def: ssz.List(ssz.Uint(withdrawalEncodedLen), maxWithdrawalsPerBlock)})
	}
	if blobFieldsSupported(fork) {
		fields = append(fields,
			ssz.Field{Name: "blobGasUsed", Def: ssz.Uint(8)},
			ssz.Field{Name: "excessBlobGas", Def: ssz.Uint(8)},
		)
	}
	return ssz.Container(fields...)
}

// FieldGindex returns the generalized index of field within the execution
// payload container for fork. Field indices below fieldTransactions are
// stable across every supported fork.
func FieldGindex(fork chainspec.Fork, field int) (ssz.Gindex, error) {
	return ssz.GindexOf(Def(fork), ssz.FieldPath(field))
}

// BodyGindex composes a within-payload gindex (as returned by FieldGindex
// or a transactions-list element gindex) with ExecutionPayloadGindex to
// get the generalized index of that node relative to the beacon body
// root — the root every StateProof/BlockProof ultimately verifies against.
func BodyGindex(withinPayload ssz.Gindex) ssz.Gindex {
	return ssz.AddGindex(ExecutionPayloadGindex, withinPayload)
}

// StateRootBodyGindex is the composed gindex of execution_payload.state_root
// relative to the beacon body root.
func StateRootBodyGindex(fork chainspec.Fork) (ssz.Gindex, error) {
	g, err := FieldGindex(fork, fieldStateRoot)
	if err != nil {
		return 0, err
	}
	return BodyGindex(g), nil
}

// ReceiptsRootBodyGindex is the composed gindex of
// execution_payload.receipts_root relative to the beacon body root.
func ReceiptsRootBodyGindex(fork chainspec.Fork) (ssz.Gindex, error) {
	g, err := FieldGindex(fork, fieldReceiptsRoot)
	if err != nil {
		return 0, err
	}
	return BodyGindex(g), nil
}

// BlockHashBodyGindex is the composed gindex of execution_payload.block_hash
// relative to the beacon body root.
func BlockHashBodyGindex(fork chainspec.Fork) (ssz.Gindex, error) {
	g, err := FieldGindex(fork, fieldBlockHash)
	if err != nil {
		return 0, err
	}
	return BodyGindex(g), nil
}

// BlockNumberBodyGindex is the composed gindex of
// execution_payload.block_number relative to the beacon body root.
func BlockNumberBodyGindex(fork chainspec.Fork) (ssz.Gindex, error) {
	g, err := FieldGindex(fork, fieldBlockNumber)
	if err != nil {
		return 0, err
	}
	return BodyGindex(g), nil
}

// BaseFeeBodyGindex is the composed gindex of
// execution_payload.base_fee_per_gas relative to the beacon body root.
func BaseFeeBodyGindex(fork chainspec.Fork) (ssz.Gindex, error) {
	g, err := FieldGindex(fork, fieldBaseFeePerGas)
	if err != nil {
		return 0, err
	}
	return BodyGindex(g), nil
}

// TransactionBodyGindex is TX_BASE + tx_index: the generalized index of
// transaction number idx's list-element root, relative to the beacon body
// root.
func TransactionBodyGindex(fork chainspec.Fork, idx int) (ssz.Gindex, error) {
	g, err := ssz.GindexOf(Def(fork), ssz.FieldPath(fieldTransactions), ssz.IndexPath(idx))
	if err != nil {
		return 0, err
	}
	return BodyGindex(g), nil
}

// Encode serializes p into its canonical SSZ container encoding for fork.
func Encode(fork chainspec.Fork, p *Payload) ([]byte, error) {
	b := ssz.NewBuilder()
	put := func(v []byte) error { return b.PutFixed(v) }
	if err := put(p.ParentHash[:]); err != nil {
		return nil, err
	}
	if err := put(p.FeeRecipient[:]); err != nil {
		return nil, err
	}
	if err := put(p.StateRoot[:]); err != nil {
		return nil, err
	}
	if err := put(p.ReceiptsRoot[:]); err != nil {
		return nil, err
	}
	if err := put(p.LogsBloom[:]); err != nil {
		return nil, err
	}
	if err := put(p.PrevRandao[:]); err != nil {
		return nil, err
	}
	var u64 [8]byte
	putU64 := func(v uint64) error {
		for i := 0; i < 8; i++ {
			u64[i] = byte(v >> (8 * uint(i)))
		}
		return put(u64[:])
	}
	if err := putU64(p.BlockNumber); err != nil {
		return nil, err
	}
	if err := putU64(p.GasLimit); err != nil {
		return nil, err
	}
	if err := putU64(p.GasUsed); err != nil {
		return nil, err
	}
	if err := putU64(p.Timestamp); err != nil {
		return nil, err
	}
	if err := b.PutDynamic(p.ExtraData); err != nil {
		return nil, err
	}
	if err := put(p.BaseFeePerGas[:]); err != nil {
		return nil, err
	}
	if err := put(p.BlockHash[:]); err != nil {
		return nil, err
	}
	txElems := make([][]byte, len(p.Transactions))
	for i, tx := range p.Transactions {
		txElems[i] = tx
	}
	txList, err := ssz.PutList(false, txElems)
	if err != nil {
		return nil, err
	}
	if err := b.PutDynamic(txList); err != nil {
		return nil, err
	}
	if withdrawalsSupported(fork) {
		wList, err := ssz.PutList(true, p.Withdrawals)
		if err != nil {
			return nil, err
		}
		if err := b.PutDynamic(wList); err != nil {
			return nil, err
		}
	}
	if blobFieldsSupported(fork) {
		if err := putU64(p.BlobGasUsed); err != nil {
			return nil, err
		}
		if err := putU64(p.ExcessBlobGas); err != nil {
			return nil, err
		}
	}
	return b.Finalize()
}

// HashTreeRoot computes hash_tree_root(execution_payload) for fork.
func HashTreeRoot(fork chainspec.Fork, p *Payload) ([32]byte, error) {
	ob, err := Encode(fork, p)
	if err != nil {
		return [32]byte{}, err
	}
	return ssz.HashTreeRoot(Def(fork), ob)
}
