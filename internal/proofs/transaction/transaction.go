// Package transaction implements spec.md §4.9: typing a raw transaction,
// recovering its sender, and binding it (alongside the block_number,
// block_hash, and base_fee_per_gas of the block it was included in) to a
// trusted beacon body root via a single shared multi-leaf Merkle proof.
package transaction

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/corpus-core/colibri-stateless-sub002/internal/beaconproof"
	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
	"github.com/corpus-core/colibri-stateless-sub002/internal/execpayload"
	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
	"github.com/corpus-core/colibri-stateless-sub002/internal/ssz"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
	"github.com/corpus-core/colibri-stateless-sub002/internal/verrors"
)

// Type identifies a transaction envelope by its first byte, per spec.md
// §4.9's typing table.
type Type int

const (
	TypeLegacy Type = iota
	TypeAccessList
	TypeDynamicFee
	TypeBlob
	TypeSetCode
)

var ErrInvalidType = errors.New("transaction: unrecognised leading type byte")

// maxBlobVersionedHashes is the largest blobVersionedHashes[] count an
// EIP-4844 transaction may carry, per spec.md §8's boundary example (0
// accepted, 17 rejected).
const maxBlobVersionedHashes = 16

// TypeOf classifies raw's leading byte.
func TypeOf(raw []byte) (Type, error) {
	if len(raw) == 0 {
		return 0, ErrInvalidType
	}
	switch {
	case raw[0] >= 0x7f:
		return TypeLegacy, nil
	case raw[0] == 0x01:
		return TypeAccessList, nil
	case raw[0] == 0x02:
		return TypeDynamicFee, nil
	case raw[0] == 0x03:
		return TypeBlob, nil
	case raw[0] == 0x04:
		return TypeSetCode, nil
	default:
		return 0, ErrInvalidType
	}
}

// Request is everything §4.9 needs: the raw tx bytes, its index and the
// block facts the shared multi-proof binds it alongside, and the beacon
// anchoring (header, multi-proof witness, committee signature).
type Request struct {
	Fork          chainspec.Fork
	Header        synccommittee.BeaconBlockHeader
	Witness       [][32]byte
	Bits          []byte
	Signature     []byte
	SignatureSlot *uint64

	Raw           []byte
	Index         int
	BlockNumber   uint64
	BlockHash     [32]byte
	BaseFeePerGas [32]byte // little-endian uint256, as execution_payload stores it
	ChainID       uint64
}

// Result is the decoded, beacon-anchored transaction.
type Result struct {
	Type          Type
	Sender        common.Address
	BlockNumber   uint64
	BlockHash     [32]byte
	BaseFeePerGas [32]byte
	TxHash        [32]byte
}

// Verify implements spec.md §4.9: type the transaction, recover its
// sender, and verify the shared multi-leaf proof binding block_number,
// block_hash, base_fee_per_gas, and the transaction itself (at TX_BASE +
// tx_index) to the trusted beacon header.
func Verify(store *synccommittee.Store, c *chainspec.ChainSpec, req *Request) (*Result, error) {
	typ, err := TypeOf(req.Raw)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "transaction: %v", err)
	}
	if typ == TypeBlob {
		count, err := blobVersionedHashCount(req.Raw)
		if err != nil {
			return nil, verrors.Errorf(verrors.ErrProofInconsistent, "transaction: %v", err)
		}
		if count > maxBlobVersionedHashes {
			return nil, verrors.Errorf(verrors.ErrProofInconsistent, "transaction: %d blob versioned hashes exceeds max %d", count, maxBlobVersionedHashes)
		}
	}

	sender, err := RecoverSender(req.Raw, typ, req.ChainID)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrCryptoFailure, "transaction sender recovery: %v", err)
	}

	leaves, indices, err := boundLeaves(req.Fork, req)
	if err != nil {
		return nil, err
	}

	ok, err := ssz.VerifyMultiProof(req.Header.BodyRoot, leaves, req.Witness, indices)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrMerkleMismatch, "transaction proof: %v", err)
	}
	if !ok {
		return nil, verrors.Errorf(verrors.ErrMerkleMismatch, "transaction proof does not bind to beacon body root")
	}

	sigOK, err := synccommittee.VerifyBlockRootSignature(store, c, req.ChainID, req.Header, req.Bits, req.Signature, req.SignatureSlot)
	if err != nil {
		if errors.Is(err, synccommittee.ErrPeriodUnknown) {
			return nil, verrors.Errorf(verrors.ErrPending, "sync committee signature: %v", err)
		}
		return nil, verrors.Errorf(verrors.ErrCryptoFailure, "sync committee signature: %v", err)
	}
	if !sigOK {
		return nil, verrors.Errorf(verrors.ErrCryptoFailure, "invalid sync committee signature")
	}

	return &Result{
		Type:          typ,
		Sender:        sender,
		BlockNumber:   req.BlockNumber,
		BlockHash:     req.BlockHash,
		BaseFeePerGas: req.BaseFeePerGas,
		TxHash:        [32]byte(cryptoprim.Keccak256(req.Raw)),
	}, nil
}

// CheckByHash implements the eth_getTransactionByHash argument check:
// keccak(raw_tx) must equal the asserted hash.
func CheckByHash(raw []byte, wantHash [32]byte) error {
	got := cryptoprim.Keccak256(raw)
	if !bytes.Equal(got, wantHash[:]) {
		return verrors.Errorf(verrors.ErrProofInconsistent, "transaction hash does not match keccak(raw_tx)")
	}
	return nil
}

// CheckByBlockAndIndex implements the …ByBlockHashAndIndex /
// …ByBlockNumberAndIndex argument checks: the claimed block identity and
// index must match what the proof actually bound.
func CheckByBlockAndIndex(res *Result, index int, wantIndex int, wantBlockHash *[32]byte, wantBlockNumber *uint64) error {
	if index != wantIndex {
		return verrors.Errorf(verrors.ErrProofInconsistent, "transaction index does not match request")
	}
	if wantBlockHash != nil && !bytes.Equal(res.BlockHash[:], wantBlockHash[:]) {
		return verrors.Errorf(verrors.ErrProofInconsistent, "block hash does not match request")
	}
	if wantBlockNumber != nil && res.BlockNumber != *wantBlockNumber {
		return verrors.Errorf(verrors.ErrProofInconsistent, "block number does not match request")
	}
	return nil
}

func boundLeaves(fork chainspec.Fork, req *Request) (map[ssz.Gindex][32]byte, []ssz.Gindex, error) {
	blockNumberG, err := execpayload.BlockNumberBodyGindex(fork)
	if err != nil {
		return nil, nil, verrors.Errorf(verrors.ErrInvalidInput, "transaction: %v", err)
	}
	blockHashG, err := execpayload.BlockHashBodyGindex(fork)
	if err != nil {
		return nil, nil, verrors.Errorf(verrors.ErrInvalidInput, "transaction: %v", err)
	}
	baseFeeG, err := execpayload.BaseFeeBodyGindex(fork)
	if err != nil {
		return nil, nil, verrors.Errorf(verrors.ErrInvalidInput, "transaction: %v", err)
	}
	txG, err := execpayload.TransactionBodyGindex(fork, req.Index)
	if err != nil {
		return nil, nil, verrors.Errorf(verrors.ErrInvalidInput, "transaction: %v", err)
	}

	txRoot, err := transactionLeaf(req.Raw)
	if err != nil {
		return nil, nil, err
	}

	var blockNumberLeaf [32]byte
	bytesutil.PutUint64LE(blockNumberLeaf[:8], req.BlockNumber)

	leaves := map[ssz.Gindex][32]byte{
		blockNumberG: blockNumberLeaf,
		blockHashG:   req.BlockHash,
		baseFeeG:     req.BaseFeePerGas,
		txG:          txRoot,
	}
	indices := []ssz.Gindex{blockNumberG, blockHashG, baseFeeG, txG}
	return leaves, indices, nil
}

// transactionLeaf is hash_tree_root(tx_bytes_as_ssz_list): raw treated as
// a List(Uint(1), maxBytesPerTransaction) element of the transactions
// list, exactly as execution_payload.transactions[i] is merkleized.
func transactionLeaf(raw []byte) ([32]byte, error) {
	def := ssz.List(ssz.Uint(1), 1073741824)
	return ssz.HashTreeRoot(def, raw)
}

// blobVersionedHashCount returns the element count of an EIP-4844
// transaction's blobVersionedHashes[] field, the RLP field immediately
// preceding the trailing y_parity/r/s signature triple.
func blobVersionedHashCount(raw []byte) (int, error) {
	if len(raw) == 0 {
		return 0, ErrInvalidType
	}
	payload, err := rlp.Unwrap(raw[1:])
	if err != nil {
		return 0, err
	}
	n, err := rlp.DecodeCount(payload)
	if err != nil {
		return 0, err
	}
	if n < 4 {
		return 0, errors.New("transaction: too few RLP fields for blob transaction")
	}
	hashesField, kind, err := rlp.Decode(payload, n-4)
	if err != nil {
		return 0, err
	}
	if kind != rlp.List {
		return 0, errors.New("transaction: blobVersionedHashes is not a list")
	}
	return rlp.DecodeCount(hashesField)
}

// RecoverSender implements spec.md §4.9's sender recovery: strip the type
// byte (typed txs) or none (legacy), RLP-decode the signed field list,
// rebuild the unsigned pre-image, and secp256k1-recover the signer.
func RecoverSender(raw []byte, typ Type, chainID uint64) (common.Address, error) {
	body := raw
	if typ != TypeLegacy {
		if len(raw) == 0 {
			return common.Address{}, ErrInvalidType
		}
		body = raw[1:]
	}
	payload, err := rlp.Unwrap(body)
	if err != nil {
		return common.Address{}, err
	}

	n, err := rlp.DecodeCount(payload)
	if err != nil {
		return common.Address{}, err
	}
	// All typed envelopes and legacy transactions carry v/yParity, r, s as
	// their last three RLP fields, in that order.
	if n < 3 {
		return common.Address{}, errors.New("transaction: too few RLP fields")
	}
	vField, _, err := rlp.Decode(payload, n-3)
	if err != nil {
		return common.Address{}, err
	}
	rField, _, err := rlp.Decode(payload, n-2)
	if err != nil {
		return common.Address{}, err
	}
	sField, _, err := rlp.Decode(payload, n-1)
	if err != nil {
		return common.Address{}, err
	}
	v := beUint(vField)

	preimage, err := signingPreimage(typ, payload, n, v, chainID)
	if err != nil {
		return common.Address{}, err
	}
	sigHash := [32]byte(cryptoprim.Keccak256(preimage))

	recID, err := cryptoprim.NormalizeRecoveryID(v, chainID)
	if err != nil {
		return common.Address{}, err
	}
	sig := make([]byte, 65)
	copy(sig[32-len(rField):32], rField)
	copy(sig[64-len(sField):64], sField)
	sig[64] = recID

	return cryptoprim.RecoverSender(sigHash, sig)
}

// signingPreimage rebuilds the bytes that were originally Keccak-hashed
// and signed: for legacy transactions with EIP-155 protection (v > 28),
// the first six fields plus (chain_id, 0, 0); for typed transactions, the
// type byte followed by all fields but the trailing signature triple.
func signingPreimage(typ Type, payload []byte, n int, v uint64, chainID uint64) ([]byte, error) {
	// Every supported envelope carries exactly 3 trailing signature fields
	// (v/r/s or yParity/r/s); everything before that is signed over.
	limit := n - 3
	fields := make([][]byte, 0, limit)
	for i := 0; i < limit; i++ {
		raw, kind, err := rlp.Decode(payload, i)
		if err != nil {
			return nil, err
		}
		fields = append(fields, wrapField(raw, kind))
	}

	if typ == TypeLegacy {
		if v > 28 {
			fields = append(fields, rlp.EncodeUint(chainID), rlp.EncodeItem(nil), rlp.EncodeItem(nil))
		}
		return rlp.EncodeList(fields...), nil
	}

	list := rlp.EncodeList(fields...)
	return append([]byte{byte(typeByte(typ))}, list...), nil
}

func wrapField(raw []byte, kind rlp.Kind) []byte {
	if kind == rlp.List {
		return rlp.EncodeList(splitAlreadyEncoded(raw)...)
	}
	return rlp.EncodeItem(raw)
}

// splitAlreadyEncoded re-wraps a nested list field (e.g. access_list) by
// reading its already-unwrapped payload back out element by element, so
// wrapField can re-encode it as a proper RLP list rather than splicing
// raw payload bytes.
func splitAlreadyEncoded(payload []byte) [][]byte {
	n, err := rlp.DecodeCount(payload)
	if err != nil {
		return nil
	}
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		elem, kind, err := rlp.Decode(payload, i)
		if err != nil {
			return out
		}
		out = append(out, wrapField(elem, kind))
	}
	return out
}

func typeByte(typ Type) int {
	switch typ {
	case TypeAccessList:
		return 0x01
	case TypeDynamicFee:
		return 0x02
	case TypeBlob:
		return 0x03
	case TypeSetCode:
		return 0x04
	default:
		return 0x00
	}
}

func beUint(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}
