// Package receipt implements spec.md §4.10: an MPT proof over
// receipts_root keyed by RLP(tx_index), field-by-field comparison of the
// decoded receipt against the asserted result, and the logs verifier that
// binds each log entry back through its covering receipt.
package receipt

import (
	"bytes"

	"github.com/corpus-core/colibri-stateless-sub002/internal/beaconproof"
	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/execpayload"
	"github.com/corpus-core/colibri-stateless-sub002/internal/mpt"
	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
	"github.com/corpus-core/colibri-stateless-sub002/internal/verrors"
)

// Log is one decoded log record: address, topics (32-byte each), and data.
type Log struct {
	Address [20]byte
	Topics  [][32]byte
	Data    []byte
}

// Receipt is the decoded 4-field (post-Byzantium) receipt: status,
// cumulative gas used, logs bloom, and the logs array.
type Receipt struct {
	Status            uint64
	CumulativeGasUsed uint64
	LogsBloom         [256]byte
	Logs              []Log
}

// Request is everything §4.10 needs to verify one receipt against a
// beacon-anchored receipts_root.
type Request struct {
	TxIndex       int
	Proof         [][]byte
	TypeByte      *byte // present for typed-transaction receipts
	State         beaconproof.StateProof
	ReceiptsRoot  [32]byte
}

// Verify walks Proof against the receipts_root bound by State, decodes
// the receipt found, and returns it. The caller compares the returned
// Receipt's fields against whatever the request asserted.
func Verify(store *synccommittee.Store, c *chainspec.ChainSpec, chainID uint64, req *Request) (*Receipt, error) {
	// The receipts (and transactions) trie is keyed by the RLP encoding of
	// the index itself — e.g. index 0's key is the single byte 0x80 — not
	// the index's raw big-endian bytes.
	key := rlp.EncodeUint(uint64(req.TxIndex))

	result, leaf, err := mpt.VerifyProof(req.ReceiptsRoot[:], key, req.Proof)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrMerkleMismatch, "invalid receipt proof: %v", err)
	}
	if result != mpt.Found {
		return nil, verrors.Errorf(verrors.ErrMissingProof, "no receipt at index %d", req.TxIndex)
	}

	if req.TypeByte != nil {
		if len(leaf) == 0 || leaf[0] != *req.TypeByte {
			return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt type byte does not match transaction type")
		}
		leaf = leaf[1:]
	}

	rec, err := decodeReceipt(leaf)
	if err != nil {
		return nil, err
	}

	g, err := execpayload.ReceiptsRootBodyGindex(req.State.Fork)
	if err != nil {
		return nil, err
	}
	sp := req.State
	sp.Gindex = g
	if err := beaconproof.Verify(store, c, chainID, &sp, req.ReceiptsRoot); err != nil {
		return nil, err
	}

	return rec, nil
}

func decodeReceipt(enc []byte) (*Receipt, error) {
	payload, err := rlp.Unwrap(enc)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt RLP: not a list")
	}
	n, err := rlp.DecodeCount(payload)
	if err != nil || n != 4 {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt RLP: expected 4 fields")
	}

	statusB, kind, err := rlp.Decode(payload, 0)
	if err != nil || kind != rlp.Item {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt RLP: bad status field")
	}
	gasB, kind, err := rlp.Decode(payload, 1)
	if err != nil || kind != rlp.Item {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt RLP: bad cumulative gas field")
	}
	bloomB, kind, err := rlp.Decode(payload, 2)
	if err != nil || kind != rlp.Item || len(bloomB) != 256 {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt RLP: bad logs bloom field")
	}
	logsPayload, kind, err := rlp.Decode(payload, 3)
	if err != nil || kind != rlp.List {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt RLP: bad logs field")
	}

	rec := &Receipt{
		Status:            beUint(statusB),
		CumulativeGasUsed: beUint(gasB),
	}
	copy(rec.LogsBloom[:], bloomB)

	logCount, err := rlp.DecodeCount(logsPayload)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt RLP: malformed logs list")
	}
	for i := 0; i < logCount; i++ {
		logEnc, kind, err := rlp.Decode(logsPayload, i)
		if err != nil || kind != rlp.List {
			return nil, verrors.Errorf(verrors.ErrProofInconsistent, "receipt RLP: malformed log entry")
		}
		log, err := decodeLog(logEnc)
		if err != nil {
			return nil, err
		}
		rec.Logs = append(rec.Logs, *log)
	}
	return rec, nil
}

func decodeLog(payload []byte) (*Log, error) {
	n, err := rlp.DecodeCount(payload)
	if err != nil || n != 3 {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "log RLP: expected 3 fields")
	}
	addrB, kind, err := rlp.Decode(payload, 0)
	if err != nil || kind != rlp.Item || len(addrB) != 20 {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "log RLP: bad address field")
	}
	topicsPayload, kind, err := rlp.Decode(payload, 1)
	if err != nil || kind != rlp.List {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "log RLP: bad topics field")
	}
	dataB, kind, err := rlp.Decode(payload, 2)
	if err != nil || kind != rlp.Item {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "log RLP: bad data field")
	}

	log := &Log{Data: dataB}
	copy(log.Address[:], addrB)

	topicCount, err := rlp.DecodeCount(topicsPayload)
	if err != nil {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "log RLP: malformed topics list")
	}
	for i := 0; i < topicCount; i++ {
		tB, kind, err := rlp.Decode(topicsPayload, i)
		if err != nil || kind != rlp.Item || len(tB) != 32 {
			return nil, verrors.Errorf(verrors.ErrProofInconsistent, "log RLP: bad topic entry")
		}
		var topic [32]byte
		copy(topic[:], tB)
		log.Topics = append(log.Topics, topic)
	}
	return log, nil
}

func beUint(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// LogEntry is one claimed log the caller asks to verify, with the index
// of the receipt that is claimed to cover it and the block facts it must
// match.
type LogEntry struct {
	ReceiptTxIndex   int
	LogIndexInReceipt int
	BlockHash        [32]byte
	BlockNumber      uint64
	TransactionHash  [32]byte
	TransactionIndex int
	Log              Log
}

// VerifyLog binds entry's covering transaction via the receipt already
// verified by Verify, then checks blockHash/blockNumber/transactionHash/
// transactionIndex and that the claimed log record equals the entry at
// LogIndexInReceipt within that receipt's logs array — so logIndex is
// bound by construction, a superset of the baseline logs verifier.
func VerifyLog(rec *Receipt, entry *LogEntry, wantBlockHash [32]byte, wantBlockNumber uint64, wantTxHash [32]byte) error {
	if !bytes.Equal(entry.BlockHash[:], wantBlockHash[:]) {
		return verrors.Errorf(verrors.ErrProofInconsistent, "log blockHash does not match")
	}
	if entry.BlockNumber != wantBlockNumber {
		return verrors.Errorf(verrors.ErrProofInconsistent, "log blockNumber does not match")
	}
	if !bytes.Equal(entry.TransactionHash[:], wantTxHash[:]) {
		return verrors.Errorf(verrors.ErrProofInconsistent, "log transactionHash does not match")
	}
	if entry.TransactionIndex != entry.ReceiptTxIndex {
		return verrors.Errorf(verrors.ErrProofInconsistent, "log transactionIndex does not match its receipt")
	}
	if entry.LogIndexInReceipt < 0 || entry.LogIndexInReceipt >= len(rec.Logs) {
		return verrors.Errorf(verrors.ErrProofInconsistent, "log index out of range for its receipt")
	}
	got := rec.Logs[entry.LogIndexInReceipt]
	want := entry.Log
	if got.Address != want.Address || !bytes.Equal(got.Data, want.Data) || len(got.Topics) != len(want.Topics) {
		return verrors.Errorf(verrors.ErrProofInconsistent, "log record does not match its receipt entry")
	}
	for i := range got.Topics {
		if got.Topics[i] != want.Topics[i] {
			return verrors.Errorf(verrors.ErrProofInconsistent, "log topic does not match its receipt entry")
		}
	}
	return nil
}
