package receipt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
)

func encodeLog(addr [20]byte, topics [][32]byte, data []byte) []byte {
	topicItems := make([][]byte, len(topics))
	for i, t := range topics {
		topicItems[i] = rlp.EncodeItem(t[:])
	}
	return rlp.EncodeList(
		rlp.EncodeItem(addr[:]),
		rlp.EncodeList(topicItems...),
		rlp.EncodeItem(data),
	)
}

func encodeReceipt(status, gas uint64, bloom [256]byte, logs [][]byte) []byte {
	return rlp.EncodeList(
		rlp.EncodeUint(status),
		rlp.EncodeUint(gas),
		rlp.EncodeItem(bloom[:]),
		rlp.EncodeList(logs...),
	)
}

func TestDecodeReceiptRoundTrip(t *testing.T) {
	var addr [20]byte
	addr[0] = 0xaa
	topic := [32]byte{1}
	logEnc := encodeLog(addr, [][32]byte{topic}, []byte{0xde, 0xad})

	var bloom [256]byte
	bloom[0] = 0x01
	enc := encodeReceipt(1, 21000, bloom, [][]byte{logEnc})

	rec, err := decodeReceipt(enc)
	require.NoError(t, err)
	require.Equal(t, uint64(1), rec.Status)
	require.Equal(t, uint64(21000), rec.CumulativeGasUsed)
	require.Equal(t, bloom, rec.LogsBloom)
	require.Len(t, rec.Logs, 1)
	require.Equal(t, addr, rec.Logs[0].Address)
	require.Equal(t, []byte{0xde, 0xad}, rec.Logs[0].Data)
	require.Equal(t, [][32]byte{topic}, rec.Logs[0].Topics)
}

func TestDecodeReceiptRejectsWrongFieldCount(t *testing.T) {
	enc := rlp.EncodeList(rlp.EncodeUint(1), rlp.EncodeUint(2))
	_, err := decodeReceipt(enc)
	require.Error(t, err)
}

func TestVerifyLogHappyPath(t *testing.T) {
	var addr [20]byte
	addr[0] = 0xbb
	topic := [32]byte{2}
	rec := &Receipt{Logs: []Log{{Address: addr, Topics: [][32]byte{topic}, Data: []byte{0x01}}}}

	blockHash := [32]byte{3}
	txHash := [32]byte{4}
	entry := &LogEntry{
		ReceiptTxIndex:    5,
		LogIndexInReceipt: 0,
		BlockHash:         blockHash,
		BlockNumber:       100,
		TransactionHash:   txHash,
		TransactionIndex:  5,
		Log:               rec.Logs[0],
	}

	require.NoError(t, VerifyLog(rec, entry, blockHash, 100, txHash))
}

func TestVerifyLogRejectsIndexMismatch(t *testing.T) {
	rec := &Receipt{Logs: []Log{{}}}
	entry := &LogEntry{ReceiptTxIndex: 5, TransactionIndex: 6, LogIndexInReceipt: 0}
	err := VerifyLog(rec, entry, [32]byte{}, 0, [32]byte{})
	require.Error(t, err)
}

func TestVerifyLogRejectsOutOfRangeLogIndex(t *testing.T) {
	rec := &Receipt{Logs: []Log{{}}}
	entry := &LogEntry{ReceiptTxIndex: 1, TransactionIndex: 1, LogIndexInReceipt: 5}
	err := VerifyLog(rec, entry, [32]byte{}, 0, [32]byte{})
	require.Error(t, err)
}

func TestVerifyLogRejectsMismatchedRecord(t *testing.T) {
	var addr [20]byte
	addr[0] = 0xcc
	rec := &Receipt{Logs: []Log{{Address: addr, Data: []byte{0x01}}}}
	entry := &LogEntry{
		ReceiptTxIndex:    0,
		TransactionIndex:  0,
		LogIndexInReceipt: 0,
		Log:               Log{Address: addr, Data: []byte{0x02}},
	}
	err := VerifyLog(rec, entry, [32]byte{}, 0, [32]byte{})
	require.Error(t, err)
}
