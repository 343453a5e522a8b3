package block

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/mpt"
)

func TestTransactionsRootEmpty(t *testing.T) {
	require.Equal(t, [32]byte(mpt.EmptyRootHash), TransactionsRoot(nil))
}

func TestTransactionsRootMatchesFreshTrie(t *testing.T) {
	txs := [][]byte{{0x01, 0x02}, {0x03}, {0x04, 0x05, 0x06}}
	got := TransactionsRoot(txs)

	tr := mpt.NewTrie()
	for i, tx := range txs {
		tr.Set(encodeIndex(i), tx)
	}
	var want [32]byte
	copy(want[:], tr.Hash())
	require.Equal(t, want, got)
}

func TestTransactionsRootOrderSensitive(t *testing.T) {
	a := TransactionsRoot([][]byte{{0x01}, {0x02}})
	b := TransactionsRoot([][]byte{{0x02}, {0x01}})
	require.NotEqual(t, a, b)
}

func encodeIndex(i int) []byte {
	if i == 0 {
		return []byte{0x80}
	}
	return []byte{byte(i)}
}
