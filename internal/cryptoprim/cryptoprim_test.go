package cryptoprim

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestKeccak256MatchesWellKnownVector(t *testing.T) {
	// web3_sha3(["0x68656c6c6f"]) == keccak256("hello")
	got := Keccak256([]byte("hello"))
	require.Len(t, got, 32)
	require.Equal(t, "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8", hex.EncodeToString(got))
}

func TestSHA256Deterministic(t *testing.T) {
	a := SHA256([]byte("abc"))
	b := SHA256([]byte("abc"))
	require.Equal(t, a, b)
}

func TestRecoverSenderRoundTrip(t *testing.T) {
	priv, err := crypto.GenerateKey()
	require.NoError(t, err)

	hash := SHA256([]byte("some tx signing hash"))
	sig, err := crypto.Sign(hash[:], priv)
	require.NoError(t, err)

	addr, err := RecoverSender(hash, sig)
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(priv.PublicKey), addr)
}

func TestNormalizeRecoveryID(t *testing.T) {
	v, err := NormalizeRecoveryID(27, 0)
	require.NoError(t, err)
	require.Equal(t, byte(0), v)

	v, err = NormalizeRecoveryID(1, 0)
	require.NoError(t, err)
	require.Equal(t, byte(1), v)

	// EIP-155: chainID=1, recId=0 -> v = 1*2+35+0 = 37
	v, err = NormalizeRecoveryID(37, 1)
	require.NoError(t, err)
	require.Equal(t, byte(0), v)
}
