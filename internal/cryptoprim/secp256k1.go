package cryptoprim

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidSignature = errors.New("cryptoprim: invalid secp256k1 signature")

// RecoverSender recovers the Ethereum address that produced sig over
// sigHash (the transaction's signing-hash, already Keccak-256'd), given a
// 65-byte [R || S || V] signature with V normalized to {0, 1}. This is the
// same go-ethereum/crypto.Ecrecover/SigToPub path the teacher's keypair
// helpers (crypto/secp256k1/secp256k1.go) build on for key management,
// applied here to signature verification instead.
func RecoverSender(sigHash [32]byte, sig []byte) (common.Address, error) {
	if len(sig) != 65 {
		return common.Address{}, fmt.Errorf("%w: want 65 bytes, got %d", ErrInvalidSignature, len(sig))
	}
	pub, err := crypto.SigToPub(sigHash[:], sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// NormalizeRecoveryID maps a transaction-typed recovery id (which may be
// encoded as 27/28 for legacy transactions, or as 2*chainID+35/36 under
// EIP-155) down to the raw {0,1} value Ecrecover/SigToPub expect.
func NormalizeRecoveryID(v uint64, chainID uint64) (byte, error) {
	switch {
	case v == 0 || v == 1:
		return byte(v), nil
	case v == 27 || v == 28:
		return byte(v - 27), nil
	case chainID != 0 && v >= 35:
		// EIP-155: v = chainID*2 + 35 + recId
		recID := v - 35 - chainID*2
		if recID != 0 && recID != 1 {
			return 0, fmt.Errorf("%w: unrecognised EIP-155 v %d for chain %d", ErrInvalidSignature, v, chainID)
		}
		return byte(recID), nil
	default:
		return 0, fmt.Errorf("%w: unrecognised recovery id %d", ErrInvalidSignature, v)
	}
}
