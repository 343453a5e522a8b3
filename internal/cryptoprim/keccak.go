// Package cryptoprim collects the hash and signature primitives proof
// verification depends on: Keccak-256 (execution-layer tries and
// addresses), SHA-256 (SSZ merkleization and BLS message hashing),
// and secp256k1 ECDSA sender recovery. BLS12-381 aggregate verification
// for sync-committee signatures lives in the blsverify subpackage.
package cryptoprim

import "github.com/ethereum/go-ethereum/crypto"

// Keccak256 hashes data the way every Ethereum trie, address, and log
// topic hash does, per the teacher's own keccak wrapper
// (crypto/keccak/keccak.go) around go-ethereum/crypto.
func Keccak256(data ...[]byte) []byte {
	return crypto.Keccak256(data...)
}
