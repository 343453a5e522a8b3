package cryptoprim

import sha256 "github.com/minio/sha256-simd"

// SHA256 hashes data with the SIMD-accelerated implementation SSZ
// merkleization and BLS signing-root computation both rely on.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}
