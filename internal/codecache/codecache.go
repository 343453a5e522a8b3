// Package codecache implements spec.md §4.13's contract-code resolver: a
// small state machine that settles an account's code bytes from the
// cheapest available source — the empty-code short circuit, a
// content-addressed cache, the proof itself, or (as a last resort) an
// eth_getCode fetch the host must perform out of band.
package codecache

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
	"github.com/corpus-core/colibri-stateless-sub002/internal/verrors"
)

// EmptyHash is keccak256(""), the code_hash every externally-owned
// account carries.
var EmptyHash = mustHex()

func mustHex() [32]byte {
	h := cryptoprim.Keccak256(nil)
	var out [32]byte
	copy(out[:], h)
	return out
}

// Cache is the content-addressed "code_<codeHash>" store spec.md §4.13
// describes. It is safe for concurrent use, matching the trust store's
// own mutex-guarded access pattern (internal/synccommittee.Store).
type Cache struct {
	mu      sync.RWMutex
	entries map[[32]byte][]byte
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[[32]byte][]byte)}
}

// Get returns the cached code for hash, if present.
func (c *Cache) Get(hash [32]byte) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[hash]
	return v, ok
}

// Put installs code under its keccak hash.
func (c *Cache) Put(hash [32]byte, code []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[hash] = code
}

// Key is the cache's logical key string, "code_<codeHash>", kept for
// hosts that persist the cache externally (e.g. keyed storage) rather
// than through this in-memory Cache.
func Key(hash [32]byte) string {
	return fmt.Sprintf("code_%x", hash[:])
}

// Resolution is the outcome of Resolve.
type Resolution int

const (
	// Resolved means Code is settled and ready to use.
	Resolved Resolution = iota
	// Pending means the caller must perform an eth_getCode fetch and call
	// ResolveFetched with the response.
	Pending
)

// Resolve implements spec.md §4.13 steps 1-3: the EMPTY_HASH short
// circuit, then a cache lookup, then (if the proof already carries the
// code) a hash-checked install. proofCode is nil when the proof did not
// embed code for this account.
func Resolve(cache *Cache, codeHash [32]byte, proofCode []byte) (Resolution, []byte, error) {
	if codeHash == EmptyHash {
		return Resolved, nil, nil
	}
	if code, ok := cache.Get(codeHash); ok {
		return Resolved, code, nil
	}
	if proofCode != nil {
		if !bytes.Equal(cryptoprim.Keccak256(proofCode), codeHash[:]) {
			return Resolved, nil, verrors.Errorf(verrors.ErrProofInconsistent, "code does not hash to the asserted code_hash")
		}
		cache.Put(codeHash, proofCode)
		return Resolved, proofCode, nil
	}
	return Pending, nil, nil
}

// ResolveFetched implements spec.md §4.13 step 4: on resuming after an
// eth_getCode data_request, hash-check the response and install it.
func ResolveFetched(cache *Cache, codeHash [32]byte, fetched []byte) ([]byte, error) {
	if !bytes.Equal(cryptoprim.Keccak256(fetched), codeHash[:]) {
		return nil, verrors.Errorf(verrors.ErrProofInconsistent, "fetched code does not hash to the asserted code_hash")
	}
	cache.Put(codeHash, fetched)
	return fetched, nil
}
