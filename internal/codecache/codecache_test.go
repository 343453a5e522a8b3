package codecache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/cryptoprim"
)

func TestResolveEmptyHashShortCircuits(t *testing.T) {
	cache := NewCache()
	res, code, err := Resolve(cache, EmptyHash, nil)
	require.NoError(t, err)
	require.Equal(t, Resolved, res)
	require.Nil(t, code)
}

func TestResolveFromCache(t *testing.T) {
	cache := NewCache()
	code := []byte{0x60, 0x00}
	var hash [32]byte
	copy(hash[:], cryptoprim.Keccak256(code))
	cache.Put(hash, code)

	res, got, err := Resolve(cache, hash, nil)
	require.NoError(t, err)
	require.Equal(t, Resolved, res)
	require.Equal(t, code, got)
}

func TestResolveFromProofCodeInstallsIntoCache(t *testing.T) {
	cache := NewCache()
	code := []byte{0x60, 0x01}
	var hash [32]byte
	copy(hash[:], cryptoprim.Keccak256(code))

	res, got, err := Resolve(cache, hash, code)
	require.NoError(t, err)
	require.Equal(t, Resolved, res)
	require.Equal(t, code, got)

	cached, ok := cache.Get(hash)
	require.True(t, ok)
	require.Equal(t, code, cached)
}

func TestResolveRejectsMismatchedProofCode(t *testing.T) {
	cache := NewCache()
	var hash [32]byte
	hash[0] = 0xff
	_, _, err := Resolve(cache, hash, []byte{0x01})
	require.Error(t, err)
}

func TestResolveReturnsPendingWhenNothingAvailable(t *testing.T) {
	cache := NewCache()
	var hash [32]byte
	hash[0] = 0x42
	res, code, err := Resolve(cache, hash, nil)
	require.NoError(t, err)
	require.Equal(t, Pending, res)
	require.Nil(t, code)
}

func TestResolveFetchedInstallsAndRejectsMismatch(t *testing.T) {
	cache := NewCache()
	code := []byte{0xde, 0xad}
	var hash [32]byte
	copy(hash[:], cryptoprim.Keccak256(code))

	got, err := ResolveFetched(cache, hash, code)
	require.NoError(t, err)
	require.Equal(t, code, got)

	_, ok := cache.Get(hash)
	require.True(t, ok)

	var wrongHash [32]byte
	wrongHash[0] = 0x01
	_, err = ResolveFetched(cache, wrongHash, code)
	require.Error(t, err)
}

func TestKeyFormat(t *testing.T) {
	var hash [32]byte
	hash[0] = 0xab
	require.Equal(t, "code_ab00000000000000000000000000000000000000000000000000000000000000", Key(hash))
}
