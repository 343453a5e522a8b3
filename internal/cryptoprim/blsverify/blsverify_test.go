package blsverify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeserializePublicKeyRejectsGarbage(t *testing.T) {
	_, err := DeserializePublicKey(make([]byte, 48))
	require.ErrorIs(t, err, ErrInvalidPubkey)
}

func TestAggregateVerifyRejectsNoParticipants(t *testing.T) {
	_, err := AggregateVerify(nil, make([]byte, 32), make([]byte, 96))
	require.ErrorIs(t, err, ErrNoPubkeys)
}

func TestVerifySigningRootRejectsWrongLength(t *testing.T) {
	pk := &PublicKey{}
	_, err := VerifySigningRoot([]*PublicKey{pk}, make([]byte, 16), make([]byte, 96))
	require.Error(t, err)
}
