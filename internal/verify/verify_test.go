package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
)

func testRegistry() *chainspec.Registry {
	reg := chainspec.NewRegistry()
	reg.Put(&chainspec.ChainSpec{
		ChainID: 1,
		Name:    "mainnet",
		Settings: chainspec.Settings{
			SlotsPerEpoch:                32,
			EpochsPerSyncCommitteePeriod: 256,
			SecondsPerSlot:               12,
		},
		Forks: []chainspec.ForkEpoch{
			{Fork: chainspec.ForkDeneb, Epoch: 0, Version: [4]byte{0x04, 0x00, 0x00, 0x00}},
		},
	})
	return reg
}

func testMethods() *Methods {
	m := NewMethods()
	m.Set(1, DefaultMainnetMethods())
	return m
}

func TestVerifyRejectsUnconfiguredChain(t *testing.T) {
	d := NewDispatcher(testRegistry(), testMethods())
	res := d.Verify(&Context{ChainID: 99})
	require.Equal(t, Fail, res.Outcome)
	var ve *VerifyError
	require.ErrorAs(t, res.Err, &ve)
	require.Equal(t, ErrUnsupportedChain, ve.Kind)
}

func TestVerifyRejectsUndefinedMethod(t *testing.T) {
	d := NewDispatcher(testRegistry(), testMethods())
	res := d.Verify(&Context{ChainID: 1, Method: "eth_sendRawTransaction"})
	require.Equal(t, Fail, res.Outcome)
	var ve *VerifyError
	require.ErrorAs(t, res.Err, &ve)
	require.Equal(t, ErrUnsupportedMethod, ve.Kind)
}

func TestVerifyRejectsArgsFailingSchema(t *testing.T) {
	d := NewDispatcher(testRegistry(), testMethods())
	res := d.Verify(&Context{
		ChainID: 1,
		Method:  "eth_getBalance",
		Args:    []interface{}{"not-an-address", "latest"},
	})
	require.Equal(t, Fail, res.Outcome)
	require.Error(t, res.Err)
}

func TestVerifyTrustBootstrapWithNoProofSucceeds(t *testing.T) {
	d := NewDispatcher(testRegistry(), testMethods())
	res := d.Verify(&Context{ChainID: 1})
	require.Equal(t, Success, res.Outcome)
	require.Nil(t, res.Err)
}

func TestVerifyRejectsGarbageSyncData(t *testing.T) {
	d := NewDispatcher(testRegistry(), testMethods())
	res := d.Verify(&Context{ChainID: 1, SyncData: []byte{0x01, 0x02, 0x03}})
	require.Equal(t, Fail, res.Outcome)
	require.Error(t, res.Err)
}

func TestVerifyRejectsUnknownProofKind(t *testing.T) {
	d := NewDispatcher(testRegistry(), testMethods())
	res := d.Verify(&Context{ChainID: 1, Proof: &ProofBundle{Kind: ProofKind(99)}})
	require.Equal(t, Fail, res.Outcome)
	var ve *VerifyError
	require.ErrorAs(t, res.Err, &ve)
	require.Equal(t, ErrUnsupportedProofKind, ve.Kind)
}

func TestFinishProofSurfacesUnknownPeriodAsBeaconUpdate(t *testing.T) {
	err := Errorf(ErrPending, "sync committee signature: %v", synccommittee.ErrPeriodUnknown)
	res := finishProof(nil, err, 7)
	require.Equal(t, Pending, res.Outcome)
	require.Len(t, res.Pending, 1)
	require.Equal(t, "beacon_update", res.Pending[0].Kind)
	require.Equal(t, "7", res.Pending[0].Args["chain"])
}

func TestFinishProofPassesThroughOtherFailures(t *testing.T) {
	err := Errorf(ErrCryptoFailure, "bad signature")
	res := finishProof(nil, err, 1)
	require.Equal(t, Fail, res.Outcome)
	require.Equal(t, err, res.Err)
}

func TestFinishProofSuccess(t *testing.T) {
	res := finishProof("ok", nil, 1)
	require.Equal(t, Success, res.Outcome)
	require.Equal(t, "ok", res.Data)
}

func TestHexAddrFormatsLowercase(t *testing.T) {
	var addr [20]byte
	addr[0] = 0xab
	addr[19] = 0x01
	require.Equal(t, "0xab00000000000000000000000000000000000001", hexAddr(addr))
}
