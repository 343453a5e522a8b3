package synccommittee

import (
	"fmt"

	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/ssz"
)

// Generalized indices of next_sync_committee and finalized_checkpoint.root
// within a BeaconState tree, per the consensus-specs light-client
// specification. Altair placed them at depths 5 and 6 (gindices 55 and
// 105); Electra's extra BeaconState fields push each one level deeper (87
// and 169). These
// are fixed per fork, not derived from this package's own container defs,
// since the full BeaconState shape is out of scope (spec.md §1).
const (
	nscGindexAltair  ssz.Gindex = 55
	finGindexAltair  ssz.Gindex = 105
	nscGindexElectra ssz.Gindex = 87
	finGindexElectra ssz.Gindex = 169
)

// NSCGindex returns NEXT_SYNC_COMMITTEE_GINDEX for fork.
func NSCGindex(fork chainspec.Fork) (ssz.Gindex, error) {
	switch fork {
	case chainspec.ForkBellatrix, chainspec.ForkCapella, chainspec.ForkDeneb:
		return nscGindexAltair, nil
	case chainspec.ForkElectra:
		return nscGindexElectra, nil
	default:
		return 0, fmt.Errorf("synccommittee: no NEXT_SYNC_COMMITTEE gindex known for fork %q", fork)
	}
}

// FINGindex returns FINALIZED_ROOT_GINDEX for fork.
func FINGindex(fork chainspec.Fork) (ssz.Gindex, error) {
	switch fork {
	case chainspec.ForkBellatrix, chainspec.ForkCapella, chainspec.ForkDeneb:
		return finGindexAltair, nil
	case chainspec.ForkElectra:
		return finGindexElectra, nil
	default:
		return 0, fmt.Errorf("synccommittee: no FINALIZED_ROOT gindex known for fork %q", fork)
	}
}
