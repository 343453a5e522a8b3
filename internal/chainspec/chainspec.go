// Package chainspec describes the per-chain constants proof verification
// needs: genesis identity, slot/epoch/period arithmetic, and the fork
// schedule (which fork, and which signing version, is active at an epoch).
//
// Loading follows the teacher's own config pattern
// (relays/beacon/config/config.go): mapstructure-tagged structs populated
// via viper, here decoded into a list of chains rather than a named preset.
package chainspec

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Fork identifies an execution/consensus hard fork boundary relevant to
// proof shape (Capella introduced withdrawals; Deneb introduced blob
// commitments; the EVM revision also tracks these).
type Fork string

const (
	ForkBellatrix Fork = "bellatrix"
	ForkCapella   Fork = "capella"
	ForkDeneb     Fork = "deneb"
	ForkElectra   Fork = "electra"
)

// ForkEpoch pairs a fork with the epoch it activates at and the 4-byte
// version the beacon chain signs fork-scoped messages under (the
// CurrentVersion a sync-committee signing domain is derived from).
type ForkEpoch struct {
	Fork    Fork    `mapstructure:"fork"`
	Epoch   uint64  `mapstructure:"epoch"`
	Version [4]byte `mapstructure:"version"`
}

// Settings mirrors the teacher's SpecSettings: the slot/epoch geometry for
// one network profile (mainnet vs a minimal test preset).
type Settings struct {
	SlotsPerEpoch                uint64 `mapstructure:"slotsPerEpoch"`
	EpochsPerSyncCommitteePeriod uint64 `mapstructure:"epochsPerSyncCommitteePeriod"`
	SecondsPerSlot               uint64 `mapstructure:"secondsPerSlot"`
}

// ChainSpec is the fully resolved identity of one chain: its genesis
// validators root (the domain-separation anchor for every signing root),
// its slot/epoch settings, and its fork schedule.
type ChainSpec struct {
	ChainID             uint64      `mapstructure:"chainId"`
	Name                string      `mapstructure:"name"`
	GenesisValidatorsRoot common.Hash `mapstructure:"genesisValidatorsRoot"`
	GenesisTime         uint64      `mapstructure:"genesisTime"`
	Settings            Settings    `mapstructure:"settings"`
	Forks               []ForkEpoch `mapstructure:"forks"`
}

// SlotToEpoch converts a slot number to its containing epoch.
func (c *ChainSpec) SlotToEpoch(slot uint64) uint64 {
	if c.Settings.SlotsPerEpoch == 0 {
		return 0
	}
	return slot / c.Settings.SlotsPerEpoch
}

// SyncCommitteePeriod returns the sync-committee period a slot belongs to.
func (c *ChainSpec) SyncCommitteePeriod(slot uint64) uint64 {
	epoch := c.SlotToEpoch(slot)
	if c.Settings.EpochsPerSyncCommitteePeriod == 0 {
		return 0
	}
	return epoch / c.Settings.EpochsPerSyncCommitteePeriod
}

// ForkAt returns the fork active at epoch: the highest-epoch entry in
// Forks whose Epoch is <= epoch. The eth_call path does not consult it:
// internal/evmhost runs a fixed Cancun precompile table whatever the fork.
func (c *ChainSpec) ForkAt(epoch uint64) (Fork, error) {
	var best *ForkEpoch
	for i := range c.Forks {
		f := &c.Forks[i]
		if f.Epoch <= epoch && (best == nil || f.Epoch > best.Epoch) {
			best = f
		}
	}
	if best == nil {
		return "", fmt.Errorf("chainspec: no fork active at epoch %d", epoch)
	}
	return best.Fork, nil
}

// ForkAtSlot is ForkAt(SlotToEpoch(slot)).
func (c *ChainSpec) ForkAtSlot(slot uint64) (Fork, error) {
	return c.ForkAt(c.SlotToEpoch(slot))
}

// ForkVersionAt returns the fork version active at epoch, the value a
// sync-committee signing domain's ForkData.CurrentVersion is set to.
func (c *ChainSpec) ForkVersionAt(epoch uint64) ([4]byte, error) {
	var best *ForkEpoch
	for i := range c.Forks {
		f := &c.Forks[i]
		if f.Epoch <= epoch && (best == nil || f.Epoch > best.Epoch) {
			best = f
		}
	}
	if best == nil {
		return [4]byte{}, fmt.Errorf("chainspec: no fork active at epoch %d", epoch)
	}
	return best.Version, nil
}
