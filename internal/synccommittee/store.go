package synccommittee

import (
	"errors"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
)

// MaxStoredPeriods bounds how many sync-committee periods a chain's store
// retains, mirroring the teacher's FinalizedCheckpointsLimit but keyed by
// period instead of finalized-checkpoint slot.
const MaxStoredPeriods = 50

// ErrPeriodUnknown is returned when a period has no stored committee yet;
// the dispatcher (internal/verify) turns this into a pending light-client
// update fetch per spec.md §4.7.
var ErrPeriodUnknown = errors.New("synccommittee: no committee stored for period")

// PeriodEntry is one trusted sync-committee snapshot: the committee that
// signs slots in Period, anchored to the finalized header that proved it.
type PeriodEntry struct {
	Period    uint64
	LastSlot  uint64
	BlockHash common.Hash
	Pubkeys   [][48]byte // 512 compressed G1 points
}

type chainStore struct {
	periods []uint64
	entries map[uint64]PeriodEntry
}

// Store is the per-chain ordered collection of trusted periods spec.md
// §4.6 describes, guarded by a single mutex the way the teacher's
// BeaconCache guards its finalized-checkpoint list.
type Store struct {
	mu     sync.Mutex
	chains map[uint64]*chainStore
}

func NewStore() *Store {
	return &Store{chains: make(map[uint64]*chainStore)}
}

func (s *Store) chainFor(chain uint64) *chainStore {
	cs, ok := s.chains[chain]
	if !ok {
		cs = &chainStore{entries: make(map[uint64]PeriodEntry)}
		s.chains[chain] = cs
	}
	return cs
}

// SetSyncPeriod appends or updates the committee trusted for (chain, period).
func (s *Store) SetSyncPeriod(chain, period, lastSlot uint64, blockHash common.Hash, pubkeys [][48]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.chainFor(chain)
	if _, exists := cs.entries[period]; !exists {
		cs.periods = append(cs.periods, period)
		sort.Slice(cs.periods, func(i, j int) bool { return cs.periods[i] < cs.periods[j] })
	}
	cs.entries[period] = PeriodEntry{
		Period:    period,
		LastSlot:  lastSlot,
		BlockHash: blockHash,
		Pubkeys:   pubkeys,
	}
	s.pruneLocked(cs)
}

// GetValidators returns the committee trusted for (chain, period), or
// ErrPeriodUnknown if nothing has been stored for it yet.
func (s *Store) GetValidators(chain, period uint64) (PeriodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.chains[chain]
	if !ok {
		return PeriodEntry{}, ErrPeriodUnknown
	}
	e, ok := cs.entries[period]
	if !ok {
		return PeriodEntry{}, ErrPeriodUnknown
	}
	return e, nil
}

// LatestPeriod returns the highest period stored for chain, or false if
// none is stored.
func (s *Store) LatestPeriod(chain uint64) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.chains[chain]
	if !ok || len(cs.periods) == 0 {
		return 0, false
	}
	return cs.periods[len(cs.periods)-1], true
}

func (s *Store) pruneLocked(cs *chainStore) {
	n := len(cs.periods)
	if n <= MaxStoredPeriods {
		return
	}
	pruned := cs.periods[:n-MaxStoredPeriods]
	cs.periods = cs.periods[n-MaxStoredPeriods:]
	for _, p := range pruned {
		delete(cs.entries, p)
	}
	log.WithField("prunedPeriods", pruned).Info("pruned sync-committee periods from store")
}
