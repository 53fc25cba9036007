package summary

import (
	"sync"

	"github.com/evdash/evdash/pkg/evdash/dal"
)

// Recompute filters the records once and derives every summary from
// the single filtered set. An empty or nil record sequence yields a
// zeroed bundle. The type distribution backs both of its output slots;
// the two names are kept for consumers but never diverge.
func Recompute(records []dal.Record, criteria dal.FilterCriteria) dal.SummaryBundle {
	filtered := Filter(records, criteria)

	countByMake := CountByMake(filtered)
	typeDist := TypeDistribution(filtered)
	avgRange := AvgRangeByYear(filtered)
	avgMSRP := AvgMSRPByMake(filtered)

	return dal.SummaryBundle{
		CountByMake:            countByMake,
		TypeDistribution:       typeDist,
		AvgRangeByYear:         avgRange,
		AvgMSRPByMake:          avgMSRP,
		TypeDistributionRepeat: typeDist,
		CrossMetricMaxima:      Maxima(avgRange, avgMSRP, countByMake),
	}
}

// Store publishes the most recent bundle. Overlapping recomputations
// resolve last-writer-wins by initiation order: a run that started
// earlier never overwrites the result of a later one.
type Store struct {
	mu        sync.Mutex
	latest    dal.SummaryBundle
	started   uint64
	published uint64
}

// NewStore returns a store holding an empty bundle. The initial bundle
// carries empty summaries, not nil ones, so consumers see the same
// shape before and after the first recomputation.
func NewStore() *Store {
	return &Store{latest: Recompute(nil, dal.NewFilterCriteria())}
}

// Recompute derives a fresh bundle and publishes it unless a newer
// recomputation has been initiated in the meantime. Returns the bundle
// it computed either way.
func (s *Store) Recompute(records []dal.Record, criteria dal.FilterCriteria) dal.SummaryBundle {
	s.mu.Lock()
	s.started++
	generation := s.started
	s.mu.Unlock()

	bundle := Recompute(records, criteria)
	s.publish(generation, bundle)
	return bundle
}

// publish installs a bundle unless one from a later-initiated
// recomputation has already landed.
func (s *Store) publish(generation uint64, bundle dal.SummaryBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation > s.published {
		s.latest = bundle
		s.published = generation
	}
}

// Latest returns the currently published bundle.
func (s *Store) Latest() dal.SummaryBundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}
