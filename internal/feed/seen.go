package feed

import (
	"sync"

	"github.com/bramapp/bram/internal/models"
)

// SeenTracker records, per category, how many reports the user has
// acknowledged by opening that category's view. In-memory only; counts
// reset on process restart.
type SeenTracker struct {
	mu     sync.Mutex
	counts map[models.ReportType]int
}

func NewSeenTracker() *SeenTracker {
	return &SeenTracker{counts: make(map[models.ReportType]int)}
}

// CountFor returns the last acknowledged count for a category, zero if
// the category was never opened.
func (s *SeenTracker) CountFor(t models.ReportType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[t]
}

// Acknowledge sets the acknowledged count for a category. Normal flows
// only ever pass the current total, but smaller values are accepted.
func (s *SeenTracker) Acknowledge(t models.ReportType, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[t] = count
}
