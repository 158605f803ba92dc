// Package feed holds the report-feed synchronization core: the snapshot
// store, per-category seen counts, the shared unread flag, the polling
// scheduler, and the controller tying them together.
package feed

import (
	"context"
	"sync"

	"github.com/bramapp/bram/internal/api"
	"github.com/bramapp/bram/internal/models"
)

// ReportStore holds the most recently fetched report collection. The
// snapshot is replaced whole on every successful refresh; readers never
// observe a partial update. A failed refresh leaves the previous
// snapshot in place.
type ReportStore struct {
	client api.Client

	mu       sync.RWMutex
	snapshot []models.Report
}

func NewReportStore(client api.Client) *ReportStore {
	return &ReportStore{client: client}
}

// Refresh fetches the current collection and swaps it in atomically.
func (s *ReportStore) Refresh(ctx context.Context) error {
	reports, err := s.client.ListReports(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = reports
	s.mu.Unlock()
	return nil
}

// All returns a copy of the current snapshot in backend order.
func (s *ReportStore) All() []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Report, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// ByCategory returns the snapshot subsequence of the given category,
// order-preserving. Records with unrecognized types never match.
func (s *ReportStore) ByCategory(t models.ReportType) []models.Report {
	if !t.Valid() {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Report
	for _, r := range s.snapshot {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// Create submits a new report. Callers refresh afterwards; no optimistic
// merge into the snapshot is performed.
func (s *ReportStore) Create(ctx context.Context, r models.Report) (*models.Report, error) {
	return s.client.CreateReport(ctx, r)
}

// Update replaces the report addressed by id on the backend.
func (s *ReportStore) Update(ctx context.Context, id string, r models.Report) (*models.Report, error) {
	return s.client.UpdateReport(ctx, id, r)
}

// Delete removes the report addressed by id on the backend.
func (s *ReportStore) Delete(ctx context.Context, id string) error {
	return s.client.DeleteReport(ctx, id)
}
