package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"botanica/internal/conservation/models"
	"botanica/pkg/platform/sentinel"
)

// Snapshot is a stored assessment and when it was fetched from a source.
type Snapshot struct {
	Assessment models.Assessment `json:"assessment"`
	FetchedAt  time.Time         `json:"fetched_at"`
}

// InMemory is a map-backed snapshot store.
type InMemory struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

func NewInMemory() *InMemory {
	return &InMemory{snapshots: make(map[string]Snapshot)}
}

func (s *InMemory) Upsert(_ context.Context, a models.Assessment, fetchedAt time.Time) error {
	key := models.CanonicalName(a.ScientificName)
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.snapshots[key]; ok && existing.Assessment.AssessmentDate.After(a.AssessmentDate) {
		return nil
	}
	s.snapshots[key] = Snapshot{Assessment: a, FetchedAt: fetchedAt}
	return nil
}

func (s *InMemory) Latest(_ context.Context, scientificName string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[models.CanonicalName(scientificName)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &snap, nil
}

func (s *InMemory) ListByCategory(_ context.Context, categories []models.Category, limit int) ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Snapshot{}
	for _, snap := range s.snapshots {
		if slices.Contains(categories, snap.Assessment.Category) {
			out = append(out, snap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Assessment.ScientificName < out[j].Assessment.ScientificName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
