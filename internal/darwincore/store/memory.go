// Package store persists Darwin Core occurrence records (specimens).
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"botanica/internal/darwincore/models"
	id "botanica/pkg/domain"
	"botanica/pkg/platform/sentinel"
)

// InMemory keeps occurrences in insertion order.
type InMemory struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	records map[uuid.UUID]stored
}

type stored struct {
	occurrence models.Occurrence
	speciesID  *id.SpeciesID
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[uuid.UUID]stored)}
}

func (s *InMemory) Create(_ context.Context, occ *models.Occurrence, speciesID *id.SpeciesID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[occ.OccurrenceID]; ok {
		return fmt.Errorf("occurrence %s: %w", occ.OccurrenceID, sentinel.ErrAlreadyExists)
	}
	s.records[occ.OccurrenceID] = stored{occurrence: *occ, speciesID: speciesID}
	s.order = append(s.order, occ.OccurrenceID)
	return nil
}

func (s *InMemory) Find(_ context.Context, occurrenceID uuid.UUID) (*models.Occurrence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[occurrenceID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	occ := rec.occurrence
	return &occ, nil
}

// ListByCollector matches recorded_by case-insensitively as a substring.
func (s *InMemory) ListByCollector(_ context.Context, collector string, limit int) ([]models.Occurrence, error) {
	return s.match(func(o models.Occurrence) *string { return o.RecordedBy }, collector, limit), nil
}

// ListByLocality matches locality case-insensitively as a substring.
func (s *InMemory) ListByLocality(_ context.Context, locality string, limit int) ([]models.Occurrence, error) {
	return s.match(func(o models.Occurrence) *string { return o.Locality }, locality, limit), nil
}

func (s *InMemory) ListBySpecies(_ context.Context, speciesID id.SpeciesID) ([]models.Occurrence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Occurrence{}
	for _, oid := range s.order {
		rec := s.records[oid]
		if rec.speciesID != nil && *rec.speciesID == speciesID {
			out = append(out, rec.occurrence)
		}
	}
	return out, nil
}

func (s *InMemory) match(field func(models.Occurrence) *string, needle string, limit int) []models.Occurrence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle = strings.ToLower(strings.TrimSpace(needle))
	out := []models.Occurrence{}
	for _, oid := range s.order {
		occ := s.records[oid].occurrence
		v := field(occ)
		if v == nil || !strings.Contains(strings.ToLower(*v), needle) {
			continue
		}
		out = append(out, occ)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScientificName < out[j].ScientificName })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
