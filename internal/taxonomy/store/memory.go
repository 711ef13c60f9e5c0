package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
	"botanica/pkg/platform/sentinel"
)

// InMemory is a map-backed taxonomy store for tests and database-less runs.
type InMemory struct {
	mu       sync.RWMutex
	families map[id.FamilyID]models.Family
	genera   map[id.GenusID]models.Genus
	species  map[id.SpeciesID]models.Species
	records  map[id.SpeciesID][]models.CultivationRecord
}

func NewInMemory() *InMemory {
	return &InMemory{
		families: make(map[id.FamilyID]models.Family),
		genera:   make(map[id.GenusID]models.Genus),
		species:  make(map[id.SpeciesID]models.Species),
		records:  make(map[id.SpeciesID][]models.CultivationRecord),
	}
}

func (s *InMemory) CreateFamily(_ context.Context, f *models.Family) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.families {
		if strings.EqualFold(existing.Name, f.Name) {
			return fmt.Errorf("family %q: %w", f.Name, sentinel.ErrAlreadyExists)
		}
	}
	s.families[f.ID] = *f
	return nil
}

func (s *InMemory) FindFamily(_ context.Context, familyID id.FamilyID) (*models.Family, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.families[familyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &f, nil
}

func (s *InMemory) CreateGenus(_ context.Context, g *models.Genus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.families[g.FamilyID]; !ok {
		return fmt.Errorf("family %s: %w", g.FamilyID, sentinel.ErrNotFound)
	}
	for _, existing := range s.genera {
		if strings.EqualFold(existing.Name, g.Name) {
			return fmt.Errorf("genus %q: %w", g.Name, sentinel.ErrAlreadyExists)
		}
	}
	s.genera[g.ID] = *g
	return nil
}

func (s *InMemory) FindGenus(_ context.Context, genusID id.GenusID) (*models.Genus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.genera[genusID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &g, nil
}

func (s *InMemory) CreateSpecies(_ context.Context, sp *models.Species) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.genera[sp.GenusID]; !ok {
		return fmt.Errorf("genus %s: %w", sp.GenusID, sentinel.ErrNotFound)
	}
	for _, existing := range s.species {
		if existing.GenusID == sp.GenusID && existing.SpecificEpithet == sp.SpecificEpithet {
			return fmt.Errorf("species %q: %w", sp.SpecificEpithet, sentinel.ErrAlreadyExists)
		}
	}
	s.species[sp.ID] = *sp
	return nil
}

func (s *InMemory) FindSpecies(_ context.Context, speciesID id.SpeciesID) (*models.NamedSpecies, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.species[speciesID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	named := s.nameLocked(sp)
	return &named, nil
}

// SearchSpecies matches query case-insensitively against "Genus epithet".
func (s *InMemory) SearchSpecies(_ context.Context, query string, limit int) ([]models.NamedSpecies, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	var out []models.NamedSpecies
	for _, sp := range s.species {
		named := s.nameLocked(sp)
		if strings.Contains(strings.ToLower(named.ScientificName()), needle) {
			out = append(out, named)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScientificName() < out[j].ScientificName() })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemory) AddRecord(_ context.Context, rec *models.CultivationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.species[rec.SpeciesID]; !ok {
		return fmt.Errorf("species %s: %w", rec.SpeciesID, sentinel.ErrNotFound)
	}
	s.records[rec.SpeciesID] = append(s.records[rec.SpeciesID], *rec)
	return nil
}

// ListRecords returns records oldest first.
func (s *InMemory) ListRecords(_ context.Context, speciesID id.SpeciesID) ([]models.CultivationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.CultivationRecord{}, s.records[speciesID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordedAt.Before(out[j].RecordedAt) })
	return out, nil
}

func (s *InMemory) nameLocked(sp models.Species) models.NamedSpecies {
	named := models.NamedSpecies{Species: sp}
	if g, ok := s.genera[sp.GenusID]; ok {
		named.GenusName = g.Name
		if f, ok := s.families[g.FamilyID]; ok {
			named.FamilyName = f.Name
		}
	}
	return named
}
