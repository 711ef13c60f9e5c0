// Package service exposes the Darwin Core adapter over stored taxonomy data
// and persists occurrence records.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"botanica/internal/darwincore"
	"botanica/internal/darwincore/metrics"
	"botanica/internal/darwincore/models"
	taxonomy "botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
	dErrors "botanica/pkg/domain-errors"
	audit "botanica/pkg/platform/audit"
	"botanica/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks SpeciesReader OccurrenceStore AuditPublisher

// SpeciesReader loads a species joined with its genus and family names.
type SpeciesReader interface {
	FindSpecies(ctx context.Context, speciesID id.SpeciesID) (*taxonomy.NamedSpecies, error)
}

type OccurrenceStore interface {
	Create(ctx context.Context, occ *models.Occurrence, speciesID *id.SpeciesID) error
	Find(ctx context.Context, occurrenceID uuid.UUID) (*models.Occurrence, error)
	ListByCollector(ctx context.Context, collector string, limit int) ([]models.Occurrence, error)
	ListByLocality(ctx context.Context, locality string, limit int) ([]models.Occurrence, error)
	ListBySpecies(ctx context.Context, speciesID id.SpeciesID) ([]models.Occurrence, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// RecordedOccurrence is a persisted occurrence with its completeness warnings.
type RecordedOccurrence struct {
	Occurrence models.Occurrence `json:"occurrence"`
	Warnings   []string          `json:"warnings"`
}

const defaultListLimit = 100

type Service struct {
	species        SpeciesReader
	occurrences    OccurrenceStore
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func New(species SpeciesReader, occurrences OccurrenceStore, opts ...Option) *Service {
	s := &Service{species: species, occurrences: occurrences, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TaxonForSpecies converts a stored species into a Darwin Core taxon.
func (s *Service) TaxonForSpecies(ctx context.Context, speciesID id.SpeciesID) (*models.Taxon, error) {
	named, err := s.loadSpecies(ctx, speciesID)
	if err != nil {
		return nil, err
	}
	taxon := darwincore.SpeciesToTaxon(named.Species, named.GenusName)
	s.metrics.IncrementConversion("taxon")
	return &taxon, nil
}

// OccurrenceForSpecies builds an occurrence for a stored species without persisting it.
func (s *Service) OccurrenceForSpecies(ctx context.Context, speciesID id.SpeciesID, location *models.Coordinates, collector *string) (*models.Occurrence, error) {
	named, err := s.loadSpecies(ctx, speciesID)
	if err != nil {
		return nil, err
	}
	occ := darwincore.CreateOccurrence(named.Species, named.GenusName, named.FamilyName, location, collector)
	s.metrics.IncrementConversion("occurrence")
	return &occ, nil
}

// RecordOccurrence validates and persists occ. Warnings are advisory; an
// incomplete record is still stored.
func (s *Service) RecordOccurrence(ctx context.Context, occ *models.Occurrence, speciesID *id.SpeciesID) (*RecordedOccurrence, error) {
	if occ.ScientificName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "scientific_name is required")
	}
	if occ.OccurrenceID == uuid.Nil {
		occ.OccurrenceID = uuid.New()
	}
	if occ.BasisOfRecord == "" {
		occ.BasisOfRecord = models.BasisPreservedSpecimen
	}
	if occ.OccurrenceStatus == "" {
		occ.OccurrenceStatus = models.StatusPresent
	}

	warnings := darwincore.ValidateRecord(*occ)
	s.metrics.ObserveWarnings(warnings)

	if err := s.occurrences.Create(ctx, occ, speciesID); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrAlreadyExists):
			return nil, dErrors.New(dErrors.CodeConstraint, "occurrence already exists")
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "species not found")
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeDatabase, "failed to record occurrence")
		}
	}
	s.metrics.IncrementRecorded()
	s.emit(ctx, occ)

	if len(warnings) > 0 {
		s.logger.InfoContext(ctx, "occurrence recorded with warnings",
			"occurrence_id", occ.OccurrenceID,
			"warnings", warnings,
		)
	}
	return &RecordedOccurrence{Occurrence: *occ, Warnings: warnings}, nil
}

// RecordSpeciesOccurrence builds an occurrence from a stored species and persists it.
func (s *Service) RecordSpeciesOccurrence(ctx context.Context, speciesID id.SpeciesID, location *models.Coordinates, collector *string) (*RecordedOccurrence, error) {
	occ, err := s.OccurrenceForSpecies(ctx, speciesID, location, collector)
	if err != nil {
		return nil, err
	}
	return s.RecordOccurrence(ctx, occ, &speciesID)
}

// Occurrence returns a stored occurrence by ID.
func (s *Service) Occurrence(ctx context.Context, occurrenceID uuid.UUID) (*models.Occurrence, error) {
	occ, err := s.occurrences.Find(ctx, occurrenceID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "occurrence not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeDatabase, "failed to load occurrence")
	}
	return occ, nil
}

func (s *Service) OccurrencesByCollector(ctx context.Context, collector string, limit int) ([]models.Occurrence, error) {
	if collector == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "collector is required")
	}
	found, err := s.occurrences.ListByCollector(ctx, collector, clampLimit(limit))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeDatabase, "failed to search occurrences")
	}
	return found, nil
}

func (s *Service) OccurrencesByLocality(ctx context.Context, locality string, limit int) ([]models.Occurrence, error) {
	if locality == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "locality is required")
	}
	found, err := s.occurrences.ListByLocality(ctx, locality, clampLimit(limit))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeDatabase, "failed to search occurrences")
	}
	return found, nil
}

func (s *Service) OccurrencesForSpecies(ctx context.Context, speciesID id.SpeciesID) ([]models.Occurrence, error) {
	if _, err := s.loadSpecies(ctx, speciesID); err != nil {
		return nil, err
	}
	found, err := s.occurrences.ListBySpecies(ctx, speciesID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeDatabase, "failed to list occurrences")
	}
	return found, nil
}

func (s *Service) loadSpecies(ctx context.Context, speciesID id.SpeciesID) (*taxonomy.NamedSpecies, error) {
	named, err := s.species.FindSpecies(ctx, speciesID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "species not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeDatabase, "failed to load species")
	}
	if named.GenusName == "" {
		return nil, dErrors.New(dErrors.CodeNotFound, "genus not found")
	}
	return named, nil
}

func (s *Service) emit(ctx context.Context, occ *models.Occurrence) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:  string(audit.ActionOccurrenceRecorded),
		Subject: occ.ScientificName,
		Outcome: "created",
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"occurrence_id", occ.OccurrenceID,
			"error", err,
		)
	}
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > defaultListLimit {
		return defaultListLimit
	}
	return limit
}
