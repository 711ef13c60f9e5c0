// Package service orchestrates taxonomy persistence: it validates input with
// the model constructors, translates store sentinels to domain errors and
// emits curation audit events.
package service

import (
	"context"
	"errors"
	"log/slog"

	"botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
	dErrors "botanica/pkg/domain-errors"
	audit "botanica/pkg/platform/audit"
	"botanica/pkg/platform/sentinel"
	"botanica/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store AuditPublisher

// Store is the persistence port. Implementations return sentinel errors.
type Store interface {
	CreateFamily(ctx context.Context, f *models.Family) error
	FindFamily(ctx context.Context, familyID id.FamilyID) (*models.Family, error)
	CreateGenus(ctx context.Context, g *models.Genus) error
	FindGenus(ctx context.Context, genusID id.GenusID) (*models.Genus, error)
	CreateSpecies(ctx context.Context, sp *models.Species) error
	FindSpecies(ctx context.Context, speciesID id.SpeciesID) (*models.NamedSpecies, error)
	SearchSpecies(ctx context.Context, query string, limit int) ([]models.NamedSpecies, error)
	AddRecord(ctx context.Context, rec *models.CultivationRecord) error
	ListRecords(ctx context.Context, speciesID id.SpeciesID) ([]models.CultivationRecord, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

const defaultSearchLimit = 50

// Service is the taxonomy application service.
type Service struct {
	store          Store
	logger         *slog.Logger
	auditPublisher AuditPublisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

// New constructs a Service.
func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateFamily(ctx context.Context, req *models.CreateFamilyRequest) (*models.Family, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	family, err := models.NewFamily(req.Name, req.Authority, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateFamily(ctx, family); err != nil {
		return nil, s.translate(err, "family")
	}
	s.emit(ctx, audit.ActionFamilyCreated, family.ID.String())
	return family, nil
}

func (s *Service) CreateGenus(ctx context.Context, req *models.CreateGenusRequest) (*models.Genus, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	familyID, err := id.ParseFamilyID(req.FamilyID)
	if err != nil {
		return nil, err
	}
	genus, err := models.NewGenus(familyID, req.Name, req.Authority, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateGenus(ctx, genus); err != nil {
		return nil, s.translate(err, "genus")
	}
	s.emit(ctx, audit.ActionGenusCreated, genus.ID.String())
	return genus, nil
}

func (s *Service) CreateSpecies(ctx context.Context, req *models.CreateSpeciesRequest) (*models.NamedSpecies, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	genusID, err := id.ParseGenusID(req.GenusID)
	if err != nil {
		return nil, err
	}
	species, err := models.NewSpecies(genusID, req.SpecificEpithet, req.Authority,
		req.PublicationYear, req.ConservationStatus, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateSpecies(ctx, species); err != nil {
		return nil, s.translate(err, "species")
	}
	s.emit(ctx, audit.ActionSpeciesCreated, species.ID.String())

	named, err := s.store.FindSpecies(ctx, species.ID)
	if err != nil {
		return nil, s.translate(err, "species")
	}
	return named, nil
}

// GetSpecies returns the species joined with its genus and family names.
func (s *Service) GetSpecies(ctx context.Context, speciesID id.SpeciesID) (*models.NamedSpecies, error) {
	named, err := s.store.FindSpecies(ctx, speciesID)
	if err != nil {
		return nil, s.translate(err, "species")
	}
	return named, nil
}

func (s *Service) GetGenus(ctx context.Context, genusID id.GenusID) (*models.Genus, error) {
	genus, err := s.store.FindGenus(ctx, genusID)
	if err != nil {
		return nil, s.translate(err, "genus")
	}
	return genus, nil
}

func (s *Service) GetFamily(ctx context.Context, familyID id.FamilyID) (*models.Family, error) {
	family, err := s.store.FindFamily(ctx, familyID)
	if err != nil {
		return nil, s.translate(err, "family")
	}
	return family, nil
}

// SearchSpecies matches name against "Genus epithet". A blank name is rejected
// rather than listing the whole catalogue.
func (s *Service) SearchSpecies(ctx context.Context, name string, limit int) ([]models.NamedSpecies, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "name query parameter is required")
	}
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}
	found, err := s.store.SearchSpecies(ctx, name, limit)
	if err != nil {
		return nil, s.translate(err, "species")
	}
	if found == nil {
		found = []models.NamedSpecies{}
	}
	return found, nil
}

func (s *Service) AddCultivationRecord(ctx context.Context, speciesID id.SpeciesID, req *models.AddRecordRequest) (*models.CultivationRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	stage, err := models.ParseGrowthStage(req.GrowthStage)
	if err != nil {
		return nil, err
	}
	rec, err := models.NewCultivationRecord(speciesID, stage, req.Cultivator, req.Notes, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.AddRecord(ctx, rec); err != nil {
		return nil, s.translate(err, "species")
	}
	s.emit(ctx, audit.ActionRecordAdded, speciesID.String())
	return rec, nil
}

// ListRecords returns the cultivation history oldest first.
func (s *Service) ListRecords(ctx context.Context, speciesID id.SpeciesID) ([]models.CultivationRecord, error) {
	if _, err := s.store.FindSpecies(ctx, speciesID); err != nil {
		return nil, s.translate(err, "species")
	}
	records, err := s.store.ListRecords(ctx, speciesID)
	if err != nil {
		return nil, s.translate(err, "cultivation records")
	}
	if records == nil {
		records = []models.CultivationRecord{}
	}
	return records, nil
}

// Snapshot loads a species together with its cultivation history.
func (s *Service) Snapshot(ctx context.Context, speciesID id.SpeciesID) (*models.SpeciesSnapshot, error) {
	named, err := s.store.FindSpecies(ctx, speciesID)
	if err != nil {
		return nil, s.translate(err, "species")
	}
	records, err := s.store.ListRecords(ctx, speciesID)
	if err != nil {
		return nil, s.translate(err, "cultivation records")
	}
	return &models.SpeciesSnapshot{
		Species: *named,
		Records: records,
		Latest:  models.LatestRecord(records),
	}, nil
}

func (s *Service) translate(err error, what string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, sentinel.ErrAlreadyExists):
		return dErrors.New(dErrors.CodeConstraint, what+" already exists")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "taxonomy request cancelled")
	default:
		return dErrors.Wrap(err, dErrors.CodeDatabase, "failed to access "+what)
	}
}

func (s *Service) emit(ctx context.Context, action audit.Action, subject string) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:  string(action),
		Subject: subject,
		Outcome: "created",
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", action,
			"subject", subject,
			"error", err,
		)
	}
}
