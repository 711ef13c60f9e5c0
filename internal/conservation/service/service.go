// Package service resolves conservation assessments through a source with a
// read-through cache and a snapshot store behind it.
//
// Lookups distinguish three outcomes: found, not found, and unavailable
// (the source failed and no snapshot exists). FetchAssessment collapses the
// last two to a nil assessment because enrichment is best-effort and must
// never fail the caller.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"botanica/internal/conservation"
	"botanica/internal/conservation/metrics"
	"botanica/internal/conservation/models"
	"botanica/internal/conservation/store"
	dErrors "botanica/pkg/domain-errors"
	audit "botanica/pkg/platform/audit"
	"botanica/pkg/platform/sentinel"
	"botanica/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Source Cache SnapshotStore AuditPublisher

type Source interface {
	ID() string
	Lookup(ctx context.Context, scientificName string) (models.LookupResult, error)
}

type Cache interface {
	Get(ctx context.Context, scientificName string) (*models.Assessment, error)
	Set(ctx context.Context, a models.Assessment) error
}

type SnapshotStore interface {
	Upsert(ctx context.Context, a models.Assessment, fetchedAt time.Time) error
	Latest(ctx context.Context, scientificName string) (*store.Snapshot, error)
	ListByCategory(ctx context.Context, categories []models.Category, limit int) ([]store.Snapshot, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

const (
	tracerName = "botanica/internal/conservation"

	sourceCache    = "cache"
	sourceSnapshot = "snapshot"

	defaultFanOut    = 8
	defaultListLimit = 100
)

type Service struct {
	source         Source
	cache          Cache
	snapshots      SnapshotStore
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	tracer         trace.Tracer
	fanOut         int
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

func WithCache(c Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithSnapshotStore(st SnapshotStore) Option {
	return func(s *Service) {
		s.snapshots = st
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithFanOut bounds how many lookups FetchMany runs at once.
func WithFanOut(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.fanOut = n
		}
	}
}

func New(src Source, opts ...Option) *Service {
	s := &Service{
		source: src,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
		fanOut: defaultFanOut,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SourceID names the configured source.
func (s *Service) SourceID() string {
	return s.source.ID()
}

// Lookup resolves scientificName without collapsing outcomes. The only error
// is a validation error for an empty name; source failures become
// OutcomeUnavailable after the snapshot fallback is tried.
func (s *Service) Lookup(ctx context.Context, scientificName string) (models.LookupResult, error) {
	name := models.CanonicalName(scientificName)
	if name == "" {
		return models.LookupResult{}, dErrors.New(dErrors.CodeValidation, "scientific name is required")
	}

	ctx, span := s.tracer.Start(ctx, "conservation.Lookup", trace.WithAttributes(
		attribute.String("scientific_name", name),
	))
	defer span.End()

	if a := s.cached(ctx, name); a != nil {
		return s.finish(ctx, span, name, sourceCache, models.Found(*a)), nil
	}

	res, err := s.fromSource(ctx, name)
	if err == nil {
		if res.Outcome == models.OutcomeFound && res.Assessment != nil {
			s.remember(ctx, *res.Assessment)
		}
		return s.finish(ctx, span, name, s.source.ID(), res), nil
	}

	span.RecordError(err)
	s.logger.WarnContext(ctx, "failed to fetch conservation status",
		"scientific_name", name,
		"source", s.source.ID(),
		"error", err,
	)

	if snap := s.snapshot(ctx, name); snap != nil {
		s.metrics.IncrementFallback()
		return s.finish(ctx, span, name, sourceSnapshot, models.Found(snap.Assessment)), nil
	}
	span.SetStatus(codes.Error, "conservation source unavailable")
	return s.finish(ctx, span, name, s.source.ID(), models.Unavailable()), nil
}

// FetchAssessment returns the current assessment, or nil when none is known or
// the source is unavailable. Cancellation of ctx also yields nil. The only
// error is a validation error for an empty name.
func (s *Service) FetchAssessment(ctx context.Context, scientificName string) (*models.Assessment, error) {
	ctx, span := s.tracer.Start(ctx, "conservation.FetchAssessment")
	defer span.End()

	res, err := s.Lookup(ctx, scientificName)
	if err != nil {
		return nil, err
	}
	if res.Outcome != models.OutcomeFound {
		return nil, nil
	}
	return res.Assessment, nil
}

// FetchMany looks up names concurrently. Duplicate names are each fetched;
// the result map holds one entry per distinct name, nil when unknown.
func (s *Service) FetchMany(ctx context.Context, names []string) (map[string]*models.Assessment, error) {
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "scientific names must not be empty")
		}
	}

	var (
		mu  sync.Mutex
		out = make(map[string]*models.Assessment, len(names))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOut)
	for _, name := range names {
		g.Go(func() error {
			a, err := s.FetchAssessment(gctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = a
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Classify fetches and classifies scientificName. An unknown species yields
// an unavailable classification, not an error.
func (s *Service) Classify(ctx context.Context, scientificName string) (*models.Classification, error) {
	a, err := s.FetchAssessment(ctx, scientificName)
	if err != nil {
		return nil, err
	}
	c := conservation.Classify(models.CanonicalName(scientificName), a)
	return &c, nil
}

// Threatened lists stored snapshots whose category is Vulnerable or worse.
func (s *Service) Threatened(ctx context.Context, limit int) ([]store.Snapshot, error) {
	if s.snapshots == nil {
		return []store.Snapshot{}, nil
	}
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	var threatened []models.Category
	for _, c := range models.Categories {
		if c.IsThreatened() {
			threatened = append(threatened, c)
		}
	}
	found, err := s.snapshots.ListByCategory(ctx, threatened, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeDatabase, "failed to list threatened species")
	}
	return found, nil
}

func (s *Service) fromSource(ctx context.Context, name string) (models.LookupResult, error) {
	ctx, span := s.tracer.Start(ctx, "conservation.source.Lookup", trace.WithAttributes(
		attribute.String("source", s.source.ID()),
	))
	defer span.End()

	start := time.Now()
	res, err := s.source.Lookup(ctx, name)
	s.metrics.ObserveSourceLatency(s.source.ID(), time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "source lookup failed")
		return models.LookupResult{}, err
	}
	if res.Outcome == models.OutcomeFound && res.Assessment == nil {
		return models.LookupResult{}, errors.New("source reported found without an assessment")
	}
	return res, nil
}

func (s *Service) cached(ctx context.Context, name string) *models.Assessment {
	if s.cache == nil {
		return nil
	}
	a, err := s.cache.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.DebugContext(ctx, "assessment cache read failed", "scientific_name", name, "error", err)
		}
		s.metrics.IncrementCacheMiss()
		return nil
	}
	s.metrics.IncrementCacheHit()
	return a
}

func (s *Service) remember(ctx context.Context, a models.Assessment) {
	if s.cache != nil {
		if err := s.cache.Set(ctx, a); err != nil {
			s.logger.DebugContext(ctx, "assessment cache write failed", "scientific_name", a.ScientificName, "error", err)
		}
	}
	if s.snapshots != nil {
		if err := s.snapshots.Upsert(ctx, a, requestcontext.Now(ctx)); err != nil {
			s.logger.WarnContext(ctx, "failed to store assessment snapshot", "scientific_name", a.ScientificName, "error", err)
		}
	}
}

func (s *Service) snapshot(ctx context.Context, name string) *store.Snapshot {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Latest(ctx, name)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.DebugContext(ctx, "snapshot read failed", "scientific_name", name, "error", err)
		}
		return nil
	}
	return snap
}

func (s *Service) finish(ctx context.Context, span trace.Span, name, answeredBy string, res models.LookupResult) models.LookupResult {
	span.SetAttributes(
		attribute.String("outcome", string(res.Outcome)),
		attribute.String("answered_by", answeredBy),
	)
	s.metrics.IncrementLookup(string(res.Outcome))
	s.emit(ctx, name, answeredBy, res.Outcome)
	return res
}

func (s *Service) emit(ctx context.Context, name, answeredBy string, outcome models.Outcome) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:  string(audit.ActionConservationLookup),
		Subject: name,
		Outcome: string(outcome),
		Source:  answeredBy,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"scientific_name", name,
			"error", err,
		)
	}
}
