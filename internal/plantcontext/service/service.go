// Package service answers plant care questions by handing a species snapshot
// to a context source and checking what comes back.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"botanica/internal/plantcontext"
	"botanica/internal/plantcontext/metrics"
	"botanica/internal/plantcontext/models"
	taxonomy "botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
	dErrors "botanica/pkg/domain-errors"
	audit "botanica/pkg/platform/audit"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks SnapshotLoader Source AuditPublisher

// SnapshotLoader is satisfied by the taxonomy service.
type SnapshotLoader interface {
	Snapshot(ctx context.Context, speciesID id.SpeciesID) (*taxonomy.SpeciesSnapshot, error)
}

type Source interface {
	ID() string
	Recommend(ctx context.Context, q models.Query, snap taxonomy.SpeciesSnapshot) (*models.Response, error)
	Search(ctx context.Context, query string) (string, error)
	Index(ctx context.Context, snap taxonomy.SpeciesSnapshot) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

const (
	tracerName = "botanica/internal/plantcontext"

	outcomeOK          = "ok"
	outcomeSourceError = "source_error"
	outcomeInvalid     = "invalid"
)

type Service struct {
	loader         SnapshotLoader
	source         Source
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	tracer         trace.Tracer
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

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

func New(loader SnapshotLoader, src Source, opts ...Option) *Service {
	s := &Service{
		loader: loader,
		source: src,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
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

// GetPlantRecommendations loads the species and its records, asks the source
// for context, and validates the answer. A response without recommendations
// gets them extracted locally from its context.
func (s *Service) GetPlantRecommendations(ctx context.Context, speciesID id.SpeciesID, userQuery string) (*models.Response, error) {
	userQuery = strings.TrimSpace(userQuery)
	if userQuery == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "query is required")
	}

	ctx, span := s.tracer.Start(ctx, "plantcontext.GetPlantRecommendations", trace.WithAttributes(
		attribute.String("species_id", speciesID.String()),
		attribute.String("source", s.source.ID()),
	))
	defer span.End()

	snap, err := s.loader.Snapshot(ctx, speciesID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	q := plantcontext.BuildQuery(snap.Species.Species, snap.Species.GenusName, snap.Records, userQuery)

	start := time.Now()
	resp, err := s.source.Recommend(ctx, q, *snap)
	s.metrics.ObserveSourceLatency(s.source.ID(), "recommend", time.Since(start))
	if err == nil && resp == nil {
		err = errors.New("source returned no response")
	}
	if err != nil {
		s.metrics.IncrementRequest(outcomeSourceError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "context source failed")
		s.logger.WarnContext(ctx, "context source request failed",
			"species_id", speciesID,
			"source", s.source.ID(),
			"error", err,
		)
		return nil, s.sourceError(err, "recommendation request failed")
	}

	if len(resp.Recommendations) == 0 {
		resp.Recommendations = plantcontext.ExtractRecommendations(resp.Context)
		s.metrics.IncrementExtracted()
	}
	if resp.RelevantDocuments == nil {
		resp.RelevantDocuments = []models.Document{}
	}

	if err := plantcontext.ValidateResponse(*resp); err != nil {
		s.metrics.IncrementRequest(outcomeInvalid)
		span.SetStatus(codes.Error, "invalid context response")
		return nil, dErrors.Wrap(err, dErrors.CodeContextSource, "source returned an invalid response")
	}

	span.SetAttributes(
		attribute.Float64("confidence", resp.ConfidenceScore),
		attribute.Int("recommendations", len(resp.Recommendations)),
	)
	s.metrics.IncrementRequest(outcomeOK)
	s.metrics.ObserveConfidence(resp.ConfidenceScore)
	s.emit(ctx, audit.ActionContextRequested, speciesID.String())
	return resp, nil
}

// QueryKnowledge runs a free-text search against the source's knowledge base.
func (s *Service) QueryKnowledge(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", dErrors.New(dErrors.CodeValidation, "query is required")
	}

	ctx, span := s.tracer.Start(ctx, "plantcontext.QueryKnowledge")
	defer span.End()

	start := time.Now()
	out, err := s.source.Search(ctx, query)
	s.metrics.ObserveSourceLatency(s.source.ID(), "search", time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "context search failed")
		return "", s.sourceError(err, "knowledge search failed")
	}
	return out, nil
}

// IndexPlantData pushes the species and its records into the source's
// knowledge base.
func (s *Service) IndexPlantData(ctx context.Context, speciesID id.SpeciesID) error {
	ctx, span := s.tracer.Start(ctx, "plantcontext.IndexPlantData", trace.WithAttributes(
		attribute.String("species_id", speciesID.String()),
	))
	defer span.End()

	snap, err := s.loader.Snapshot(ctx, speciesID)
	if err != nil {
		span.RecordError(err)
		return err
	}

	start := time.Now()
	err = s.source.Index(ctx, *snap)
	s.metrics.ObserveSourceLatency(s.source.ID(), "index", time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "context indexing failed")
		return s.sourceError(err, "indexing failed")
	}

	s.logger.InfoContext(ctx, "indexed plant data",
		"species_id", speciesID,
		"records", len(snap.Records),
		"source", s.source.ID(),
	)
	s.emit(ctx, audit.ActionContextIndexed, speciesID.String())
	return nil
}

func (s *Service) sourceError(err error, msg string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeContextSource, msg)
}

func (s *Service) emit(ctx context.Context, action audit.Action, subject string) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:  string(action),
		Subject: subject,
		Outcome: outcomeOK,
		Source:  s.source.ID(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", action,
			"subject", subject,
			"error", err,
		)
	}
}
