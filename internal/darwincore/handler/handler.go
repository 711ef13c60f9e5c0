package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"botanica/internal/darwincore"
	"botanica/internal/darwincore/models"
	"botanica/internal/darwincore/service"
	"botanica/internal/platform/middleware"
	id "botanica/pkg/domain"
	dErrors "botanica/pkg/domain-errors"
	"botanica/pkg/platform/httputil"
	"botanica/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	TaxonForSpecies(ctx context.Context, speciesID id.SpeciesID) (*models.Taxon, error)
	RecordSpeciesOccurrence(ctx context.Context, speciesID id.SpeciesID, location *models.Coordinates, collector *string) (*service.RecordedOccurrence, error)
	Occurrence(ctx context.Context, occurrenceID uuid.UUID) (*models.Occurrence, error)
	OccurrencesByCollector(ctx context.Context, collector string, limit int) ([]models.Occurrence, error)
	OccurrencesByLocality(ctx context.Context, locality string, limit int) ([]models.Occurrence, error)
}

// Handler serves the /darwin-core routes.
type Handler struct {
	service   Service
	validator middleware.SubjectValidator
	logger    *slog.Logger
}

func New(service Service, validator middleware.SubjectValidator, logger *slog.Logger) *Handler {
	return &Handler{service: service, validator: validator, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/darwin-core", func(r chi.Router) {
		r.Get("/species/{id}/taxon", h.handleTaxon)
		r.Post("/validate", h.handleValidate)
		r.Get("/occurrences", h.handleSearchOccurrences)
		r.Get("/occurrences/{id}", h.handleGetOccurrence)

		r.With(middleware.RequireCurator(h.validator, h.logger)).
			Post("/species/{id}/occurrences", h.handleRecordOccurrence)
	})
}

func (h *Handler) handleTaxon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	speciesID, err := id.ParseSpeciesID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	taxon, err := h.service.TaxonForSpecies(ctx, speciesID)
	if err != nil {
		h.fail(ctx, w, "failed to build taxon", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, taxon)
}

func (h *Handler) handleRecordOccurrence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	speciesID, err := id.ParseSpeciesID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[recordOccurrenceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	recorded, err := h.service.RecordSpeciesOccurrence(ctx, speciesID, req.Location, req.Collector)
	if err != nil {
		h.fail(ctx, w, "failed to record occurrence", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, recorded)
}

// handleValidate runs the completeness check on a posted record without storing it.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[validateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	warnings := darwincore.ValidateRecord(req.Occurrence)
	httputil.WriteJSON(w, http.StatusOK, validateResponse{
		Complete: len(warnings) == 0,
		Warnings: warnings,
	})
}

func (h *Handler) handleGetOccurrence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	occurrenceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid occurrence id"))
		return
	}
	occ, err := h.service.Occurrence(ctx, occurrenceID)
	if err != nil {
		h.fail(ctx, w, "failed to load occurrence", err)
		return
	}
	if r.URL.Query().Get("format") == "terms" {
		httputil.WriteJSON(w, http.StatusOK, darwincore.Terms(*occ))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, occ)
}

// handleSearchOccurrences searches by collector or locality; exactly one must be given.
func (h *Handler) handleSearchOccurrences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	collector, locality := q.Get("collector"), q.Get("locality")

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer"))
			return
		}
		limit = n
	}

	var (
		found []models.Occurrence
		err   error
	)
	switch {
	case collector != "" && locality != "":
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "use either collector or locality, not both"))
		return
	case collector != "":
		found, err = h.service.OccurrencesByCollector(ctx, collector, limit)
	case locality != "":
		found, err = h.service.OccurrencesByLocality(ctx, locality, limit)
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "collector or locality is required"))
		return
	}
	if err != nil {
		h.fail(ctx, w, "failed to search occurrences", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"occurrences": found})
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(w, err)
}
