package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"botanica/internal/plantcontext"
	"botanica/internal/plantcontext/models"
	"botanica/internal/platform/middleware"
	id "botanica/pkg/domain"
	dErrors "botanica/pkg/domain-errors"
	"botanica/pkg/platform/httputil"
	"botanica/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	GetPlantRecommendations(ctx context.Context, speciesID id.SpeciesID, userQuery string) (*models.Response, error)
	QueryKnowledge(ctx context.Context, query string) (string, error)
	IndexPlantData(ctx context.Context, speciesID id.SpeciesID) error
}

// Handler serves the /context routes.
type Handler struct {
	service   Service
	validator middleware.SubjectValidator
	logger    *slog.Logger
}

func New(service Service, validator middleware.SubjectValidator, logger *slog.Logger) *Handler {
	return &Handler{service: service, validator: validator, logger: logger}
}

// Register mounts the routes. Indexing requires a curator token.
func (h *Handler) Register(r chi.Router) {
	r.Route("/context", func(r chi.Router) {
		r.Post("/species/{id}/recommendations", h.handleRecommendations)
		r.Post("/extract", h.handleExtract)
		r.Get("/search", h.handleSearch)
		r.With(middleware.RequireCurator(h.validator, h.logger)).
			Post("/species/{id}/index", h.handleIndex)
	})
}

func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	speciesID, err := id.ParseSpeciesID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[recommendationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	resp, err := h.service.GetPlantRecommendations(ctx, speciesID, req.Query)
	if err != nil {
		h.fail(ctx, w, "failed to get plant recommendations", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// handleExtract runs the keyword extractor without touching any source.
func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[extractRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"recommendations": plantcontext.ExtractRecommendations(req.Text),
	})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query().Get("q")
	if q == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "q is required"))
		return
	}
	out, err := h.service.QueryKnowledge(ctx, q)
	if err != nil {
		h.fail(ctx, w, "failed to query knowledge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"query": q, "context": out})
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	speciesID, err := id.ParseSpeciesID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.IndexPlantData(ctx, speciesID); err != nil {
		h.fail(ctx, w, "failed to index plant data", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(w, err)
}
