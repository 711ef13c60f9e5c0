package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"botanica/internal/conservation/models"
	"botanica/internal/conservation/store"
	dErrors "botanica/pkg/domain-errors"
	"botanica/pkg/platform/httputil"
	"botanica/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	Lookup(ctx context.Context, scientificName string) (models.LookupResult, error)
	FetchAssessment(ctx context.Context, scientificName string) (*models.Assessment, error)
	FetchMany(ctx context.Context, names []string) (map[string]*models.Assessment, error)
	Classify(ctx context.Context, scientificName string) (*models.Classification, error)
	Threatened(ctx context.Context, limit int) ([]store.Snapshot, error)
}

// Handler serves the /conservation routes.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/conservation", func(r chi.Router) {
		r.Get("/assessments/{name}", h.handleAssessment)
		r.Post("/assessments/batch", h.handleBatch)
		r.Get("/lookups/{name}", h.handleLookup)
		r.Get("/classify/{name}", h.handleClassify)
		r.Get("/threatened", h.handleThreatened)
	})
}

// handleAssessment answers 404 both for unknown species and for an unavailable source.
func (h *Handler) handleAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a, err := h.service.FetchAssessment(ctx, scientificName(r))
	if err != nil {
		h.fail(ctx, w, "failed to fetch assessment", err)
		return
	}
	if a == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no conservation assessment available"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.service.Lookup(ctx, scientificName(r))
	if err != nil {
		h.fail(ctx, w, "failed to look up assessment", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, err := h.service.Classify(ctx, scientificName(r))
	if err != nil {
		h.fail(ctx, w, "failed to classify species", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[batchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	found, err := h.service.FetchMany(ctx, req.Names)
	if err != nil {
		h.fail(ctx, w, "failed to fetch assessments", err)
		return
	}
	for name, a := range found {
		if a == nil {
			delete(found, name)
		}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"assessments": found})
}

func (h *Handler) handleThreatened(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer"))
			return
		}
		limit = n
	}
	found, err := h.service.Threatened(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "failed to list threatened species", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"species": found})
}

func scientificName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(w, err)
}
