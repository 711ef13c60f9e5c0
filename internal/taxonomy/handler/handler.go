package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"botanica/internal/platform/middleware"
	"botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
	"botanica/pkg/platform/httputil"
	"botanica/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service is the subset of the taxonomy service the HTTP layer needs.
type Service interface {
	CreateFamily(ctx context.Context, req *models.CreateFamilyRequest) (*models.Family, error)
	CreateGenus(ctx context.Context, req *models.CreateGenusRequest) (*models.Genus, error)
	CreateSpecies(ctx context.Context, req *models.CreateSpeciesRequest) (*models.NamedSpecies, error)
	GetSpecies(ctx context.Context, speciesID id.SpeciesID) (*models.NamedSpecies, error)
	SearchSpecies(ctx context.Context, name string, limit int) ([]models.NamedSpecies, error)
	AddCultivationRecord(ctx context.Context, speciesID id.SpeciesID, req *models.AddRecordRequest) (*models.CultivationRecord, error)
	Snapshot(ctx context.Context, speciesID id.SpeciesID) (*models.SpeciesSnapshot, error)
}

// Handler serves the /taxonomy routes.
type Handler struct {
	service   Service
	validator middleware.SubjectValidator
	logger    *slog.Logger
}

func New(service Service, validator middleware.SubjectValidator, logger *slog.Logger) *Handler {
	return &Handler{service: service, validator: validator, logger: logger}
}

// Register mounts the routes. Writes require a curator token.
func (h *Handler) Register(r chi.Router) {
	r.Route("/taxonomy", func(r chi.Router) {
		r.Get("/species", h.handleSearchSpecies)
		r.Get("/species/{id}", h.handleGetSpecies)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCurator(h.validator, h.logger))
			r.Post("/families", h.handleCreateFamily)
			r.Post("/genera", h.handleCreateGenus)
			r.Post("/species", h.handleCreateSpecies)
			r.Post("/species/{id}/records", h.handleAddRecord)
		})
	})
}

func (h *Handler) handleCreateFamily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CreateFamilyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	family, err := h.service.CreateFamily(ctx, req)
	if err != nil {
		h.fail(ctx, w, "failed to create family", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, family)
}

func (h *Handler) handleCreateGenus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CreateGenusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	genus, err := h.service.CreateGenus(ctx, req)
	if err != nil {
		h.fail(ctx, w, "failed to create genus", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, genus)
}

func (h *Handler) handleCreateSpecies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CreateSpeciesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	species, err := h.service.CreateSpecies(ctx, req)
	if err != nil {
		h.fail(ctx, w, "failed to create species", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toSpeciesResponse(species))
}

// handleGetSpecies returns the species with its cultivation history.
func (h *Handler) handleGetSpecies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	speciesID, err := id.ParseSpeciesID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	snap, err := h.service.Snapshot(ctx, speciesID)
	if err != nil {
		h.fail(ctx, w, "failed to load species", err)
		return
	}
	resp := toSpeciesResponse(&snap.Species)
	resp.Records = snap.Records
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSearchSpecies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, badLimit)
			return
		}
		limit = n
	}
	found, err := h.service.SearchSpecies(ctx, r.URL.Query().Get("name"), limit)
	if err != nil {
		h.fail(ctx, w, "failed to search species", err)
		return
	}
	out := make([]speciesResponse, 0, len(found))
	for i := range found {
		out = append(out, toSpeciesResponse(&found[i]))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"species": out})
}

func (h *Handler) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	speciesID, err := id.ParseSpeciesID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AddRecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	rec, err := h.service.AddCultivationRecord(ctx, speciesID, req)
	if err != nil {
		h.fail(ctx, w, "failed to add cultivation record", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, rec)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(w, err)
}
