package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	conservationhandler "botanica/internal/conservation/handler"
	darwinhandler "botanica/internal/darwincore/handler"
	contexthandler "botanica/internal/plantcontext/handler"
	"botanica/internal/platform/metrics"
	"botanica/internal/platform/middleware"
	taxonomyhandler "botanica/internal/taxonomy/handler"
	dErrors "botanica/pkg/domain-errors"
	"botanica/pkg/platform/httputil"
)

const healthTimeout = 2 * time.Second

// router mounts every enabled capability behind the shared middleware chain.
func (a *app) router() http.Handler {
	httpMetrics := metrics.New(a.registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.AccessLog(a.logger))
	r.Use(httpMetrics.Middleware)

	r.Get("/health", a.handleHealth)
	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	taxonomyhandler.New(a.taxonomy, a.jwt, a.logger).Register(r)
	if a.cfg.DarwinCore.Enabled {
		darwinhandler.New(a.darwinCore, a.jwt, a.logger).Register(r)
	}
	if a.cfg.Conservation.Enabled {
		conservationhandler.New(a.conservation, a.logger).Register(r)
	}
	contexthandler.New(a.plantContext, a.jwt, a.logger).Register(r)

	r.With(middleware.RequireCurator(a.jwt, a.logger)).Get("/audit/events", a.handleAuditEvents)
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// handleHealth reports degraded rather than failing when an optional
// dependency is down; only the database is required for readiness.
func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{Status: "ok", Checks: map[string]string{}}
	status := http.StatusOK

	switch {
	case a.db == nil:
		resp.Checks["database"] = "memory"
	case a.db.PingContext(ctx) != nil:
		resp.Checks["database"] = "down"
		resp.Status = "unavailable"
		status = http.StatusServiceUnavailable
	default:
		resp.Checks["database"] = "ok"
	}

	switch {
	case a.redis == nil:
		resp.Checks["cache"] = "memory"
	case a.redis.Health(ctx) != nil:
		resp.Checks["cache"] = "down"
		resp.Status = degrade(resp.Status)
	default:
		resp.Checks["cache"] = "ok"
	}

	resp.Checks["conservation_source"] = a.conservation.SourceID()
	if a.breaker != nil {
		resp.Checks["conservation_circuit"] = a.breaker.State().String()
		if a.breaker.IsOpen() {
			resp.Status = degrade(resp.Status)
		}
	}
	resp.Checks["context_source"] = a.plantContext.SourceID()

	httputil.WriteJSON(w, status, resp)
}

func degrade(status string) string {
	if status == "ok" {
		return "degraded"
	}
	return status
}

// handleAuditEvents lists recorded events for one subject when the audit
// store keeps them.
func (a *app) handleAuditEvents(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	if subject == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "subject is required"))
		return
	}
	events, err := a.audit.List(r.Context(), subject)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "audit trail is not queryable"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"subject": subject, "events": events})
}
