package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	conservationcache "botanica/internal/conservation/cache"
	conservationmetrics "botanica/internal/conservation/metrics"
	conservationservice "botanica/internal/conservation/service"
	"botanica/internal/conservation/source/disabled"
	"botanica/internal/conservation/source/fake"
	"botanica/internal/conservation/source/iucn"
	conservationstore "botanica/internal/conservation/store"
	darwinmetrics "botanica/internal/darwincore/metrics"
	darwinservice "botanica/internal/darwincore/service"
	darwinstore "botanica/internal/darwincore/store"
	jwttoken "botanica/internal/jwt_token"
	contextmetrics "botanica/internal/plantcontext/metrics"
	contextservice "botanica/internal/plantcontext/service"
	contextdisabled "botanica/internal/plantcontext/source/disabled"
	"botanica/internal/plantcontext/source/contextlite"
	"botanica/internal/plantcontext/source/local"
	"botanica/internal/platform/config"
	"botanica/internal/platform/postgres"
	platformredis "botanica/internal/platform/redis"
	taxonomyservice "botanica/internal/taxonomy/service"
	taxonomystore "botanica/internal/taxonomy/store"
	"botanica/pkg/platform/audit"
	auditpublisher "botanica/pkg/platform/audit/publisher"
	auditkafka "botanica/pkg/platform/audit/store/kafka"
	auditmemory "botanica/pkg/platform/audit/store/memory"
	"botanica/pkg/platform/circuit"
)

// app owns every long-lived dependency of the process. Commands build one,
// use the parts they need, and close it.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry

	db    *sql.DB
	pool  *pgxpool.Pool
	redis *platformredis.Client

	audit      *auditpublisher.Publisher
	auditStore audit.Store
	jwt        *jwttoken.JWTService
	breaker    *circuit.Breaker

	taxonomyStore taxonomyservice.Store
	taxonomy      *taxonomyservice.Service
	darwinCore    *darwinservice.Service
	conservation  *conservationservice.Service
	snapshots     conservationservice.SnapshotStore
	plantContext  *contextservice.Service

	closers []func()
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		jwt:      jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience),
	}
	a.registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	steps := []func(context.Context) error{
		a.openDatabase,
		a.openRedis,
		a.openAudit,
		a.buildTaxonomy,
		a.buildDarwinCore,
		a.buildConservation,
		a.buildContext,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			a.close()
			return nil, err
		}
	}
	return a, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *app) openDatabase(ctx context.Context) error {
	if a.cfg.Database.URL == "" {
		a.logger.Info("no database configured, using in-memory stores")
		return nil
	}
	db, err := postgres.Open(ctx, a.cfg.Database.URL, a.cfg.Database.MaxOpenConns)
	if err != nil {
		return err
	}
	a.db = db
	a.closers = append(a.closers, func() { _ = db.Close() })

	if a.cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		a.logger.Info("database migrations applied")
	}

	pool, err := postgres.OpenPool(ctx, a.cfg.Database.URL, a.cfg.Database.MaxOpenConns)
	if err != nil {
		return err
	}
	a.pool = pool
	a.closers = append(a.closers, pool.Close)
	return nil
}

func (a *app) openRedis(ctx context.Context) error {
	client, err := platformredis.New(ctx, a.cfg.Redis)
	if err != nil {
		return err
	}
	if client != nil {
		a.redis = client
		a.closers = append(a.closers, func() { _ = client.Close() })
	}
	return nil
}

func (a *app) openAudit(ctx context.Context) error {
	if len(a.cfg.Audit.Brokers) == 0 {
		a.auditStore = auditmemory.NewInMemoryStore()
	} else {
		store, err := auditkafka.New(a.cfg.Audit.Brokers, a.cfg.Audit.Topic)
		if err != nil {
			return err
		}
		if err := store.EnsureTopic(ctx, 1, 1); err != nil {
			a.logger.Warn("could not ensure audit topic", "topic", a.cfg.Audit.Topic, "error", err)
		}
		a.auditStore = store
		a.closers = append(a.closers, store.Close)
	}

	a.audit = auditpublisher.NewPublisher(a.auditStore,
		auditpublisher.WithAsyncBuffer(a.cfg.Audit.Buffer),
		auditpublisher.WithLogger(a.logger),
	)
	a.closers = append(a.closers, a.audit.Close)
	return nil
}

func (a *app) buildTaxonomy(context.Context) error {
	a.taxonomyStore = taxonomystore.NewInMemory()
	if a.pool != nil {
		a.taxonomyStore = taxonomystore.NewPostgres(a.pool)
	}
	a.taxonomy = taxonomyservice.New(a.taxonomyStore,
		taxonomyservice.WithLogger(a.logger),
		taxonomyservice.WithAuditPublisher(a.audit),
	)
	return nil
}

// buildDarwinCore reads species from the taxonomy store so both modules see
// the same data.
func (a *app) buildDarwinCore(context.Context) error {
	var occurrences darwinservice.OccurrenceStore = darwinstore.NewInMemory()
	if a.pool != nil {
		occurrences = darwinstore.NewPostgres(a.pool)
	}
	a.darwinCore = darwinservice.New(a.taxonomyStore, occurrences,
		darwinservice.WithLogger(a.logger),
		darwinservice.WithMetrics(darwinmetrics.New(a.registry)),
		darwinservice.WithAuditPublisher(a.audit),
	)
	return nil
}

func (a *app) buildConservation(context.Context) error {
	src, err := a.conservationSource()
	if err != nil {
		return err
	}

	var cache conservationservice.Cache = conservationcache.NewInMemory(a.cfg.Conservation.CacheTTL)
	if a.redis != nil {
		cache = conservationcache.NewRedis(a.redis.Client, a.cfg.Conservation.CacheTTL)
	}
	a.snapshots = conservationstore.NewInMemory()
	if a.db != nil {
		a.snapshots = conservationstore.NewPostgres(a.db)
	}

	a.conservation = conservationservice.New(src,
		conservationservice.WithLogger(a.logger),
		conservationservice.WithMetrics(conservationmetrics.New(a.registry)),
		conservationservice.WithAuditPublisher(a.audit),
		conservationservice.WithCache(cache),
		conservationservice.WithSnapshotStore(a.snapshots),
	)
	return nil
}

func (a *app) conservationSource() (conservationservice.Source, error) {
	c := a.cfg.Conservation
	if !c.Enabled {
		return disabled.New(), nil
	}
	switch c.Source {
	case "fake":
		return fake.New(), nil
	case "iucn", "":
		client, err := iucn.New(iucn.Config{
			BaseURL:       c.BaseURL,
			Token:         c.Token,
			Timeout:       c.Timeout,
			RatePerSecond: c.RatePerSecond,
		}, iucn.WithLogger(a.logger))
		if err != nil {
			return nil, err
		}
		a.breaker = client.Breaker()
		return client, nil
	default:
		return nil, fmt.Errorf("unknown conservation source %q", c.Source)
	}
}

func (a *app) buildContext(context.Context) error {
	var src contextservice.Source
	switch {
	case !a.cfg.Context.Enabled:
		src = contextdisabled.New()
	case a.cfg.Context.BaseURL == "":
		src = local.New()
	default:
		client, err := contextlite.New(contextlite.Config{
			BaseURL:   a.cfg.Context.BaseURL,
			Token:     a.cfg.Context.Token,
			Workspace: a.cfg.Context.Workspace,
			Timeout:   a.cfg.Context.Timeout,
		}, contextlite.WithLogger(a.logger))
		if err != nil {
			return err
		}
		src = client
	}

	a.plantContext = contextservice.New(a.taxonomy, src,
		contextservice.WithLogger(a.logger),
		contextservice.WithMetrics(contextmetrics.New(a.registry)),
		contextservice.WithAuditPublisher(a.audit),
	)
	return nil
}

// requireDatabase is for commands that only make sense against PostgreSQL.
func (a *app) requireDatabase() error {
	if a.db == nil {
		return errors.New("this command needs DATABASE_URL")
	}
	return nil
}
