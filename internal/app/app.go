// Package app assembles one process worth of the pipeline: config,
// storage, repositories, caches, and the analytics services the
// commands call.
package app

import (
	"context"
	"fmt"

	"github.com/coolstat/coolstat/external/statsbomb"
	"github.com/coolstat/coolstat/internal/config"
	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	cacherepo "github.com/coolstat/coolstat/internal/infrastructure/repository/cache"
	"github.com/coolstat/coolstat/internal/infrastructure/repository/memory"
	"github.com/coolstat/coolstat/internal/infrastructure/repository/sqlite"
	"github.com/coolstat/coolstat/internal/platform/cache"
	"github.com/coolstat/coolstat/internal/platform/logging"
	"github.com/coolstat/coolstat/internal/usecase"
)

// Options selects the data source backing the repositories.
type Options struct {
	// Demo serves the built-in fixture instead of the database, so
	// every query verb works without an ingested extract.
	Demo bool
}

// App wires the repositories and services behind the CLI verbs.
type App struct {
	Config config.Config
	Logger *logging.Logger

	Matches match.Repository
	Events  event.Repository
	Lineups lineup.Repository

	MatchSvc   *usecase.MatchService
	LineupSvc  *usecase.LineupService
	PassSvc    *usecase.PassService
	ShotSvc    *usecase.ShotService
	NetworkSvc *usecase.NetworkService
	HeatmapSvc *usecase.HeatmapService
	ReportSvc  *usecase.ReportService

	loader    *statsbomb.Loader
	store     *sqlite.Store
	repoCache *cache.Store
	memo      *cache.Store
}

func New(cfg config.Config, logger *logging.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{Config: cfg, Logger: logger}
	a.loader = statsbomb.NewLoader(logger)

	if opts.Demo {
		a.Matches = memory.NewMatchRepository(memory.SeedMatches())
		a.Events = memory.NewEventRepository(memory.SeedEvents())
		a.Lineups = memory.NewLineupRepository(memory.SeedLineups())
	} else {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
		}
		a.store = store
		a.Matches = sqlite.NewMatchRepository(store.DB())
		a.Events = sqlite.NewEventRepository(store.DB())
		a.Lineups = sqlite.NewLineupRepository(store.DB())
	}

	if cfg.CacheEnabled {
		// Two stores: cached reads are dropped wholesale after an
		// ingest; memo entries carry their full input identity in the
		// key, so between ingests they never go stale.
		a.repoCache = cache.NewStore(cfg.CacheTTL)
		a.memo = cache.NewStore(cfg.CacheTTL)
		a.Matches = cacherepo.NewMatchRepository(a.Matches, a.repoCache)
		a.Events = cacherepo.NewEventRepository(a.Events, a.repoCache)
		a.Lineups = cacherepo.NewLineupRepository(a.Lineups, a.repoCache)
	}

	policy := event.Policy{
		ExcludeThrowIns:  cfg.PassExcludeThrowIns,
		ExcludePenalties: cfg.ShotExcludePenalties,
	}
	defaults := usecase.HeatmapDefaults{
		GridWidth:  cfg.HeatmapGridWidth,
		GridHeight: cfg.HeatmapGridHeight,
		Rule:       cfg.HeatmapBandwidth,
	}

	a.MatchSvc = usecase.NewMatchService(a.Matches)
	a.LineupSvc = usecase.NewLineupService(a.Matches, a.Lineups, logger)
	a.PassSvc = usecase.NewPassService(a.Matches, a.Events, policy, a.memo, logger)
	a.ShotSvc = usecase.NewShotService(a.Matches, a.Events, policy, a.memo, logger)
	a.NetworkSvc = usecase.NewNetworkService(a.Matches, a.Events, a.Lineups, policy, a.memo, logger)
	a.HeatmapSvc = usecase.NewHeatmapService(a.Matches, a.PassSvc, policy, defaults, a.memo, logger)
	a.ReportSvc = usecase.NewReportService(
		a.MatchSvc,
		a.LineupSvc,
		a.PassSvc,
		a.ShotSvc,
		a.NetworkSvc,
		a.HeatmapSvc,
		cfg.ReportWorkers,
		logger,
	)

	logger.Debug("container ready",
		"demo", opts.Demo,
		"db", cfg.DBPath,
		"cache", cfg.CacheEnabled,
	)

	return a, nil
}

// IngestStats reports what one extract ingest wrote.
type IngestStats struct {
	Matches int `json:"matches"`
	Events  int `json:"events"`
	Lineups int `json:"lineups"`
}

// Ingest loads one competition extract and replaces its rows in the
// database, then drops every cached read and memoized result. The
// schema is migrated first, so ingesting into a fresh file works.
func (a *App) Ingest(ctx context.Context, files statsbomb.CompetitionFiles) (IngestStats, error) {
	if a.store == nil {
		return IngestStats{}, fmt.Errorf("ingest needs a database, demo mode has none")
	}

	if err := a.store.Migrate(); err != nil {
		return IngestStats{}, fmt.Errorf("migrate schema: %w", err)
	}

	extract, err := a.loader.LoadExtract(ctx, files)
	if err != nil {
		return IngestStats{}, err
	}
	if err := a.store.ReplaceExtract(ctx, extract.Matches, extract.Events, extract.Lineups); err != nil {
		return IngestStats{}, err
	}
	a.invalidate(ctx)

	return IngestStats{
		Matches: len(extract.Matches),
		Events:  len(extract.Events),
		Lineups: len(extract.Lineups),
	}, nil
}

// Migrate brings the database schema up to date.
func (a *App) Migrate() error {
	if a.store == nil {
		return fmt.Errorf("migrate needs a database, demo mode has none")
	}
	return a.store.Migrate()
}

// Close releases the database handle, if any, and flushes buffered log
// entries. Sync errors are dropped: stderr on a terminal rejects fsync.
func (a *App) Close() error {
	defer func() { _ = a.Logger.Sync() }()
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) invalidate(ctx context.Context) {
	if a.repoCache != nil {
		cacherepo.Invalidate(ctx, a.repoCache)
	}
	if a.memo != nil {
		for _, op := range []string{"passes:", "shots:", "network:", "heatmap:"} {
			a.memo.DeletePrefix(ctx, op)
		}
	}
}
