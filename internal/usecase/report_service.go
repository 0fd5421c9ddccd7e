package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/coolstat/coolstat/internal/domain/density"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/passnet"
	"github.com/coolstat/coolstat/internal/platform/logging"
)

const (
	defaultReportWorkers = 4
	maxReportWorkers     = 32
)

type reportDataKind string

const (
	reportDataSheet   reportDataKind = "sheet"
	reportDataPasses  reportDataKind = "passes"
	reportDataShots   reportDataKind = "shots"
	reportDataNetwork reportDataKind = "network"
	reportDataHeatmap reportDataKind = "heatmap"
)

// ReportInput asks for the full analytics bundle of one match.
type ReportInput struct {
	MatchID          int64 `validate:"required,gt=0"`
	MaxWorkers       int   `validate:"omitempty,gte=1,lte=32"`
	ExcludeThrowIns  *bool
	ExcludePenalties *bool
}

// TeamReport bundles every per-team analytic for one side. Heatmap is
// nil when the side had too few completed passes; HeatmapNote says so.
type TeamReport struct {
	Team        string
	Sheet       lineup.Sheet
	Passes      PassBreakdown
	Shots       ShotSet
	Network     passnet.Network
	Heatmap     *density.Surface
	HeatmapNote string
}

// MatchReport is the whole-match analytics bundle, home side first.
type MatchReport struct {
	Match match.Match
	Home  TeamReport
	Away  TeamReport
}

type reportTask struct {
	side *TeamReport
	kind reportDataKind
}

// ReportService fans the independent per-team analytics of one match
// across a worker pool. Each task computes one analytic for one side;
// the per-side results land in disjoint fields, so the join needs no
// locking and is deterministic.
type ReportService struct {
	matchSvc   *MatchService
	lineupSvc  *LineupService
	passSvc    *PassService
	shotSvc    *ShotService
	networkSvc *NetworkService
	heatmapSvc *HeatmapService
	workers    int
	logger     *logging.Logger
}

func NewReportService(
	matchSvc *MatchService,
	lineupSvc *LineupService,
	passSvc *PassService,
	shotSvc *ShotService,
	networkSvc *NetworkService,
	heatmapSvc *HeatmapService,
	workers int,
	logger *logging.Logger,
) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ReportService{
		matchSvc:   matchSvc,
		lineupSvc:  lineupSvc,
		passSvc:    passSvc,
		shotSvc:    shotSvc,
		networkSvc: networkSvc,
		heatmapSvc: heatmapSvc,
		workers:    workers,
		logger:     logger,
	}
}

func (s *ReportService) Build(ctx context.Context, input ReportInput) (MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Build")
	defer span.End()

	if err := validateInput(ctx, input); err != nil {
		return MatchReport{}, err
	}

	m, err := s.matchSvc.Get(ctx, input.MatchID)
	if err != nil {
		return MatchReport{}, err
	}

	report := MatchReport{
		Match: m,
		Home:  TeamReport{Team: m.HomeTeam},
		Away:  TeamReport{Team: m.AwayTeam},
	}

	kinds := []reportDataKind{reportDataSheet, reportDataPasses, reportDataShots, reportDataNetwork, reportDataHeatmap}
	tasks := make([]reportTask, 0, 2*len(kinds))
	for _, side := range []*TeamReport{&report.Home, &report.Away} {
		for _, kind := range kinds {
			tasks = append(tasks, reportTask{side: side, kind: kind})
		}
	}

	workerCount := normalizeReportWorkerCount(input.MaxWorkers, len(tasks), s.workers)
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return MatchReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	start := time.Now()
	taskErrs := make([]error, len(tasks))

	var workers sync.WaitGroup
	for i, task := range tasks {
		i, task := i, task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			taskErrs[i] = s.runReportTask(ctx, input, task)
		}); err != nil {
			workers.Done()
			return MatchReport{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for i, taskErr := range taskErrs {
		if taskErr != nil {
			return MatchReport{}, fmt.Errorf("build %s for %s: %w", tasks[i].kind, tasks[i].side.Team, taskErr)
		}
	}

	s.logger.InfoContext(ctx, "match report built",
		"match_id", input.MatchID,
		"tasks", len(tasks),
		"workers", workerCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return report, nil
}

func (s *ReportService) runReportTask(ctx context.Context, input ReportInput, task reportTask) error {
	switch task.kind {
	case reportDataSheet:
		sheet, err := s.lineupSvc.Sheet(ctx, input.MatchID, task.side.Team)
		if err != nil {
			return err
		}
		task.side.Sheet = sheet
	case reportDataPasses:
		breakdown, err := s.passSvc.Classify(ctx, ClassifyPassesInput{
			MatchID:         input.MatchID,
			Team:            task.side.Team,
			ExcludeThrowIns: input.ExcludeThrowIns,
		})
		if err != nil {
			return err
		}
		task.side.Passes = breakdown
	case reportDataShots:
		set, err := s.shotSvc.List(ctx, ListShotsInput{
			MatchID:          input.MatchID,
			Team:             task.side.Team,
			ExcludePenalties: input.ExcludePenalties,
		})
		if err != nil {
			return err
		}
		task.side.Shots = set
	case reportDataNetwork:
		network, err := s.networkSvc.Build(ctx, BuildNetworkInput{
			MatchID:         input.MatchID,
			Team:            task.side.Team,
			ExcludeThrowIns: input.ExcludeThrowIns,
		})
		if err != nil {
			return err
		}
		task.side.Network = network
	case reportDataHeatmap:
		surface, err := s.heatmapSvc.Surface(ctx, HeatmapInput{
			MatchID:         input.MatchID,
			Team:            task.side.Team,
			ExcludeThrowIns: input.ExcludeThrowIns,
		})
		if err != nil {
			if errors.Is(err, density.ErrInsufficientData) {
				task.side.HeatmapNote = "not enough completed passes to estimate a surface"
				return nil
			}
			return err
		}
		task.side.Heatmap = surface
	default:
		return fmt.Errorf("unknown report data kind %q", task.kind)
	}

	return nil
}

func normalizeReportWorkerCount(requested, taskCount, configured int) int {
	workers := requested
	if workers <= 0 {
		workers = configured
	}
	if workers <= 0 {
		workers = defaultReportWorkers
	}
	if workers > maxReportWorkers {
		workers = maxReportWorkers
	}
	if taskCount > 0 && workers > taskCount {
		workers = taskCount
	}

	return workers
}
