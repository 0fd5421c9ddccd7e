package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/coolstat/coolstat/internal/domain/density"
	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/pitch"
	"github.com/coolstat/coolstat/internal/platform/cache"
	"github.com/coolstat/coolstat/internal/platform/logging"
)

// HeatmapInput scopes a density query. The sample points are the
// origins of the scope's completed passes. Grid and Rule override the
// configured defaults when set.
type HeatmapInput struct {
	MatchID         int64  `validate:"required,gt=0"`
	Team            string `validate:"required"`
	Player          string `validate:"omitempty,min=1"`
	GridWidth       int    `validate:"omitempty,gte=2,lte=500"`
	GridHeight      int    `validate:"omitempty,gte=2,lte=500"`
	Rule            string `validate:"omitempty,oneof=scott silverman"`
	ExcludeThrowIns *bool
}

// HeatmapDefaults carries the configured grid resolution and bandwidth
// rule applied when an input leaves them zero.
type HeatmapDefaults struct {
	GridWidth  int
	GridHeight int
	Rule       string
}

type heatmapPassProvider interface {
	Classify(ctx context.Context, input ClassifyPassesInput) (PassBreakdown, error)
}

type HeatmapService struct {
	matchRepo match.Repository
	passes    heatmapPassProvider
	policy    event.Policy
	defaults  HeatmapDefaults
	memo      *cache.Store
	logger    *logging.Logger
}

func NewHeatmapService(
	matchRepo match.Repository,
	passes heatmapPassProvider,
	policy event.Policy,
	defaults HeatmapDefaults,
	memo *cache.Store,
	logger *logging.Logger,
) *HeatmapService {
	if logger == nil {
		logger = logging.Default()
	}

	return &HeatmapService{
		matchRepo: matchRepo,
		passes:    passes,
		policy:    policy,
		defaults:  defaults,
		memo:      memo,
		logger:    logger,
	}
}

// Surface estimates where the scope's completed passes start from.
// Too few or degenerate points fail with density.ErrInsufficientData;
// the caller picks the fallback presentation.
func (s *HeatmapService) Surface(ctx context.Context, input HeatmapInput) (*density.Surface, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeatmapService.Surface")
	defer span.End()

	input.Team = strings.TrimSpace(input.Team)
	input.Player = strings.TrimSpace(input.Player)
	input.Rule = strings.TrimSpace(strings.ToLower(input.Rule))
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}

	if _, err := requireMatchTeam(ctx, s.matchRepo, input.MatchID, input.Team); err != nil {
		return nil, err
	}

	if input.GridWidth == 0 {
		input.GridWidth = s.defaults.GridWidth
	}
	if input.GridHeight == 0 {
		input.GridHeight = s.defaults.GridHeight
	}
	if input.Rule == "" {
		input.Rule = s.defaults.Rule
	}

	// Pin the flag here so the memo key and the pass scope agree.
	excludeThrowIns := resolveFlag(input.ExcludeThrowIns, s.policy.ExcludeThrowIns)
	input.ExcludeThrowIns = &excludeThrowIns

	if s.memo == nil {
		return s.estimate(ctx, input)
	}

	key := memoKey("heatmap", input.MatchID,
		memoField("team", input.Team),
		memoField("player", input.Player),
		memoFlag("throwins", excludeThrowIns),
		memoField("grid", strconv.Itoa(input.GridWidth)+"x"+strconv.Itoa(input.GridHeight)),
		memoField("rule", input.Rule),
	)
	value, err := s.memo.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.estimate(ctx, input)
	})
	if err != nil {
		return nil, err
	}

	surface, ok := value.(*density.Surface)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry for %s", key)
	}

	return surface, nil
}

func (s *HeatmapService) estimate(ctx context.Context, input HeatmapInput) (*density.Surface, error) {
	breakdown, err := s.passes.Classify(ctx, ClassifyPassesInput{
		MatchID:         input.MatchID,
		Team:            input.Team,
		Player:          input.Player,
		ExcludeThrowIns: input.ExcludeThrowIns,
	})
	if err != nil {
		return nil, fmt.Errorf("classify passes for heatmap: %w", err)
	}

	points := make([]pitch.Point, 0, len(breakdown.Completed))
	for _, p := range breakdown.Completed {
		points = append(points, p.Origin)
	}

	surface, err := density.Estimate(points, density.Options{
		GridWidth:  input.GridWidth,
		GridHeight: input.GridHeight,
		Rule:       input.Rule,
	})
	if err != nil {
		return nil, err
	}

	return surface, nil
}
