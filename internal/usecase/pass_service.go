package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/quality"
	"github.com/coolstat/coolstat/internal/platform/cache"
	"github.com/coolstat/coolstat/internal/platform/logging"
)

// ClassifyPassesInput scopes a pass query. Team and Player narrow the
// result; ExcludeThrowIns overrides the configured policy when set.
type ClassifyPassesInput struct {
	MatchID         int64  `validate:"required,gt=0"`
	Team            string `validate:"omitempty,min=1"`
	Player          string `validate:"omitempty,min=1"`
	ExcludeThrowIns *bool
}

// PassBreakdown is the classified pass set for one scope: completed and
// failed attempts, plus any integrity warnings raised while collecting.
type PassBreakdown struct {
	MatchID   int64
	Team      string
	Player    string
	Completed []event.Pass
	Failed    []event.Pass
	Warnings  []quality.Warning
}

func (b PassBreakdown) Total() int {
	return len(b.Completed) + len(b.Failed)
}

// CompletionRate returns completed/total in [0,1], or 0 for an empty set.
func (b PassBreakdown) CompletionRate() float64 {
	total := b.Total()
	if total == 0 {
		return 0
	}
	return float64(len(b.Completed)) / float64(total)
}

type PassService struct {
	matchRepo match.Repository
	eventRepo event.Repository
	policy    event.Policy
	memo      *cache.Store
	logger    *logging.Logger
}

func NewPassService(
	matchRepo match.Repository,
	eventRepo event.Repository,
	policy event.Policy,
	memo *cache.Store,
	logger *logging.Logger,
) *PassService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PassService{
		matchRepo: matchRepo,
		eventRepo: eventRepo,
		policy:    policy,
		memo:      memo,
		logger:    logger,
	}
}

func (s *PassService) Classify(ctx context.Context, input ClassifyPassesInput) (PassBreakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassService.Classify")
	defer span.End()

	input.Team = strings.TrimSpace(input.Team)
	input.Player = strings.TrimSpace(input.Player)
	if err := validateInput(ctx, input); err != nil {
		return PassBreakdown{}, err
	}

	if _, err := requireMatch(ctx, s.matchRepo, input.MatchID); err != nil {
		return PassBreakdown{}, err
	}

	excludeThrowIns := resolveFlag(input.ExcludeThrowIns, s.policy.ExcludeThrowIns)
	if s.memo == nil {
		return s.classify(ctx, input, excludeThrowIns)
	}

	key := memoKey("passes", input.MatchID,
		memoField("team", input.Team),
		memoField("player", input.Player),
		memoFlag("throwins", excludeThrowIns),
	)
	value, err := s.memo.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.classify(ctx, input, excludeThrowIns)
	})
	if err != nil {
		return PassBreakdown{}, err
	}

	breakdown, ok := value.(PassBreakdown)
	if !ok {
		return PassBreakdown{}, fmt.Errorf("unexpected cache entry for %s", key)
	}

	return breakdown, nil
}

func (s *PassService) classify(ctx context.Context, input ClassifyPassesInput, excludeThrowIns bool) (PassBreakdown, error) {
	events, err := s.eventRepo.ListByMatch(ctx, input.MatchID)
	if err != nil {
		return PassBreakdown{}, fmt.Errorf("list events by match: %w", err)
	}

	passes, warnings := event.CollectPasses(events, event.PassCriteria{
		MatchID:         input.MatchID,
		Team:            input.Team,
		Player:          input.Player,
		ExcludeThrowIns: excludeThrowIns,
	})
	completed, failed := event.SplitPasses(passes)
	logWarnings(ctx, s.logger, "pass classification", warnings)

	return PassBreakdown{
		MatchID:   input.MatchID,
		Team:      input.Team,
		Player:    input.Player,
		Completed: completed,
		Failed:    failed,
		Warnings:  warnings,
	}, nil
}
