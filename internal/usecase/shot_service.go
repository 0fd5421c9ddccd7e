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

// ListShotsInput scopes a shot query. ExcludePenalties overrides the
// configured policy when set.
type ListShotsInput struct {
	MatchID          int64  `validate:"required,gt=0"`
	Team             string `validate:"omitempty,min=1"`
	Player           string `validate:"omitempty,min=1"`
	ExcludePenalties *bool
}

// ShotSet is the shot catalog for one scope plus its aggregates.
type ShotSet struct {
	MatchID  int64
	Team     string
	Player   string
	Shots    []event.Shot
	Goals    int
	TotalXG  float64
	Warnings []quality.Warning
}

type ShotService struct {
	matchRepo match.Repository
	eventRepo event.Repository
	policy    event.Policy
	memo      *cache.Store
	logger    *logging.Logger
}

func NewShotService(
	matchRepo match.Repository,
	eventRepo event.Repository,
	policy event.Policy,
	memo *cache.Store,
	logger *logging.Logger,
) *ShotService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ShotService{
		matchRepo: matchRepo,
		eventRepo: eventRepo,
		policy:    policy,
		memo:      memo,
		logger:    logger,
	}
}

func (s *ShotService) List(ctx context.Context, input ListShotsInput) (ShotSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShotService.List")
	defer span.End()

	input.Team = strings.TrimSpace(input.Team)
	input.Player = strings.TrimSpace(input.Player)
	if err := validateInput(ctx, input); err != nil {
		return ShotSet{}, err
	}

	if _, err := requireMatch(ctx, s.matchRepo, input.MatchID); err != nil {
		return ShotSet{}, err
	}

	excludePenalties := resolveFlag(input.ExcludePenalties, s.policy.ExcludePenalties)
	if s.memo == nil {
		return s.list(ctx, input, excludePenalties)
	}

	key := memoKey("shots", input.MatchID,
		memoField("team", input.Team),
		memoField("player", input.Player),
		memoFlag("penalties", excludePenalties),
	)
	value, err := s.memo.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.list(ctx, input, excludePenalties)
	})
	if err != nil {
		return ShotSet{}, err
	}

	set, ok := value.(ShotSet)
	if !ok {
		return ShotSet{}, fmt.Errorf("unexpected cache entry for %s", key)
	}

	return set, nil
}

func (s *ShotService) list(ctx context.Context, input ListShotsInput, excludePenalties bool) (ShotSet, error) {
	events, err := s.eventRepo.ListByMatch(ctx, input.MatchID)
	if err != nil {
		return ShotSet{}, fmt.Errorf("list events by match: %w", err)
	}

	shots, warnings := event.CollectShots(events, event.ShotCriteria{
		MatchID:          input.MatchID,
		Team:             input.Team,
		Player:           input.Player,
		ExcludePenalties: excludePenalties,
	})
	logWarnings(ctx, s.logger, "shot catalog", warnings)

	set := ShotSet{
		MatchID:  input.MatchID,
		Team:     input.Team,
		Player:   input.Player,
		Shots:    shots,
		Warnings: warnings,
	}
	for _, shot := range shots {
		if shot.Goal() {
			set.Goals++
		}
		set.TotalXG += shot.XG
	}

	return set, nil
}
