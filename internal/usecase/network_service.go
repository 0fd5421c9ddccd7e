package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/passnet"
	"github.com/coolstat/coolstat/internal/platform/cache"
	"github.com/coolstat/coolstat/internal/platform/logging"
)

// BuildNetworkInput scopes a pass-network build to one side of a match.
type BuildNetworkInput struct {
	MatchID         int64  `validate:"required,gt=0"`
	Team            string `validate:"required"`
	ExcludeThrowIns *bool
}

type NetworkService struct {
	matchRepo  match.Repository
	eventRepo  event.Repository
	lineupRepo lineup.Repository
	policy     event.Policy
	memo       *cache.Store
	logger     *logging.Logger
}

func NewNetworkService(
	matchRepo match.Repository,
	eventRepo event.Repository,
	lineupRepo lineup.Repository,
	policy event.Policy,
	memo *cache.Store,
	logger *logging.Logger,
) *NetworkService {
	if logger == nil {
		logger = logging.Default()
	}

	return &NetworkService{
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
		lineupRepo: lineupRepo,
		policy:     policy,
		memo:       memo,
		logger:     logger,
	}
}

func (s *NetworkService) Build(ctx context.Context, input BuildNetworkInput) (passnet.Network, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NetworkService.Build")
	defer span.End()

	input.Team = strings.TrimSpace(input.Team)
	if err := validateInput(ctx, input); err != nil {
		return passnet.Network{}, err
	}

	if _, err := requireMatchTeam(ctx, s.matchRepo, input.MatchID, input.Team); err != nil {
		return passnet.Network{}, err
	}

	excludeThrowIns := resolveFlag(input.ExcludeThrowIns, s.policy.ExcludeThrowIns)
	if s.memo == nil {
		return s.build(ctx, input, excludeThrowIns)
	}

	key := memoKey("network", input.MatchID,
		memoField("team", input.Team),
		memoFlag("throwins", excludeThrowIns),
	)
	value, err := s.memo.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.build(ctx, input, excludeThrowIns)
	})
	if err != nil {
		return passnet.Network{}, err
	}

	network, ok := value.(passnet.Network)
	if !ok {
		return passnet.Network{}, fmt.Errorf("unexpected cache entry for %s", key)
	}

	return network, nil
}

func (s *NetworkService) build(ctx context.Context, input BuildNetworkInput, excludeThrowIns bool) (passnet.Network, error) {
	events, err := s.eventRepo.ListByMatch(ctx, input.MatchID)
	if err != nil {
		return passnet.Network{}, fmt.Errorf("list events by match: %w", err)
	}

	entries, err := s.lineupRepo.ListByMatchTeam(ctx, input.MatchID, input.Team)
	if err != nil {
		return passnet.Network{}, fmt.Errorf("list lineup entries: %w", err)
	}

	network := passnet.Build(input.MatchID, input.Team, events, lineup.NewRoster(entries), passnet.Options{
		ExcludeThrowIns: excludeThrowIns,
	})
	logWarnings(ctx, s.logger, "pass network", network.Warnings)

	return network, nil
}
