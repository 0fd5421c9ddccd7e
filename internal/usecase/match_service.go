package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/coolstat/coolstat/internal/domain/match"
)

// MatchService answers the reference queries used to pick a match:
// which competitions exist, which matches a team played, one match by id.
type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

func (s *MatchService) Competitions(ctx context.Context) ([]string, error) {
	competitions, err := s.matchRepo.ListCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	return competitions, nil
}

func (s *MatchService) ListByCompetition(ctx context.Context, competition string) ([]match.Match, error) {
	competition = strings.TrimSpace(competition)
	if competition == "" {
		return nil, fmt.Errorf("%w: competition is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListByCompetition(ctx, competition)
	if err != nil {
		return nil, fmt.Errorf("list matches by competition: %w", err)
	}

	return matches, nil
}

func (s *MatchService) ListByTeam(ctx context.Context, competition, team string) ([]match.Match, error) {
	competition = strings.TrimSpace(competition)
	team = strings.TrimSpace(team)
	if competition == "" {
		return nil, fmt.Errorf("%w: competition is required", ErrInvalidInput)
	}
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListByTeam(ctx, competition, team)
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}

	return matches, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	return requireMatch(ctx, s.matchRepo, matchID)
}

func requireMatch(ctx context.Context, repo match.Repository, matchID int64) (match.Match, error) {
	m, exists, err := repo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return m, nil
}

func requireMatchTeam(ctx context.Context, repo match.Repository, matchID int64, team string) (match.Match, error) {
	m, err := requireMatch(ctx, repo, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if !m.HasTeam(team) {
		return match.Match{}, fmt.Errorf("%w: team %s did not play match %d", ErrNotFound, team, matchID)
	}

	return m, nil
}
