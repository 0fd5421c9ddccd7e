package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/platform/logging"
)

// LineupService produces the team sheet for one side of a match:
// starting XI, substitutes who came on, unused bench.
type LineupService struct {
	matchRepo  match.Repository
	lineupRepo lineup.Repository
	logger     *logging.Logger
}

func NewLineupService(matchRepo match.Repository, lineupRepo lineup.Repository, logger *logging.Logger) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LineupService{
		matchRepo:  matchRepo,
		lineupRepo: lineupRepo,
		logger:     logger,
	}
}

func (s *LineupService) Sheet(ctx context.Context, matchID int64, team string) (lineup.Sheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Sheet")
	defer span.End()

	team = strings.TrimSpace(team)
	if matchID <= 0 {
		return lineup.Sheet{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}
	if team == "" {
		return lineup.Sheet{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	if _, err := requireMatchTeam(ctx, s.matchRepo, matchID, team); err != nil {
		return lineup.Sheet{}, err
	}

	entries, err := s.lineupRepo.ListByMatchTeam(ctx, matchID, team)
	if err != nil {
		return lineup.Sheet{}, fmt.Errorf("list lineup entries: %w", err)
	}

	sheet := lineup.BuildSheet(matchID, team, entries)
	logWarnings(ctx, s.logger, "lineup sheet", sheet.Warnings)

	return sheet, nil
}
