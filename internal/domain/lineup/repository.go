package lineup

import "context"

// Repository gives read access to the team-sheet table.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Entry, error)
	ListByMatchTeam(ctx context.Context, matchID int64, team string) ([]Entry, error)
}
