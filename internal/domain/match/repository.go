package match

import "context"

// Repository gives read access to the match reference table. List
// results are ordered by match date ascending.
type Repository interface {
	ListCompetitions(ctx context.Context) ([]string, error)
	ListByCompetition(ctx context.Context, competition string) ([]Match, error)
	ListByTeam(ctx context.Context, competition, team string) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
}
