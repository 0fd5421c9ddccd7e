package event

import "context"

// Repository gives read access to the normalized event table.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Event, error)
}
