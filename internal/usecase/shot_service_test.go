package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/quality"
	"github.com/coolstat/coolstat/internal/platform/cache"
)

func newShotService(memo *cache.Store) (*ShotService, *stubEventRepository) {
	matchRepo, eventRepo, _ := newFinalRepos()
	return NewShotService(matchRepo, eventRepo, event.DefaultPolicy(), memo, nil), eventRepo
}

func TestShotService_List_Aggregates(t *testing.T) {
	t.Parallel()

	service, _ := newShotService(nil)

	set, err := service.List(context.Background(), ListShotsInput{MatchID: finalMatchID, Team: "England"})
	if err != nil {
		t.Fatalf("list shots: %v", err)
	}

	if len(set.Shots) != 2 {
		t.Fatalf("got %d shots, want 2 (penalties kept by default)", len(set.Shots))
	}
	if set.Goals != 1 {
		t.Fatalf("goals = %d, want 1", set.Goals)
	}
	if math.Abs(set.TotalXG-0.87) > 1e-9 {
		t.Fatalf("total xG = %v, want 0.87", set.TotalXG)
	}
	if len(set.Warnings) != 1 || set.Warnings[0].Code != quality.CodeSuspectXG {
		t.Fatalf("unexpected warnings: %+v", set.Warnings)
	}
}

func TestShotService_List_ExcludePenaltiesOverride(t *testing.T) {
	t.Parallel()

	service, _ := newShotService(nil)

	exclude := true
	set, err := service.List(context.Background(), ListShotsInput{
		MatchID:          finalMatchID,
		Team:             "England",
		ExcludePenalties: &exclude,
	})
	if err != nil {
		t.Fatalf("list shots: %v", err)
	}

	if len(set.Shots) != 1 || set.Shots[0].Player != "Cole Palmer" {
		t.Fatalf("unexpected shots after penalty exclusion: %+v", set.Shots)
	}
}

func TestShotService_List_PlayerScope(t *testing.T) {
	t.Parallel()

	service, _ := newShotService(nil)

	set, err := service.List(context.Background(), ListShotsInput{
		MatchID: finalMatchID,
		Player:  "Lamine Yamal",
	})
	if err != nil {
		t.Fatalf("list shots: %v", err)
	}

	if len(set.Shots) != 1 || set.Shots[0].Goal() {
		t.Fatalf("unexpected shots for player scope: %+v", set.Shots)
	}
}

func TestShotService_List_Memoizes(t *testing.T) {
	t.Parallel()

	service, eventRepo := newShotService(cache.NewStore(0))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := service.List(ctx, ListShotsInput{MatchID: finalMatchID, Team: "Spain"}); err != nil {
			t.Fatalf("list shots: %v", err)
		}
	}
	if eventRepo.calls.Load() != 1 {
		t.Fatalf("event repository hit %d times for one scope, want 1", eventRepo.calls.Load())
	}

	// A different policy resolution is a different result set.
	exclude := true
	if _, err := service.List(ctx, ListShotsInput{MatchID: finalMatchID, Team: "Spain", ExcludePenalties: &exclude}); err != nil {
		t.Fatalf("list shots with override: %v", err)
	}
	if eventRepo.calls.Load() != 2 {
		t.Fatalf("override should compute separately, got %d calls", eventRepo.calls.Load())
	}
}
