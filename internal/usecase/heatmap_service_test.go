package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/coolstat/coolstat/internal/domain/density"
	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/platform/cache"
)

func newHeatmapService(memo *cache.Store) *HeatmapService {
	matchRepo, eventRepo, _ := newFinalRepos()
	passSvc := NewPassService(matchRepo, eventRepo, event.DefaultPolicy(), memo, nil)
	defaults := HeatmapDefaults{GridWidth: 40, GridHeight: 30, Rule: density.RuleScott}
	return NewHeatmapService(matchRepo, passSvc, event.DefaultPolicy(), defaults, memo, nil)
}

func TestHeatmapService_Surface(t *testing.T) {
	t.Parallel()

	service := newHeatmapService(nil)

	surface, err := service.Surface(context.Background(), HeatmapInput{MatchID: finalMatchID, Team: "Spain"})
	if err != nil {
		t.Fatalf("estimate surface: %v", err)
	}

	if len(surface.Xs) != 40 || len(surface.Ys) != 30 {
		t.Fatalf("grid is %dx%d, want 40x30", len(surface.Xs), len(surface.Ys))
	}
	if surface.Points != 4 {
		t.Fatalf("surface built from %d points, want 4 completed passes", surface.Points)
	}
	for yi, row := range surface.Values {
		for xi, v := range row {
			if v < 0 {
				t.Fatalf("negative density at [%d][%d]: %v", yi, xi, v)
			}
		}
	}
	if _, peak := surface.Peak(); peak <= 0 {
		t.Fatalf("peak density = %v, want > 0", peak)
	}
}

func TestHeatmapService_Surface_InsufficientData(t *testing.T) {
	t.Parallel()

	service := newHeatmapService(nil)

	_, err := service.Surface(context.Background(), HeatmapInput{MatchID: finalMatchID, Team: "England"})
	if !errors.Is(err, density.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for a single completed pass, got %v", err)
	}
}

func TestHeatmapService_Surface_MemoSharesResult(t *testing.T) {
	t.Parallel()

	service := newHeatmapService(cache.NewStore(0))
	ctx := context.Background()

	first, err := service.Surface(ctx, HeatmapInput{MatchID: finalMatchID, Team: "Spain"})
	if err != nil {
		t.Fatalf("estimate surface: %v", err)
	}
	second, err := service.Surface(ctx, HeatmapInput{MatchID: finalMatchID, Team: "Spain"})
	if err != nil {
		t.Fatalf("estimate surface again: %v", err)
	}
	if first != second {
		t.Fatal("expected the memoized surface pointer to be shared")
	}
}

func TestHeatmapService_Surface_UnknownTeam(t *testing.T) {
	t.Parallel()

	service := newHeatmapService(nil)

	_, err := service.Surface(context.Background(), HeatmapInput{MatchID: finalMatchID, Team: "Scotland"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHeatmapService_Surface_RejectsBadRule(t *testing.T) {
	t.Parallel()

	service := newHeatmapService(nil)

	_, err := service.Surface(context.Background(), HeatmapInput{MatchID: finalMatchID, Team: "Spain", Rule: "epanechnikov"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
