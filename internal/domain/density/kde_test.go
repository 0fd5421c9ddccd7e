package density

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/coolstat/coolstat/internal/domain/pitch"
)

func clusterPoints(n int, cx, cy, spread float64, seed int64) []pitch.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]pitch.Point, n)
	for i := range points {
		points[i] = pitch.Point{
			X: cx + rng.NormFloat64()*spread,
			Y: cy + rng.NormFloat64()*spread,
		}
	}
	return points
}

func TestEstimatePermutationInvariant(t *testing.T) {
	t.Parallel()

	points := clusterPoints(40, 60, 40, 8, 1)
	shuffled := append([]pitch.Point(nil), points...)
	rand.New(rand.NewSource(2)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	a, err := Estimate(points, Options{GridWidth: 25, GridHeight: 25})
	if err != nil {
		t.Fatalf("Estimate(unshuffled): %v", err)
	}
	b, err := Estimate(shuffled, Options{GridWidth: 25, GridHeight: 25})
	if err != nil {
		t.Fatalf("Estimate(shuffled): %v", err)
	}

	for yi := range a.Values {
		for xi := range a.Values[yi] {
			if a.Values[yi][xi] != b.Values[yi][xi] {
				t.Fatalf("surfaces differ at [%d][%d]: %v vs %v", yi, xi, a.Values[yi][xi], b.Values[yi][xi])
			}
		}
	}
}

func TestEstimateInsufficientData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []pitch.Point
	}{
		{name: "no points", points: nil},
		{name: "single point", points: []pitch.Point{{X: 60, Y: 40}}},
		{name: "identical points", points: []pitch.Point{{X: 60, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 40}}},
		{name: "collinear points", points: []pitch.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 20}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Estimate(tc.points, Options{GridWidth: 10, GridHeight: 10})
			if !errors.Is(err, ErrInsufficientData) {
				t.Fatalf("Estimate error = %v, want ErrInsufficientData", err)
			}
		})
	}
}

func TestEstimateGridShapeAndBounds(t *testing.T) {
	t.Parallel()

	surface, err := Estimate(clusterPoints(30, 60, 40, 10, 3), Options{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if len(surface.Xs) != DefaultGridSize || len(surface.Ys) != DefaultGridSize {
		t.Fatalf("grid = %dx%d, want %dx%d", len(surface.Xs), len(surface.Ys), DefaultGridSize, DefaultGridSize)
	}
	if len(surface.Values) != DefaultGridSize || len(surface.Values[0]) != DefaultGridSize {
		t.Fatalf("values shape = %dx%d", len(surface.Values), len(surface.Values[0]))
	}
	if surface.Xs[0] != 0 || surface.Xs[len(surface.Xs)-1] != pitch.Length {
		t.Fatalf("x samples span [%v,%v], want [0,%v] inclusive", surface.Xs[0], surface.Xs[len(surface.Xs)-1], pitch.Length)
	}
	if surface.Ys[0] != 0 || surface.Ys[len(surface.Ys)-1] != pitch.Width {
		t.Fatalf("y samples span [%v,%v], want [0,%v] inclusive", surface.Ys[0], surface.Ys[len(surface.Ys)-1], pitch.Width)
	}

	for yi, row := range surface.Values {
		for xi, v := range row {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("value [%d][%d] = %v, want finite non-negative", yi, xi, v)
			}
		}
	}
}

// The estimate is a plane density restricted to a window, so the mass
// inside a window that contains nearly all of the distribution should
// approach 1 without being forced to it.
func TestEstimateMassApproachesOne(t *testing.T) {
	t.Parallel()

	surface, err := Estimate(clusterPoints(60, 60, 40, 5, 4), Options{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	cellArea := (pitch.Length / float64(len(surface.Xs)-1)) * (pitch.Width / float64(len(surface.Ys)-1))
	var mass float64
	for _, row := range surface.Values {
		for _, v := range row {
			mass += v * cellArea
		}
	}

	if mass < 0.9 || mass > 1.1 {
		t.Fatalf("window mass = %v, want close to 1", mass)
	}
}

func TestEstimatePeakNearCluster(t *testing.T) {
	t.Parallel()

	surface, err := Estimate(clusterPoints(80, 30, 60, 4, 5), Options{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	peak, value := surface.Peak()
	if value <= 0 {
		t.Fatalf("peak value = %v, want positive", value)
	}
	if math.Abs(peak.X-30) > 10 || math.Abs(peak.Y-60) > 10 {
		t.Fatalf("peak at %+v, want near (30, 60)", peak)
	}
}

func TestBandwidthFactorRules(t *testing.T) {
	t.Parallel()

	const n = 64

	scott, err := bandwidthFactor(RuleScott, n)
	if err != nil {
		t.Fatalf("scott: %v", err)
	}
	if want := math.Pow(n, -1.0/6.0); scott != want {
		t.Fatalf("scott factor = %v, want %v", scott, want)
	}

	silverman, err := bandwidthFactor(RuleSilverman, n)
	if err != nil {
		t.Fatalf("silverman: %v", err)
	}
	if want := math.Pow(n*(dims+2)/4.0, -1.0/6.0); silverman != want {
		t.Fatalf("silverman factor = %v, want %v", silverman, want)
	}

	if _, err := bandwidthFactor("epanechnikov", n); err == nil {
		t.Fatal("unknown rule accepted")
	}
}
