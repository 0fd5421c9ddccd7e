package density

import (
	"fmt"
	"math"
	"sort"

	crerr "github.com/cockroachdb/errors"

	"github.com/coolstat/coolstat/internal/domain/pitch"
)

// Bandwidth selection rules. Both pick a scalar factor applied to the
// sample covariance, per the classical plug-in formulas.
const (
	RuleScott     = "scott"
	RuleSilverman = "silverman"
)

// DefaultGridSize is the sample count per axis of the evaluation grid.
const DefaultGridSize = 100

const dims = 2

// degenerateDet is the determinant floor below which the covariance is
// treated as singular (identical or collinear points).
const degenerateDet = 1e-12

// ErrInsufficientData marks point sets too small or too degenerate to
// estimate a density from. Callers match it with errors.Is and decide
// the fallback; the estimator never emits a NaN surface.
var ErrInsufficientData = crerr.New("insufficient data for density estimation")

// Options tunes the evaluation grid and bandwidth rule. Zero values
// mean: 100x100 samples, Scott's rule, full pitch window.
type Options struct {
	GridWidth  int
	GridHeight int
	Rule       string
	MinX, MaxX float64
	MinY, MaxY float64
}

func (o Options) withDefaults() Options {
	if o.GridWidth == 0 {
		o.GridWidth = DefaultGridSize
	}
	if o.GridHeight == 0 {
		o.GridHeight = DefaultGridSize
	}
	if o.Rule == "" {
		o.Rule = RuleScott
	}
	if o.MinX == 0 && o.MaxX == 0 {
		o.MaxX = pitch.Length
	}
	if o.MinY == 0 && o.MaxY == 0 {
		o.MaxY = pitch.Width
	}
	return o
}

// Surface is a sampled density estimate over a window of the pitch.
// Values[yi][xi] pairs with Ys[yi] and Xs[xi]. Values are non-negative
// and are NOT normalized to sum to one over the finite grid: the
// estimate is a density over the whole plane restricted to a window.
type Surface struct {
	Xs     []float64
	Ys     []float64
	Values [][]float64
	Rule   string
	Factor float64
	Points int
}

// Peak returns the grid point with the highest density and its value.
func (s *Surface) Peak() (pitch.Point, float64) {
	best := pitch.Point{X: s.Xs[0], Y: s.Ys[0]}
	bestValue := s.Values[0][0]
	for yi, row := range s.Values {
		for xi, v := range row {
			if v > bestValue {
				bestValue = v
				best = pitch.Point{X: s.Xs[xi], Y: s.Ys[yi]}
			}
		}
	}
	return best, bestValue
}

// Estimate computes a Gaussian kernel density estimate of the point set
// on a regular inclusive grid. The bandwidth matrix is the unbiased
// sample covariance scaled by the squared rule factor. At least two
// points with non-degenerate covariance are required; otherwise the
// call fails with ErrInsufficientData. The result depends only on the
// point multiset, not its order.
func Estimate(points []pitch.Point, opts Options) (*Surface, error) {
	opts = opts.withDefaults()
	if opts.GridWidth < 2 || opts.GridHeight < 2 {
		return nil, fmt.Errorf("density grid must be at least 2x2 samples, got %dx%d", opts.GridWidth, opts.GridHeight)
	}
	if opts.MaxX <= opts.MinX || opts.MaxY <= opts.MinY {
		return nil, fmt.Errorf("density window is empty: x=[%g,%g] y=[%g,%g]", opts.MinX, opts.MaxX, opts.MinY, opts.MaxY)
	}

	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInsufficientData, n)
	}

	// Float summation is not associative, so evaluate in a canonical
	// point order: the surface must be bit-identical for any input
	// permutation. The caller's slice is never mutated.
	points = canonicalOrder(points)

	factor, err := bandwidthFactor(opts.Rule, n)
	if err != nil {
		return nil, err
	}

	cxx, cxy, cyy := sampleCovariance(points)
	sxx := cxx * factor * factor
	sxy := cxy * factor * factor
	syy := cyy * factor * factor

	det := sxx*syy - sxy*sxy
	if math.IsNaN(det) || det <= degenerateDet {
		return nil, fmt.Errorf("%w: degenerate covariance over %d points", ErrInsufficientData, n)
	}

	// Inverse of the 2x2 bandwidth matrix by cofactors.
	i11 := syy / det
	i22 := sxx / det
	i12 := -sxy / det
	norm := 1.0 / (2 * math.Pi * math.Sqrt(det) * float64(n))

	surface := &Surface{
		Xs:     linspace(opts.MinX, opts.MaxX, opts.GridWidth),
		Ys:     linspace(opts.MinY, opts.MaxY, opts.GridHeight),
		Rule:   opts.Rule,
		Factor: factor,
		Points: n,
	}

	surface.Values = make([][]float64, opts.GridHeight)
	for yi, y := range surface.Ys {
		row := make([]float64, opts.GridWidth)
		for xi, x := range surface.Xs {
			var sum float64
			for _, p := range points {
				dx := x - p.X
				dy := y - p.Y
				sum += math.Exp(-0.5 * (dx*dx*i11 + 2*dx*dy*i12 + dy*dy*i22))
			}
			row[xi] = norm * sum
		}
		surface.Values[yi] = row
	}

	return surface, nil
}

func bandwidthFactor(rule string, n int) (float64, error) {
	switch rule {
	case RuleScott:
		return math.Pow(float64(n), -1.0/(dims+4)), nil
	case RuleSilverman:
		return math.Pow(float64(n)*(dims+2)/4.0, -1.0/(dims+4)), nil
	default:
		return 0, fmt.Errorf("unknown bandwidth rule %q", rule)
	}
}

// sampleCovariance returns the unbiased (n-1 denominator) covariance of
// the point cloud.
func sampleCovariance(points []pitch.Point) (cxx, cxy, cyy float64) {
	n := float64(len(points))

	var meanX, meanY float64
	for _, p := range points {
		meanX += p.X
		meanY += p.Y
	}
	meanX /= n
	meanY /= n

	for _, p := range points {
		dx := p.X - meanX
		dy := p.Y - meanY
		cxx += dx * dx
		cxy += dx * dy
		cyy += dy * dy
	}
	denom := n - 1
	return cxx / denom, cxy / denom, cyy / denom
}

func canonicalOrder(points []pitch.Point) []pitch.Point {
	sorted := append([]pitch.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	return sorted
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
