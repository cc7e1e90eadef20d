package regression

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
)

const floatTolerance = 1e-9

func TestFit_PerfectLine(t *testing.T) {
	result, err := Fit([]dataset.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, result.Slope, floatTolerance)
	assert.InDelta(t, 0.0, result.Intercept, floatTolerance)
}

func TestFit_KnownLines(t *testing.T) {
	tests := []struct {
		name      string
		samples   []dataset.Sample
		slope     float64
		intercept float64
	}{
		{
			name:      "negative slope with offset",
			samples:   []dataset.Sample{{X: 0, Y: 3}, {X: 2, Y: 2}, {X: 4, Y: 1}},
			slope:     -0.5,
			intercept: 3,
		},
		{
			name:      "horizontal",
			samples:   []dataset.Sample{{X: -1, Y: 7}, {X: 0, Y: 7}, {X: 5, Y: 7}},
			slope:     0,
			intercept: 7,
		},
		{
			name:      "noisy",
			samples:   []dataset.Sample{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 5}},
			slope:     1.1,
			intercept: 0,
		},
		{
			name:      "order does not matter",
			samples:   []dataset.Sample{{X: 4, Y: 5}, {X: 2, Y: 3}, {X: 1, Y: 1}, {X: 3, Y: 2}},
			slope:     1.1,
			intercept: 0,
		},
		{
			name:      "repeated x with spread",
			samples:   []dataset.Sample{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 4}},
			slope:     1.5,
			intercept: -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Fit(tt.samples)
			require.NoError(t, err)
			assert.InDelta(t, tt.slope, result.Slope, floatTolerance)
			assert.InDelta(t, tt.intercept, result.Intercept, floatTolerance)
		})
	}
}

func TestFit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		samples []dataset.Sample
		want    error
	}{
		{"empty", nil, errs.ErrInsufficientData},
		{"single sample", []dataset.Sample{{X: 1, Y: 2}}, errs.ErrInsufficientData},
		{"identical x", []dataset.Sample{{X: 5, Y: 1}, {X: 5, Y: 9}}, errs.ErrDegenerateInput},
		{"identical points", []dataset.Sample{{X: 0.1, Y: 1}, {X: 0.1, Y: 1}, {X: 0.1, Y: 1}}, errs.ErrDegenerateInput},
		{"nan", []dataset.Sample{{X: 1, Y: 2}, {X: math.NaN(), Y: 4}}, errs.ErrInvalidInput},
		{"inf", []dataset.Sample{{X: 1, Y: math.Inf(1)}, {X: 2, Y: 4}}, errs.ErrInvalidInput},
		{"overflow", []dataset.Sample{{X: 1e200, Y: 1}, {X: 2e200, Y: 2}}, errs.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Fit(tt.samples)
			require.ErrorIs(t, err, tt.want)
			require.Equal(t, Result{}, result)
		})
	}
}

func TestFitXY(t *testing.T) {
	result, err := FitXY([]float64{1, 2}, []float64{2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, result.Slope, floatTolerance)

	_, err = FitXY([]float64{1, 2, 3}, []float64{2, 4})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func randomSamples(rng *rand.Rand, n int) []dataset.Sample {
	slope := rng.Float64()*20 - 10
	intercept := rng.Float64()*200 - 100

	samples := make([]dataset.Sample, n)
	for i := range samples {
		x := rng.Float64()*100 - 50
		samples[i] = dataset.Sample{X: x, Y: slope*x + intercept + rng.NormFloat64()*5}
	}

	return samples
}

// TestFit_MatchesReference compares against gonum's least-squares implementation.
func TestFit_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		samples := randomSamples(rng, 2+rng.Intn(50))

		result, err := Fit(samples)
		require.NoError(t, err)

		xs, ys := dataset.Columns(samples)
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)

		assert.InDelta(t, beta, result.Slope, 1e-8*math.Max(1, math.Abs(beta)))
		assert.InDelta(t, alpha, result.Intercept, 1e-8*math.Max(1, math.Abs(alpha)))
	}
}

func sse(samples []dataset.Sample, slope, intercept float64) float64 {
	total := 0.0
	for _, s := range samples {
		d := s.Y - (slope*s.X + intercept)
		total += d * d
	}

	return total
}

// TestFit_MinimizesSquaredResiduals checks the fit against a grid of nearby lines.
func TestFit_MinimizesSquaredResiduals(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		samples := randomSamples(rng, 3+rng.Intn(8))

		result, err := Fit(samples)
		require.NoError(t, err)

		best := sse(samples, result.Slope, result.Intercept)
		for _, ds := range []float64{-0.1, -0.01, 0, 0.01, 0.1} {
			for _, di := range []float64{-1, -0.1, 0, 0.1, 1} {
				if ds == 0 && di == 0 {
					continue
				}
				other := sse(samples, result.Slope+ds, result.Intercept+di)
				require.GreaterOrEqual(t, other, best*(1-1e-12),
					"line (%g, %g) beats fit (%g, %g)", result.Slope+ds, result.Intercept+di, result.Slope, result.Intercept)
			}
		}
	}
}

func BenchmarkFit(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{10, 1000, 100000} {
		samples := randomSamples(rng, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Fit(samples); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
