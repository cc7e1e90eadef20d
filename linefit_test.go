package linefit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/equation"
	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/regression"
)

func TestAnalyze(t *testing.T) {
	samples := []dataset.Sample{{X: 3, Y: 6}, {X: 1, Y: 2}, {X: 2, Y: 4}}

	a, err := Analyze(samples)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, a.Result.Slope, 1e-12)
	assert.InDelta(t, 0.0, a.Result.Intercept, 1e-12)
	assert.Equal(t, "y = 2x", a.Equation)
	assert.Equal(t, dataset.Extrema{MinX: 1, MaxX: 3, MinY: 2, MaxY: 6}, a.Extrema)
	assert.Equal(t, 1.0, a.Segment.Start.X)
	assert.Equal(t, 3.0, a.Segment.End.X)
	assert.InDelta(t, 2.0, a.Segment.Start.Y, 1e-12)
	assert.InDelta(t, 6.0, a.Segment.End.Y, 1e-12)
	assert.Equal(t, dataset.Fingerprint(samples), a.Fingerprint)

	p, err := a.Predict(5)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, p.Y, 1e-12)
}

func TestAnalyze_CopiesSamples(t *testing.T) {
	samples := []dataset.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}}

	a, err := Analyze(samples)
	require.NoError(t, err)

	samples[0].Y = 100
	assert.Equal(t, 2.0, a.Samples[0].Y)
}

func TestAnalyze_EquationOptions(t *testing.T) {
	a, err := Analyze(
		[]dataset.Sample{{X: 0, Y: -0.25}, {X: 2, Y: 2.75}},
		WithEquationOptions(equation.WithStyle(equation.StyleLaTeX)),
	)
	require.NoError(t, err)
	assert.Equal(t, `y = \frac{3}{2}x - \frac{1}{4}`, a.Equation)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name    string
		samples []dataset.Sample
		want    error
	}{
		{name: "empty", samples: nil, want: errs.ErrInsufficientData},
		{name: "single", samples: []dataset.Sample{{X: 1, Y: 1}}, want: errs.ErrInsufficientData},
		{name: "vertical", samples: []dataset.Sample{{X: 1, Y: 1}, {X: 1, Y: 2}}, want: errs.ErrDegenerateInput},
		{name: "nan", samples: []dataset.Sample{{X: 1, Y: math.NaN()}, {X: 2, Y: 2}}, want: errs.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Analyze(tt.samples)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Nil(t, a)
		})
	}
}

func TestAnalysis_String(t *testing.T) {
	a, err := Analyze([]dataset.Sample{{X: 1, Y: 2}, {X: 3, Y: 10}})
	require.NoError(t, err)
	assert.Equal(t, `Analysis{Samples: 2, Equation: "y = 4x - 2", Extrema{X: [1, 3], Y: [2, 10]}}`, a.String())
}

func TestAnalysis_PredictRejectsNonFinite(t *testing.T) {
	a, err := Analyze([]dataset.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}})
	require.NoError(t, err)

	_, err = a.Predict(math.Inf(1))
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	assert.Equal(t, regression.Predict(a.Result, 7), a.Result.Predict(7))
}
