// Package linefit fits a least-squares line to a two-column dataset and prepares it for
// display.
//
// The numeric work lives in sub-packages that can be used on their own:
//
//   - regression: ordinary least-squares fit and predictions
//   - fraction: decimal to fraction approximation for display
//   - equation: "y = ax + b" rendering with fractional coefficients
//   - dataset: samples, extrema and CSV/XLSX ingestion
//   - snapshot: binary persistence of a dataset and its fit
//
// This package ties them together. Analyze runs the whole pipeline on one dataset:
//
//	samples := []dataset.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}
//	a, err := linefit.Analyze(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(a.Equation)          // y = 2x
//	fmt.Println(a.Result.Predict(5)) // 10
//
// Session keeps the most recent Analysis for interactive front ends that load a dataset
// once and then ask for many predictions.
package linefit

import (
	"fmt"
	"slices"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/equation"
	"github.com/arloliu/linefit/internal/options"
	"github.com/arloliu/linefit/regression"
)

// Analysis is everything derived from one dataset.
//
// An Analysis is never modified after Analyze returns it; loading new data produces a new
// Analysis.
type Analysis struct {
	// Samples is a private copy of the analyzed dataset.
	Samples []dataset.Sample
	// Result is the least-squares fit.
	Result regression.Result
	// Extrema holds the coordinate ranges of Samples.
	Extrema dataset.Extrema
	// Equation is the display form of Result.
	Equation string
	// Segment is the fitted line between the smallest and largest x.
	Segment regression.Segment
	// Fingerprint identifies Samples; see dataset.Fingerprint.
	Fingerprint uint64
}

// String returns a one-line summary of the analysis.
func (a *Analysis) String() string {
	return fmt.Sprintf("Analysis{Samples: %d, Equation: %q, %s}", len(a.Samples), a.Equation, a.Extrema)
}

// Predict evaluates the fitted line at x, rejecting non-finite input.
func (a *Analysis) Predict(x float64) (regression.Prediction, error) {
	return a.Result.Prediction(x)
}

// Config holds Analyze options.
type Config struct {
	Equation []equation.Option
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithEquationOptions forwards options to equation.Format.
func WithEquationOptions(opts ...equation.Option) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Equation = append(cfg.Equation, opts...)
	})
}

// Analyze fits samples and derives the extrema, equation and line segment.
//
// Returns the first error of regression.Fit, dataset.FindExtrema or equation.Format.
func Analyze(samples []dataset.Sample, opts ...Option) (*Analysis, error) {
	var cfg Config
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	result, err := regression.Fit(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to fit regression: %w", err)
	}

	ext, err := dataset.FindExtrema(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to find extrema: %w", err)
	}

	eq, err := equation.Format(result, cfg.Equation...)
	if err != nil {
		return nil, fmt.Errorf("failed to format equation: %w", err)
	}

	return &Analysis{
		Samples:     slices.Clone(samples),
		Result:      result,
		Extrema:     ext,
		Equation:    eq,
		Segment:     regression.NewSegment(result, ext),
		Fingerprint: dataset.Fingerprint(samples),
	}, nil
}
