package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
)

// MinSamples is the smallest dataset Fit accepts.
const MinSamples = 2

// sums holds the running sums of the closed-form least-squares solution.
type sums struct {
	n     float64
	sumX  float64
	sumY  float64
	sumXY float64
	sumXX float64
}

func (s *sums) add(x, y float64) {
	s.n++
	s.sumX += x
	s.sumY += y
	s.sumXY += x * y
	s.sumXX += x * x
}

func (s *sums) finite() bool {
	return isFinite(s.sumX) && isFinite(s.sumY) && isFinite(s.sumXY) && isFinite(s.sumXX)
}

// Fit computes the least-squares line through samples.
//
// Parameters:
//   - samples: at least two finite samples whose x values are not all equal
//
// Returns:
//   - Result: slope and intercept of the fitted line
//   - error: errs.ErrInsufficientData, errs.ErrInvalidInput or errs.ErrDegenerateInput
func Fit(samples []dataset.Sample) (Result, error) {
	if len(samples) < MinSamples {
		return Result{}, fmt.Errorf("%w: regression needs at least %d samples, got %d",
			errs.ErrInsufficientData, MinSamples, len(samples))
	}

	if err := dataset.Validate(samples); err != nil {
		return Result{}, err
	}

	var s sums
	varies := false
	firstX := samples[0].X
	for _, p := range samples {
		s.add(p.X, p.Y)
		if p.X != firstX {
			varies = true
		}
	}

	if !varies {
		return Result{}, fmt.Errorf("%w: all %d samples have x = %g", errs.ErrDegenerateInput, len(samples), firstX)
	}

	return s.solve()
}

// FitXY is the columnar form of Fit.
func FitXY(xs, ys []float64) (Result, error) {
	samples, err := dataset.FromXY(xs, ys)
	if err != nil {
		return Result{}, err
	}

	return Fit(samples)
}

func (s *sums) solve() (Result, error) {
	if !s.finite() {
		return Result{}, fmt.Errorf("%w: sample sums overflow", errs.ErrInvalidInput)
	}

	denom := s.n*s.sumXX - s.sumX*s.sumX
	if math.IsNaN(denom) || math.IsInf(denom, 0) {
		return Result{}, fmt.Errorf("%w: x variance overflows", errs.ErrInvalidInput)
	}
	if denom <= 0 {
		return Result{}, fmt.Errorf("%w: x variance evaluates to %g", errs.ErrDegenerateInput, denom)
	}

	slope := (s.n*s.sumXY - s.sumX*s.sumY) / denom
	intercept := (s.sumY - slope*s.sumX) / s.n

	if !isFinite(slope) || !isFinite(intercept) {
		return Result{}, fmt.Errorf("%w: non-finite coefficients (slope %g, intercept %g)",
			errs.ErrInvalidInput, slope, intercept)
	}

	return Result{Slope: slope, Intercept: intercept}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
