package regression

import (
	"fmt"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
)

// Predictor evaluates a fitted model at x.
type Predictor interface {
	Predict(x float64) float64
}

// Result is a fitted line y = Slope·x + Intercept.
//
// A Result is a plain value. Fitting a new dataset produces a new Result; an existing one
// is never updated in place.
type Result struct {
	// Slope is the change in y per unit of x.
	Slope float64
	// Intercept is the value of y at x = 0.
	Intercept float64
}

var _ Predictor = Result{}

// NewResult builds a Result from stored coefficients, rejecting non-finite values.
func NewResult(slope, intercept float64) (Result, error) {
	if !isFinite(slope) || !isFinite(intercept) {
		return Result{}, fmt.Errorf("%w: non-finite coefficients (slope %g, intercept %g)",
			errs.ErrInvalidInput, slope, intercept)
	}

	return Result{Slope: slope, Intercept: intercept}, nil
}

// String returns a string representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("Result{Slope: %g, Intercept: %g}", r.Slope, r.Intercept)
}

// Predict returns Slope·x + Intercept.
//
// Predict never fails. A non-finite x yields a non-finite result; use Prediction to have
// that reported as an error.
func (r Result) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Prediction evaluates the line at x and reports non-finite input or output as
// errs.ErrInvalidInput.
func (r Result) Prediction(x float64) (Prediction, error) {
	if !isFinite(x) {
		return Prediction{}, fmt.Errorf("%w: cannot predict at x = %g", errs.ErrInvalidInput, x)
	}

	y := r.Predict(x)
	if !isFinite(y) {
		return Prediction{}, fmt.Errorf("%w: prediction at x = %g overflows", errs.ErrInvalidInput, x)
	}

	return Prediction{X: x, Y: y}, nil
}

// Predict returns result.Slope·x + result.Intercept.
func Predict(result Result, x float64) float64 {
	return result.Predict(x)
}

// Prediction is a point on a fitted line.
type Prediction struct {
	X float64
	Y float64
}

// String returns the prediction formatted as "(x, y)".
func (p Prediction) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Segment is the part of a fitted line spanning a dataset's x range.
type Segment struct {
	Start Prediction
	End   Prediction
}

// NewSegment evaluates result at ext.MinX and ext.MaxX.
func NewSegment(result Result, ext dataset.Extrema) Segment {
	return Segment{
		Start: Prediction{X: ext.MinX, Y: result.Predict(ext.MinX)},
		End:   Prediction{X: ext.MaxX, Y: result.Predict(ext.MaxX)},
	}
}

// String returns the segment formatted as "(x1, y1) -> (x2, y2)".
func (s Segment) String() string {
	return s.Start.String() + " -> " + s.End.String()
}
