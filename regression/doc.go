// Package regression fits a straight line to paired samples by ordinary least squares.
//
// The fit uses the closed-form solution over the running sums of the samples:
//
//	slope     = (n·Σxy − Σx·Σy) / (n·Σxx − (Σx)²)
//	intercept = (Σy − slope·Σx) / n
//
// # Usage
//
//	samples := []dataset.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}
//	result, err := regression.Fit(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	y := result.Predict(5) // 10
//
// # Errors
//
// Fit never returns a NaN or infinite coefficient. Instead it reports:
//
//   - errs.ErrInsufficientData when fewer than two samples are given
//   - errs.ErrDegenerateInput when every x is the same, so the line would be vertical
//   - errs.ErrInvalidInput when a sample is not finite or the sums overflow
//
// # Line Segment
//
// NewSegment evaluates the fitted line at the smallest and largest x of a dataset,
// giving the two endpoints a chart draws the regression line between.
//
// Every function in this package is pure and safe for concurrent use.
package regression
