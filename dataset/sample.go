package dataset

import (
	"fmt"
	"math"

	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/internal/hash"
)

// Sample is one (x, y) observation. Both coordinates must be finite.
type Sample struct {
	X float64
	Y float64
}

// String returns the sample formatted as "(x, y)".
func (s Sample) String() string {
	return fmt.Sprintf("(%g, %g)", s.X, s.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (s Sample) IsFinite() bool {
	return isFinite(s.X) && isFinite(s.Y)
}

// FromXY pairs two equally long columns into samples.
func FromXY(xs, ys []float64) ([]Sample, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: mismatched column lengths: %d x vs %d y", errs.ErrInvalidInput, len(xs), len(ys))
	}

	samples := make([]Sample, len(xs))
	for i := range xs {
		samples[i] = Sample{X: xs[i], Y: ys[i]}
	}

	return samples, nil
}

// Columns splits samples into separate x and y slices.
func Columns(samples []Sample) (xs, ys []float64) {
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
		ys[i] = s.Y
	}

	return xs, ys
}

// Validate checks that every sample is finite.
//
// The returned error wraps errs.ErrInvalidInput and names the first offending index.
func Validate(samples []Sample) error {
	for i, s := range samples {
		if !s.IsFinite() {
			return fmt.Errorf("%w: sample %d %s is not finite", errs.ErrInvalidInput, i, s)
		}
	}

	return nil
}

// Fingerprint returns an xxHash64 of the sample sequence.
//
// Equal sequences always produce equal fingerprints; the order of samples matters.
func Fingerprint(samples []Sample) uint64 {
	d := hash.NewDigest()
	for _, s := range samples {
		d.WritePair(s.X, s.Y)
	}

	return d.Sum64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
