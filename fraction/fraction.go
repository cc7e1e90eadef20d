package fraction

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/internal/options"
)

// maxNumerator keeps round(value*denominator) well inside int64.
const maxNumerator = 1 << 62

// Fraction is a non-negative rational number in lowest terms.
type Fraction struct {
	Numerator   int64
	Denominator int64
}

// Float64 returns the fraction as a float64.
func (f Fraction) Float64() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// IsInteger reports whether the denominator is 1.
func (f Fraction) IsInteger() bool {
	return f.Denominator == 1
}

// String renders the fraction as "n" or "n/d".
func (f Fraction) String() string {
	if f.IsInteger() {
		return strconv.FormatInt(f.Numerator, 10)
	}

	return strconv.FormatInt(f.Numerator, 10) + "/" + strconv.FormatInt(f.Denominator, 10)
}

// LaTeX renders the fraction as "n" or "\frac{n}{d}".
func (f Fraction) LaTeX() string {
	if f.IsInteger() {
		return strconv.FormatInt(f.Numerator, 10)
	}

	return fmt.Sprintf(`\frac{%d}{%d}`, f.Numerator, f.Denominator)
}

// Approximate returns the fraction the denominator search settles on for |value|.
//
// The sign of value is discarded; callers that need it track it separately.
//
// Returns:
//   - errs.ErrInvalidInput for NaN, ±Inf or invalid options
//   - errs.ErrApproximationNotConverged when |value| ≥ 2^62 or a ceiling is reached first
func Approximate(value float64, opts ...Option) (Fraction, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Fraction{}, err
	}

	return approximate(value, cfg)
}

func approximate(value float64, cfg Config) (Fraction, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Fraction{}, fmt.Errorf("%w: cannot approximate %g", errs.ErrInvalidInput, value)
	}

	target := math.Abs(value)
	if target >= maxNumerator {
		return Fraction{}, fmt.Errorf("%w: %g exceeds numerator ceiling 2^62",
			errs.ErrApproximationNotConverged, value)
	}

	tol := cfg.Tolerance

	// Walking the numerator up from 1 at denominator 1 stops at the first n >= target-tol,
	// so jump straight there.
	num := int64(1)
	if start := math.Ceil(target - tol); start > 1 {
		num = int64(start)
	}
	den := int64(1)

	for iter := 0; ; iter++ {
		candidate := float64(num) / float64(den)
		if math.Abs(candidate-target) <= tol {
			break
		}

		if iter >= cfg.MaxIterations {
			return Fraction{}, fmt.Errorf("%w: %g after %d iterations (denominator %d, tolerance %g)",
				errs.ErrApproximationNotConverged, value, iter, den, tol)
		}

		if candidate < target {
			num++
			continue
		}

		den++
		if den > cfg.MaxDenominator {
			return Fraction{}, fmt.Errorf("%w: %g exceeds denominator ceiling %d (tolerance %g)",
				errs.ErrApproximationNotConverged, value, cfg.MaxDenominator, tol)
		}

		scaled := math.Round(target * float64(den))
		if scaled >= maxNumerator {
			return Fraction{}, fmt.Errorf("%w: numerator overflow for %g at denominator %d",
				errs.ErrApproximationNotConverged, value, den)
		}
		num = int64(scaled)
	}

	return reduce(num, den), nil
}

func reduce(num, den int64) Fraction {
	if num == 0 {
		return Fraction{Numerator: 0, Denominator: 1}
	}

	g := gcd(num, den)

	return Fraction{Numerator: num / g, Denominator: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
