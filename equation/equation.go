// Package equation renders a fitted line as "y = ax + b" with fractional coefficients.
package equation

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/fraction"
	"github.com/arloliu/linefit/internal/options"
	"github.com/arloliu/linefit/regression"
)

// Style selects how fractions are written.
type Style uint8

const (
	// StylePlain writes fractions as "n/d".
	StylePlain Style = iota
	// StyleLaTeX writes fractions as "\frac{n}{d}", ready for a math typesetter.
	StyleLaTeX
)

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleLaTeX:
		return "latex"
	default:
		return "unknown"
	}
}

// Sign is the sign of a coefficient, kept apart from its magnitude until rendering.
type Sign int8

const (
	// Positive marks a coefficient that is zero or above.
	Positive Sign = 1
	// Negative marks a coefficient below zero.
	Negative Sign = -1
)

// SignOf returns Negative for values below zero and Positive otherwise.
func SignOf(v float64) Sign {
	if v < 0 {
		return Negative
	}

	return Positive
}

// Term is a coefficient split into its sign and the fraction approximating its magnitude.
type Term struct {
	Sign     Sign
	Fraction fraction.Fraction
}

// Config holds formatting options.
type Config struct {
	Style    Style
	Fraction []fraction.Option
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithStyle selects plain or LaTeX fractions.
func WithStyle(style Style) Option {
	return options.New(func(cfg *Config) error {
		if style != StylePlain && style != StyleLaTeX {
			return fmt.Errorf("%w: unknown equation style %d", errs.ErrInvalidInput, style)
		}
		cfg.Style = style

		return nil
	})
}

// WithFractionOptions forwards options to the fraction approximation of each coefficient.
func WithFractionOptions(opts ...fraction.Option) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Fraction = append(cfg.Fraction, opts...)
	})
}

// WithTolerance is shorthand for WithFractionOptions(fraction.WithTolerance(t)).
func WithTolerance(tolerance float64) Option {
	return WithFractionOptions(fraction.WithTolerance(tolerance))
}

// WithMaxDenominator is shorthand for WithFractionOptions(fraction.WithMaxDenominator(d)).
func WithMaxDenominator(maxDenominator int64) Option {
	return WithFractionOptions(fraction.WithMaxDenominator(maxDenominator))
}

// NewTerm approximates |v| and records the sign of v.
func NewTerm(v float64, opts ...fraction.Option) (Term, error) {
	f, err := fraction.Approximate(v, opts...)
	if err != nil {
		return Term{}, err
	}

	return Term{Sign: SignOf(v), Fraction: f}, nil
}

// Format renders result as "y = <slope>x<intercept>".
//
// The slope is written with a leading "-" when negative and not approximated by 0. The intercept is omitted when it
// rounds to 0.00, otherwise it is appended as " + b" or " - b". Both coefficients are
// shown as the fraction approximating their absolute value.
//
// Returns errs.ErrInvalidInput for non-finite coefficients and
// errs.ErrApproximationNotConverged when a coefficient cannot be approximated.
func Format(result regression.Result, opts ...Option) (string, error) {
	cfg := Config{Style: StylePlain}
	if err := options.Apply(&cfg, opts...); err != nil {
		return "", err
	}

	if math.IsNaN(result.Slope) || math.IsInf(result.Slope, 0) ||
		math.IsNaN(result.Intercept) || math.IsInf(result.Intercept, 0) {
		return "", fmt.Errorf("%w: cannot format %s", errs.ErrInvalidInput, result)
	}

	slope, err := NewTerm(result.Slope, cfg.Fraction...)
	if err != nil {
		return "", fmt.Errorf("slope: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("y = ")
	// A slope that approximates to 0 is written without a sign.
	if slope.Sign == Negative && slope.Fraction.Numerator != 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(render(slope.Fraction, cfg.Style))
	sb.WriteByte('x')

	if roundsToZero(result.Intercept) {
		return sb.String(), nil
	}

	intercept, err := NewTerm(result.Intercept, cfg.Fraction...)
	if err != nil {
		return "", fmt.Errorf("intercept: %w", err)
	}

	if intercept.Sign == Negative {
		sb.WriteString(" - ")
	} else {
		sb.WriteString(" + ")
	}
	sb.WriteString(render(intercept.Fraction, cfg.Style))

	return sb.String(), nil
}

func render(f fraction.Fraction, style Style) string {
	if style == StyleLaTeX {
		return f.LaTeX()
	}

	return f.String()
}

// roundsToZero reports whether v prints as 0.00 with two decimals.
func roundsToZero(v float64) bool {
	return fmt.Sprintf("%.2f", math.Abs(v)) == "0.00"
}
