package fraction

import (
	"fmt"
	"math"

	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/internal/options"
)

// Default search parameters.
const (
	DefaultTolerance      = 1e-6
	DefaultMaxDenominator = 10_000_000
	DefaultMaxIterations  = 50_000_000
)

// Config bounds the fraction search.
type Config struct {
	// Tolerance is the largest accepted |numerator/denominator - |value||.
	Tolerance float64
	// MaxDenominator is the largest denominator the search may reach.
	MaxDenominator int64
	// MaxIterations caps the number of search steps.
	MaxIterations int
}

// DefaultConfig returns the default search parameters.
func DefaultConfig() Config {
	return Config{
		Tolerance:      DefaultTolerance,
		MaxDenominator: DefaultMaxDenominator,
		MaxIterations:  DefaultMaxIterations,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithTolerance sets the acceptance tolerance. It must be finite and positive.
func WithTolerance(tolerance float64) Option {
	return options.New(func(cfg *Config) error {
		if !(tolerance > 0) || math.IsInf(tolerance, 0) {
			return fmt.Errorf("%w: tolerance must be finite and positive, got %g", errs.ErrInvalidInput, tolerance)
		}
		cfg.Tolerance = tolerance

		return nil
	})
}

// WithMaxDenominator sets the denominator ceiling.
func WithMaxDenominator(maxDenominator int64) Option {
	return options.New(func(cfg *Config) error {
		if maxDenominator < 1 {
			return fmt.Errorf("%w: max denominator must be at least 1, got %d", errs.ErrInvalidInput, maxDenominator)
		}
		cfg.MaxDenominator = maxDenominator

		return nil
	})
}

// WithMaxIterations sets the iteration ceiling.
func WithMaxIterations(maxIterations int) Option {
	return options.New(func(cfg *Config) error {
		if maxIterations < 1 {
			return fmt.Errorf("%w: max iterations must be at least 1, got %d", errs.ErrInvalidInput, maxIterations)
		}
		cfg.MaxIterations = maxIterations

		return nil
	})
}

// WithConfig replaces the whole configuration. The fields are validated like the
// individual options.
func WithConfig(c Config) Option {
	return options.New(func(cfg *Config) error {
		for _, opt := range []Option{
			WithTolerance(c.Tolerance),
			WithMaxDenominator(c.MaxDenominator),
			WithMaxIterations(c.MaxIterations),
		} {
			if err := options.Apply(cfg, opt); err != nil {
				return err
			}
		}

		return nil
	})
}
