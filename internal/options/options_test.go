package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Tolerance float64
	Name      string
	Calls     []string
}

func withTolerance(v float64) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if v <= 0 {
			return errors.New("tolerance must be positive")
		}
		c.Tolerance = v
		c.Calls = append(c.Calls, "tolerance")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Name = name
		c.Calls = append(c.Calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withName("a"), withTolerance(0.5), withName("b"))
		require.NoError(t, err)
		require.Equal(t, 0.5, cfg.Tolerance)
		require.Equal(t, "b", cfg.Name)
		require.Equal(t, []string{"name", "tolerance", "name"}, cfg.Calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withName("a"), withTolerance(-1), withName("b"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "tolerance must be positive")
		require.Equal(t, "a", cfg.Name)
		require.Equal(t, []string{"name"}, cfg.Calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, nil, withName("x"), nil)
		require.NoError(t, err)
		require.Equal(t, "x", cfg.Name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{Tolerance: 1}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 1.0, cfg.Tolerance)
	})
}
