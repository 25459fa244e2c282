package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavruti/formgate/pkg/config"
)

type serverConfig struct {
	Addr    string `env:"TEST_SERVER_ADDR" envDefault:":8080"`
	Debug   bool   `env:"TEST_SERVER_DEBUG" envDefault:"false"`
	Retries int    `env:"TEST_SERVER_RETRIES" envDefault:"3"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when environment is empty", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.False(t, cfg.Debug)
		assert.Equal(t, 3, cfg.Retries)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_SERVER_ADDR", ":9999")
		t.Setenv("TEST_SERVER_DEBUG", "true")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9999", cfg.Addr)
		assert.True(t, cfg.Debug)
	})

	t.Run("fresh parse per call", func(t *testing.T) {
		t.Setenv("TEST_SERVER_RETRIES", "7")
		var first serverConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, 7, first.Retries)

		t.Setenv("TEST_SERVER_RETRIES", "9")
		var second serverConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 9, second.Retries)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[serverConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("returns populated config", func(t *testing.T) {
		t.Setenv("TEST_REQUIRED_TOKEN", "abc")
		var cfg requiredConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "abc", cfg.Token)
	})
}
