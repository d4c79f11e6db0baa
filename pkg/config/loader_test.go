package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcadastro/registro/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"TEST_CFG_NAME" envDefault:"registro"`
	Port  int    `env:"TEST_CFG_PORT" envDefault:"8080"`
	Debug bool   `env:"TEST_CFG_DEBUG" envDefault:"false"`
}

type cachedConfig struct {
	Value string `env:"TEST_CFG_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"TEST_CFG_REQUIRED,required"`
}

type fileConfig struct {
	Value    string `env:"TEST_FILE_VALUE"`
	Priority string `env:"TEST_FILE_PRIORITY"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, defaultsConfig{Name: "registro", Port: 8080}, cfg)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_CFG_PORT", "9090")
		t.Setenv("TEST_CFG_DEBUG", "true")

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 9090, cfg.Port)
		assert.True(t, cfg.Debug)
	})

	t.Run("values are cached per type", func(t *testing.T) {
		config.ResetCache()
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CFG_CACHED", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)

		config.ResetCache()
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "second", second.Value)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.ResetCache()
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads file without overriding the environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_FILE_PRIORITY", "env")
		t.Setenv("TEST_FILE_VALUE", "")

		require.NoError(t, config.LoadEnv("testdata/test.env"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "env", cfg.Priority)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadEnvFile)
	})
}
