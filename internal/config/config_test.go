package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemadoc/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(1<<20), cfg.Engine.LargeThresholdBytes)
	assert.Equal(t, int64(5<<20), cfg.Engine.StreamingThresholdBytes)
	assert.Equal(t, 100, cfg.Engine.CacheCapacity)
	assert.Equal(t, []string{"core"}, cfg.Engine.DefaultSections)
	assert.InDelta(t, 3.0, cfg.Engine.MemoryMultiplier, 1e-9)
	assert.Equal(t, int64(64<<20), cfg.Engine.MemoryMarginBytes)
	assert.False(t, cfg.Engine.PersistentCache)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCHEMADOC_ENGINE_CACHE_CAPACITY", "10")
	t.Setenv("SCHEMADOC_ENGINE_LARGE_THRESHOLD_BYTES", "2048")
	t.Setenv("SCHEMADOC_ENGINE_PERSISTENT_CACHE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Engine.CacheCapacity)
	assert.Equal(t, int64(2048), cfg.Engine.LargeThresholdBytes)
	assert.True(t, cfg.Engine.PersistentCache)
}

func TestLoad_DefaultSectionsCommaSeparated(t *testing.T) {
	t.Setenv("SCHEMADOC_ENGINE_DEFAULT_SECTIONS", "core, fields ,relations")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"core", "fields", "relations"}, cfg.Engine.DefaultSections)
}
