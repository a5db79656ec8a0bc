package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all engine configuration.
type Config struct {
	Engine EngineConfig
	Log    LogConfig
}

// EngineConfig holds parse-strategy thresholds and cache/memory settings.
type EngineConfig struct {
	// LargeThresholdBytes is the size above which the lazy strategy is used.
	LargeThresholdBytes int64 `mapstructure:"large_threshold_bytes"`
	// StreamingThresholdBytes is the size above which the streaming strategy
	// is used.
	StreamingThresholdBytes int64 `mapstructure:"streaming_threshold_bytes"`
	// CacheCapacity is the result cache entry cap before truncation pruning.
	CacheCapacity int `mapstructure:"cache_capacity"`
	// DefaultSections is what the lazy strategy parses when a caller does not
	// name sections.
	DefaultSections []string `mapstructure:"default_sections"`
	// MemoryMultiplier budgets parse-tree overhead per content byte for the
	// chunked full parse.
	MemoryMultiplier float64 `mapstructure:"memory_multiplier"`
	// MemoryMarginBytes is added on top of the estimate when the ceiling is
	// raised.
	MemoryMarginBytes int64 `mapstructure:"memory_margin_bytes"`
	// PersistentCache enables the in-process second-tier cache.
	PersistentCache bool `mapstructure:"persistent_cache"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SCHEMADOC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SCHEMADOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Engine defaults
	v.SetDefault("engine.large_threshold_bytes", 1<<20)
	v.SetDefault("engine.streaming_threshold_bytes", 5<<20)
	v.SetDefault("engine.cache_capacity", 100)
	v.SetDefault("engine.default_sections", "core")
	v.SetDefault("engine.memory_multiplier", 3.0)
	v.SetDefault("engine.memory_margin_bytes", 64<<20)
	v.SetDefault("engine.persistent_cache", false)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"engine.large_threshold_bytes":     "SCHEMADOC_ENGINE_LARGE_THRESHOLD_BYTES",
		"engine.streaming_threshold_bytes": "SCHEMADOC_ENGINE_STREAMING_THRESHOLD_BYTES",
		"engine.cache_capacity":            "SCHEMADOC_ENGINE_CACHE_CAPACITY",
		"engine.default_sections":          "SCHEMADOC_ENGINE_DEFAULT_SECTIONS",
		"engine.memory_multiplier":         "SCHEMADOC_ENGINE_MEMORY_MULTIPLIER",
		"engine.memory_margin_bytes":       "SCHEMADOC_ENGINE_MEMORY_MARGIN_BYTES",
		"engine.persistent_cache":          "SCHEMADOC_ENGINE_PERSISTENT_CACHE",
		"log.level":                        "SCHEMADOC_LOG_LEVEL",
		"log.format":                       "SCHEMADOC_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Parse default sections from comma-separated string
	var sections []string
	for _, s := range strings.Split(v.GetString("engine.default_sections"), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			sections = append(sections, s)
		}
	}

	cfg.Engine = EngineConfig{
		LargeThresholdBytes:     v.GetInt64("engine.large_threshold_bytes"),
		StreamingThresholdBytes: v.GetInt64("engine.streaming_threshold_bytes"),
		CacheCapacity:           v.GetInt("engine.cache_capacity"),
		DefaultSections:         sections,
		MemoryMultiplier:        v.GetFloat64("engine.memory_multiplier"),
		MemoryMarginBytes:       v.GetInt64("engine.memory_margin_bytes"),
		PersistentCache:         v.GetBool("engine.persistent_cache"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
