// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// EngineConfig holds settings for the matching engine and its result cache.
type EngineConfig struct {
	// CacheBackend selects the result cache implementation: "memory" or
	// "redis".
	CacheBackend string `mapstructure:"cache_backend"`
	CacheTTL     int    `mapstructure:"cache_ttl"` // milliseconds
	// CleanupInterval drives the periodic expired-entry sweep of the
	// in-memory cache. Zero disables the sweep.
	CleanupInterval int `mapstructure:"cleanup_interval"` // milliseconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MetricsConfig holds settings for the Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
