package model

import "time"

// Config holds the complete dashboard configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Debug     bool            `yaml:"debug" mapstructure:"debug"`
}

// ServerConfig defines the HTTP listener
type ServerConfig struct {
	Addr         string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// StoreConfig defines the sqlite match store
type StoreConfig struct {
	DSN string `yaml:"dsn" mapstructure:"dsn"` // ":memory:" keeps nothing on disk
}

// CacheConfig defines the rendered page cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// RateLimitConfig limits requests to the /api routes
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"` // 0 disables
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// DefaultConfig returns the configuration used when nothing else is set
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8050",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Store: StoreConfig{
			DSN: ":memory:",
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
		},
	}
}
