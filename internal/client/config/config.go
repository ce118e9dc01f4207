package config

import "time"

// Config holds runtime settings for the sessionview CLI.
//
// Fields:
//   - ServerURL: base URL of the authentication service (scheme://host:port).
//   - StoragePath: SQLite file holding the persisted session token; ":memory:"
//     keeps the session for the lifetime of the process only.
//   - LogLevel: debug, info, warn or error; logs go to stderr.
//   - RequestTimeout: upper bound for a single API call; zero means none.
type Config struct {
	ServerURL      string
	StoragePath    string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.StoragePath = "session.db"
	c.LogLevel = "warn"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including a .env file) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
