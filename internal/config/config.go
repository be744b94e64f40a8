package config

import "time"

// Config holds runtime settings for the mxradar CLI.
//
// Fields:
//   - APIOrigin: scheme://host[:port] of the hosted backend; the client
//     appends the /api prefix itself.
//   - StateDir: directory for local state (the session database). Empty
//     means "resolve a per-user default at startup".
//   - RequestTimeout: transport-level timeout for a single API call.
type Config struct {
	APIOrigin      string        `env:"MXRADAR_API_ORIGIN"`
	StateDir       string        `env:"MXRADAR_STATE_DIR"`
	RequestTimeout time.Duration `env:"MXRADAR_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIOrigin = "https://app.mxradar.io"
	c.StateDir = ""
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, an optional JSON file, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
