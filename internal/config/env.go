package config

import "github.com/caarlos0/env/v10"

// parseEnv overlays Config with MXRADAR_* environment variables. Unset
// variables leave the current values untouched. Panics on malformed values
// (e.g. an unparsable duration), matching the other loaders.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
