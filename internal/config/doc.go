// Package config loads runtime configuration for the mxradar CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. MXRADAR_* environment variables (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   origin of the backend API (scheme://host[:port])
//	-s string   state directory for the local session store
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_origin": "https://app.mxradar.io",
//	  "state_dir": "/var/lib/mxradar",
//	  "request_timeout": "30s"
//	}
//
// Primary API
//
//   - type Config                     — holds APIOrigin, StateDir, RequestTimeout
//   - func LoadConfig() *Config       — defaults, then env, JSON, flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
