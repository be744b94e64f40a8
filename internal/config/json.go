package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mxradar/mxradar/internal/flagx"
	"github.com/mxradar/mxradar/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. Absent fields leave the runtime Config
// untouched, so the file can override just one setting.
type JsonConfig struct {
	APIOrigin      *string         `json:"api_origin"`
	StateDir       *string         `json:"state_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. With no flag present, nothing is loaded. Panics
// on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIOrigin != nil {
		cfg.APIOrigin = *jc.APIOrigin
	}
	if jc.StateDir != nil {
		cfg.StateDir = *jc.StateDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
