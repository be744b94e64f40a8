package config

import (
	"flag"
	"os"
	"time"

	"github.com/mxradar/mxradar/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   origin of the backend API (default from Config)
//	-s string   state directory for the local session store
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, so it does not interfere with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIOrigin, "a", cfg.APIOrigin, "origin of the backend API")
	fs.StringVar(&cfg.StateDir, "s", cfg.StateDir, "state directory for the session store")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
