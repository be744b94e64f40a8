// Package filex resolves and prepares the local directories the client
// writes to.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStateDir returns the directory for local state, creating it if
// needed. An explicit non-empty dir wins; otherwise a per-user default
// under os.UserConfigDir is used. Session data lives here, so the
// directory is created user-only.
func EnsureStateDir(dir string) (string, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "mxradar")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
