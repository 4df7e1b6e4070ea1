package cli

import (
	"os"
	"path/filepath"
	"strings"

	"serde-cli/internal/config"
)

// configDirEnv overrides the platform config directory (tests, containers).
const configDirEnv = "SERDE_CONFIG_DIR"

// userConfigDir picks the per-user config directory:
// - $SERDE_CONFIG_DIR if set (made absolute when possible)
// - else <user config dir>/serde, e.g. ~/.config/serde on Linux
func userConfigDir() (string, bool) {
	if env := strings.TrimSpace(os.Getenv(configDirEnv)); env != "" {
		if abs, err := filepath.Abs(env); err == nil {
			return abs, true
		}
		return env, true
	}
	return config.UserConfigDir(config.AppName)
}
