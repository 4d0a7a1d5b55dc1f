package config

import (
	"os"
	"path/filepath"
)

// userConfigCandidates lists user-level config locations in priority order.
func userConfigCandidates() []string {
	var candidates []string
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "taskman", "taskman.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".taskman", "taskman.toml"))
	}
	return candidates
}

// findUserConfigFile returns the first existing user config file, or "".
func findUserConfigFile() string {
	for _, candidate := range userConfigCandidates() {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// findProjectConfigFile returns the first existing project config file in
// the current directory, or "".
func findProjectConfigFile() string {
	for _, name := range []string{"taskman.toml", ".taskman.toml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
