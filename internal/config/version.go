package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetVersion returns the version from the environment or the VERSION file
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}
	return getBaseVersion()
}

// getBaseVersion reads the base version from the VERSION file
func getBaseVersion() string {
	for _, versionPath := range []string{"VERSION", filepath.Join("..", "VERSION")} {
		if content, err := os.ReadFile(versionPath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return "0.1.0"
}
