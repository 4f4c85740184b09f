package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the rainfall dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8981"`

	// Dataset source: a CSV with a date index column and one column per station
	DatasetURL    string `env:"DATASET_URL"`
	LocalDataFile string `env:"LOCAL_DATA_FILE,default=./data/rainfall.csv"`

	// GCP configuration (optional for local deployments)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local deployment configuration
	LocalDashboardsDir string `env:"LOCAL_DASHBOARDS_DIR,default=./dashboards"`

	// Figure theming
	WatermarkURL  string `env:"WATERMARK_URL,default=https://hidrokit.github.io/assets/watermark.png"`
	ThemeColorway string `env:"THEME_COLORWAY"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// Colorway parses the THEME_COLORWAY override, a comma-separated color list.
// An empty override returns nil so callers fall back to the built-in cycle.
func (c *Config) Colorway() []string {
	if strings.TrimSpace(c.ThemeColorway) == "" {
		return nil
	}
	parts := strings.Split(c.ThemeColorway, ",")
	colors := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			colors = append(colors, p)
		}
	}
	return colors
}
