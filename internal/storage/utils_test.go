package storage

import (
	"testing"
	"time"
)

func TestDashboardFolderPath(t *testing.T) {
	tests := []struct {
		name      string
		timestamp time.Time
		expected  string
	}{
		{
			name:      "standard timestamp",
			timestamp: time.Date(2026, 8, 30, 14, 30, 45, 0, time.UTC),
			expected:  "dashboards/2026/08/30/RainfallDashboard-2026-08-30-14-30-45",
		},
		{
			name:      "single digit components",
			timestamp: time.Date(2026, 1, 5, 9, 5, 3, 0, time.UTC),
			expected:  "dashboards/2026/01/05/RainfallDashboard-2026-01-05-09-05-03",
		},
		{
			name:      "midnight",
			timestamp: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			expected:  "dashboards/2026/12/31/RainfallDashboard-2026-12-31-00-00-00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DashboardFolderPath(tt.timestamp); got != tt.expected {
				t.Errorf("DashboardFolderPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"index.html", "text/html"},
		{"rainfall.csv", "text/csv"},
		{"figure.json", "application/json"},
		{"rainfall.png", "image/png"},
		{"styles.css", "text/css"},
		{"README.md", "text/markdown"},
		{"notes.txt", "text/plain"},
		{"archive.zip", "application/octet-stream"},
		{"no-extension", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := ContentType(tt.filename); got != tt.expected {
				t.Errorf("ContentType(%q) = %q, want %q", tt.filename, got, tt.expected)
			}
		})
	}
}
