package storage

import (
	"fmt"
	"strings"
	"time"
)

// DashboardFolderPath generates a consistent folder path for dashboards.
// Format: dashboards/YYYY/MM/DD/RainfallDashboard-YYYY-MM-DD-HH-MM-SS
func DashboardFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("dashboards/%04d/%02d/%02d/RainfallDashboard-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// ContentType determines the MIME content type based on file extension
func ContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".csv"):
		return "text/csv"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".css"):
		return "text/css"
	case strings.HasSuffix(filename, ".md"):
		return "text/markdown"
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
