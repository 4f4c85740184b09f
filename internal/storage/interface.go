package storage

import (
	"context"
	"time"
)

// Client defines the operations a dashboard store must support.
type Client interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file inside the dashboard folder for timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// GetLatestDashboard returns the path of the most recent dashboard
	GetLatestDashboard() (string, error)

	// ListDashboards lists recent dashboards, newest first
	ListDashboards(ctx context.Context, limit int) ([]string, error)
}
