package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalClient handles local file system storage operations
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a new local storage client
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

// Close is a no-op for local storage
func (l *LocalClient) Close() error {
	return nil
}

// StoreFile stores a file locally in the dashboard folder for timestamp
func (l *LocalClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	filePath := filepath.Join(l.baseDir, DashboardFolderPath(timestamp), filename)

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(filePath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return nil
}

// GetFile retrieves a file from local storage
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// GetLatestDashboard gets the most recent dashboard from local storage
func (l *LocalClient) GetLatestDashboard() (string, error) {
	ctx := context.Background()
	dashboards, err := l.ListDashboards(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(dashboards) == 0 {
		return "", fmt.Errorf("no dashboards found")
	}
	return dashboards[0], nil
}

// ListDashboards lists recent dashboards from local storage, newest first
func (l *LocalClient) ListDashboards(ctx context.Context, limit int) ([]string, error) {
	root := filepath.Join(l.baseDir, "dashboards")

	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.Name() == "index.html" {
			relPath, _ := filepath.Rel(l.baseDir, path)
			paths = append(paths, filepath.ToSlash(relPath))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk dashboards directory: %w", err)
	}

	sort.Strings(paths)
	for i, j := 0, len(paths)-1; i < j; i, j = i+1, j-1 {
		paths[i], paths[j] = paths[j], paths[i]
	}

	if limit > 0 && limit < len(paths) {
		paths = paths[:limit]
	}
	return paths, nil
}
