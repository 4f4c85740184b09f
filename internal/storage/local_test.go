package storage

import (
	"context"
	"testing"
	"time"
)

func TestLocalClientRoundtrip(t *testing.T) {
	ctx := context.Background()
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient() error = %v", err)
	}
	defer client.Close()

	ts := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	content := []byte("<html>dashboard</html>")
	if err := client.StoreFile(ctx, content, "index.html", ts); err != nil {
		t.Fatalf("StoreFile() error = %v", err)
	}

	path := DashboardFolderPath(ts) + "/index.html"
	got, err := client.GetFile(ctx, path)
	if err != nil {
		t.Fatalf("GetFile(%q) error = %v", path, err)
	}
	if string(got) != string(content) {
		t.Errorf("GetFile() = %q, want %q", got, content)
	}
}

func TestLocalClientListDashboards(t *testing.T) {
	ctx := context.Background()
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient() error = %v", err)
	}
	defer client.Close()

	timestamps := []time.Time{
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	}
	for _, ts := range timestamps {
		if err := client.StoreFile(ctx, []byte("x"), "index.html", ts); err != nil {
			t.Fatalf("StoreFile() error = %v", err)
		}
		// sidecar files must not appear in the listing
		if err := client.StoreFile(ctx, []byte("y"), "rainfall.csv", ts); err != nil {
			t.Fatalf("StoreFile() error = %v", err)
		}
	}

	dashboards, err := client.ListDashboards(ctx, 10)
	if err != nil {
		t.Fatalf("ListDashboards() error = %v", err)
	}
	if len(dashboards) != 3 {
		t.Fatalf("ListDashboards() returned %d entries, want 3", len(dashboards))
	}
	if dashboards[0] != DashboardFolderPath(timestamps[1])+"/index.html" {
		t.Errorf("newest dashboard = %q, want %q", dashboards[0], DashboardFolderPath(timestamps[1])+"/index.html")
	}
	if dashboards[2] != DashboardFolderPath(timestamps[0])+"/index.html" {
		t.Errorf("oldest dashboard = %q, want %q", dashboards[2], DashboardFolderPath(timestamps[0])+"/index.html")
	}

	limited, err := client.ListDashboards(ctx, 1)
	if err != nil {
		t.Fatalf("ListDashboards(1) error = %v", err)
	}
	if len(limited) != 1 || limited[0] != dashboards[0] {
		t.Errorf("ListDashboards(1) = %v, want newest only", limited)
	}

	latest, err := client.GetLatestDashboard()
	if err != nil {
		t.Fatalf("GetLatestDashboard() error = %v", err)
	}
	if latest != dashboards[0] {
		t.Errorf("GetLatestDashboard() = %q, want %q", latest, dashboards[0])
	}
}

func TestLocalClientEmptyListing(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient() error = %v", err)
	}
	defer client.Close()

	dashboards, err := client.ListDashboards(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListDashboards() error = %v", err)
	}
	if len(dashboards) != 0 {
		t.Errorf("ListDashboards() = %v, want empty", dashboards)
	}

	if _, err := client.GetLatestDashboard(); err == nil {
		t.Error("GetLatestDashboard() expected error for empty storage")
	}
}
