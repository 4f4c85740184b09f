package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testCSV = `DATE,STA A,STA B
2020-01-01,10.5,0
2020-01-02,3.25,7
`

func TestFetchRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "text/csv" {
			t.Errorf("Accept header = %q, want text/csv", got)
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(testCSV))
	}))
	defer srv.Close()

	fetcher := NewDatasetFetcher(srv.URL, "")
	table, err := fetcher.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got := table.Stations(); !reflect.DeepEqual(got, []string{"STA A", "STA B"}) {
		t.Errorf("Stations() = %v", got)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestFetchLocalFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rainfall.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	fetcher := NewDatasetFetcher("", path)
	table, err := fetcher.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if table.NumStations() != 2 {
		t.Errorf("NumStations() = %d, want 2", table.NumStations())
	}
}

func TestFetchLocalMissingFile(t *testing.T) {
	fetcher := NewDatasetFetcher("", filepath.Join(t.TempDir(), "absent.csv"))
	if _, err := fetcher.Fetch(context.Background()); err == nil {
		t.Error("Fetch() expected error for missing file")
	}
}

func TestFetchLocalMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("not,a\nrainfall,table\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	fetcher := NewDatasetFetcher("", path)
	if _, err := fetcher.Fetch(context.Background()); err == nil {
		t.Error("Fetch() expected error for malformed CSV")
	}
}
