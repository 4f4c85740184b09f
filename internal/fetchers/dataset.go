package fetchers

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/taruma/dash-hidrokit-rainfall/internal/logger"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

// DatasetFetcher loads the rainfall dataset from a remote CSV endpoint,
// falling back to a local file when no URL is configured.
type DatasetFetcher struct {
	client    *resty.Client
	url       string
	localPath string
	log       *logger.Logger
}

// NewDatasetFetcher creates a dataset fetcher. url may be empty, in which
// case Fetch reads localPath instead.
func NewDatasetFetcher(url, localPath string) *DatasetFetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &DatasetFetcher{
		client:    client,
		url:       url,
		localPath: localPath,
		log:       logger.Global().WithComponent("fetchers"),
	}
}

// Fetch retrieves and parses the rainfall dataset.
func (f *DatasetFetcher) Fetch(ctx context.Context) (*timeseries.Table, error) {
	if f.url == "" {
		return f.fetchLocal()
	}

	f.log.Info("Fetching rainfall dataset", map[string]interface{}{"url": f.url})
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rainfall dataset: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("dataset endpoint returned status %d", resp.StatusCode())
	}

	table, err := timeseries.ParseCSV(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rainfall dataset: %w", err)
	}

	f.log.Info("Rainfall dataset loaded", map[string]interface{}{
		"stations": table.NumStations(),
		"rows":     table.Len(),
	})
	return table, nil
}

func (f *DatasetFetcher) fetchLocal() (*timeseries.Table, error) {
	f.log.Info("Loading rainfall dataset from file", map[string]interface{}{"path": f.localPath})
	file, err := os.Open(f.localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open rainfall dataset: %w", err)
	}
	defer file.Close()

	table, err := timeseries.ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rainfall dataset: %w", err)
	}
	return table, nil
}
