package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/taruma/dash-hidrokit-rainfall/internal/config"
	"github.com/taruma/dash-hidrokit-rainfall/internal/dashboard"
	"github.com/taruma/dash-hidrokit-rainfall/internal/fetchers"
	"github.com/taruma/dash-hidrokit-rainfall/internal/figures"
	"github.com/taruma/dash-hidrokit-rainfall/internal/logger"
	"github.com/taruma/dash-hidrokit-rainfall/internal/snapshot"
	"github.com/taruma/dash-hidrokit-rainfall/internal/storage"
	"github.com/taruma/dash-hidrokit-rainfall/internal/theme"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

// Server is the rainfall dashboard application server.
type Server struct {
	Config         *config.Config
	Fetcher        *fetchers.DatasetFetcher
	Figures        *figures.Builder
	Dashboard      *dashboard.Builder
	Snapshot       *snapshot.Renderer
	Storage        storage.Client
	DeploymentMode storage.DeploymentMode

	log *logger.Logger

	generateMutex sync.Mutex

	mu    sync.RWMutex
	table *timeseries.Table
}

// NewServer creates a server instance wired for the given deployment mode.
func NewServer(cfg *config.Config, deploymentMode storage.DeploymentMode) (*Server, error) {
	ctx := context.Background()

	store, err := storage.NewClient(ctx, deploymentMode, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	t := theme.Default(cfg.WatermarkURL)
	if colorway := cfg.Colorway(); len(colorway) > 0 {
		t.Colorway = colorway
	}
	fb := figures.NewBuilder(t)

	return &Server{
		Config:         cfg,
		Fetcher:        fetchers.NewDatasetFetcher(cfg.DatasetURL, cfg.LocalDataFile),
		Figures:        fb,
		Dashboard:      dashboard.NewBuilder(fb),
		Snapshot:       snapshot.NewRenderer(t),
		Storage:        store,
		DeploymentMode: deploymentMode,
		log:            logger.Global().WithComponent("server"),
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/generate", s.HandleGenerate)
	mux.HandleFunc("/dashboards", s.HandleListDashboards)
	mux.HandleFunc("/dashboards/", s.HandleFileProxy)

	mux.HandleFunc("/api/figures/rainfall", s.HandleRainfallFigure)
	mux.HandleFunc("/api/figures/maxsum", s.HandleMaximumSumFigure)
	mux.HandleFunc("/api/figures/raindry", s.HandleRainDryFigure)
	mux.HandleFunc("/api/figures/events", s.HandleMaximumEventsFigure)
	mux.HandleFunc("/api/figures/cumsum", s.HandleCumulativeSumFigure)
	mux.HandleFunc("/api/figures/consistency", s.HandleConsistencyFigure)
	mux.HandleFunc("/api/export/csv", s.HandleExportCSV)
	mux.HandleFunc("/api/snapshot.png", s.HandleSnapshot)

	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}

// loadTable returns the cached rainfall table, fetching it on first use.
func (s *Server) loadTable(ctx context.Context) (*timeseries.Table, error) {
	s.mu.RLock()
	table := s.table
	s.mu.RUnlock()
	if table != nil {
		return table, nil
	}
	return s.refreshTable(ctx)
}

// refreshTable fetches the dataset and replaces the cache.
func (s *Server) refreshTable(ctx context.Context) (*timeseries.Table, error) {
	table, err := s.Fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
	return table, nil
}
