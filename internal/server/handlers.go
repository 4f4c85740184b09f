package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/taruma/dash-hidrokit-rainfall/internal/figures"
	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
	"github.com/taruma/dash-hidrokit-rainfall/internal/storage"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

// HandleRoot redirects to the latest dashboard, or serves a short landing
// page when none has been generated yet.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	latest, err := s.Storage.GetLatestDashboard()
	if err != nil {
		s.log.Info("No dashboards available yet", map[string]interface{}{"error": err.Error()})
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><h1>Rainfall Dashboard</h1>`+
			`<p>No dashboard generated yet. POST /generate to build one.</p></body></html>`)
		return
	}

	w.Header().Set("Location", "/dashboards/"+latest)
	w.WriteHeader(http.StatusFound)
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"storage": "ok",
			"config":  "ok",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleGenerate builds a new dashboard page and stores it.
func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.generateMutex.TryLock() {
		s.log.Warn("Dashboard generation already in progress, rejecting new request")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "Dashboard generation already in progress",
			"status": "conflict",
		})
		return
	}
	defer s.generateMutex.Unlock()

	ctx := r.Context()
	s.log.Info("Starting dashboard generation")

	table, err := s.refreshTable(ctx)
	if err != nil {
		s.log.Error("Dataset fetch failed", err)
		http.Error(w, "Dataset fetch failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	generatedAt := time.Now().UTC()
	page, err := s.Dashboard.BuildPage(table, generatedAt)
	if err != nil {
		s.log.Error("Dashboard generation failed", err)
		http.Error(w, "Dashboard generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := s.Storage.StoreFile(ctx, []byte(page), "index.html", generatedAt); err != nil {
		s.log.Error("Dashboard store failed", err)
		http.Error(w, "Dashboard store failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Store the dataset alongside the page for reproducibility.
	var csvBuf bytes.Buffer
	if err := timeseries.WriteCSV(&csvBuf, table); err == nil {
		if err := s.Storage.StoreFile(ctx, csvBuf.Bytes(), "rainfall.csv", generatedAt); err != nil {
			s.log.Warn("Dataset copy store failed", map[string]interface{}{"error": err.Error()})
		}
	}

	if png, err := s.Snapshot.RenderRainfall(table, ""); err == nil {
		if err := s.Storage.StoreFile(ctx, png, "rainfall.png", generatedAt); err != nil {
			s.log.Warn("Snapshot store failed", map[string]interface{}{"error": err.Error()})
		}
	} else {
		s.log.Warn("Snapshot render failed", map[string]interface{}{"error": err.Error()})
	}

	s.log.Info("Dashboard generation completed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"folder":    storage.DashboardFolderPath(generatedAt),
		"timestamp": generatedAt.Format(time.RFC3339),
	})
}

// HandleListDashboards lists recent dashboards
func (s *Server) HandleListDashboards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || n != 1 {
			limit = 10
		}
		if limit > 100 {
			limit = 100
		}
	}

	dashboards, err := s.Storage.ListDashboards(r.Context(), limit)
	if err != nil {
		s.log.Error("Failed to list dashboards", err)
		http.Error(w, "Failed to list dashboards: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"dashboards": dashboards,
		"count":      len(dashboards),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleFileProxy serves stored dashboard files.
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/dashboards/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		s.log.Warn("Failed to get file from storage", map[string]interface{}{
			"path":  filePath,
			"error": err.Error(),
		})
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(filePath))
	w.Write(fileData)
}

// HandleRainfallFigure serves the raw rainfall figure as graph JSON. The
// barmode query parameter selects stacked or grouped bars; oversized tables
// always degrade to a line scatter.
func (s *Server) HandleRainfallFigure(w http.ResponseWriter, r *http.Request) {
	table, ok := s.tableOr500(w, r)
	if !ok {
		return
	}
	barmode := r.URL.Query().Get("barmode")
	if barmode == "" {
		barmode = "stack"
	}
	s.writeGraph(w, s.Figures.RawRainfall(table, barmode))
}

// HandleMaximumSumFigure serves the grouped max/sum summary figure.
func (s *Server) HandleMaximumSumFigure(w http.ResponseWriter, r *http.Request) {
	summary, period, ok := s.summaryOr500(w, r)
	if !ok {
		return
	}
	s.writeGraph(w, s.Figures.MaximumSum(summary, figures.SummaryOptions{Period: period}))
}

// HandleRainDryFigure serves the stacked rainy/dry days summary figure.
func (s *Server) HandleRainDryFigure(w http.ResponseWriter, r *http.Request) {
	summary, period, ok := s.summaryOr500(w, r)
	if !ok {
		return
	}
	s.writeGraph(w, s.Figures.RainDry(summary, figures.SummaryOptions{Period: period}))
}

// HandleMaximumEventsFigure serves the maximum rainfall events bubble chart.
func (s *Server) HandleMaximumEventsFigure(w http.ResponseWriter, r *http.Request) {
	table, ok := s.tableOr500(w, r)
	if !ok {
		return
	}

	freqs := []timeseries.Frequency{timeseries.Biweekly, timeseries.Monthly, timeseries.Yearly}
	summaries, err := timeseries.SummarizeAll(table, freqs...)
	if err != nil {
		http.Error(w, "Failed to summarize dataset: "+err.Error(), http.StatusInternalServerError)
		return
	}

	periodSummaries := make([]figures.PeriodSummary, len(summaries))
	for i, summary := range summaries {
		periodSummaries[i] = figures.PeriodSummary{
			Summary: summary,
			Period:  figures.ParsePeriod(freqs[i].String()),
		}
	}
	s.writeGraph(w, s.Figures.MaximumEvents(periodSummaries, ""))
}

// HandleCumulativeSumFigure serves the cumulative annual rainfall figure for
// one station.
func (s *Server) HandleCumulativeSumFigure(w http.ResponseWriter, r *http.Request) {
	table, station, ok := s.stationOr400(w, r)
	if !ok {
		return
	}
	s.writeGraph(w, s.Figures.CumulativeSum(timeseries.CumulativeSum(table), station))
}

// HandleConsistencyFigure serves the double-mass consistency figure for one
// station.
func (s *Server) HandleConsistencyFigure(w http.ResponseWriter, r *http.Request) {
	table, station, ok := s.stationOr400(w, r)
	if !ok {
		return
	}
	s.writeGraph(w, s.Figures.Consistency(timeseries.CumulativeSum(table), station))
}

// HandleExportCSV streams the current dataset as CSV.
func (s *Server) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	table, ok := s.tableOr500(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="rainfall.csv"`)
	if err := timeseries.WriteCSV(w, table); err != nil {
		s.log.Error("CSV export failed", err)
	}
}

// HandleSnapshot renders the current dataset as a PNG line chart.
func (s *Server) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	table, ok := s.tableOr500(w, r)
	if !ok {
		return
	}

	png, err := s.Snapshot.RenderRainfall(table, "")
	if err != nil {
		http.Error(w, "Snapshot render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// tableOr500 loads the dataset, writing a 500 on failure.
func (s *Server) tableOr500(w http.ResponseWriter, r *http.Request) (*timeseries.Table, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	table, err := s.loadTable(r.Context())
	if err != nil {
		s.log.Error("Dataset load failed", err)
		http.Error(w, "Dataset load failed: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return table, true
}

// summaryOr500 loads the dataset and summarizes it at the requested period.
func (s *Server) summaryOr500(w http.ResponseWriter, r *http.Request) (*timeseries.Summary, figures.Period, bool) {
	table, ok := s.tableOr500(w, r)
	if !ok {
		return nil, "", false
	}

	period := figures.ParsePeriod(r.URL.Query().Get("period"))
	freq := timeseries.Monthly
	switch period {
	case figures.PeriodBiweekly:
		freq = timeseries.Biweekly
	case figures.PeriodYearly:
		freq = timeseries.Yearly
	case figures.PeriodMonthly:
		freq = timeseries.Monthly
	default:
		period = figures.PeriodMonthly
	}

	summary, err := timeseries.Summarize(table, freq)
	if err != nil {
		http.Error(w, "Failed to summarize dataset: "+err.Error(), http.StatusInternalServerError)
		return nil, "", false
	}
	return summary, period, true
}

// stationOr400 loads the dataset and validates the station query parameter.
func (s *Server) stationOr400(w http.ResponseWriter, r *http.Request) (*timeseries.Table, string, bool) {
	table, ok := s.tableOr500(w, r)
	if !ok {
		return nil, "", false
	}

	station := r.URL.Query().Get("station")
	if station == "" {
		http.Error(w, "station query parameter required", http.StatusBadRequest)
		return nil, "", false
	}
	for _, name := range table.Stations() {
		if name == station {
			return table, station, true
		}
	}
	http.Error(w, "unknown station: "+station, http.StatusBadRequest)
	return nil, "", false
}

// writeGraph serializes a graph object as JSON.
func (s *Server) writeGraph(w http.ResponseWriter, g *plotly.Graph) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(g); err != nil {
		s.log.Error("Failed to encode graph", err)
	}
}
