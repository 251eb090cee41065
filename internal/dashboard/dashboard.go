// Package dashboard serves the latest analysis results over HTTP: an
// ECharts candlestick page with indicator overlays per symbol, and the raw
// report as JSON for other presentation layers.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/secke/quantitative-financial-agent/internal/calculator"
	"github.com/secke/quantitative-financial-agent/internal/model"
)

// ReportSource hands out the latest report and series per symbol.
// The scheduler implements it.
type ReportSource interface {
	Symbols() []string
	Latest(symbol string) (*model.Report, model.Series, bool)
}

// Server is the dashboard HTTP server.
type Server struct {
	source ReportSource
	srv    *http.Server
}

// New creates a dashboard server bound to addr.
func New(addr string, source ReportSource) *Server {
	s := &Server{source: source}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/chart", s.handleChart)
	mux.HandleFunc("/report", s.handleReport)
	s.srv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Start serves in the background until Shutdown.
func (s *Server) Start() {
	go func() {
		log.Printf("[INFO] dashboard listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[ERROR] dashboard server: %v", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	var b strings.Builder
	b.WriteString("<html><body><h3>Symbols</h3><ul>")
	for _, sym := range s.source.Symbols() {
		b.WriteString(fmt.Sprintf(`<li><a href="/chart?symbol=%s">%s</a> (<a href="/report?symbol=%s">json</a>)</li>`, sym, sym, sym))
	}
	b.WriteString("</ul></body></html>")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(r.URL.Query().Get("symbol"))
	report, _, ok := s.source.Latest(symbol)
	if !ok {
		http.Error(w, "no report for symbol", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Printf("[ERROR] encode report: %v", err)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(r.URL.Query().Get("symbol"))
	report, series, ok := s.source.Latest(symbol)
	if !ok || series.Empty() {
		http.Error(w, "no data for symbol", http.StatusNotFound)
		return
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s | %s", symbol, report.Trend),
			Subtitle: report.Date.Format("2006-01-02"),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1600px",
			Height: "800px",
			Theme:  types.ThemeInfographic,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: true,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
			Type:       "inside",
		}),
	)

	x := make([]string, len(series))
	klineY := make([]opts.KlineData, len(series))
	for i, bar := range series {
		x[i] = bar.Time.Format("2006-01-02")
		klineY[i] = opts.KlineData{Value: []float64{bar.Open, bar.Close, bar.Low, bar.High}}
	}
	kline.SetXAxis(x).AddSeries(symbol, klineY)

	closes := series.Closes()
	upper, middle, lower := calculator.Bollinger(closes, 20, 2.0)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithYAxisOpts(opts.YAxis{Scale: true}),
	)
	line.SetXAxis(x).
		AddSeries("SMA 20", lineData(middle)).
		AddSeries("SMA 50", lineData(calculator.SMA(closes, 50))).
		AddSeries("BB upper", lineData(upper)).
		AddSeries("BB lower", lineData(lower))
	kline.Overlap(line)

	if err := kline.Render(w); err != nil {
		log.Printf("[ERROR] render chart for %s: %v", symbol, err)
	}
}

// lineData converts an aligned indicator series into chart points, leaving
// gaps where the window had not warmed up.
func lineData(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			out[i] = opts.LineData{Value: nil, SymbolSize: 0}
			continue
		}
		out[i] = opts.LineData{Value: v}
	}
	return out
}
