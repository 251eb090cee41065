package marketdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/secke/quantitative-financial-agent/internal/model"
)

// FileProvider serves bar series exported to disk: one <SYMBOL>.csv per
// symbol with a date,open,high,low,close,volume header row, plus an optional
// <SYMBOL>.meta.yaml with company attributes. Period and interval hints are
// properties of whoever exported the file and are ignored here.
type FileProvider struct {
	Dir string
}

// NewFileProvider creates a provider reading series files from dir.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{Dir: dir}
}

func (p *FileProvider) Name() string { return "file" }

func (p *FileProvider) Bars(symbol, _, _ string) (model.Series, error) {
	path := filepath.Join(p.Dir, strings.ToUpper(symbol)+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series for %s: %w", symbol, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read series for %s: %w", symbol, err)
	}
	if len(records) > 0 && strings.EqualFold(records[0][0], "date") {
		records = records[1:] // header row
	}

	series := make(model.Series, 0, len(records))
	for i, rec := range records {
		if len(rec) < 6 {
			return nil, fmt.Errorf("series for %s: row %d has %d columns, want 6", symbol, i+1, len(rec))
		}
		bar, err := parseBar(rec)
		if err != nil {
			return nil, fmt.Errorf("series for %s: row %d: %w", symbol, i+1, err)
		}
		series = append(series, bar)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Time.Before(series[j].Time) })
	return series, nil
}

func (p *FileProvider) Metadata(symbol string) (*model.Metadata, error) {
	path := filepath.Join(p.Dir, strings.ToUpper(symbol)+".meta.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil // metadata is optional
	}
	if err != nil {
		return nil, fmt.Errorf("read metadata for %s: %w", symbol, err)
	}
	var raw struct {
		Name      string   `yaml:"name"`
		Sector    string   `yaml:"sector"`
		Industry  string   `yaml:"industry"`
		MarketCap float64  `yaml:"market_cap"`
		Beta      *float64 `yaml:"beta"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse metadata for %s: %w", symbol, err)
	}
	return &model.Metadata{
		Name:      raw.Name,
		Sector:    raw.Sector,
		Industry:  raw.Industry,
		MarketCap: raw.MarketCap,
		Beta:      raw.Beta,
	}, nil
}

func parseBar(rec []string) (model.Bar, error) {
	ts, err := parseTime(rec[0])
	if err != nil {
		return model.Bar{}, err
	}
	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil {
			return model.Bar{}, fmt.Errorf("column %d: %w", i+2, err)
		}
		vals[i] = v
	}
	return model.Bar{
		Time:   ts,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
