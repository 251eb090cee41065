package marketdata

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileProvider_Bars(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "AAPL.csv", `date,open,high,low,close,volume
2024-01-03,101,103,100,102,1200
2024-01-02,100,102,99,101,1000
`)

	p := NewFileProvider(dir)
	series, err := p.Bars("aapl", "6mo", "1d")
	if err != nil {
		t.Fatalf("bars: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(series))
	}
	// rows arrive unsorted; the provider orders them by time
	if !series[0].Time.Before(series[1].Time) {
		t.Error("bars should be sorted by time ascending")
	}
	if series[0].Close != 101 || series[1].Close != 102 {
		t.Errorf("unexpected closes: %v %v", series[0].Close, series[1].Close)
	}
	if series[1].High != 103 || series[1].Low != 100 || series[1].Volume != 1200 {
		t.Errorf("unexpected bar fields: %+v", series[1])
	}
}

func TestFileProvider_NoHeader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "MSFT.csv", "2024-01-02,100,102,99,101,1000\n")

	series, err := NewFileProvider(dir).Bars("MSFT", "", "")
	if err != nil {
		t.Fatalf("bars: %v", err)
	}
	if len(series) != 1 || series[0].Close != 101 {
		t.Errorf("unexpected series: %+v", series)
	}
}

func TestFileProvider_MissingFile(t *testing.T) {
	_, err := NewFileProvider(t.TempDir()).Bars("NOPE", "", "")
	if err == nil {
		t.Fatal("expected error for missing series file")
	}
}

func TestFileProvider_BadRow(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "BAD.csv", "2024-01-02,not-a-number,102,99,101,1000\n")

	if _, err := NewFileProvider(dir).Bars("BAD", "", ""); err == nil {
		t.Fatal("expected error for unparseable row")
	}
}

func TestFileProvider_Metadata(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "AAPL.meta.yaml", `name: Apple Inc.
sector: Technology
beta: 1.25
`)

	p := NewFileProvider(dir)
	meta, err := p.Metadata("AAPL")
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if meta == nil || meta.Name != "Apple Inc." || meta.Sector != "Technology" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Beta == nil || *meta.Beta != 1.25 {
		t.Errorf("expected beta 1.25, got %v", meta.Beta)
	}

	// metadata is optional: a missing file is nil, nil
	meta, err = p.Metadata("MSFT")
	if err != nil || meta != nil {
		t.Errorf("missing metadata should be nil, nil; got %+v, %v", meta, err)
	}
}

func TestGenerateBars(t *testing.T) {
	bars := GenerateBars(100, 60)
	if len(bars) != 60 {
		t.Fatalf("expected 60 bars, got %d", len(bars))
	}
	for i, b := range bars {
		if b.High < b.Low || b.Close <= 0 {
			t.Errorf("bar %d is not well formed: %+v", i, b)
		}
		if i > 0 && b.Time.Before(bars[i-1].Time) {
			t.Errorf("bar %d out of order", i)
		}
	}
}
