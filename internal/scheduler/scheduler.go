// Package scheduler periodically re-analyzes the configured symbols and
// fans the resulting reports out to the notifier, the recorder, and the
// dashboard.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/secke/quantitative-financial-agent/internal/analyzer"
	"github.com/secke/quantitative-financial-agent/internal/marketdata"
	"github.com/secke/quantitative-financial-agent/internal/model"
	"github.com/secke/quantitative-financial-agent/internal/notifier"
	"github.com/secke/quantitative-financial-agent/internal/recorder"
)

// Scheduler runs the analysis cycle on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	provider marketdata.Provider
	analyzer *analyzer.Analyzer
	notifier notifier.Notifier
	recorder recorder.Recorder
	symbols  []string
	period   string
	interval string
	ctx      context.Context

	mu     sync.RWMutex
	latest map[string]*model.Report
	series map[string]model.Series
}

// New creates a Scheduler analyzing the given symbols with the given
// period/interval hints passed through to the provider.
func New(ctx context.Context, provider marketdata.Provider, an *analyzer.Analyzer,
	nt notifier.Notifier, rec recorder.Recorder, symbols []string, period, interval string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		provider: provider,
		analyzer: an,
		notifier: nt,
		recorder: rec,
		symbols:  symbols,
		period:   period,
		interval: interval,
		ctx:      ctx,
		latest:   make(map[string]*model.Report, len(symbols)),
		series:   make(map[string]model.Series, len(symbols)),
	}
}

// Register schedules the analysis cycle.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.cron.AddFunc(cronSpec, s.runCycle); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the analysis cycle immediately (manual trigger / startup).
func (s *Scheduler) RunNow() {
	s.runCycle()
}

// Symbols lists the configured symbols.
func (s *Scheduler) Symbols() []string {
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Latest returns the most recent report and series for a symbol.
func (s *Scheduler) Latest(symbol string) (*model.Report, model.Series, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rep, ok := s.latest[symbol]
	if !ok {
		return nil, nil, false
	}
	return rep, s.series[symbol], true
}

// runCycle analyzes every symbol. The units are pure and independent, so
// symbols are processed in parallel.
func (s *Scheduler) runCycle() {
	log.Printf("[INFO] running analysis cycle for %d symbols", len(s.symbols))
	var wg sync.WaitGroup
	for _, symbol := range s.symbols {
		if s.ctx.Err() != nil {
			return
		}
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			s.analyzeSymbol(symbol)
		}(symbol)
	}
	wg.Wait()
}

func (s *Scheduler) analyzeSymbol(symbol string) {
	series, err := s.provider.Bars(symbol, s.period, s.interval)
	if err != nil {
		log.Printf("[ERROR] fetch bars for %s: %v", symbol, err)
		return
	}
	meta, err := s.provider.Metadata(symbol)
	if err != nil {
		log.Printf("[WARN] fetch metadata for %s: %v, continuing without", symbol, err)
		meta = nil
	}

	report, err := s.analyzer.Analyze(symbol, series, meta)
	if err != nil {
		if errors.Is(err, model.ErrEmptySeries) {
			log.Printf("[WARN] no data for %s", symbol)
		} else {
			log.Printf("[ERROR] analyze %s: %v", symbol, err)
		}
		return
	}

	s.mu.Lock()
	s.latest[symbol] = report
	s.series[symbol] = series
	s.mu.Unlock()

	if err := s.notifier.Notify(report); err != nil {
		log.Printf("[ERROR] notify for %s: %v", symbol, err)
	}
	if err := s.recorder.Record(report); err != nil {
		log.Printf("[ERROR] record report for %s: %v", symbol, err)
	}
}
