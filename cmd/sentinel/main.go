package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/secke/quantitative-financial-agent/internal/analyzer"
	"github.com/secke/quantitative-financial-agent/internal/config"
	"github.com/secke/quantitative-financial-agent/internal/dashboard"
	"github.com/secke/quantitative-financial-agent/internal/marketdata"
	"github.com/secke/quantitative-financial-agent/internal/notifier"
	"github.com/secke/quantitative-financial-agent/internal/recorder"
	"github.com/secke/quantitative-financial-agent/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] sentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init market data provider
	provider := marketdata.NewFileProvider(cfg.Data.Dir)
	log.Printf("[INFO] data source: %s", provider.Name())

	// Init analyzer
	an := analyzer.New(cfg.Engine.Options())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.New(ctx, provider, an, notifier.NewLogNotifier(), rec,
		cfg.Symbols, cfg.Data.Period, cfg.Data.Interval)
	if err := sched.Register(cfg.Schedule.AnalysisCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init dashboard
	dash := dashboard.New(cfg.Dashboard.Addr, sched)
	dash.Start()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] sentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := dash.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] dashboard shutdown: %v", err)
	}
	cancel()
	log.Println("[INFO] sentinel stopped")
}
