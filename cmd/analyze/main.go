// analyze runs a one-shot analysis of a single symbol and prints the
// report to stdout, either formatted or as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/secke/quantitative-financial-agent/internal/analyzer"
	"github.com/secke/quantitative-financial-agent/internal/config"
	"github.com/secke/quantitative-financial-agent/internal/marketdata"
	"github.com/secke/quantitative-financial-agent/internal/notifier"
)

func main() {
	var (
		symbol  = flag.String("symbol", "", "symbol to analyze (required)")
		cfgPath = flag.String("config", "configs/config.yaml", "path to config file")
		asJSON  = flag.Bool("json", false, "print the report as JSON")
	)
	flag.Parse()

	log.SetFlags(log.LstdFlags)

	if *symbol == "" {
		flag.Usage()
		os.Exit(2)
	}
	sym := strings.ToUpper(*symbol)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	provider := marketdata.NewFileProvider(cfg.Data.Dir)
	series, err := provider.Bars(sym, cfg.Data.Period, cfg.Data.Interval)
	if err != nil {
		log.Fatalf("[FATAL] load bars for %s: %v", sym, err)
	}
	meta, err := provider.Metadata(sym)
	if err != nil {
		log.Printf("[WARN] load metadata for %s: %v", sym, err)
	}

	report, err := analyzer.New(cfg.Engine.Options()).Analyze(sym, series, meta)
	if err != nil {
		log.Fatalf("[FATAL] analyze %s: %v", sym, err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("[FATAL] encode report: %v", err)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Println(notifier.FormatReport(report))
}
