package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/secke/quantitative-financial-agent/internal/analyzer"
)

// Engine holds the analysis knobs. Zero values fall back to the reference
// defaults, so a partial config section only overrides what it names.
type Engine struct {
	RSIWindow        int     `yaml:"rsi_window"`
	MACDFast         int     `yaml:"macd_fast"`
	MACDSlow         int     `yaml:"macd_slow"`
	MACDSignal       int     `yaml:"macd_signal"`
	SMAWindows       []int   `yaml:"sma_windows"`
	EMAWindows       []int   `yaml:"ema_windows"`
	BollingerWindow  int     `yaml:"bollinger_window"`
	BollingerStdDev  float64 `yaml:"bollinger_stddev"`
	StochasticWindow int     `yaml:"stochastic_window"`
	StochasticSmooth int     `yaml:"stochastic_smooth"`
	ATRWindow        int     `yaml:"atr_window"`
	ExtremaOrder     int     `yaml:"extrema_order"`
	MaxLevels        int     `yaml:"max_levels"`
	RiskMedium       float64 `yaml:"risk_medium"`
	RiskHigh         float64 `yaml:"risk_high"`
}

// Config holds all application configuration.
type Config struct {
	Symbols []string `yaml:"symbols"`
	Engine  Engine   `yaml:"engine"`
	Data    struct {
		Dir      string `yaml:"dir"`
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
	} `yaml:"data"`
	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron"`
	} `yaml:"schedule"`
	Dashboard struct {
		Addr string `yaml:"addr"`
	} `yaml:"dashboard"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults cover everything.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.Symbols = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Symbols = append(cfg.Symbols, strings.ToUpper(s))
			}
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("ANALYSIS_CRON"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		cfg.Dashboard.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []string{"AAPL"}
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data/series"
	}
	if cfg.Data.Period == "" {
		cfg.Data.Period = "6mo"
	}
	if cfg.Data.Interval == "" {
		cfg.Data.Interval = "1d"
	}
	if cfg.Schedule.AnalysisCron == "" {
		cfg.Schedule.AnalysisCron = "0 30 22 * * 1-5"
	}
	if cfg.Dashboard.Addr == "" {
		cfg.Dashboard.Addr = ":8080"
	}

	return cfg, nil
}

// Validate checks that overridden engine values stay usable.
func (c *Config) Validate() error {
	e := c.Engine
	for name, v := range map[string]int{
		"rsi_window":        e.RSIWindow,
		"macd_fast":         e.MACDFast,
		"macd_slow":         e.MACDSlow,
		"macd_signal":       e.MACDSignal,
		"bollinger_window":  e.BollingerWindow,
		"stochastic_window": e.StochasticWindow,
		"atr_window":        e.ATRWindow,
		"extrema_order":     e.ExtremaOrder,
		"max_levels":        e.MaxLevels,
	} {
		if v < 0 {
			return fmt.Errorf("engine.%s must not be negative", name)
		}
	}
	if e.RiskMedium < 0 || e.RiskHigh < 0 {
		return fmt.Errorf("engine risk thresholds must not be negative")
	}
	if e.RiskMedium > 0 && e.RiskHigh > 0 && e.RiskMedium >= e.RiskHigh {
		return fmt.Errorf("engine.risk_medium must be below engine.risk_high")
	}
	return nil
}

// Options converts the engine section into analyzer options, filling
// anything unset with the reference defaults.
func (e Engine) Options() analyzer.Options {
	opts := analyzer.DefaultOptions()
	if e.RSIWindow > 0 {
		opts.RSIWindow = e.RSIWindow
	}
	if e.MACDFast > 0 {
		opts.MACDFast = e.MACDFast
	}
	if e.MACDSlow > 0 {
		opts.MACDSlow = e.MACDSlow
	}
	if e.MACDSignal > 0 {
		opts.MACDSignal = e.MACDSignal
	}
	if len(e.SMAWindows) > 0 {
		opts.SMAWindows = e.SMAWindows
	}
	if len(e.EMAWindows) > 0 {
		opts.EMAWindows = e.EMAWindows
	}
	if e.BollingerWindow > 0 {
		opts.BollingerWindow = e.BollingerWindow
	}
	if e.BollingerStdDev > 0 {
		opts.BollingerStdDev = e.BollingerStdDev
	}
	if e.StochasticWindow > 0 {
		opts.StochasticWindow = e.StochasticWindow
	}
	if e.StochasticSmooth > 0 {
		opts.StochasticSmooth = e.StochasticSmooth
	}
	if e.ATRWindow > 0 {
		opts.ATRWindow = e.ATRWindow
	}
	if e.ExtremaOrder > 0 {
		opts.ExtremaOrder = e.ExtremaOrder
	}
	if e.MaxLevels > 0 {
		opts.MaxLevels = e.MaxLevels
	}
	if e.RiskMedium > 0 {
		opts.RiskMedium = e.RiskMedium
	}
	if e.RiskHigh > 0 {
		opts.RiskHigh = e.RiskHigh
	}
	return opts
}
