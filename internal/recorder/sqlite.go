package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/secke/quantitative-financial-agent/internal/model"
)

// SQLiteRecorder journals reports to a SQLite database. Key numeric fields
// get their own nullable columns so dashboards can query them directly; the
// full report is kept alongside as JSON.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_reports (
			id                 TEXT PRIMARY KEY,
			timestamp          INTEGER NOT NULL,
			symbol             TEXT NOT NULL,
			price              REAL,
			trend              TEXT,
			rsi                REAL,
			macd               REAL,
			macd_signal        REAL,
			sma_20             REAL,
			sma_50             REAL,
			sma_200            REAL,
			bb_upper           REAL,
			bb_lower           REAL,
			stochastic_k       REAL,
			nearest_resistance REAL,
			nearest_support    REAL,
			daily_volatility   REAL,
			annual_volatility  REAL,
			atr_current        REAL,
			risk_tier          TEXT,
			report             TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_symbol_ts ON analysis_reports(symbol, timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Record(report *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	ind := report.Indicators
	if ind == nil {
		ind = &model.IndicatorSet{}
	}
	levels := report.Levels
	if levels == nil {
		levels = &model.LevelSet{}
	}
	vol := report.Volatility
	if vol == nil {
		vol = &model.VolatilityReport{}
	}

	var price float64
	if report.Summary != nil {
		price = report.Summary.CurrentPrice
	}

	_, err = r.db.Exec(`INSERT INTO analysis_reports
		(id, timestamp, symbol, price, trend,
		 rsi, macd, macd_signal, sma_20, sma_50, sma_200,
		 bb_upper, bb_lower, stochastic_k,
		 nearest_resistance, nearest_support,
		 daily_volatility, annual_volatility, atr_current, risk_tier,
		 report)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		uuid.NewString(), report.Date.Unix(), report.Symbol, price, string(report.Trend),
		ind.RSI, ind.MACD, ind.MACDSignal, ind.SMA20, ind.SMA50, ind.SMA200,
		ind.BBUpper, ind.BBLower, ind.StochasticK,
		levels.NearestResistance, levels.NearestSupport,
		vol.DailyVolatility, vol.AnnualVolatility, vol.ATRCurrent, string(vol.RiskTier),
		string(raw),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
