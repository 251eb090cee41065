// Package recorder journals emitted analysis reports for later inspection.
// It stores engine outputs only, never the input price history.
package recorder

import "github.com/secke/quantitative-financial-agent/internal/model"

// Recorder persists emitted reports.
type Recorder interface {
	Record(report *model.Report) error
	Close() error
}
