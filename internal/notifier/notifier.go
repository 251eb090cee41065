// Package notifier renders analysis reports for human consumption and
// delivers them. The conversational layer proper lives outside this
// repository; the log notifier is the in-process default.
package notifier

import (
	"log"

	"github.com/secke/quantitative-financial-agent/internal/model"
)

// Notifier delivers a rendered report somewhere a human will see it.
type Notifier interface {
	Notify(report *model.Report) error
}

// LogNotifier writes formatted reports to the process log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Notify(report *model.Report) error {
	log.Printf("[INFO] analysis report for %s:\n%s", report.Symbol, FormatReport(report))
	return nil
}
