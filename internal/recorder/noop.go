package recorder

import "github.com/secke/quantitative-financial-agent/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ *model.Report) error { return nil }
func (n *NoopRecorder) Close() error                 { return nil }
