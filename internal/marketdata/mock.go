package marketdata

import (
	"time"

	"github.com/secke/quantitative-financial-agent/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Series model.Series
	Meta   *model.Metadata
	Price  float64
	Err    error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Bars(_, _, _ string) (model.Series, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return GenerateBars(m.Price, 60), nil
}

func (m *MockProvider) Metadata(_ string) (*model.Metadata, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Meta, nil
}

// GenerateBars builds a synthetic daily series drifting around basePrice.
func GenerateBars(basePrice float64, count int) model.Series {
	bars := make(model.Series, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
