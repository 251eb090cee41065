// Package marketdata defines the boundary to the external market-data
// collaborator. The engine never fetches anything itself; it only consumes
// whatever ordered bar series a Provider hands it. Provider errors propagate
// opaquely to callers.
package marketdata

import "github.com/secke/quantitative-financial-agent/internal/model"

// Provider supplies OHLCV bars and company metadata for a symbol.
type Provider interface {
	// Bars returns the ordered bar series for the symbol over the requested
	// period and interval (e.g. "3mo", "1d"). Implementations may interpret
	// or ignore the hints, but the returned series must have strictly
	// increasing timestamps.
	Bars(symbol, period, interval string) (model.Series, error)

	// Metadata returns point-in-time company attributes for the symbol.
	// The result may be partial or nil; absence is not an error.
	Metadata(symbol string) (*model.Metadata, error)

	Name() string
}
