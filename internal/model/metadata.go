package model

// Metadata holds point-in-time company attributes supplied by the market-data
// collaborator. Every field may be absent or partial; the engine only reads
// Beta and passes the rest through to the report.
type Metadata struct {
	Name      string   `json:"name,omitempty"`
	Sector    string   `json:"sector,omitempty"`
	Industry  string   `json:"industry,omitempty"`
	MarketCap float64  `json:"market_cap,omitempty"`
	Beta      *float64 `json:"beta,omitempty"`
}
