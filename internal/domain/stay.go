package domain

// ValidationResult maps field name to a human-readable reason. Empty means
// the request is valid.
type ValidationResult map[string]string

func (r ValidationResult) Valid() bool { return len(r) == 0 }

type QuoteSource string

const (
	// QuoteSourceProvider means the breakdown was adopted verbatim from the
	// external pricing provider.
	QuoteSourceProvider QuoteSource = "provider"
	// QuoteSourceFallback means the provider was unreachable and the
	// breakdown was computed locally from the room type's rates; taxes and
	// fees are unknown and reported as zero.
	QuoteSourceFallback QuoteSource = "fallback"
)

// PriceBreakdown is a computed, non-binding price estimate for a stay.
type PriceBreakdown struct {
	Nights      int         `json:"nights"`
	Subtotal    float64     `json:"subtotal"`
	Taxes       float64     `json:"taxes"`
	ServiceFee  float64     `json:"service_fee"`
	TotalAmount float64     `json:"total_amount"`
	Currency    string      `json:"currency"`
	Source      QuoteSource `json:"source"`
}
