package rates

import "time"

type ProviderQuoteRequest struct {
	BusinessUnitID string
	RoomTypeID     string
	CheckInDate    time.Time
	CheckOutDate   time.Time
	Adults         int
	Children       int
}

// ProviderQuote is the explicit schema of the pricing endpoint's response.
// Unknown fields are ignored; missing tax/fee fields decode to zero.
type ProviderQuote struct {
	Nights      int     `json:"nights"`
	Subtotal    float64 `json:"subtotal"`
	Taxes       float64 `json:"taxes"`
	ServiceFee  float64 `json:"service_fee"`
	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`
}

type QuoteRequest struct {
	BusinessUnitID string `json:"business_unit_id" validate:"required"`
	RoomTypeID     string `json:"room_type_id" validate:"required"`
	CheckInDate    string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Adults         int    `json:"adults" validate:"required,gte=1"`
	Children       int    `json:"children" validate:"gte=0"`
}
