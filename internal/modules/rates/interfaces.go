package rates

import (
	"context"

	"stayfront/internal/domain"
)

// Provider is the external pricing source. It is the authority on taxes and
// fees, which vary by property and jurisdiction.
type Provider interface {
	GetQuote(ctx context.Context, req ProviderQuoteRequest) (*ProviderQuote, error)
}

type roomTypeReader interface {
	GetByID(ctx context.Context, businessUnitID, roomTypeID string) (*domain.RoomType, error)
}
