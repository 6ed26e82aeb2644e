package wizard

import (
	"context"
	"time"

	"stayfront/internal/domain"
	"stayfront/internal/modules/booking"
)

type roomTypeReader interface {
	GetByID(ctx context.Context, businessUnitID, roomTypeID string) (*domain.RoomType, error)
}

type quoteService interface {
	Quote(ctx context.Context, businessUnitID, roomTypeID string, checkIn, checkOut time.Time, adults, children int) (*domain.PriceBreakdown, error)
}

type bookingCreator interface {
	CreateWithPayment(ctx context.Context, req booking.CreateRequest) (*booking.CreateResult, error)
}

// PollHandle is the cancellable payment-reconciliation loop owned by one
// submitted draft.
type PollHandle interface {
	Stop()
	Done() <-chan struct{}
}

// PollStarter launches reconciliation for a payment session and hands back
// its handle. Satisfied by wrapping payment.Service.StartPolling.
type PollStarter func(ctx context.Context, paymentSessionID string) PollHandle
