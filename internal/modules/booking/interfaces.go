package booking

import (
	"context"

	"stayfront/internal/domain"
	"stayfront/internal/modules/payment"
)

type bookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByConfirmationNumber(ctx context.Context, confirmation string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

type sessionRepo interface {
	Create(ctx context.Context, s *domain.PaymentSession) error
}

type checkoutProvider interface {
	CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error)
}
