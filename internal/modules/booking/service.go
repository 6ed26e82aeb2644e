package booking

import (
	"context"
	"fmt"

	"stayfront/internal/domain"
	"stayfront/internal/modules/payment"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Service struct {
	bookings bookingRepo
	sessions sessionRepo
	provider checkoutProvider
	logger   *zap.Logger
}

func NewService(bookings bookingRepo, sessions sessionRepo, provider checkoutProvider, logger *zap.Logger) *Service {
	return &Service{
		bookings: bookings,
		sessions: sessions,
		provider: provider,
		logger:   logger,
	}
}

// CreateWithPayment persists the booking snapshot, opens a checkout session
// with the payment provider, and records the session against the booking.
// Not idempotent: the wizard calls it at most once per user confirmation.
// If the provider refuses a session after the booking row exists, the
// booking is marked failed before the error returns, so no reservation is
// left silently half-created.
func (s *Service) CreateWithPayment(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:             uuid.NewString(),
		BusinessUnitID: req.BusinessUnitID,
		RoomTypeID:     req.RoomTypeID,
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		Notes:          req.Notes,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		Adults:         req.Adults,
		Children:       req.Children,
		Nights:         req.Breakdown.Nights,
		Subtotal:       req.Breakdown.Subtotal,
		Taxes:          req.Breakdown.Taxes,
		ServiceFee:     req.Breakdown.ServiceFee,
		TotalAmount:    req.Breakdown.TotalAmount,
		Currency:       req.Breakdown.Currency,
		Status:         domain.BookingCreated,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	cs, err := s.provider.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		BookingID:     b.ID,
		Description:   fmt.Sprintf("Stay %s to %s, %d night(s)", b.CheckInDate.Format("2006-01-02"), b.CheckOutDate.Format("2006-01-02"), b.Nights),
		Amount:        b.TotalAmount,
		Currency:      b.Currency,
		CustomerEmail: b.GuestEmail,
	})
	if err != nil {
		s.logger.Error("checkout session creation failed", zap.String("booking_id", b.ID), zap.Error(err))
		if uerr := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingFailed); uerr != nil {
			s.logger.Error("failed to mark booking failed", zap.String("booking_id", b.ID), zap.Error(uerr))
		}
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	session := &domain.PaymentSession{
		ID:                uuid.NewString(),
		BookingID:         b.ID,
		ProviderSessionID: cs.ProviderSessionID,
		CheckoutURL:       cs.CheckoutURL,
		Status:            domain.PaymentSessionPending,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		// without the session row the poller can never reconcile this
		// booking, so it must not stay at created
		s.logger.Error("payment session persist failed", zap.String("booking_id", b.ID), zap.Error(err))
		if uerr := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingFailed); uerr != nil {
			s.logger.Error("failed to mark booking failed", zap.String("booking_id", b.ID), zap.Error(uerr))
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrDuplicateSubmission
		}
		return nil, fmt.Errorf("save payment session: %w", err)
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingPaymentPending); err != nil {
		s.logger.Error("failed to move booking to payment_pending", zap.String("booking_id", b.ID), zap.Error(err))
	}

	s.logger.Info("booking created, awaiting payment",
		zap.String("booking_id", b.ID),
		zap.String("payment_session_id", session.ID),
	)

	return &CreateResult{
		BookingID:        b.ID,
		PaymentSessionID: session.ID,
		CheckoutURL:      session.CheckoutURL,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) GetByConfirmationNumber(ctx context.Context, confirmation string) (*domain.Booking, error) {
	return s.bookings.GetByConfirmationNumber(ctx, confirmation)
}

// validateCreate rechecks the structural invariants the wizard already
// enforced; a snapshot violating them indicates stale or tampered state.
func validateCreate(req CreateRequest) error {
	if req.BusinessUnitID == "" || req.RoomTypeID == "" {
		return ErrValidation
	}
	if req.GuestName == "" || req.GuestEmail == "" {
		return ErrValidation
	}
	if !req.CheckOutDate.After(req.CheckInDate) {
		return ErrValidation
	}
	if req.Adults < 1 || req.Children < 0 {
		return ErrValidation
	}
	if req.Breakdown.Subtotal < 0 || req.Breakdown.TotalAmount < req.Breakdown.Subtotal {
		return ErrValidation
	}
	return nil
}
