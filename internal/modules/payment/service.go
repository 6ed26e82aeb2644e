package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"stayfront/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	sessions sessionRepo
	bookings bookingWriter
	provider Provider
	logger   *zap.Logger

	interval    time.Duration
	maxDuration time.Duration
}

func NewService(sessions sessionRepo, bookings bookingWriter, provider Provider, logger *zap.Logger, interval, maxDuration time.Duration) *Service {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if maxDuration <= 0 {
		maxDuration = 15 * time.Minute
	}
	return &Service{
		sessions:    sessions,
		bookings:    bookings,
		provider:    provider,
		logger:      logger,
		interval:    interval,
		maxDuration: maxDuration,
	}
}

// GetStatus is the read side polled by the booking UI.
func (s *Service) GetStatus(ctx context.Context, sessionID string) (*StatusResponse, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	resp := &StatusResponse{Status: session.Status, FailureReason: session.FailureReason}
	if session.Status == domain.PaymentSessionPaid {
		b, err := s.bookings.GetByID(ctx, session.BookingID)
		if err != nil {
			return nil, err
		}
		resp.ConfirmationNumber = b.ConfirmationNumber
	}
	return resp, nil
}

// reconcile performs one poll step: asks the provider for the session state
// and, on a terminal answer, settles both the session and its booking.
// A provider error is itself terminal; an unreachable status endpoint must
// not be polled forever.
func (s *Service) reconcile(ctx context.Context, sessionID string) (domain.PaymentSessionStatus, string, bool) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error("payment session lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		return domain.PaymentSessionFailed, "", true
	}
	if session.Status.Terminal() {
		return session.Status, "", true
	}

	st, err := s.provider.GetSessionStatus(ctx, session.ProviderSessionID)
	if err != nil {
		s.logger.Error("payment status poll failed", zap.String("session_id", sessionID), zap.Error(err))
		s.settle(ctx, session, domain.PaymentSessionFailed, "payment status check failed")
		return domain.PaymentSessionFailed, "", true
	}

	switch st.Status {
	case domain.PaymentSessionPaid:
		confirmation := s.markPaid(ctx, session)
		return domain.PaymentSessionPaid, confirmation, true
	case domain.PaymentSessionFailed, domain.PaymentSessionCancelled:
		s.settle(ctx, session, st.Status, st.Reason)
		return st.Status, "", true
	default:
		return domain.PaymentSessionPending, "", false
	}
}

func (s *Service) markPaid(ctx context.Context, session *domain.PaymentSession) string {
	confirmation := newConfirmationNumber()

	changed, err := s.bookings.MarkPaid(ctx, session.BookingID, confirmation)
	if err != nil {
		s.logger.Error("failed to mark booking paid", zap.String("booking_id", session.BookingID), zap.Error(err))
		return ""
	}
	if !changed {
		// already settled by an earlier poll; keep the number on record
		if b, err := s.bookings.GetByID(ctx, session.BookingID); err == nil {
			confirmation = b.ConfirmationNumber
		}
	}

	now := time.Now().UTC()
	if err := s.sessions.UpdateStatus(ctx, session.ID, domain.PaymentSessionPaid, "", &now); err != nil {
		s.logger.Error("failed to update payment session", zap.String("session_id", session.ID), zap.Error(err))
	}

	s.logger.Info("payment settled",
		zap.String("booking_id", session.BookingID),
		zap.String("confirmation_number", confirmation),
	)
	return confirmation
}

func (s *Service) settle(ctx context.Context, session *domain.PaymentSession, status domain.PaymentSessionStatus, reason string) {
	if err := s.sessions.UpdateStatus(ctx, session.ID, status, reason, nil); err != nil {
		s.logger.Error("failed to update payment session", zap.String("session_id", session.ID), zap.Error(err))
	}

	bookingStatus := domain.BookingFailed
	if status == domain.PaymentSessionCancelled {
		bookingStatus = domain.BookingCancelled
	}
	if err := s.bookings.UpdateStatus(ctx, session.BookingID, bookingStatus); err != nil {
		s.logger.Error("failed to update booking status", zap.String("booking_id", session.BookingID), zap.Error(err))
	}
}

func newConfirmationNumber() string {
	return "CNF-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
