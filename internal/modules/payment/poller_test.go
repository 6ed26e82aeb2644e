package payment

import (
	"context"
	"testing"
	"time"

	"stayfront/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func waitDone(t *testing.T, p *Poller) {
	t.Helper()
	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not finish in time")
	}
}

func TestStartPolling_ConvergesOnPaid(t *testing.T) {
	sessions := newFakeSessionRepo(pendingSession())
	bookings := newFakeBookingStore(pendingBooking())
	provider := &fakeStatusProvider{script: []SessionStatus{
		{Status: domain.PaymentSessionPending},
		{Status: domain.PaymentSessionPending},
		{Status: domain.PaymentSessionPaid},
	}}
	svc := newTestService(sessions, bookings, provider)

	p := svc.StartPolling(context.Background(), "ps-1")
	waitDone(t, p)

	state, confirmation := p.State()
	assert.Equal(t, StatePaid, state)
	assert.Regexp(t, `^CNF-[0-9A-F]{10}$`, confirmation)
	assert.Equal(t, domain.BookingPaid, bookings.snapshot("bk-1").Status)
	assert.Equal(t, 3, provider.callCount())
}

func TestStartPolling_NoPollsAfterTerminal(t *testing.T) {
	sessions := newFakeSessionRepo(pendingSession())
	bookings := newFakeBookingStore(pendingBooking())
	provider := &fakeStatusProvider{script: []SessionStatus{{Status: domain.PaymentSessionPaid}}}
	svc := newTestService(sessions, bookings, provider)

	p := svc.StartPolling(context.Background(), "ps-1")
	waitDone(t, p)

	calls := provider.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, provider.callCount())
}

func TestStartPolling_ProviderErrorEndsLoopFailed(t *testing.T) {
	sessions := newFakeSessionRepo(pendingSession())
	bookings := newFakeBookingStore(pendingBooking())
	provider := &fakeStatusProvider{err: context.DeadlineExceeded}
	svc := newTestService(sessions, bookings, provider)

	p := svc.StartPolling(context.Background(), "ps-1")
	waitDone(t, p)

	state, _ := p.State()
	assert.Equal(t, StateFailed, state)
	assert.Equal(t, 1, provider.callCount())
	assert.Equal(t, domain.BookingFailed, bookings.snapshot("bk-1").Status)
}

func TestStartPolling_StopCancelsLoop(t *testing.T) {
	sessions := newFakeSessionRepo(pendingSession())
	bookings := newFakeBookingStore(pendingBooking())
	provider := &fakeStatusProvider{script: []SessionStatus{{Status: domain.PaymentSessionPending}}}
	svc := newTestService(sessions, bookings, provider)

	p := svc.StartPolling(context.Background(), "ps-1")
	time.Sleep(25 * time.Millisecond)
	p.Stop()

	select {
	case <-p.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}

	// session untouched: cancellation is not a payment outcome
	assert.Equal(t, domain.PaymentSessionPending, sessions.snapshot("ps-1").Status)

	// Stop is idempotent
	p.Stop()
}

func TestStartPolling_TimeoutSettlesFailed(t *testing.T) {
	sessions := newFakeSessionRepo(pendingSession())
	bookings := newFakeBookingStore(pendingBooking())
	provider := &fakeStatusProvider{script: []SessionStatus{{Status: domain.PaymentSessionPending}}}
	svc := NewService(sessions, bookings, provider, zap.NewNop(), 10*time.Millisecond, 60*time.Millisecond)

	p := svc.StartPolling(context.Background(), "ps-1")
	waitDone(t, p)

	state, _ := p.State()
	assert.Equal(t, StateFailed, state)
	assert.Equal(t, domain.PaymentSessionFailed, sessions.snapshot("ps-1").Status)
	assert.Equal(t, "payment not completed in time", sessions.snapshot("ps-1").FailureReason)
	assert.Equal(t, domain.BookingFailed, bookings.snapshot("bk-1").Status)
}

func TestPollState_Mapping(t *testing.T) {
	assert.Equal(t, StatePaid, pollState(domain.PaymentSessionPaid))
	assert.Equal(t, StateFailed, pollState(domain.PaymentSessionFailed))
	assert.Equal(t, StateCancelled, pollState(domain.PaymentSessionCancelled))
	assert.Equal(t, StatePending, pollState(domain.PaymentSessionPending))
}
