package payment

import (
	"context"
	"sync"
	"time"

	"stayfront/internal/domain"

	"go.uber.org/zap"
)

// PollState is the reconciliation poller's view of a payment session.
type PollState string

const (
	StateChecking  PollState = "checking"
	StatePending   PollState = "pending"
	StatePaid      PollState = "paid"
	StateFailed    PollState = "failed"
	StateCancelled PollState = "cancelled"
)

func pollState(s domain.PaymentSessionStatus) PollState {
	switch s {
	case domain.PaymentSessionPaid:
		return StatePaid
	case domain.PaymentSessionCancelled:
		return StateCancelled
	case domain.PaymentSessionFailed:
		return StateFailed
	default:
		return StatePending
	}
}

// Poller is the cancellable handle for one reconciliation loop. Stop it on
// wizard teardown; it also stops itself on any terminal state or when the
// maximum poll duration elapses.
type Poller struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu           sync.Mutex
	state        PollState
	confirmation string
}

// Stop cancels the loop and waits for it to exit. Safe to call more than
// once and after the loop has already finished.
func (p *Poller) Stop() {
	p.cancel()
	<-p.done
}

// Done closes once the loop has exited, for any reason.
func (p *Poller) Done() <-chan struct{} { return p.done }

// State returns the last observed poll state and, when paid, the
// confirmation number.
func (p *Poller) State() (PollState, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.confirmation
}

func (p *Poller) setState(state PollState, confirmation string) {
	p.mu.Lock()
	p.state = state
	p.confirmation = confirmation
	p.mu.Unlock()
}

// StartPolling launches the reconciliation loop for a payment session. The
// first poll fires immediately, then every interval until a terminal state,
// the max duration, or cancellation of ctx.
func (s *Service) StartPolling(ctx context.Context, sessionID string) *Poller {
	ctx, cancel := context.WithCancel(ctx)
	p := &Poller{
		cancel: cancel,
		done:   make(chan struct{}),
		state:  StateChecking,
	}

	go func() {
		defer close(p.done)
		defer cancel()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		deadline := time.NewTimer(s.maxDuration)
		defer deadline.Stop()

		poll := func() bool {
			status, confirmation, terminal := s.reconcile(ctx, sessionID)
			if terminal {
				p.setState(pollState(status), confirmation)
				return true
			}
			p.setState(StatePending, "")
			return false
		}

		if poll() {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-deadline.C:
				s.failOnTimeout(sessionID)
				p.setState(StateFailed, "")
				return
			case <-ticker.C:
				if poll() {
					return
				}
			}
		}
	}()

	return p
}

// failOnTimeout settles a session that never reached a terminal state within
// the maximum poll duration. Uses a fresh context: the poller's own context
// may already be on its way down.
func (s *Service) failOnTimeout(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error("payment session lookup failed on timeout", zap.String("session_id", sessionID), zap.Error(err))
		return
	}
	if session.Status.Terminal() {
		return
	}

	s.logger.Warn("payment polling timed out", zap.String("session_id", sessionID))
	s.settle(ctx, session, domain.PaymentSessionFailed, "payment not completed in time")
}
