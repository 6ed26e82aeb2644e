package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"stayfront/internal/domain"
	"stayfront/internal/modules/booking"
	"stayfront/internal/modules/stay"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns the booking wizard: one draft per session, validated per
// step, priced on every stay change, and submitted exactly once.
type Service struct {
	drafts      DraftStore
	roomTypes   roomTypeReader
	rates       quoteService
	bookings    bookingCreator
	startPoller PollStarter
	logger      *zap.Logger

	// submitMu serializes the read-check-write on the submit flag; the
	// draft itself has a single owner, but double-clicks arrive as two
	// near-simultaneous requests.
	submitMu sync.Mutex

	pollMu  sync.Mutex
	pollers map[string]PollHandle
}

func NewService(drafts DraftStore, roomTypes roomTypeReader, rates quoteService, bookings bookingCreator, startPoller PollStarter, logger *zap.Logger) *Service {
	return &Service{
		drafts:      drafts,
		roomTypes:   roomTypes,
		rates:       rates,
		bookings:    bookings,
		startPoller: startPoller,
		logger:      logger,
		pollers:     make(map[string]PollHandle),
	}
}

// Start opens a fresh draft for the given room type.
func (s *Service) Start(ctx context.Context, businessUnitID, roomTypeID string) (*Draft, error) {
	if _, err := s.roomType(ctx, businessUnitID, roomTypeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := &Draft{
		ID:             uuid.NewString(),
		BusinessUnitID: businessUnitID,
		RoomTypeID:     roomTypeID,
		Step:           StepGuestDetails,
		Adults:         1,
		Children:       0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Draft, error) {
	return s.drafts.Get(ctx, id)
}

type GuestInput struct {
	GuestName  *string
	GuestEmail *string
	GuestPhone *string
}

func (s *Service) UpdateGuest(ctx context.Context, id string, in GuestInput) (*Draft, error) {
	d, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.submitted() {
		return nil, ErrAlreadySubmitted
	}

	if in.GuestName != nil {
		d.GuestName = *in.GuestName
	}
	if in.GuestEmail != nil {
		d.GuestEmail = *in.GuestEmail
	}
	if in.GuestPhone != nil {
		d.GuestPhone = *in.GuestPhone
	}

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

type StayInput struct {
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	Notes        *string
}

// UpdateStay changes the stay dates. Any date change throws away the cached
// breakdown and requests a fresh quote; a check-in moved onto or past the
// current check-out clears the check-out so the guest re-picks it instead
// of keeping an invalid range.
func (s *Service) UpdateStay(ctx context.Context, id string, in StayInput) (*Draft, error) {
	d, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.submitted() {
		return nil, ErrAlreadySubmitted
	}

	datesChanged := false

	if in.CheckInDate != nil {
		d.CheckInDate = *in.CheckInDate
		if !d.CheckOutDate.IsZero() && !d.CheckOutDate.After(d.CheckInDate) {
			d.CheckOutDate = time.Time{}
		}
		datesChanged = true
	}
	if in.CheckOutDate != nil {
		d.CheckOutDate = *in.CheckOutDate
		datesChanged = true
	}
	if in.Notes != nil {
		d.Notes = *in.Notes
	}

	if datesChanged {
		d.Breakdown = nil
		d.QuoteGeneration++
	}

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	if datesChanged {
		return s.refreshQuote(ctx, d), nil
	}
	return d, nil
}

// AdjustOccupancy applies a single +1/-1 guest-count step. Steps that would
// break the room type's limits (or drop adults below one / children below
// zero) are refused silently: the counts stay put and no error is raised.
// An applied step invalidates the quote like a date change does.
func (s *Service) AdjustOccupancy(ctx context.Context, id, field string, delta int) (*Draft, error) {
	d, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.submitted() {
		return nil, ErrAlreadySubmitted
	}

	rt, err := s.roomType(ctx, d.BusinessUnitID, d.RoomTypeID)
	if err != nil {
		return nil, err
	}

	adults, children := d.Adults, d.Children
	switch field {
	case "adults":
		adults += delta
	case "children":
		children += delta
	default:
		return d, nil
	}

	allowed := adults >= 1 && children >= 0 &&
		adults <= rt.MaxAdults && children <= rt.MaxChildren &&
		adults+children <= rt.MaxOccupancy
	if !allowed {
		return d, nil
	}

	d.Adults, d.Children = adults, children
	d.Breakdown = nil
	d.QuoteGeneration++

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	return s.refreshQuote(ctx, d), nil
}

// Next validates the fields owned by the current step and advances on
// success. A non-empty ValidationResult means the wizard stayed put.
func (s *Service) Next(ctx context.Context, id string) (*Draft, domain.ValidationResult, error) {
	d, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if d.submitted() {
		return nil, nil, ErrAlreadySubmitted
	}

	var result domain.ValidationResult
	switch d.Step {
	case StepGuestDetails:
		result = stay.ValidateGuest(d.stayInput())
	case StepStayDetails:
		rt, err := s.roomType(ctx, d.BusinessUnitID, d.RoomTypeID)
		if err != nil {
			return nil, nil, err
		}
		result = stay.ValidateStay(d.stayInput(), rt)
	default:
		return d, nil, nil
	}

	if !result.Valid() {
		return d, result, nil
	}

	next, ok := d.Step.next()
	if !ok {
		return d, nil, nil
	}
	d.Step = next
	if err := s.save(ctx, d); err != nil {
		return nil, nil, err
	}
	return d, nil, nil
}

// Back moves one step back without validation and keeps everything entered.
func (s *Service) Back(ctx context.Context, id string) (*Draft, error) {
	d, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	prev, ok := d.Step.prev()
	if !ok {
		return d, nil
	}
	d.Step = prev
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Submit finalizes the draft: full re-validation, a single
// create-booking-with-payment call carrying the breakdown the guest saw,
// and the start of payment reconciliation. A second submit while one is in
// flight is rejected without a second create call.
func (s *Service) Submit(ctx context.Context, id string) (*Draft, domain.ValidationResult, error) {
	s.submitMu.Lock()
	d, err := s.drafts.Get(ctx, id)
	if err != nil {
		s.submitMu.Unlock()
		return nil, nil, err
	}
	if d.submitted() {
		s.submitMu.Unlock()
		return nil, nil, ErrAlreadySubmitted
	}
	if d.Submitting {
		s.submitMu.Unlock()
		return nil, nil, ErrSubmitInFlight
	}
	if d.Step != StepReviewAndPay {
		s.submitMu.Unlock()
		return nil, nil, ErrNotReadyToSubmit
	}

	d.Submitting = true
	if err := s.save(ctx, d); err != nil {
		s.submitMu.Unlock()
		return nil, nil, err
	}
	s.submitMu.Unlock()

	clearFlag := func() {
		d.Submitting = false
		if err := s.save(ctx, d); err != nil {
			s.logger.Error("failed to clear submit flag", zap.String("draft_id", d.ID), zap.Error(err))
		}
	}

	rt, err := s.roomType(ctx, d.BusinessUnitID, d.RoomTypeID)
	if err != nil {
		clearFlag()
		return nil, nil, err
	}

	// defense against stale drafts: everything is rechecked at the end
	if result := stay.Validate(d.stayInput(), rt); !result.Valid() {
		clearFlag()
		return d, result, nil
	}
	if d.Breakdown == nil {
		clearFlag()
		return nil, nil, ErrNoQuote
	}

	res, err := s.bookings.CreateWithPayment(ctx, booking.CreateRequest{
		BusinessUnitID: d.BusinessUnitID,
		RoomTypeID:     d.RoomTypeID,
		GuestName:      d.GuestName,
		GuestEmail:     d.GuestEmail,
		GuestPhone:     d.GuestPhone,
		Notes:          d.Notes,
		CheckInDate:    d.CheckInDate,
		CheckOutDate:   d.CheckOutDate,
		Adults:         d.Adults,
		Children:       d.Children,
		Breakdown:      *d.Breakdown,
	})
	if err != nil {
		// no local record of a booking is kept; the guest may resubmit
		clearFlag()
		return nil, nil, err
	}

	d.Submitting = false
	d.BookingID = res.BookingID
	d.PaymentSessionID = res.PaymentSessionID
	d.CheckoutURL = res.CheckoutURL
	if err := s.save(ctx, d); err != nil {
		s.logger.Error("failed to record submission on draft", zap.String("draft_id", d.ID), zap.Error(err))
	}

	// reconciliation outlives this request; its lifetime is bound to the
	// wizard session, not the HTTP call
	s.trackPoller(d.ID, s.startPoller(context.Background(), res.PaymentSessionID))

	return d, nil, nil
}

// Close tears the wizard down: the draft is dropped and any running
// reconciliation poller for it is cancelled.
func (s *Service) Close(ctx context.Context, id string) error {
	s.pollMu.Lock()
	if p, ok := s.pollers[id]; ok {
		delete(s.pollers, id)
		s.pollMu.Unlock()
		p.Stop()
	} else {
		s.pollMu.Unlock()
	}

	return s.drafts.Delete(ctx, id)
}

// refreshQuote fetches a quote for the draft's current stay and applies it
// only if no newer edit happened while the quote was in flight. The freshest
// request wins by recency, not by completion order.
func (s *Service) refreshQuote(ctx context.Context, d *Draft) *Draft {
	gen := d.QuoteGeneration

	bd, err := s.rates.Quote(ctx, d.BusinessUnitID, d.RoomTypeID, d.CheckInDate, d.CheckOutDate, d.Adults, d.Children)
	if err != nil {
		s.logger.Warn("quote refresh failed", zap.String("draft_id", d.ID), zap.Error(err))
		return d
	}

	cur, err := s.drafts.Get(ctx, d.ID)
	if err != nil {
		return d
	}
	if cur.QuoteGeneration != gen {
		// a newer edit superseded this quote; discard it
		return cur
	}

	cur.Breakdown = bd
	if err := s.save(ctx, cur); err != nil {
		s.logger.Error("failed to store quote", zap.String("draft_id", d.ID), zap.Error(err))
		return d
	}
	return cur
}

func (s *Service) trackPoller(draftID string, p PollHandle) {
	s.pollMu.Lock()
	prev, had := s.pollers[draftID]
	s.pollers[draftID] = p
	s.pollMu.Unlock()

	if had {
		prev.Stop()
	}

	// drop the entry once the loop finishes on its own, so handles for
	// drafts that are never explicitly closed do not pile up
	go func() {
		<-p.Done()
		s.pollMu.Lock()
		if s.pollers[draftID] == p {
			delete(s.pollers, draftID)
		}
		s.pollMu.Unlock()
	}()
}

func (s *Service) roomType(ctx context.Context, businessUnitID, roomTypeID string) (*domain.RoomType, error) {
	rt, err := s.roomTypes.GetByID(ctx, businessUnitID, roomTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (s *Service) save(ctx context.Context, d *Draft) error {
	d.UpdatedAt = time.Now().UTC()
	return s.drafts.Save(ctx, d)
}
