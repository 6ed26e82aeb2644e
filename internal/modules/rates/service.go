package rates

import (
	"context"
	"errors"
	"math"
	"time"

	"stayfront/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	roomTypes roomTypeReader
	provider  Provider
	logger    *zap.Logger
}

func NewService(roomTypes roomTypeReader, provider Provider, logger *zap.Logger) *Service {
	return &Service{
		roomTypes: roomTypes,
		provider:  provider,
		logger:    logger,
	}
}

// Quote computes a price breakdown for the requested stay. The provider's
// numbers are adopted verbatim when it answers; when it does not, the quote
// degrades to the room type's rates with zero taxes and fees so the guest is
// never left without a figure. Incomplete date ranges yield a zero breakdown
// rather than an error.
func (s *Service) Quote(ctx context.Context, businessUnitID, roomTypeID string, checkIn, checkOut time.Time, adults, children int) (*domain.PriceBreakdown, error) {
	rt, err := s.roomTypes.GetByID(ctx, businessUnitID, roomTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}

	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return &domain.PriceBreakdown{Currency: currencyOf(rt), Source: domain.QuoteSourceFallback}, nil
	}

	quote, err := s.provider.GetQuote(ctx, ProviderQuoteRequest{
		BusinessUnitID: businessUnitID,
		RoomTypeID:     roomTypeID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		Adults:         adults,
		Children:       children,
	})
	if err != nil {
		s.logger.Warn("pricing provider unavailable, using fallback rates",
			zap.String("room_type_id", roomTypeID),
			zap.Error(err),
		)
		return s.fallback(rt, nights, adults, children), nil
	}

	return &domain.PriceBreakdown{
		Nights:      quote.Nights,
		Subtotal:    quote.Subtotal,
		Taxes:       quote.Taxes,
		ServiceFee:  quote.ServiceFee,
		TotalAmount: quote.TotalAmount,
		Currency:    quote.Currency,
		Source:      domain.QuoteSourceProvider,
	}, nil
}

// fallback prices the stay from the room type alone: base rate per night plus
// per-night surcharges for guests above the base allotment. Taxes and fees
// are unknown without the provider and stay zero.
func (s *Service) fallback(rt *domain.RoomType, nights, adults, children int) *domain.PriceBreakdown {
	nightly := rt.BaseRate

	if extra := adults + children - rt.BaseOccupancy; extra > 0 && rt.BaseOccupancy > 0 {
		extraAdults := adults - rt.BaseOccupancy
		if extraAdults < 0 {
			extraAdults = 0
		}
		extraChildren := extra - extraAdults
		nightly += float64(extraAdults)*rt.ExtraAdultRate + float64(extraChildren)*rt.ExtraChildRate
	}

	subtotal := round2(nightly * float64(nights))

	return &domain.PriceBreakdown{
		Nights:      nights,
		Subtotal:    subtotal,
		Taxes:       0,
		ServiceFee:  0,
		TotalAmount: subtotal,
		Currency:    currencyOf(rt),
		Source:      domain.QuoteSourceFallback,
	}
}

// NightsBetween counts calendar nights between two dates, ignoring
// time-of-day.
func NightsBetween(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func currencyOf(rt *domain.RoomType) string {
	if rt.Currency == "" {
		return "USD"
	}
	return rt.Currency
}
