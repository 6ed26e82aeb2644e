package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayfront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockRoomTypeReader struct {
	mock.Mock
}

func (m *MockRoomTypeReader) GetByID(ctx context.Context, businessUnitID, roomTypeID string) (*domain.RoomType, error) {
	args := m.Called(ctx, businessUnitID, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetQuote(ctx context.Context, req ProviderQuoteRequest) (*ProviderQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProviderQuote), args.Error(1)
}

func testRoomType() *domain.RoomType {
	return &domain.RoomType{
		ID:             "rt-1",
		BusinessUnitID: "bu-1",
		BaseRate:       1000,
		BaseOccupancy:  2,
		MaxOccupancy:   4,
		MaxAdults:      3,
		MaxChildren:    2,
		ExtraAdultRate: 150,
		ExtraChildRate: 80,
		Currency:       "EUR",
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQuote_ProviderAdoptedVerbatim(t *testing.T) {
	roomTypes := new(MockRoomTypeReader)
	provider := new(MockProvider)
	roomTypes.On("GetByID", mock.Anything, "bu-1", "rt-1").Return(testRoomType(), nil)
	provider.On("GetQuote", mock.Anything, mock.Anything).Return(&ProviderQuote{
		Nights:      3,
		Subtotal:    2850,
		Taxes:       342.13,
		ServiceFee:  25,
		TotalAmount: 3217.13,
		Currency:    "EUR",
	}, nil)

	svc := NewService(roomTypes, provider, zap.NewNop())
	b, err := svc.Quote(context.Background(), "bu-1", "rt-1", day("2026-09-10"), day("2026-09-13"), 2, 0)

	assert.NoError(t, err)
	assert.Equal(t, domain.QuoteSourceProvider, b.Source)
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 2850.0, b.Subtotal)
	assert.Equal(t, 342.13, b.Taxes)
	assert.Equal(t, 25.0, b.ServiceFee)
	assert.Equal(t, 3217.13, b.TotalAmount)
	assert.Equal(t, "EUR", b.Currency)
}

func TestQuote_FallbackOnProviderError(t *testing.T) {
	roomTypes := new(MockRoomTypeReader)
	provider := new(MockProvider)
	roomTypes.On("GetByID", mock.Anything, "bu-1", "rt-1").Return(testRoomType(), nil)
	provider.On("GetQuote", mock.Anything, mock.Anything).Return(nil, ErrProvider)

	svc := NewService(roomTypes, provider, zap.NewNop())
	b, err := svc.Quote(context.Background(), "bu-1", "rt-1", day("2026-09-10"), day("2026-09-13"), 2, 0)

	assert.NoError(t, err)
	assert.Equal(t, domain.QuoteSourceFallback, b.Source)
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 3000.0, b.Subtotal)
	assert.Zero(t, b.Taxes)
	assert.Zero(t, b.ServiceFee)
	assert.Equal(t, 3000.0, b.TotalAmount)
	assert.Equal(t, "EUR", b.Currency)
}

func TestQuote_FallbackExtraOccupancySurcharges(t *testing.T) {
	roomTypes := new(MockRoomTypeReader)
	provider := new(MockProvider)
	roomTypes.On("GetByID", mock.Anything, "bu-1", "rt-1").Return(testRoomType(), nil)
	provider.On("GetQuote", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	svc := NewService(roomTypes, provider, zap.NewNop())
	// 3 adults, 1 child over base occupancy of 2: one extra adult, one
	// extra child per night.
	b, err := svc.Quote(context.Background(), "bu-1", "rt-1", day("2026-09-10"), day("2026-09-12"), 3, 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, b.Nights)
	assert.Equal(t, (1000.0+150+80)*2, b.Subtotal)
	assert.Equal(t, b.Subtotal, b.TotalAmount)
}

func TestQuote_ZeroNightsYieldsZeroBreakdown(t *testing.T) {
	roomTypes := new(MockRoomTypeReader)
	provider := new(MockProvider)
	roomTypes.On("GetByID", mock.Anything, "bu-1", "rt-1").Return(testRoomType(), nil)

	svc := NewService(roomTypes, provider, zap.NewNop())

	// Same-day range and inverted range both price to zero without touching
	// the provider.
	for _, out := range []time.Time{day("2026-09-10"), day("2026-09-08")} {
		b, err := svc.Quote(context.Background(), "bu-1", "rt-1", day("2026-09-10"), out, 2, 0)
		assert.NoError(t, err)
		assert.Zero(t, b.Nights)
		assert.Zero(t, b.TotalAmount)
		assert.Equal(t, domain.QuoteSourceFallback, b.Source)
	}
	provider.AssertNotCalled(t, "GetQuote", mock.Anything, mock.Anything)
}

func TestQuote_MissingDateYieldsZeroBreakdown(t *testing.T) {
	roomTypes := new(MockRoomTypeReader)
	provider := new(MockProvider)
	roomTypes.On("GetByID", mock.Anything, "bu-1", "rt-1").Return(testRoomType(), nil)

	svc := NewService(roomTypes, provider, zap.NewNop())
	b, err := svc.Quote(context.Background(), "bu-1", "rt-1", day("2026-09-10"), time.Time{}, 2, 0)

	assert.NoError(t, err)
	assert.Zero(t, b.Nights)
	assert.Zero(t, b.TotalAmount)
}

func TestQuote_RoomTypeNotFound(t *testing.T) {
	roomTypes := new(MockRoomTypeReader)
	roomTypes.On("GetByID", mock.Anything, "bu-1", "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(roomTypes, new(MockProvider), zap.NewNop())
	_, err := svc.Quote(context.Background(), "bu-1", "missing", day("2026-09-10"), day("2026-09-12"), 2, 0)

	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestQuote_Deterministic(t *testing.T) {
	roomTypes := new(MockRoomTypeReader)
	provider := new(MockProvider)
	roomTypes.On("GetByID", mock.Anything, "bu-1", "rt-1").Return(testRoomType(), nil)
	provider.On("GetQuote", mock.Anything, mock.Anything).Return(nil, ErrProvider)

	svc := NewService(roomTypes, provider, zap.NewNop())
	first, err := svc.Quote(context.Background(), "bu-1", "rt-1", day("2026-09-10"), day("2026-09-13"), 2, 1)
	assert.NoError(t, err)
	second, err := svc.Quote(context.Background(), "bu-1", "rt-1", day("2026-09-10"), day("2026-09-13"), 2, 1)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 3, NightsBetween(day("2026-09-10"), day("2026-09-13")))
	assert.Equal(t, 0, NightsBetween(day("2026-09-10"), day("2026-09-10")))
	assert.Equal(t, -2, NightsBetween(day("2026-09-10"), day("2026-09-08")))
	assert.Equal(t, 0, NightsBetween(time.Time{}, day("2026-09-10")))
}
