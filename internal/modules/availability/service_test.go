package availability

import (
	"context"
	"testing"
	"time"

	"stayfront/internal/domain"

	"github.com/stretchr/testify/assert"
)

type stubAvailability struct {
	rows []domain.RoomAvailability
	err  error
}

func (s *stubAvailability) GetRange(ctx context.Context, roomTypeID string, from, to time.Time) ([]domain.RoomAvailability, error) {
	return s.rows, s.err
}

type stubRoomTypes struct {
	rt  *domain.RoomType
	err error
}

func (s *stubRoomTypes) GetByID(ctx context.Context, businessUnitID, roomTypeID string) (*domain.RoomType, error) {
	return s.rt, s.err
}

func (s *stubRoomTypes) ListByBusinessUnit(ctx context.Context, businessUnitID string) ([]domain.RoomType, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.RoomType{*s.rt}, nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestGetCalendar_FillsMissingDays(t *testing.T) {
	avail := &stubAvailability{rows: []domain.RoomAvailability{
		{RoomTypeID: "rt-1", Date: day("2026-09-11"), AvailableRooms: 3, TotalRooms: 20},
		{RoomTypeID: "rt-1", Date: day("2026-09-12"), AvailableRooms: 0, TotalRooms: 20},
	}}
	roomTypes := &stubRoomTypes{rt: &domain.RoomType{ID: "rt-1", TotalRooms: 20}}

	svc := NewService(avail, roomTypes)
	days, err := svc.GetCalendar(context.Background(), "bu-1", "rt-1", day("2026-09-10"), day("2026-09-13"))

	assert.NoError(t, err)
	assert.Len(t, days, 3)
	assert.Equal(t, DayAvailability{Date: "2026-09-10", AvailableRooms: 20, TotalRooms: 20}, days[0])
	assert.Equal(t, DayAvailability{Date: "2026-09-11", AvailableRooms: 3, TotalRooms: 20}, days[1])
	assert.Equal(t, DayAvailability{Date: "2026-09-12", AvailableRooms: 0, TotalRooms: 20}, days[2])
}

func TestGetCalendar_EmptyRange(t *testing.T) {
	svc := NewService(&stubAvailability{}, &stubRoomTypes{rt: &domain.RoomType{TotalRooms: 5}})
	days, err := svc.GetCalendar(context.Background(), "bu-1", "rt-1", day("2026-09-10"), day("2026-09-10"))

	assert.NoError(t, err)
	assert.Empty(t, days)
}
