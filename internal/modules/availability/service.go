package availability

import (
	"context"
	"time"

	"stayfront/internal/domain"
)

type availabilityReader interface {
	GetRange(ctx context.Context, roomTypeID string, from, to time.Time) ([]domain.RoomAvailability, error)
}

type roomTypeReader interface {
	GetByID(ctx context.Context, businessUnitID, roomTypeID string) (*domain.RoomType, error)
	ListByBusinessUnit(ctx context.Context, businessUnitID string) ([]domain.RoomType, error)
}

// DayAvailability is one calendar cell: how many rooms of the type remain
// bookable that day.
type DayAvailability struct {
	Date           string `json:"date"`
	AvailableRooms int    `json:"available_rooms"`
	TotalRooms     int    `json:"total_rooms"`
}

type Service struct {
	avail     availabilityReader
	roomTypes roomTypeReader
}

func NewService(avail availabilityReader, roomTypes roomTypeReader) *Service {
	return &Service{avail: avail, roomTypes: roomTypes}
}

// ListRoomTypes returns the active room types of a property.
func (s *Service) ListRoomTypes(ctx context.Context, businessUnitID string) ([]domain.RoomType, error) {
	return s.roomTypes.ListByBusinessUnit(ctx, businessUnitID)
}

// GetCalendar returns per-day availability for calendar display. Days with
// no row fall back to the room type's total count (nothing booked yet).
func (s *Service) GetCalendar(ctx context.Context, businessUnitID, roomTypeID string, from, to time.Time) ([]DayAvailability, error) {
	rt, err := s.roomTypes.GetByID(ctx, businessUnitID, roomTypeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.avail.GetRange(ctx, roomTypeID, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]domain.RoomAvailability, len(rows))
	for _, r := range rows {
		byDate[r.Date.Format("2006-01-02")] = r
	}

	out := make([]DayAvailability, 0)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if r, ok := byDate[key]; ok {
			out = append(out, DayAvailability{Date: key, AvailableRooms: r.AvailableRooms, TotalRooms: r.TotalRooms})
			continue
		}
		out = append(out, DayAvailability{Date: key, AvailableRooms: rt.TotalRooms, TotalRooms: rt.TotalRooms})
	}
	return out, nil
}
