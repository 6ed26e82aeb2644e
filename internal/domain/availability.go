package domain

import "time"

// RoomAvailability is the per-day room count for a room type. The booking
// core reads these rows for calendar display only; it never writes them.
type RoomAvailability struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	RoomTypeID     string    `json:"room_type_id" gorm:"index:idx_room_type_date,unique;not null"`
	Date           time.Time `json:"date" gorm:"index:idx_room_type_date,unique;type:date"`
	AvailableRooms int       `json:"available_rooms"`
	TotalRooms     int       `json:"total_rooms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
