package domain

import "time"

// RoomType is a bookable room category of a business unit, not a physical
// room unit. BaseRate covers up to BaseOccupancy guests per night; guests
// above that are priced with the extra rates.
type RoomType struct {
	ID             string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	BusinessUnitID string `json:"business_unit_id" gorm:"index;not null"`
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description,omitempty" gorm:"type:text"`

	BaseRate       float64 `json:"base_rate" validate:"required,gte=0"`
	BaseOccupancy  int     `json:"base_occupancy" gorm:"default:2"`
	MaxOccupancy   int     `json:"max_occupancy" validate:"required,gt=0"`
	MaxAdults      int     `json:"max_adults" validate:"required,gt=0"`
	MaxChildren    int     `json:"max_children" validate:"gte=0"`
	ExtraAdultRate float64 `json:"extra_adult_rate,omitempty"`
	ExtraChildRate float64 `json:"extra_child_rate,omitempty"`

	// denormalized from the business unit at seed time
	Currency string `json:"currency" gorm:"type:varchar(3);default:'USD'"`

	TotalRooms int  `json:"total_rooms"`
	IsActive   bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
