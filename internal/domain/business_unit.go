package domain

import "time"

// BusinessUnit is a single property of the hotel group.
type BusinessUnit struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug" gorm:"uniqueIndex"`
	Timezone string `json:"timezone"`
	Currency string `json:"currency" gorm:"type:varchar(3);default:'USD'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
