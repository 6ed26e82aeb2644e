package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"stayfront/internal/config"
	"stayfront/internal/database"
	"stayfront/internal/domain"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.BusinessUnit{},
		&domain.RoomType{},
		&domain.RoomAvailability{},
		&domain.Booking{},
		&domain.PaymentSession{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payment_sessions")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM room_availabilities")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM business_units")

	// ================== BUSINESS UNITS ==================
	log.Println("Creating business units...")
	units := []domain.BusinessUnit{
		{
			ID:       uuid.NewString(),
			Name:     "Riverside Grand Hotel",
			Slug:     "riverside-grand",
			Timezone: "Europe/Berlin",
			Currency: "EUR",
			IsActive: true,
		},
		{
			ID:       uuid.NewString(),
			Name:     "Harbor View Resort",
			Slug:     "harbor-view",
			Timezone: "America/New_York",
			Currency: "USD",
			IsActive: true,
		},
	}
	for i := range units {
		db.Create(&units[i])
		log.Printf("Unit created: %s (%s)", units[i].Name, units[i].ID)
	}

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")
	roomTypes := []domain.RoomType{
		{
			ID:             uuid.NewString(),
			BusinessUnitID: units[0].ID,
			Name:           "Standard Double",
			Description:    "Cosy double room overlooking the courtyard",
			BaseRate:       120,
			BaseOccupancy:  2,
			MaxOccupancy:   3,
			MaxAdults:      2,
			MaxChildren:    1,
			ExtraAdultRate: 35,
			ExtraChildRate: 20,
			Currency:       "EUR",
			TotalRooms:     24,
			IsActive:       true,
		},
		{
			ID:             uuid.NewString(),
			BusinessUnitID: units[0].ID,
			Name:           "Junior Suite",
			Description:    "Suite with a separate sitting area and river view",
			BaseRate:       240,
			BaseOccupancy:  2,
			MaxOccupancy:   4,
			MaxAdults:      3,
			MaxChildren:    2,
			ExtraAdultRate: 55,
			ExtraChildRate: 30,
			Currency:       "EUR",
			TotalRooms:     8,
			IsActive:       true,
		},
		{
			ID:             uuid.NewString(),
			BusinessUnitID: units[1].ID,
			Name:           "Ocean King",
			Description:    "King room with full ocean view",
			BaseRate:       189,
			BaseOccupancy:  2,
			MaxOccupancy:   4,
			MaxAdults:      2,
			MaxChildren:    2,
			ExtraAdultRate: 45,
			ExtraChildRate: 25,
			Currency:       "USD",
			TotalRooms:     40,
			IsActive:       true,
		},
	}
	for i := range roomTypes {
		db.Create(&roomTypes[i])
		log.Printf("Room type created: %s (%s)", roomTypes[i].Name, roomTypes[i].ID)
	}

	// ================== AVAILABILITY ==================
	// 60 days of availability per room type, with a few sold-out days to
	// make the calendar interesting.
	log.Println("Creating availability...")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, rt := range roomTypes {
		for day := 0; day < 60; day++ {
			available := rt.TotalRooms
			if day%13 == 5 {
				available = 0
			} else if day%7 == 3 {
				available = rt.TotalRooms / 4
			}
			db.Create(&domain.RoomAvailability{
				RoomTypeID:     rt.ID,
				Date:           today.AddDate(0, 0, day),
				AvailableRooms: available,
				TotalRooms:     rt.TotalRooms,
			})
		}
	}

	fmt.Println()
	log.Println("Seed complete.")
	log.Printf("Units: %d, room types: %d, availability days per type: 60", len(units), len(roomTypes))
}
