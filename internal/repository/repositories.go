package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Property PropertyRepository
	Booking  BookingRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Property: NewPropertyRepository(db),
		Booking:  NewBookingRepository(db),
	}
}
