package occupancy

import (
	"time"

	"github.com/google/uuid"
	"github.com/sjperalta/stayledger-api/internal/models"
)

// Stay is a booking reduced to the fields the aggregators read, with every
// optional field already resolved
type Stay struct {
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Amount     float64
	Platform   models.Platform
}

// Nights returns the full length of the stay
func (s Stay) Nights() int {
	return StayNights(s.CheckIn, s.CheckOut)
}

// Unit is an active property
type Unit struct {
	ID   uuid.UUID
	Name string
}

// StayFromBooking converts a stored booking. A missing property becomes
// uuid.Nil, a missing or negative amount becomes 0 and an unknown platform
// becomes PlatformOther.
func StayFromBooking(b models.Booking) Stay {
	s := Stay{
		CheckIn:  Day(b.CheckIn),
		CheckOut: Day(b.CheckOut),
		Amount:   b.AmountValue(),
		Platform: b.PlatformValue(),
	}
	if b.PropertyID != nil {
		s.PropertyID = *b.PropertyID
	}
	return s
}

// StaysFromBookings converts a slice of stored bookings
func StaysFromBookings(bookings []models.Booking) []Stay {
	stays := make([]Stay, 0, len(bookings))
	for _, b := range bookings {
		stays = append(stays, StayFromBooking(b))
	}
	return stays
}

// UnitsFromProperties converts stored properties, skipping any that are not active
func UnitsFromProperties(properties []models.Property) []Unit {
	units := make([]Unit, 0, len(properties))
	for i := range properties {
		if !properties[i].IsActive() {
			continue
		}
		units = append(units, Unit{ID: properties[i].ID, Name: properties[i].Name})
	}
	return units
}
