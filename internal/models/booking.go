package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking represents a reservation of a property for a date interval.
// CheckIn and CheckOut form the half-open interval [CheckIn, CheckOut).
type Booking struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	OrganisationID uuid.UUID           `gorm:"type:uuid;not null;index" json:"organisation_id"`
	PropertyID     *uuid.UUID          `gorm:"type:uuid;index" json:"property_id"`
	CheckIn        time.Time           `gorm:"type:date;not null;index" json:"check_in"`
	CheckOut       time.Time           `gorm:"type:date;not null;index" json:"check_out"`
	Amount         decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"amount"`
	Status         string              `gorm:"default:draft;index" json:"status"`
	Platform       *string             `json:"platform"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// TableName specifies the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// BookingStatus is the closed set of booking states
type BookingStatus string

// Booking status constants
const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusDraft     BookingStatus = "draft"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusUnknown   BookingStatus = "unknown"
)

// ParseBookingStatus maps a stored status onto the closed enumeration
func ParseBookingStatus(raw string) BookingStatus {
	switch BookingStatus(normalizeEnum(raw)) {
	case BookingStatusConfirmed:
		return BookingStatusConfirmed
	case BookingStatusDraft:
		return BookingStatusDraft
	case BookingStatusCancelled, "canceled":
		return BookingStatusCancelled
	default:
		return BookingStatusUnknown
	}
}

// Platform is the channel a booking came from
type Platform string

// Platform constants
const (
	PlatformDirect  Platform = "direct"
	PlatformAirbnb  Platform = "airbnb"
	PlatformBooking Platform = "booking"
	PlatformVrbo    Platform = "vrbo"
	PlatformOther   Platform = "other"
)

// Platforms lists every known platform in display order
func Platforms() []Platform {
	return []Platform{PlatformDirect, PlatformAirbnb, PlatformBooking, PlatformVrbo, PlatformOther}
}

// ParsePlatform maps a stored platform onto the closed enumeration.
// Anything unrecognised, including an empty value, lands in PlatformOther.
func ParsePlatform(raw string) Platform {
	switch normalizeEnum(raw) {
	case "direct", "website":
		return PlatformDirect
	case "airbnb":
		return PlatformAirbnb
	case "booking", "booking.com", "bookingcom":
		return PlatformBooking
	case "vrbo", "abritel", "homeaway":
		return PlatformVrbo
	default:
		return PlatformOther
	}
}

// AmountValue returns the booking amount as a float, coercing null and
// negative values to zero
func (b *Booking) AmountValue() float64 {
	if !b.Amount.Valid || b.Amount.Decimal.IsNegative() {
		return 0
	}
	return b.Amount.Decimal.InexactFloat64()
}

// PlatformValue returns the booking platform, defaulting to PlatformOther
func (b *Booking) PlatformValue() Platform {
	if b.Platform == nil {
		return PlatformOther
	}
	return ParsePlatform(*b.Platform)
}

func normalizeEnum(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
