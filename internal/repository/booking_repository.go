package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sjperalta/stayledger-api/internal/models"
	"gorm.io/gorm"
)

// BookingRepository defines read access to bookings
type BookingRepository interface {
	ListConfirmed(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// ListConfirmed returns confirmed bookings whose stay touches [start, end].
// The filter is inclusive on both sides, so it may return stays that
// contribute zero nights; callers clamp.
func (r *bookingRepository) ListConfirmed(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Select("id", "organisation_id", "property_id", "check_in", "check_out", "amount", "status", "platform").
		Scopes(confirmedTouching(organisationID, start, end)).
		Order("check_in ASC").
		Find(&bookings).Error
	return bookings, err
}

func confirmedTouching(organisationID uuid.UUID, start, end time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("organisation_id = ?", organisationID).
			Where("status = ?", string(models.BookingStatusConfirmed)).
			Where("check_out >= ?", start.Format("2006-01-02")).
			Where("check_in <= ?", end.Format("2006-01-02"))
	}
}
