package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sjperalta/stayledger-api/internal/models"
	"gorm.io/gorm"
)

// PropertyRepository defines read access to properties
type PropertyRepository interface {
	ListActive(ctx context.Context, organisationID uuid.UUID) ([]models.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// ListActive returns the organisation's active properties ordered by name
func (r *propertyRepository) ListActive(ctx context.Context, organisationID uuid.UUID) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.WithContext(ctx).
		Select("id", "organisation_id", "name", "status").
		Where("organisation_id = ?", organisationID).
		Where("status = ?", string(models.PropertyStatusActive)).
		Order("name ASC").
		Find(&properties).Error
	return properties, err
}
