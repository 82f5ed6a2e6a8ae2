package models

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a rental unit managed by an organisation
type Property struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganisationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organisation_id"`
	Name           string    `gorm:"not null" json:"name"`
	Status         string    `gorm:"default:active;index" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}

// PropertyStatus is the closed set of property states
type PropertyStatus string

// Property status constants
const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
	PropertyStatusUnknown  PropertyStatus = "unknown"
)

// ParsePropertyStatus maps a stored status onto the closed enumeration
func ParsePropertyStatus(raw string) PropertyStatus {
	switch PropertyStatus(normalizeEnum(raw)) {
	case PropertyStatusActive:
		return PropertyStatusActive
	case PropertyStatusInactive:
		return PropertyStatusInactive
	default:
		return PropertyStatusUnknown
	}
}

// IsActive returns true if the property counts toward available nights
func (p *Property) IsActive() bool {
	return ParsePropertyStatus(p.Status) == PropertyStatusActive
}
