package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryRange scopes an analytics request to one organisation and an
// inclusive span of calendar days
type QueryRange struct {
	OrganisationID uuid.UUID `json:"organisation_id"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
}

// RevenueAnalytics holds the headline revenue metrics for a range
type RevenueAnalytics struct {
	RevPAR              float64 `json:"revpar"`
	ADR                 float64 `json:"adr"`
	AvgStayDuration     float64 `json:"avg_stay_duration"`
	ActivePropertyCount int     `json:"active_property_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	OccupiedNights      int     `json:"occupied_nights"`
	BookingCount        int     `json:"booking_count"`
	DaysInRange         int     `json:"days_in_range"`
}

// OccupationByProperty represents occupancy and revenue for one active property
type OccupationByProperty struct {
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	OccupiedNights  int       `json:"occupied_nights"`
	AvailableNights int       `json:"available_nights"`
	OccupationRate  int       `json:"occupation_rate"`
	Revenue         float64   `json:"revenue"`
}

// OccupationByMonth represents occupancy and pro-rated revenue for one
// calendar month intersecting the range
type OccupationByMonth struct {
	Month          string  `json:"month"`
	Label          string  `json:"label"`
	OccupiedNights int     `json:"occupied_nights"`
	TotalNights    int     `json:"total_nights"`
	OccupationRate int     `json:"occupation_rate"`
	Revenue        float64 `json:"revenue"`
}

// RevenueByPlatform represents revenue attributed to one booking channel.
// Amounts are not pro-rated: a booking touching the range counts in full.
type RevenueByPlatform struct {
	Platform    Platform `json:"platform"`
	Count       int      `json:"count"`
	TotalAmount float64  `json:"total_amount"`
	Percentage  int      `json:"percentage"`
}

// AnalyticsReport bundles every aggregate for a range
type AnalyticsReport struct {
	Range      QueryRange             `json:"range"`
	Revenue    RevenueAnalytics       `json:"revenue"`
	Properties []OccupationByProperty `json:"properties"`
	Months     []OccupationByMonth    `json:"months"`
	Platforms  []RevenueByPlatform    `json:"platforms"`
}
