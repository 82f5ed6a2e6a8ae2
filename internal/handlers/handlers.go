package handlers

import (
	"github.com/sjperalta/stayledger-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Analytics *AnalyticsHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(),
		Analytics: NewAnalyticsHandler(svcs.Analytics, svcs.Export),
	}
}
