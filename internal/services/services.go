package services

import (
	"github.com/sjperalta/stayledger-api/internal/config"
	"github.com/sjperalta/stayledger-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	Analytics *AnalyticsService
	Export    *ExportService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Analytics: NewAnalyticsService(repos.Property, repos.Booking, cfg.ReportLocale),
		Export:    NewExportService(cfg.CurrencySymbol),
	}
}
