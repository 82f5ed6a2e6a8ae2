package services

import "errors"

// Common service errors
var (
	ErrMissingOrganisation = errors.New("organisation is required")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange        = errors.New("end_date must not be before start_date")
	ErrUnsupportedFormat   = errors.New("unsupported export format (csv, xlsx, pdf)")
)
