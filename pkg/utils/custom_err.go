package utils

import "errors"

var (
	ErrEmptyDestination  = errors.New("destination is required")
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDateRange  = errors.New("end date must be after start date")
	ErrInvalidBudget     = errors.New("budget must be greater than zero")
	ErrInvalidTravelers  = errors.New("travelers must be between 1 and 20")
	ErrDayOutOfRange     = errors.New("day number outside itinerary range")
	ErrUnknownCurrency   = errors.New("no currency known for destination")
	ErrInvalidInput      = errors.New("invalid input")
)
