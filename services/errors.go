package services

import "errors"

// Expected outcomes of contention or bad input; callers surface them
// to the user and let them retry with different parameters.
var (
	ErrUnknownStylist     = errors.New("unknown stylist")
	ErrUnknownService     = errors.New("unknown service")
	ErrUnknownAppointment = errors.New("unknown appointment")
	ErrOutOfRange         = errors.New("date outside the generated schedule")
	ErrSlotUnavailable    = errors.New("slot unavailable")
)
