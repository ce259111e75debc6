package scheduling

import "errors"

var (
	// ErrDoctorNotFound is returned when a booking names a doctor id that
	// does not exist.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrSlotTaken is returned when the doctor already has an active booking
	// on the requested date. First writer wins; there is no waitlist.
	ErrSlotTaken = errors.New("appointment already booked")

	// ErrInvalidDate is returned when a booking date is not a YYYY-MM-DD
	// calendar date.
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrNotFound is returned when an appointment does not exist or is not
	// owned by the caller. Ownership misses are indistinguishable from
	// missing rows so callers cannot probe other owners' appointments.
	ErrNotFound = errors.New("appointment not found")
)
