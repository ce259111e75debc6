package scheduling

import "context"

type Repository interface {
	// InsertBooked creates a new appointment with status=booked. A concurrent
	// booking that slips past the service's existence check fails here with
	// ErrSlotTaken via the store's active-slot uniqueness constraint.
	InsertBooked(ctx context.Context, patientID, doctorID int64, date string) (*Appointment, error)

	// FindActiveBooking returns the booked appointment for (doctor, date),
	// or ErrNotFound when the slot is free.
	FindActiveBooking(ctx context.Context, doctorID int64, date string) (*Appointment, error)

	ListForPatient(ctx context.Context, patientID int64) ([]*PatientAppointment, error)
	ListForDoctor(ctx context.Context, doctorID int64) ([]*DoctorAppointment, error)

	// Cancel sets status=cancelled on the appointment only if it is owned by
	// ownerID under ownerRole; otherwise ErrNotFound.
	Cancel(ctx context.Context, apptID, ownerID int64, ownerRole string) error
}
