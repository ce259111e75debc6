package scheduling

import (
	"context"
	"errors"
	"time"
)

// DoctorDirectory answers whether a doctor id refers to a real doctor.
// The identity domain owns the doctors table; an adapter satisfies this
// at wiring time.
type DoctorDirectory interface {
	DoctorExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	doctors DoctorDirectory
}

func NewService(repo Repository, doctors DoctorDirectory) *Service {
	return &Service{repo: repo, doctors: doctors}
}

// Book reserves a doctor's slot on the given date for the patient. A
// doctor holds at most one active booking per date; the unique index on
// (doctor_id, appointment_date) resolves concurrent requests so only
// the first insert wins.
func (s *Service) Book(ctx context.Context, patientID, doctorID int64, date string) (*Appointment, error) {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return nil, ErrInvalidDate
	}

	exists, err := s.doctors.DoctorExists(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDoctorNotFound
	}

	_, err = s.repo.FindActiveBooking(ctx, doctorID, date)
	if err == nil {
		return nil, ErrSlotTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return s.repo.InsertBooked(ctx, patientID, doctorID, date)
}

func (s *Service) ListForPatient(ctx context.Context, patientID int64) ([]*PatientAppointment, error) {
	return s.repo.ListForPatient(ctx, patientID)
}

func (s *Service) ListForDoctor(ctx context.Context, doctorID int64) ([]*DoctorAppointment, error) {
	return s.repo.ListForDoctor(ctx, doctorID)
}

// Cancel marks an appointment cancelled. Only the owning side may
// cancel; an appointment owned by someone else reads as not found.
func (s *Service) Cancel(ctx context.Context, apptID, ownerID int64, ownerRole string) error {
	return s.repo.Cancel(ctx, apptID, ownerID, ownerRole)
}
