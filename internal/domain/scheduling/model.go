package scheduling

import "time"

const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
)

// DateFormat is the wire format for appointment dates. Appointments are
// date-only; no time-of-day is stored.
const DateFormat = "2006-01-02"

// Appointment maps to the appointments table. Status only ever moves
// booked -> cancelled; rows are never deleted or re-activated.
type Appointment struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	Date      string    `db:"appointment_date" json:"appointment_date"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// PatientAppointment is a patient's view of an appointment, joined with the
// doctor's display name and specialty.
type PatientAppointment struct {
	ID         int64  `json:"id"`
	Date       string `json:"appointment_date"`
	Status     string `json:"status"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
}

// DoctorAppointment is a doctor's view of an appointment, joined with the
// patient's display name.
type DoctorAppointment struct {
	ID          int64  `json:"id"`
	Date        string `json:"appointment_date"`
	Status      string `json:"status"`
	PatientName string `json:"patient_name"`
}
