package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medicare/clinic/internal/platform/auth"
)

const uniqueViolation = "23505"

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var date time.Time
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &date, &a.Status, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Date = date.Format(DateFormat)
	return &a, nil
}

func (r *repoPG) InsertBooked(ctx context.Context, patientID, doctorID int64, date string) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, status)
		VALUES ($1, $2, $3::date, 'booked')
		RETURNING id, patient_id, doctor_id, appointment_date, status, created_at`,
		patientID, doctorID, date)
	a, err := r.scanAppointment(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return a, nil
}

func (r *repoPG) FindActiveBooking(ctx context.Context, doctorID int64, date string) (*Appointment, error) {
	return r.scanAppointment(r.pool.QueryRow(ctx, `
		SELECT id, patient_id, doctor_id, appointment_date, status, created_at
		FROM appointments
		WHERE doctor_id = $1 AND appointment_date = $2::date AND status = 'booked'`,
		doctorID, date))
}

func (r *repoPG) ListForPatient(ctx context.Context, patientID int64) ([]*PatientAppointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.appointment_date, a.status, d.full_name AS doctor_name, d.specialty
		FROM appointments a
		JOIN doctors d ON a.doctor_id = d.id
		WHERE a.patient_id = $1
		ORDER BY a.appointment_date ASC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PatientAppointment
	for rows.Next() {
		var pa PatientAppointment
		var date time.Time
		if err := rows.Scan(&pa.ID, &date, &pa.Status, &pa.DoctorName, &pa.Specialty); err != nil {
			return nil, err
		}
		pa.Date = date.Format(DateFormat)
		items = append(items, &pa)
	}
	return items, rows.Err()
}

func (r *repoPG) ListForDoctor(ctx context.Context, doctorID int64) ([]*DoctorAppointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.appointment_date, a.status, p.full_name AS patient_name
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		WHERE a.doctor_id = $1
		ORDER BY a.appointment_date ASC`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DoctorAppointment
	for rows.Next() {
		var da DoctorAppointment
		var date time.Time
		if err := rows.Scan(&da.ID, &date, &da.Status, &da.PatientName); err != nil {
			return nil, err
		}
		da.Date = date.Format(DateFormat)
		items = append(items, &da)
	}
	return items, rows.Err()
}

func (r *repoPG) Cancel(ctx context.Context, apptID, ownerID int64, ownerRole string) error {
	var ownerCol string
	switch ownerRole {
	case auth.RolePatient:
		ownerCol = "patient_id"
	case auth.RoleDoctor:
		ownerCol = "doctor_id"
	default:
		return fmt.Errorf("unknown owner role: %s", ownerRole)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments SET status = 'cancelled'
		WHERE id = $1 AND `+ownerCol+` = $2`, apptID, ownerID)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
