package identity

import (
	"context"
	"fmt"
)

// seedDoctors is the fixed roster inserted on first startup. The shared
// placeholder password is acceptable because doctor accounts are demo
// credentials, not production identities.
var seedDoctors = []struct {
	fullName  string
	specialty string
	days      []int
	daysText  string
	email     string
	password  string
}{
	{"Dr. Omar Osama", "Cardiologist", []int{1, 3, 5}, "Mon, Wed, Fri", "dr.omar@medicare.com", "doc123"},
	{"Dr. Youssef Mohamed", "Dermatologist", []int{2, 4}, "Tue, Thu", "dr.youssef@medicare.com", "doc123"},
	{"Dr. Nour Mohamed", "Pediatrician", []int{0, 6}, "Sun, Sat", "dr.nour@medicare.com", "doc123"},
	{"Dr. Mariam Mahmoud", "General Doctor", []int{0, 1, 2, 3, 4}, "Sun to Thu", "dr.mariam@medicare.com", "doc123"},
}

// SeedDoctors inserts the fixed doctor roster when the doctors table is
// empty. It is a no-op on any later run, making it safe to call on every
// startup. Returns the number of doctors inserted.
func SeedDoctors(ctx context.Context, doctors DoctorRepository) (int, error) {
	n, err := doctors.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	inserted := 0
	for _, sd := range seedDoctors {
		hash, err := hashPassword(sd.password)
		if err != nil {
			return inserted, fmt.Errorf("hash seed password: %w", err)
		}
		d := &Doctor{
			FullName:     sd.fullName,
			Specialty:    sd.specialty,
			Days:         sd.days,
			DaysText:     sd.daysText,
			Email:        sd.email,
			PasswordHash: hash,
		}
		if err := doctors.Create(ctx, d); err != nil {
			return inserted, fmt.Errorf("seed doctor %s: %w", sd.email, err)
		}
		inserted++
	}
	return inserted, nil
}
