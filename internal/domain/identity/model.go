package identity

import "time"

// Patient maps to the patients table. Patients self-register; the record is
// immutable after signup and never deleted.
type Patient struct {
	ID           int64     `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}

// Doctor maps to the doctors table. Doctors are seeded once at first startup
// and are not self-registerable.
type Doctor struct {
	ID        int64  `db:"id" json:"id"`
	FullName  string `db:"full_name" json:"name"`
	Specialty string `db:"specialty" json:"specialty"`
	// Days holds the weekday indices (0=Sunday..6=Saturday) on which the
	// doctor accepts bookings. Clients use it to constrain the date picker;
	// the server does not enforce it.
	Days         []int     `db:"-" json:"days"`
	DaysText     string    `db:"days_text" json:"daysText"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}
