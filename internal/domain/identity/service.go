package identity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the doctor seed hashes were generated with.
const bcryptCost = 10

type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
}

func NewService(patients PatientRepository, doctors DoctorRepository) *Service {
	return &Service{patients: patients, doctors: doctors}
}

// RegisterPatient hashes the password and creates a patient record. A
// duplicate email fails with ErrEmailTaken.
func (s *Service) RegisterPatient(ctx context.Context, fullName, email, password string) (int64, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	p := &Patient{FullName: fullName, Email: email, PasswordHash: hash}
	if err := s.patients.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// LoginPatient verifies a patient's credentials. An unknown email and a wrong
// password both fail with ErrInvalidCredentials.
func (s *Service) LoginPatient(ctx context.Context, email, password string) (*Patient, error) {
	p, err := s.patients.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !verifyPassword(password, p.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

// LoginDoctor verifies a doctor's credentials.
func (s *Service) LoginDoctor(ctx context.Context, email, password string) (*Doctor, error) {
	d, err := s.doctors.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !verifyPassword(password, d.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return d, nil
}

// ListDoctors returns all doctors ordered by id ascending.
func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
