package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medicare/clinic/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := newTestService()
	h := NewHandler(svc, auth.NewTokenService("test-secret"))
	e := echo.New()
	return h, e
}

func TestHandler_PatientSignup(t *testing.T) {
	h, e := newTestHandler()

	body := `{"full_name":"Sara Adel","email":"sara@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/patient/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.PatientSignup(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_PatientSignup_MissingFields(t *testing.T) {
	h, e := newTestHandler()

	body := `{"email":"sara@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/patient/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.PatientSignup(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_PatientSignup_DuplicateEmail(t *testing.T) {
	h, e := newTestHandler()

	if _, err := h.svc.RegisterPatient(context.Background(), "Sara Adel", "sara@example.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"full_name":"Other Sara","email":"sara@example.com","password":"secret2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/patient/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.PatientSignup(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_PatientLogin(t *testing.T) {
	h, e := newTestHandler()

	if _, err := h.svc.RegisterPatient(context.Background(), "Sara Adel", "sara@example.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"email":"sara@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/patient/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.PatientLogin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.User.Role != auth.RolePatient {
		t.Errorf("expected role patient, got %s", resp.User.Role)
	}
	if resp.User.Name != "Sara Adel" {
		t.Errorf("expected Sara Adel, got %s", resp.User.Name)
	}
}

func TestHandler_PatientLogin_BadCredentials(t *testing.T) {
	h, e := newTestHandler()

	body := `{"email":"nobody@example.com","password":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/patient/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.PatientLogin(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandler_DoctorLogin(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()

	if _, err := SeedDoctors(ctx, h.svc.doctors); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"email":"dr.omar@medicare.com","password":"doc123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/doctor/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.DoctorLogin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.Role != auth.RoleDoctor {
		t.Errorf("expected role doctor, got %s", resp.User.Role)
	}
}

func TestHandler_ListDoctors(t *testing.T) {
	h, e := newTestHandler()

	if _, err := SeedDoctors(context.Background(), h.svc.doctors); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Doctors []*Doctor `json:"doctors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Doctors) != 4 {
		t.Fatalf("expected 4 doctors, got %d", len(resp.Doctors))
	}
	if resp.Doctors[0].FullName != "Dr. Omar Osama" {
		t.Errorf("expected Dr. Omar Osama first, got %s", resp.Doctors[0].FullName)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("doctor listing leaks password fields")
	}
}

func TestHandler_ListDoctors_Empty(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"doctors":[]`) {
		t.Errorf("expected empty doctors array, got %s", rec.Body.String())
	}
}
