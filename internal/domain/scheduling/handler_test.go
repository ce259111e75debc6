package scheduling

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medicare/clinic/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

// newAuthedContext builds an echo context whose request carries claims,
// as RequireAuth would have left them.
func newAuthedContext(e *echo.Echo, method, target, body string, userID int64, role string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	claims := &auth.Claims{UserID: userID, Role: role}
	req = req.WithContext(auth.ContextWithClaims(req.Context(), claims))

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Book(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":1,"appointment_date":"2024-06-10"}`
	c, rec := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)

	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var appt Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &appt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != StatusBooked {
		t.Errorf("expected status booked, got %s", appt.Status)
	}
	if appt.PatientID != 10 {
		t.Errorf("expected patient id from token, got %d", appt.PatientID)
	}
}

func TestHandler_Book_MissingFields(t *testing.T) {
	h, e := newTestHandler()

	c, _ := newAuthedContext(e, http.MethodPost, "/api/appointments", `{"doctor_id":1}`, 10, auth.RolePatient)

	err := h.Book(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Book_BadDate(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":1,"appointment_date":"10/06/2024"}`
	c, _ := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)

	err := h.Book(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Book_UnknownDoctor(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":99,"appointment_date":"2024-06-10"}`
	c, _ := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)

	err := h.Book(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_Book_Conflict(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":1,"appointment_date":"2024-06-10"}`
	c, rec := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)
	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	// A second patient asking for the same doctor and date is rejected.
	c2, _ := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 11, auth.RolePatient)
	err := h.Book(c2)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_ListForPatient(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":1,"appointment_date":"2024-06-10"}`
	c, _ := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)
	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lc, rec := newAuthedContext(e, http.MethodGet, "/api/appointments/patient", "", 10, auth.RolePatient)
	if err := h.ListForPatient(lc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Appointments []*PatientAppointment `json:"appointments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(resp.Appointments))
	}
	if resp.Appointments[0].DoctorName != "Dr. Omar Osama" {
		t.Errorf("expected doctor name in listing, got %s", resp.Appointments[0].DoctorName)
	}

	// Another patient sees none of it.
	oc, orec := newAuthedContext(e, http.MethodGet, "/api/appointments/patient", "", 11, auth.RolePatient)
	if err := h.ListForPatient(oc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(orec.Body.String(), `"appointments":[]`) {
		t.Errorf("expected empty list, got %s", orec.Body.String())
	}
}

func TestHandler_ListForDoctor(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":1,"appointment_date":"2024-06-10"}`
	c, _ := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)
	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dc, rec := newAuthedContext(e, http.MethodGet, "/api/appointments/doctor", "", 1, auth.RoleDoctor)
	if err := h.ListForDoctor(dc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Appointments []*DoctorAppointment `json:"appointments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(resp.Appointments))
	}
	if resp.Appointments[0].PatientName != "Sara Adel" {
		t.Errorf("expected patient name in listing, got %s", resp.Appointments[0].PatientName)
	}
}

func TestHandler_CancelAsPatient(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":1,"appointment_date":"2024-06-10"}`
	c, rec := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)
	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var appt Appointment
	json.Unmarshal(rec.Body.Bytes(), &appt)

	dc, drec := newAuthedContext(e, http.MethodDelete, "/", "", 10, auth.RolePatient)
	dc.SetParamNames("id")
	dc.SetParamValues("1")
	if err := h.CancelAsPatient(dc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", drec.Code)
	}
}

func TestHandler_CancelAsPatient_NotOwned(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":1,"appointment_date":"2024-06-10"}`
	c, _ := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)
	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dc, _ := newAuthedContext(e, http.MethodDelete, "/", "", 11, auth.RolePatient)
	dc.SetParamNames("id")
	dc.SetParamValues("1")

	err := h.CancelAsPatient(dc)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_CancelAsDoctor(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":1,"appointment_date":"2024-06-10"}`
	c, _ := newAuthedContext(e, http.MethodPost, "/api/appointments", body, 10, auth.RolePatient)
	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dc, drec := newAuthedContext(e, http.MethodDelete, "/", "", 1, auth.RoleDoctor)
	dc.SetParamNames("id")
	dc.SetParamValues("1")
	if err := h.CancelAsDoctor(dc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", drec.Code)
	}
}

func TestHandler_Cancel_BadID(t *testing.T) {
	h, e := newTestHandler()

	dc, _ := newAuthedContext(e, http.MethodDelete, "/", "", 10, auth.RolePatient)
	dc.SetParamNames("id")
	dc.SetParamValues("abc")

	err := h.CancelAsPatient(dc)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
