package scheduling

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medicare/clinic/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the appointment endpoints. Every route requires
// a valid token; booking and the patient views require the patient
// role, the doctor views require the doctor role.
func (h *Handler) RegisterRoutes(api *echo.Group, tokens *auth.TokenService) {
	g := api.Group("/appointments", auth.RequireAuth(tokens))

	g.POST("", h.Book, auth.RequireRole(auth.RolePatient))
	g.GET("/patient", h.ListForPatient, auth.RequireRole(auth.RolePatient))
	g.DELETE("/:id", h.CancelAsPatient, auth.RequireRole(auth.RolePatient))

	g.GET("/doctor", h.ListForDoctor, auth.RequireRole(auth.RoleDoctor))
	g.DELETE("/doctor/:id", h.CancelAsDoctor, auth.RequireRole(auth.RoleDoctor))
}

type bookRequest struct {
	DoctorID int64  `json:"doctor_id"`
	Date     string `json:"appointment_date"`
}

func (h *Handler) Book(c echo.Context) error {
	claims := auth.ClaimsFromContext(c.Request().Context())

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.DoctorID == 0 || req.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing data")
	}

	appt, err := h.svc.Book(c.Request().Context(), claims.UserID, req.DoctorID, req.Date)
	switch {
	case errors.Is(err, ErrInvalidDate):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	case errors.Is(err, ErrDoctorNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	case errors.Is(err, ErrSlotTaken):
		return echo.NewHTTPError(http.StatusConflict, "appointment already booked for this date")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}

	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) ListForPatient(c echo.Context) error {
	claims := auth.ClaimsFromContext(c.Request().Context())

	items, err := h.svc.ListForPatient(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}
	if items == nil {
		items = []*PatientAppointment{}
	}
	return c.JSON(http.StatusOK, map[string]any{"appointments": items})
}

func (h *Handler) ListForDoctor(c echo.Context) error {
	claims := auth.ClaimsFromContext(c.Request().Context())

	items, err := h.svc.ListForDoctor(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}
	if items == nil {
		items = []*DoctorAppointment{}
	}
	return c.JSON(http.StatusOK, map[string]any{"appointments": items})
}

func (h *Handler) CancelAsPatient(c echo.Context) error {
	return h.cancel(c, auth.RolePatient)
}

func (h *Handler) CancelAsDoctor(c echo.Context) error {
	return h.cancel(c, auth.RoleDoctor)
}

func (h *Handler) cancel(c echo.Context, role string) error {
	claims := auth.ClaimsFromContext(c.Request().Context())

	apptID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || apptID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	err = h.svc.Cancel(c.Request().Context(), apptID, claims.UserID, role)
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "appointment cancelled"})
}
