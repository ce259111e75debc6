package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicare/clinic/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	tokens *auth.TokenService
}

func NewHandler(svc *Service, tokens *auth.TokenService) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.ListDoctors)
	api.POST("/auth/patient/signup", h.PatientSignup)
	api.POST("/auth/patient/login", h.PatientLogin)
	api.POST("/auth/doctor/login", h.DoctorLogin)
}

type signupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginUser is the user object embedded in a login response.
type loginUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}
	if doctors == nil {
		doctors = []*Doctor{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"doctors": doctors})
}

func (h *Handler) PatientSignup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing data")
	}

	_, err := h.svc.RegisterPatient(c.Request().Context(), req.FullName, req.Email, req.Password)
	if errors.Is(err, ErrEmailTaken) {
		return echo.NewHTTPError(http.StatusConflict, "email already exists")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "patient created"})
}

func (h *Handler) PatientLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing data")
	}

	p, err := h.svc.LoginPatient(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}

	token, err := h.tokens.Issue(p.ID, auth.RolePatient, p.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: p.ID, Name: p.FullName, Email: p.Email, Role: auth.RolePatient},
	})
}

func (h *Handler) DoctorLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing data")
	}

	d, err := h.svc.LoginDoctor(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}

	token, err := h.tokens.Issue(d.ID, auth.RoleDoctor, d.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: d.ID, Name: d.FullName, Email: d.Email, Role: auth.RoleDoctor},
	})
}
