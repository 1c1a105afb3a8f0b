package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/api/metrics"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

// AuthHandler handles signup, login, and logout for both account kinds.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	City     string `json:"city"`
	Age      int    `json:"age" validate:"omitempty,gte=16"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type loginResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	User    *domain.Account `json:"user"`
}

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SeekerSignup creates a new seeker account.
//
// @Summary      Register a job seeker
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  map[string]any
// @Router       /auth/signup [post]
func (h *AuthHandler) SeekerSignup(c echo.Context) error {
	return h.signup(c, domain.RoleSeeker, "User registered successfully")
}

// RecruiterSignup creates a new recruiter account.
//
// @Summary      Register a recruiter
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  map[string]any
// @Router       /auth/recruiter/signup [post]
func (h *AuthHandler) RecruiterSignup(c echo.Context) error {
	return h.signup(c, domain.RoleRecruiter, "Recruiter registered successfully")
}

// SeekerLogin authenticates a seeker and returns a session token.
//
// @Summary      Log in as a job seeker
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) SeekerLogin(c echo.Context) error {
	return h.login(c, domain.RoleSeeker)
}

// RecruiterLogin authenticates a recruiter and returns a session token.
//
// @Summary      Log in as a recruiter
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Router       /auth/recruiter/login [post]
func (h *AuthHandler) RecruiterLogin(c echo.Context) error {
	return h.login(c, domain.RoleRecruiter)
}

// Logout acknowledges the client-side token discard. Tokens are stateless, so
// there is nothing to revoke server-side.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ackResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, ackResponse{Success: true, Message: "Logged out successfully"})
}

func (h *AuthHandler) signup(c echo.Context, role domain.Role, message string) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.authService.Signup(c.Request().Context(), role, ports.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		City:     req.City,
		Age:      req.Age,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()
	return c.JSON(http.StatusCreated, signupResponse{Success: true, Message: message, ID: account.ID})
}

func (h *AuthHandler) login(c echo.Context, role domain.Role) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, account, err := h.authService.Login(c.Request().Context(), role, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(string(role), "failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token, User: account})
}
