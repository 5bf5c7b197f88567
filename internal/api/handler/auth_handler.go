package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookstack/catalog-api/internal/api/metrics"
	"github.com/bookstack/catalog-api/internal/core/domain"
	"github.com/bookstack/catalog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	PhoneNumber      string `json:"phone_number"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	MembershipStatus string `json:"membership_status"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// dobFormats are the accepted date-of-birth encodings, tried in order.
var dobFormats = []string{time.RFC3339, "2006-01-02"}

func parseDateOfBirth(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range dobFormats {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Signup registers a new member and returns a fresh token.
//
// @Summary      Sign up
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup fields"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/users/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "date_of_birth must be a valid date"})
	}

	result, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		PhoneNumber:      req.PhoneNumber,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		MembershipStatus: req.MembershipStatus,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) || errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	metrics.SignupsTotal.Inc()

	return c.JSON(http.StatusCreated, authResponse{Email: result.Email, Token: result.Token})
}

// Login authenticates a member and returns a token.
//
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{Email: result.Email, Token: result.Token})
}
