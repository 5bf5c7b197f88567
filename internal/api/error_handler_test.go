package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookstack/catalog-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrMissingFields, http.StatusBadRequest, "Please add all fields"},
		{domain.ErrUserExists, http.StatusBadRequest, "User already exists"},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{domain.ErrInvalidBookID, http.StatusBadRequest, "invalid book id"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "Request is not authorized"},
		{domain.ErrBookNotFound, http.StatusNotFound, "book not found"},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] != tc.msg {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.msg, body["error"])
		}
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Authorization token required"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "Authorization token required" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	rec, body := renderError(t, errors.New("connection to 10.0.0.5 refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// Internal details must not leak to the client.
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
