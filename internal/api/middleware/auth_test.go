package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubAuthService struct {
	validToken string
}

func (s *stubAuthService) Login(ctx context.Context, password string) (string, error) {
	return "", errors.New("not used")
}

func (s *stubAuthService) Validate(ctx context.Context, token string) bool {
	return token == s.validToken
}

func callWithAuthHeader(t *testing.T, header string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sites", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := SessionAuth(&stubAuthService{validToken: "good-token"})
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	return mw(next)(c)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	assertUnauthorized(t, callWithAuthHeader(t, ""))
}

func TestSessionAuth_MalformedHeader(t *testing.T) {
	assertUnauthorized(t, callWithAuthHeader(t, "good-token"))
	assertUnauthorized(t, callWithAuthHeader(t, "Basic good-token"))
	assertUnauthorized(t, callWithAuthHeader(t, "Bearer "))
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	assertUnauthorized(t, callWithAuthHeader(t, "Bearer bad-token"))
}

func TestSessionAuth_ValidToken(t *testing.T) {
	if err := callWithAuthHeader(t, "Bearer good-token"); err != nil {
		t.Fatalf("valid token must pass through, got %v", err)
	}
}

func TestSessionAuth_BearerIsCaseInsensitive(t *testing.T) {
	if err := callWithAuthHeader(t, "bearer good-token"); err != nil {
		t.Fatalf("scheme match must be case-insensitive, got %v", err)
	}
}
