package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/commentbox/comment-system/internal/core/domain"
	"github.com/commentbox/comment-system/internal/core/ports"
)

type stubProvisionService struct {
	applyFn func(ctx context.Context, in ports.ApplyCodeInput) (string, error)
}

func (s *stubProvisionService) Apply(ctx context.Context, in ports.ApplyCodeInput) (string, error) {
	return s.applyFn(ctx, in)
}

func TestProvisionHandler_Apply_Success(t *testing.T) {
	e := echo.New()
	var got ports.ApplyCodeInput
	stub := &stubProvisionService{
		applyFn: func(ctx context.Context, in ports.ApplyCodeInput) (string, error) {
			got = in
			return "a1b2c3d4e5f60718293a4b5c6d7e8f90", nil
		},
	}
	handler := NewProvisionHandler(stub)

	body := `{"turnstile_token":"tok","url":"https://blog.example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/apply-code", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.RemoteAddr = "203.0.113.7:50000"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.TurnstileToken != "tok" || got.URL != "https://blog.example.com" || got.ClientIP != "203.0.113.7" {
		t.Fatalf("unexpected input: %+v", got)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["site_id"] != "a1b2c3d4e5f60718293a4b5c6d7e8f90" {
		t.Fatalf("unexpected site_id: %q", resp["site_id"])
	}
	if resp["message"] == "" {
		t.Fatal("expected a success message")
	}
}

func TestProvisionHandler_Apply_ErrorsPropagate(t *testing.T) {
	e := echo.New()
	for _, sentinel := range []error{domain.ErrMissingParams, domain.ErrCaptchaFailed} {
		stub := &stubProvisionService{
			applyFn: func(ctx context.Context, in ports.ApplyCodeInput) (string, error) {
				return "", sentinel
			},
		}
		handler := NewProvisionHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/api/apply-code", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.Apply(c); !errors.Is(err, sentinel) {
			t.Fatalf("expected %v to propagate, got %v", sentinel, err)
		}
	}
}
