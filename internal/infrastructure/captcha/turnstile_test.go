package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestTurnstileVerifier_Success(t *testing.T) {
	var gotSecret, gotResponse, gotRemoteIP string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		gotRemoteIP = r.PostFormValue("remoteip")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	v := NewTurnstileVerifier("secret-key", srv.URL, zerolog.Nop())
	if !v.Verify(context.Background(), "client-token", "203.0.113.7") {
		t.Fatal("expected verification to pass")
	}
	if gotSecret != "secret-key" || gotResponse != "client-token" || gotRemoteIP != "203.0.113.7" {
		t.Fatalf("upstream saw secret=%q response=%q remoteip=%q", gotSecret, gotResponse, gotRemoteIP)
	}
}

func TestTurnstileVerifier_OmitsEmptyRemoteIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if _, ok := r.PostForm["remoteip"]; ok {
			t.Error("remoteip must be omitted when the client IP is unknown")
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	v := NewTurnstileVerifier("secret-key", srv.URL, zerolog.Nop())
	if !v.Verify(context.Background(), "client-token", "") {
		t.Fatal("expected verification to pass")
	}
}

func TestTurnstileVerifier_TokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v := NewTurnstileVerifier("secret-key", srv.URL, zerolog.Nop())
	if v.Verify(context.Background(), "bad-token", "203.0.113.7") {
		t.Fatal("rejected token must not verify")
	}
}

func TestTurnstileVerifier_FailsClosed(t *testing.T) {
	t.Run("upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		v := NewTurnstileVerifier("secret-key", srv.URL, zerolog.Nop())
		if v.Verify(context.Background(), "tok", "") {
			t.Fatal("non-200 upstream must fail closed")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		v := NewTurnstileVerifier("secret-key", srv.URL, zerolog.Nop())
		if v.Verify(context.Background(), "tok", "") {
			t.Fatal("undecodable response must fail closed")
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		v := NewTurnstileVerifier("secret-key", srv.URL, zerolog.Nop())
		if v.Verify(context.Background(), "tok", "") {
			t.Fatal("transport failure must fail closed")
		}
	})
}

func TestTurnstileVerifier_DefaultEndpoint(t *testing.T) {
	v := NewTurnstileVerifier("secret-key", "", zerolog.Nop())
	if v.verifyURL != DefaultVerifyURL {
		t.Fatalf("expected default endpoint, got %q", v.verifyURL)
	}
}
