package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

func TestRequestLoggerCapturesStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter("info", &buf)

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	out := buf.String()
	if !strings.Contains(out, `"status":418`) {
		t.Fatalf("status not logged: %s", out)
	}
	if !strings.Contains(out, `"path":"/health"`) {
		t.Fatalf("path not logged: %s", out)
	}
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAdminJWT(t *testing.T) {
	var sawClaims bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawClaims = AdminClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminJWT("s3cret")(next)

	call := func(auth string) int {
		req := httptest.NewRequest(http.MethodGet, "/admin/intake/x", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := call("Bearer " + signToken(t, "s3cret")); code != http.StatusOK {
		t.Fatalf("valid token rejected: %d", code)
	}
	if !sawClaims {
		t.Fatalf("claims not placed in context")
	}
	if code := call(""); code != http.StatusUnauthorized {
		t.Fatalf("missing header should be 401, got %d", code)
	}
	if code := call("Bearer " + signToken(t, "wrong-secret")); code != http.StatusUnauthorized {
		t.Fatalf("bad signature should be 401, got %d", code)
	}

	disabled := AdminJWT("")(next)
	rec := httptest.NewRecorder()
	disabled.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("empty secret should disable access, got %d", rec.Code)
	}
}
