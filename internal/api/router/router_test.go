package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oppd-health/whatsapp-intake/internal/channels/whatsapp"
	"github.com/oppd-health/whatsapp-intake/internal/directory"
	"github.com/oppd-health/whatsapp-intake/internal/intake"
	"github.com/oppd-health/whatsapp-intake/internal/scheduling"
	"github.com/oppd-health/whatsapp-intake/internal/triage"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := logging.Default()
	engine := intake.NewEngine(
		directory.NewStaticDirectory(),
		triage.NewStaticGenerator(),
		scheduling.NewLogSink(logger),
		nil,
		logger,
		3,
	)
	svc := intake.NewService(intake.NewMemoryStore(), engine, nil, nil, logger)
	wh := whatsapp.NewWebhook("vt", func(whatsapp.InboundText) {}, logger)

	return New(&Config{
		Logger:          logger,
		Webhook:         wh,
		Intake:          svc,
		AdminAuthSecret: "admin-secret",
		DevSimToken:     "dev-token",
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWebhookVerifyRouted(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=vt&hub.challenge=abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", rec.Body.String())
}

func TestSimulateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	post := func(token string, body any) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/dev/simulate", bytes.NewReader(payload))
		if token != "" {
			req.Header.Set("X-Dev-Token", token)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := post("dev-token", map[string]string{"identity": "15551234567", "text": "hi"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp simulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "LANGUAGE_SELECTION", resp.State)
	assert.Contains(t, resp.Message, "Welcome")
	assert.Len(t, resp.QuickReplies, 6)

	assert.Equal(t, http.StatusForbidden, post("wrong", map[string]string{"identity": "x", "text": "hi"}).Code)
	assert.Equal(t, http.StatusBadRequest, post("dev-token", map[string]string{"text": "hi"}).Code)
}

func TestAdminIntakeEndpoint(t *testing.T) {
	r := newTestRouter(t)

	// Seed one turn through the simulate endpoint.
	payload, _ := json.Marshal(map[string]string{"identity": "15551234567", "text": "hi"})
	seed := httptest.NewRequest(http.MethodPost, "/dev/simulate", bytes.NewReader(payload))
	seed.Header.Set("X-Dev-Token", "dev-token")
	r.ServeHTTP(httptest.NewRecorder(), seed)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("admin-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/intake/15551234567", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp adminIntakeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Record)
	assert.Equal(t, intake.StateLanguageSelection, resp.Record.State)

	// No token.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/intake/15551234567", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
