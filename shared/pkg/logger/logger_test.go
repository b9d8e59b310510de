package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_AssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := New("calendar", &buf)

	var seen string
	h := Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/installations", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP request", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "calendar", line["service"])
	assert.Equal(t, seen, line["request_id"])
	assert.Equal(t, "/api/installations", line["path"])
	assert.EqualValues(t, http.StatusCreated, line["status"])
}

func TestMiddleware_ReusesIncomingID(t *testing.T) {
	var buf bytes.Buffer
	h := Middleware(New("calendar", &buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "abc-123", line["request_id"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := New("calendar", &buf)

	log.FromContext(ContextWithRequestID(context.Background(), "r-1")).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "r-1", line["request_id"])
	assert.Equal(t, "hello", line["message"])

	assert.Empty(t, RequestID(context.Background()))
}
