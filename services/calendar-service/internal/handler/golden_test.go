package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGoldenJSON pins the response shapes the Persian frontend depends on
func TestGoldenJSON(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		target     string
		body       string
		header     []string
		goldenFile string
		skipFields []string // volatile fields
	}{
		{
			name:       "Today",
			method:     http.MethodGet,
			target:     "/api/calendar/today",
			goldenFile: "today.json",
		},
		{
			name:       "ConvertNowruz",
			method:     http.MethodGet,
			target:     "/api/calendar/convert?jalali=1404/1/1",
			goldenFile: "convert_nowruz.json",
		},
		{
			name:       "InstallationCreated",
			method:     http.MethodPost,
			target:     "/api/installations",
			body:       `{"order_id":3,"installation_date":"1403/09/16","time":"09:30","notes":"طبقه دوم","color":"#1e88e5"}`,
			goldenFile: "installation_created.json",
			skipFields: []string{"created_at"},
		},
		{
			name:       "ValidationPersian",
			method:     http.MethodPost,
			target:     "/api/installations",
			body:       `{"order_id":3,"installation_date":"1403/13/01"}`,
			header:     []string{"Accept-Language", "fa"},
			goldenFile: "validation_fa.json",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			golden, err := os.ReadFile(filepath.Join("testdata", tc.goldenFile))
			require.NoError(t, err, "Failed to read golden file: %s", tc.goldenFile)

			rec := newTestServer(nil).do(t, tc.method, tc.target, tc.body, tc.header...)
			assert.JSONEq(t, normalizeJSON(t, golden, tc.skipFields), normalizeJSON(t, rec.Body.Bytes(), tc.skipFields))
		})
	}
}

// normalizeJSON re-encodes raw without skipFields at any depth
func normalizeJSON(t *testing.T, raw []byte, skipFields []string) string {
	t.Helper()

	var obj interface{}
	require.NoError(t, json.Unmarshal(raw, &obj), string(raw))

	out, err := json.Marshal(removeFields(obj, skipFields))
	require.NoError(t, err)
	return string(out)
}

// removeFields recursively removes specified fields from a JSON structure
func removeFields(obj interface{}, fields []string) interface{} {
	switch v := obj.(type) {
	case map[string]interface{}:
		for _, field := range fields {
			delete(v, field)
		}
		for key, val := range v {
			v[key] = removeFields(val, fields)
		}
		return v
	case []interface{}:
		for i, val := range v {
			v[i] = removeFields(val, fields)
		}
		return v
	default:
		return v
	}
}
