package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-auth/internal/logger"
)

// makeRequest creates a test request with a buffer-backed logger in context,
// the way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		handlerStatus   int
		handlerResponse string
		wantStatus      float64
		wantSize        float64
	}{
		{name: "GET 200", method: http.MethodGet, path: "/health", handlerStatus: http.StatusOK, handlerResponse: "OK", wantStatus: 200, wantSize: 2},
		{name: "POST 201", method: http.MethodPost, path: "/api/auth/register", handlerStatus: http.StatusCreated, handlerResponse: "Created", wantStatus: 201, wantSize: 7},
		{name: "DELETE 404", method: http.MethodDelete, path: "/api/users/9", handlerStatus: http.StatusNotFound, wantStatus: 404},
		{name: "no explicit status", method: http.MethodGet, path: "/quiet", wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &buf)
			req.RemoteAddr = "192.0.2.1:1234"
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Equal(t, "192.0.2.1:1234", entry["ip"])
			assert.Equal(t, tt.method+" "+tt.path+" - 192.0.2.1:1234", entry["message"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}
