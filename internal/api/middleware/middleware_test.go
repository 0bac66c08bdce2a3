package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/garage-booking/{token}", ok)
	r.Use(RateLimit(0.001, 2, nil, nopLogger{}))

	send := func(remote string, forwarded ...string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/garage-booking/abc", nil)
		req.RemoteAddr = remote
		for _, f := range forwarded {
			req.Header.Set("X-Forwarded-For", f)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000"), "other clients have their own bucket")
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5003", "203.0.113.99"),
		"forged header does not open a new bucket")
}

func TestClientIP(t *testing.T) {
	trusted := parseProxies([]string{"10.0.0.0/8", "192.168.1.1", "not-an-ip"})
	require.Len(t, trusted, 2)

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "direct connection", remoteAddr: "192.168.1.10:4242", want: "192.168.1.10"},
		{
			name:       "header from untrusted peer is ignored",
			remoteAddr: "198.51.100.4:4242",
			forwarded:  "203.0.113.7",
			want:       "198.51.100.4",
		},
		{
			name:       "trusted proxy",
			remoteAddr: "10.1.2.3:4242",
			forwarded:  "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "spoofed leftmost hop behind trusted proxies",
			remoteAddr: "192.168.1.1:4242",
			forwarded:  "1.1.1.1, 203.0.113.7, 10.0.0.5",
			want:       "203.0.113.7",
		},
		{
			name:       "trusted proxy without header",
			remoteAddr: "10.1.2.3:4242",
			want:       "10.1.2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, clientIP(req, trusted))
		})
	}
}

func TestIPRateLimiter_SameLimiter(t *testing.T) {
	l := NewIPRateLimiter(1, 1)

	assert.Same(t, l.GetLimiter("a"), l.GetLimiter("a"))
	assert.NotSame(t, l.GetLimiter("a"), l.GetLimiter("b"))
}

func TestCORS(t *testing.T) {
	h := CORS("https://fleet.example.com")(http.HandlerFunc(ok))

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/vehicles", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://fleet.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})

	t.Run("regular request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vehicles", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://fleet.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegistry("fleet-test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/vehicles/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/vehicles/42", nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/vehicles/{id}", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsInFlight))
}

func TestMetricsMiddleware_Nil(t *testing.T) {
	h := MetricsMiddleware(nil)(http.HandlerFunc(ok))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

type recordingLogger struct {
	nopLogger
	errors int
}

func (l *recordingLogger) Error(string, ...interface{}) { l.errors++ }

func TestLogging_ServerErrors(t *testing.T) {
	logger := &recordingLogger{}
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 1, logger.errors)
}
