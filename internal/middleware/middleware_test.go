package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"fms-dashboard/internal/middleware"
	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestScopeFromHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    model.Scope
	}{
		{
			name:    "Admin username",
			headers: map[string]string{"X-Username": "admin"},
			want:    model.Scope{Role: model.RoleAdmin, Username: "admin"},
		},
		{
			name:    "Admin flag",
			headers: map[string]string{"X-Username": "ravi", "X-Is-Admin": "true"},
			want:    model.Scope{Role: model.RoleAdmin, Username: "ravi"},
		},
		{
			name:    "Company",
			headers: map[string]string{"X-Company": "Acme", "X-Username": "acme-login"},
			want:    model.Scope{Role: model.RoleCompany, Username: "acme-login", CompanyName: "Acme"},
		},
		{
			name:    "User",
			headers: map[string]string{"X-Username": "alice", "X-Member-Name": "Alice K"},
			want:    model.Scope{Role: model.RoleUser, Username: "alice", Member: "Alice K"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := middleware.ScopeFromHeaders(func(k string) string { return tt.headers[k] })
			if got != tt.want {
				t.Errorf("ScopeFromHeaders() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScopeAndRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.RateLimitConfig{})

	r := gin.New()
	r.Use(mw.RequestID(), mw.Scope())
	r.GET("/", func(c *gin.Context) {
		sc, ok := middleware.GetScope(c.Request.Context())
		if !ok {
			t.Error("scope missing from context")
		}
		c.String(http.StatusOK, "%s|%s", sc.Role, log.RequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Company", "Acme")
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Body.String(); got != "company|req-1" {
		t.Errorf("body = %q", got)
	}
	if w.Header().Get("X-Request-ID") != "req-1" {
		t.Errorf("request id header = %q", w.Header().Get("X-Request-ID"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}
}

func TestRateLimit(t *testing.T) {
	// 60 per minute gives a burst of 6.
	mw := middleware.New(log.NewNop(), middleware.RateLimitConfig{PerMin: 60})

	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	var limited bool
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			if i < 6 {
				t.Errorf("request %d limited before the burst was used", i)
			}
		}
	}
	if !limited {
		t.Error("expected the client to be limited")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.9.9.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other client got %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantStatus int
		wantOrigin string
	}{
		{name: "Any origin", origin: "http://ui.local", method: http.MethodGet, wantStatus: http.StatusOK, wantOrigin: "*"},
		{name: "Allowed origin", allowed: []string{"http://ui.local/"}, origin: "http://ui.local", method: http.MethodGet, wantStatus: http.StatusOK, wantOrigin: "http://ui.local"},
		{name: "Preflight", allowed: []string{"http://ui.local"}, origin: "http://ui.local", method: http.MethodOptions, wantStatus: http.StatusNoContent, wantOrigin: "http://ui.local"},
		{name: "Rejected preflight", allowed: []string{"http://ui.local"}, origin: "http://evil.local", method: http.MethodOptions, wantStatus: http.StatusForbidden},
		{name: "No origin", allowed: []string{"http://ui.local"}, method: http.MethodGet, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := middleware.New(log.NewNop(), middleware.RateLimitConfig{})
			r := gin.New()
			r.Use(mw.CORS(tt.allowed))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}
