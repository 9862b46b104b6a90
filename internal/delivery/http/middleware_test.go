package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{
			name:           "exact match",
			origin:         "http://localhost:3000",
			allowedOrigins: []string{"http://localhost:3000"},
			want:           true,
		},
		{
			name:           "wildcard suffix match",
			origin:         "https://reports.deallens.app",
			allowedOrigins: []string{"https://reports.*"},
			want:           true,
		},
		{
			name:           "allow-all wildcard",
			origin:         "http://anywhere.example",
			allowedOrigins: []string{"*"},
			want:           true,
		},
		{
			name:           "multiple allowed origins - matches second",
			origin:         "http://localhost:3000",
			allowedOrigins: []string{"https://reports.*", "http://localhost:3000"},
			want:           true,
		},
		{
			name:           "no match",
			origin:         "http://evil.com",
			allowedOrigins: []string{"http://localhost:3000"},
			want:           false,
		},
		{
			name:           "empty origin",
			origin:         "",
			allowedOrigins: []string{"http://localhost:3000"},
			want:           false,
		},
		{
			name:           "empty allowed list",
			origin:         "http://localhost:3000",
			allowedOrigins: []string{},
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAllowedOrigin(tt.origin, tt.allowedOrigins); got != tt.want {
				t.Errorf("isAllowedOrigin(%q, %v) = %v, want %v", tt.origin, tt.allowedOrigins, got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("sets headers for allowed origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the request origin", got)
		}
	})

	t.Run("omits headers for disallowed origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"*"}))
		router.POST("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("rejects once the burst is spent", func(t *testing.T) {
		// 60/min refills one token per second; the burst is 7.
		router := gin.New()
		router.Use(RateLimitMiddleware(60))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		var lastCode int
		limited := false
		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			lastCode = w.Code
			if w.Code == http.StatusTooManyRequests {
				limited = true
			}
		}

		if !limited {
			t.Error("no request was rate limited in 20 attempts")
		}
		if lastCode != http.StatusTooManyRequests {
			t.Errorf("final status = %d, want %d", lastCode, http.StatusTooManyRequests)
		}
	})

	t.Run("limits are tracked per client IP", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(60))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		// Exhaust one client's budget.
		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
		}

		// A different client is unaffected.
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d for a fresh client, want %d", w.Code, http.StatusOK)
		}
	})
}

func TestIPLimiters_EvictsIdleClients(t *testing.T) {
	limiters := newIPLimiters(60)
	limiters.get("10.0.0.1")
	limiters.get("10.0.0.2")
	if limiters.size() != 2 {
		t.Fatalf("size = %d after two clients, want 2", limiters.size())
	}

	// Backdate one client past the idle cutoff.
	limiters.mu.Lock()
	limiters.clients["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Hour)
	limiters.mu.Unlock()

	limiters.evictIdle(time.Hour)
	if limiters.size() != 1 {
		t.Fatalf("size = %d after eviction, want 1", limiters.size())
	}

	limiters.mu.Lock()
	_, kept := limiters.clients["10.0.0.2"]
	limiters.mu.Unlock()
	if !kept {
		t.Error("active client was evicted")
	}

	// An evicted client that comes back gets a new limiter.
	if got := limiters.get("10.0.0.1"); got == nil {
		t.Fatal("no limiter for a returning client")
	}
	if limiters.size() != 2 {
		t.Errorf("size = %d after the client returned, want 2", limiters.size())
	}
}
