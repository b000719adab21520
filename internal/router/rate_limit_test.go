package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rule := RateLimitRule{Prefix: "test:rate", WindowSeconds: 60, MaxRequests: 1}
	r.Use(RateLimitMiddleware(nil, rule, KeyByIP))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	// 未配置 Redis 时限流直接放行，不应出现 429
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request #%d want 200 got %d", i, w.Code)
		}
	}
}

func TestRateLimitMiddlewareDisabledRule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{}, nil))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("disabled rule want 200 got %d", w.Code)
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  int64
		ok    bool
	}{
		{"int64", int64(7), 7, true},
		{"int", int(8), 8, true},
		{"int32", int32(9), 9, true},
		{"uint64", uint64(10), 10, true},
		{"uint32", uint32(11), 11, true},
		{"float64", float64(12.9), 12, true},
		{"float32", float32(13.1), 13, true},
		{"string", "14", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("want (%d, %v) got (%d, %v)", tc.want, tc.ok, got, ok)
			}
		})
	}
}
