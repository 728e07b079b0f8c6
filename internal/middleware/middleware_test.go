package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/musician-site/internal/config"
)

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.9")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/auth")

	got := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}, c)
	if got != "rl:ip:203.0.113.9" {
		t.Errorf("ip key = %q", got)
	}
	got = buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}, c)
	if got != "rl:ip:203.0.113.9:route:POST /api/auth" {
		t.Errorf("ip_route key = %q", got)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	h := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, h, []byte(`{"hero":{}}`))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, hdr, body, ok := decodePayload(bs)
	if !ok || status != http.StatusOK || hdr.Get("Content-Type") != "application/json" || string(body) != `{"hero":{}}` {
		t.Errorf("decoded (%d, %v, %q, %v)", status, hdr, body, ok)
	}

	if _, _, _, ok := decodePayload([]byte{0, 0, 0}); ok {
		t.Error("short payload accepted")
	}
	if _, _, _, ok := decodePayload([]byte{0, 0, 0, 200, 0, 0, 1, 0}); ok {
		t.Error("header length past the end accepted")
	}
}

func TestDisabledMiddlewarePassThrough(t *testing.T) {
	e := echo.New()
	h := func(c echo.Context) error { return c.String(http.StatusOK, "live") }
	e.GET("/api/content", h,
		NewContentCache(config.CacheConfig{Enabled: true}, nil),
		NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil, nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "live" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Cache") != "" || rec.Header().Get("X-RateLimit-Limit") != "" {
		t.Error("disabled middleware touched the response")
	}

	var ci *CacheInvalidator
	ci.Invalidate(context.Background())
	NewCacheInvalidator(nil, "c", nil).Invalidate(context.Background())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = RequestIDFrom(c)
		return c.NoContent(http.StatusNoContent)
	}, RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(echo.HeaderXRequestID) != "abc-123" {
		t.Errorf("incoming id not kept: ctx=%q header=%q", seen, rec.Header().Get(echo.HeaderXRequestID))
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || seen == "abc-123" || rec.Header().Get(echo.HeaderXRequestID) != seen {
		t.Errorf("generated id = %q", seen)
	}
}
