package handler

import (
	"context"  // context carries request deadlines
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo is the web framework
	"go.uber.org/zap"             // zap structured logging

	"github.com/iliyamo/musician-site/internal/metrics" // metrics holds Prometheus counters
	"github.com/iliyamo/musician-site/internal/utils"   // utils holds token, password and video helpers
)

// AttemptLimiter throttles login attempts per client address.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Succeed(ctx context.Context, key string) error
}

// TokenIssuer mints admin session tokens.
type TokenIssuer interface {
	Issue() (string, error)
}

// AuthHandler exchanges the shared admin password for a session token.
type AuthHandler struct {
	Password string // plain text or bcrypt hash
	Limiter  AttemptLimiter
	Tokens   TokenIssuer
	Log      *zap.Logger
}

func NewAuthHandler(password string, l AttemptLimiter, t TokenIssuer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Password: password, Limiter: l, Tokens: t, Log: log}
}

type loginReq struct {
	Password string `json:"password"`
}

// Login: limiter first, then the password.  A limiter backend error is
// logged and the attempt is let through.
func (h *AuthHandler) Login(c echo.Context) error {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	allowed, err := h.Limiter.Allow(ctx, ip)
	if err != nil {
		h.Log.Warn("login limiter check failed", zap.String("ip", ip), zap.Error(err))
	}
	if !allowed {
		metrics.AuthAttemptsTotal.WithLabelValues("limited").Inc()
		return c.JSON(http.StatusTooManyRequests, echo.Map{
			"success": false,
			"message": "Too many login attempts. Please try again later.",
		})
	}

	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	if req.Password == "" || !utils.CheckPassword(h.Password, req.Password) {
		if err := h.Limiter.Fail(ctx, ip); err != nil {
			h.Log.Warn("login limiter record failed", zap.String("ip", ip), zap.Error(err))
		}
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		h.Log.Info("admin login failed", zap.String("ip", ip))
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid password"})
	}

	if err := h.Limiter.Succeed(ctx, ip); err != nil {
		h.Log.Warn("login limiter reset failed", zap.String("ip", ip), zap.Error(err))
	}
	token, err := h.Tokens.Issue()
	if err != nil {
		h.Log.Error("issue admin token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Authentication failed"})
	}
	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": token})
}
