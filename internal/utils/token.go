package utils // package utils provides helpers for admin tokens, passwords and media URLs

import (
	"encoding/base64" // tokens travel as standard base64
	"encoding/hex"    // the signature part is hex encoded
	"errors"          // sentinel errors for validation outcomes
	"strconv"         // timestamps are decimal milliseconds
	"strings"         // splitting and prefix checks
	"time"            // token age

	"github.com/golang-jwt/jwt/v5" // HS256 signing method used as the HMAC primitive
)

// tokenSubject is the only principal; there is one shared admin.
const tokenSubject = "admin"

var (
	// ErrMalformedToken covers a missing bearer prefix, bad base64 and a
	// wrong part layout.
	ErrMalformedToken = errors.New("malformed token")
	// ErrBadSignature means the HMAC did not match.
	ErrBadSignature = errors.New("bad token signature")
	// ErrTokenExpired means the token is older than the TTL.
	ErrTokenExpired = errors.New("token expired")
)

// AdminTokens issues and validates admin session tokens of the form
// base64("admin:<unix-ms>:<hex HMAC-SHA256(secret, "admin:<unix-ms>")>").
type AdminTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAdminTokens returns a token service.  now may be nil for time.Now.
func NewAdminTokens(secret string, ttl time.Duration, now func() time.Time) *AdminTokens {
	if now == nil {
		now = time.Now
	}
	return &AdminTokens{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue returns a fresh token stamped with the current time.
func (a *AdminTokens) Issue() (string, error) {
	payload := tokenSubject + ":" + strconv.FormatInt(a.now().UnixMilli(), 10)
	sig, err := jwt.SigningMethodHS256.Sign(payload, a.secret)
	if err != nil {
		return "", err
	}
	raw := payload + ":" + hex.EncodeToString(sig)
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

// ValidateHeader checks an Authorization header value ("Bearer <token>").
func (a *AdminTokens) ValidateHeader(header string) error {
	if !strings.HasPrefix(header, "Bearer ") {
		return ErrMalformedToken
	}
	return a.Validate(strings.TrimPrefix(header, "Bearer "))
}

// Validate checks a raw token.  The signature, when present, is verified
// before the age so a forged token is rejected regardless of its
// timestamp.  Two-part tokens carry no signature and are accepted on age
// alone; older clients still hold them.
func (a *AdminTokens) Validate(token string) error {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return ErrMalformedToken
	}
	parts := strings.Split(string(decoded), ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] != tokenSubject {
		return ErrMalformedToken
	}
	issuedMs, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ErrMalformedToken
	}
	if len(parts) == 3 {
		sig, err := hex.DecodeString(parts[2])
		if err != nil {
			return ErrBadSignature
		}
		// Verify compares in constant time.
		if err := jwt.SigningMethodHS256.Verify(parts[0]+":"+parts[1], sig, a.secret); err != nil {
			return ErrBadSignature
		}
	}
	if a.now().Sub(time.UnixMilli(issuedMs)) > a.ttl {
		return ErrTokenExpired
	}
	return nil
}
