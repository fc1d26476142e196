package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/wheatandcat/KAWKAW/internal/config"
)

// CookieName is the admin session cookie
const CookieName = "admin_session"

// SessionManager implements the shared-secret admin gate. The session
// token is a deterministic SHA-256 digest of the configured password, so
// every protected request can be checked by recomputing the digest. There
// is no per-user identity and no server-side session store. Logout clears
// the cookie but cannot invalidate a copied token before its expiry.
type SessionManager struct {
	password     string
	sessionTTL   time.Duration
	cookieSecure bool
}

// NewSessionManager creates a session manager from the admin configuration
func NewSessionManager(cfg config.AdminConfig) *SessionManager {
	return &SessionManager{
		password:     cfg.Password,
		sessionTTL:   cfg.SessionTTL,
		cookieSecure: cfg.CookieSecure,
	}
}

// Authenticate checks the presented password against the configured secret
// and returns the session token on match. An unset secret rejects all
// attempts.
func (m *SessionManager) Authenticate(password string) (string, bool) {
	if m.password == "" {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) != 1 {
		return "", false
	}
	return m.token(), true
}

// Validate reports whether the presented token matches the expected digest
// recomputed from the currently configured secret.
func (m *SessionManager) Validate(token string) bool {
	if m.password == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(m.token())) == 1
}

func (m *SessionManager) token() string {
	sum := sha256.Sum256([]byte(m.password))
	return hex.EncodeToString(sum[:])
}

// IssueCookie sets the admin session cookie on the response
func (m *SessionManager) IssueCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the admin session cookie from the client
func (m *SessionManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest extracts the session token from the request cookie,
// or an empty string when absent.
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
