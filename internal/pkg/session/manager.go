// Package session implements the server-side session store backing the
// authentication cookie. Sessions are opaque UUID tokens mapped to a user id
// in Redis with a sliding 24-hour expiry.
package session

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "session:"

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

// Manager issues, resolves and destroys sessions.
type Manager struct {
	client     *redis.Client
	ttl        time.Duration
	cookieName string
	secure     bool
	logger     zerolog.Logger
}

// Config holds session manager settings.
type Config struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// NewManager creates a session manager on top of a Redis client.
func NewManager(client *redis.Client, cfg Config, logger zerolog.Logger) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "mirai_session"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Manager{
		client:     client,
		ttl:        cfg.TTL,
		cookieName: cfg.CookieName,
		secure:     cfg.Secure,
		logger:     logger,
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Establish creates a new session for the user and returns its token.
func (m *Manager) Establish(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	err := m.client.Set(ctx, keyPrefix+token, strconv.FormatInt(userID, 10), m.ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a session token to a user id. It fails closed: a missing,
// expired or malformed session yields (0, false), never an error. A hit
// refreshes the expiry (sliding window).
func (m *Manager) Resolve(ctx context.Context, token string) (int64, bool) {
	if token == "" {
		return 0, false
	}
	val, err := m.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if err != redis.Nil {
			m.logger.Warn().Err(err).Msg("Session lookup failed")
		}
		return 0, false
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	// Sliding expiry; a lost concurrent refresh is acceptable.
	if err := m.client.Expire(ctx, keyPrefix+token, m.ttl).Err(); err != nil {
		m.logger.Warn().Err(err).Msg("Session expiry refresh failed")
	}
	return userID, true
}

// Destroy removes a session. Destroying an absent session is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.client.Del(ctx, keyPrefix+token).Err()
}

// TokenFromRequest extracts the session token from the request cookie.
// Returns an empty string when the cookie is absent.
func (m *Manager) TokenFromRequest(c *gin.Context) string {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return token
}

// SetCookie attaches the session cookie to the response.
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(m.ttl/time.Second), "/", "", m.secure, true)
}

// ClearCookie expires the session cookie on the client.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}
