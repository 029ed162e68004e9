// Package session holds the authenticated identity between requests. The
// identity is signed into a cookie at login and read back on every request
// without re-validating against the backend. A stale identity is only caught
// when the first authenticated backend call fails.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Max-glbt/Medi4ll/internal/models"
)

const (
	CookieName = "medi4all_session"
	// BrowserCookieName identifies the browser before login; the selected
	// professional stash is keyed on it.
	BrowserCookieName = "medi4all_bid"

	defaultTTL = 24 * time.Hour
)

var ErrInvalidSession = errors.New("session: invalid or expired")

// Session couples the displayed identity with the upstream backend cookie
// that authenticated API calls replay.
type Session struct {
	Identity models.Identity
	Upstream string
}

type claims struct {
	Identity models.Identity `json:"identity"`
	Upstream string          `json:"upstream"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: defaultTTL}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Issue(s Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Identity: s.Identity,
		Upstream: s.Upstream,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", s.Identity.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

func (m *Manager) Decode(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	c, ok := token.Claims.(*claims)
	if !ok {
		return nil, ErrInvalidSession
	}
	return &Session{Identity: c.Identity, Upstream: c.Upstream}, nil
}
