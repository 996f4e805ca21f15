// internal/httpserver/session.go
//
// Stateless solve sessions.
// A session token is an HS256 JWT whose claims carry the word length and the
// turn history ("crane:ggg-g" notation). Every request replays the history
// into a fresh engine, so nothing is held server-side between requests.
package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CarsonDavis/wordle-solver/internal/game"
)

const (
	sessionCookieName = "wordle_session"
	devSecret         = "dev_secret_change_me"
)

var errInvalidSession = errors.New("invalid session token")

// sessionClaims is the JWT payload of a solve session.
type sessionClaims struct {
	Length int      `json:"len"`
	Turns  []string `json:"turns"`
	jwt.RegisteredClaims
}

// sessions signs and verifies session tokens.
type sessions struct {
	secret []byte
	ttl    time.Duration
	length int
}

func newSessions(secret string, ttl time.Duration, length int) *sessions {
	if secret == "" {
		secret = devSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessions{secret: []byte(secret), ttl: ttl, length: length}
}

// sign creates a token for the given history and returns it with its expiry.
func (s *sessions) sign(history []game.Turn) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.ttl)
	turns := make([]string, len(history))
	for i, t := range history {
		turns[i] = t.String()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Length: s.length,
		Turns:  turns,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "solve",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := tok.SignedString(s.secret)
	return ss, exp, err
}

// parse verifies a token and returns the turn history it carries.
func (s *sessions) parse(tokenStr string) ([]game.Turn, error) {
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", errInvalidSession, err)
	}
	if claims.Length != s.length {
		return nil, fmt.Errorf("%w: word length %d, server uses %d", errInvalidSession, claims.Length, s.length)
	}
	history := make([]game.Turn, 0, len(claims.Turns))
	for _, n := range claims.Turns {
		t, err := game.ParseNotation(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidSession, err)
		}
		history = append(history, t)
	}
	return history, nil
}

// setCookie writes the session cookie.
func (s *sessions) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

// clearCookie deletes the session cookie.
func (s *sessions) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a session token from the Authorization header or
// the session cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
