// Package session is the demo identity collaborator. It hands out one
// hard-coded identity behind a cookie; the rest of the service only ever
// asks it "whose request is this". A real credential-verifying component
// would replace this store without touching anything else.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"
)

const CookieName = "dental_session"

type session struct {
	userID    string
	expiresAt time.Time
}

// Store keeps active sessions in memory. Good enough for the demo login
// this product ships with; sessions do not survive a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]session),
		ttl:      ttl,
	}
}

// Issue creates a session for the user and returns its opaque token.
func (s *Store) Issue(userID string) string {
	buf := make([]byte, 32)
	rand.Read(buf)
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[token] = session{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token
}

// Resolve returns the user behind a token, dropping it if expired.
func (s *Store) Resolve(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", false
	}
	return sess.userID, true
}

func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// sweepLocked drops expired sessions. Caller holds the lock.
func (s *Store) sweepLocked() {
	now := time.Now()
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
		}
	}
}

// CurrentUserID resolves the caller's identity from the request cookie.
// This is the only surface the core consumes.
func (s *Store) CurrentUserID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return s.Resolve(cookie.Value)
}

// SetCookie attaches the session cookie to the response.
func (s *Store) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(s.ttl.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func (s *Store) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}
