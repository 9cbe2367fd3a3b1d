package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_IssueAndResolve(t *testing.T) {
	store := NewStore(time.Hour)

	token := store.Issue("demo-user-123")
	assert.NotEmpty(t, token)

	userID, ok := store.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, "demo-user-123", userID)
}

func TestStore_ResolveUnknownToken(t *testing.T) {
	store := NewStore(time.Hour)

	_, ok := store.Resolve("no-such-token")
	assert.False(t, ok)
}

func TestStore_ExpiredSessionIsDropped(t *testing.T) {
	store := NewStore(-time.Second)

	token := store.Issue("demo-user-123")

	_, ok := store.Resolve(token)
	assert.False(t, ok)
}

func TestStore_Revoke(t *testing.T) {
	store := NewStore(time.Hour)

	token := store.Issue("demo-user-123")
	store.Revoke(token)

	_, ok := store.Resolve(token)
	assert.False(t, ok)
}

func TestStore_TokensAreUnique(t *testing.T) {
	store := NewStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := store.Issue("demo-user-123")
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestStore_CurrentUserID(t *testing.T) {
	store := NewStore(time.Hour)
	token := store.Issue("demo-user-123")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	userID, ok := store.CurrentUserID(r)
	assert.True(t, ok)
	assert.Equal(t, "demo-user-123", userID)

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok = store.CurrentUserID(bare)
	assert.False(t, ok)
}

func TestStore_SetAndClearCookie(t *testing.T) {
	store := NewStore(time.Hour)

	rec := httptest.NewRecorder()
	store.SetCookie(rec, "tok")
	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	rec = httptest.NewRecorder()
	store.ClearCookie(rec)
	cookies = rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
