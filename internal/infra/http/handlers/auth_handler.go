package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/infra/session"
	"github.com/dentalhub/leads-api/internal/usecase"
)

// The one identity the demo login hands out. There is no credential check
// here on purpose; swapping in a real identity provider means replacing the
// session store and this handler, nothing below them.
var demoUser = usecase.UpsertUserInput{
	ID:              "demo-user-123",
	Email:           "demo@dentalautomations.io",
	FirstName:       "Dr. Sarah",
	LastName:        "Johnson",
	ProfileImageURL: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=faces",
}

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the authenticated caller set by RequireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

type AuthHandler struct {
	Users    *usecase.UserProfileUseCase
	Sessions *session.Store
	Logger   *zap.Logger
}

func NewAuthHandler(users *usecase.UserProfileUseCase, sessions *session.Store, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, Logger: logger}
}

// HandleLogin refreshes the demo profile row, opens a session and sends the
// browser to the dashboard: GET /api/login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Upsert(r.Context(), demoUser)
	if err != nil {
		h.Logger.Error("login failed", zap.Error(err))
		http.Redirect(w, r, "/?error=auth_error", http.StatusFound)
		return
	}

	token := h.Sessions.Issue(user.ID)
	h.Sessions.SetCookie(w, token)
	h.Logger.Info("user logged in", zap.String("user_id", user.ID))

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// HandleLogout revokes the session: GET /api/logout.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.Sessions.Revoke(cookie.Value)
	}
	h.Sessions.ClearCookie(w)

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleCurrentUser answers "who am I" for the dashboard: GET /api/auth/user.
func (h *AuthHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.Users.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// RequireAuth resolves the caller through the session collaborator and puts
// the user id on the request context, or rejects with 401.
func (h *AuthHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := h.Sessions.CurrentUserID(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
