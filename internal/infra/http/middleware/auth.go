package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/leadcentral/internal/auth"
	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/usecase"
)

type contextKey string

const userContextKey contextKey = "current_user"

// Authenticator resolves the Bearer token into a full user record so
// handlers never re-fetch the caller.
type Authenticator struct {
	Tokens *auth.TokenManager
	Users  usecase.UserRepositoryInterface
}

func NewAuthenticator(tokens *auth.TokenManager, users usecase.UserRepositoryInterface) *Authenticator {
	return &Authenticator{Tokens: tokens, Users: users}
}

func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "Token manquant")
			return
		}

		claims, err := a.Tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "Token invalide")
			return
		}

		user, err := a.Users.FindByID(r.Context(), claims.UserID)
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "Utilisateur non trouvé")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subtree on a capability instead of string-comparing
// roles inside handlers.
func RequireRole(role entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user.Role != role {
				writeAuthError(w, http.StatusForbidden, "Accès non autorisé")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entity.User)
	return user, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   http.StatusText(status),
		"message": message,
	})
}
