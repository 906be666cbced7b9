package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
)

type userContextKey struct{}

// Authenticator resolves the bearer token of a request into a user
type Authenticator interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Authenticate(ctx context.Context, token string) (*identity.User, error)
}

// AdminChecker reports the admin flag of a user
type AdminChecker interface {
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserFromContext returns the user attached by AuthMiddleware or AdminMiddleware.
func UserFromContext(ctx context.Context) (*identity.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*identity.User)
	return user, ok && user != nil
}

// WithUser attaches user to ctx.
func WithUser(ctx context.Context, user *identity.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// AuthMiddleware rejects requests without a valid bearer token with 401
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := authenticate(w, r, auth)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// AdminMiddleware authenticates like AuthMiddleware, then answers 403 unless the user carries the admin flag
func AdminMiddleware(auth Authenticator, admins AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := authenticate(w, r, auth)
			if !ok {
				return
			}

			isAdmin, err := admins.IsAdmin(r.Context(), user.ID)
			if err != nil {
				logger.Log.Errorw("admin check failed", "user_id", user.ID, "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			if !isAdmin {
				logger.Log.Warnw("admin access denied", "user_id", user.ID, "path", r.URL.Path)
				writeError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func authenticate(w http.ResponseWriter, r *http.Request, auth Authenticator) (*identity.User, bool) {
	ctx := r.Context()

	token, err := auth.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Infow("authorization failed", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	user, err := auth.Authenticate(ctx, token)
	if err != nil {
		logger.Log.Infow("authorization failed", "path", r.URL.Path, "err", err)
		msg := identity.ErrInvalidToken.Error()
		if !errors.Is(err, identity.ErrInvalidToken) {
			msg = err.Error()
		}
		writeError(w, http.StatusUnauthorized, msg)
		return nil, false
	}

	return user, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
