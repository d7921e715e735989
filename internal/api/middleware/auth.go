package middleware

import (
	"context"
	"net/http"

	"members_roulette/internal/common"
	"members_roulette/internal/domain/model"
	"members_roulette/internal/domain/repository"
)

const (
	SessionCookieName  = "session_id"
	IdentityCookieName = "identity_id"
)

type contextKey string

const (
	sessionCtxKey  contextKey = "session"
	identityCtxKey contextKey = "identity"
)

// Auth holds the loader and guard steps composed by the router: loaders
// resolve cookies against the session store and populate the request context,
// guards are pure predicates that reject with 401 when nothing was loaded.
type Auth struct {
	sessions repository.SessionRepository
}

func NewAuth(sessions repository.SessionRepository) *Auth {
	return &Auth{sessions: sessions}
}

// SessionLoader resolves the session cookie into a Session in the request
// context. It never rejects; missing or expired tokens just leave the
// context empty for the guard to judge.
func (a *Auth) SessionLoader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err == nil && cookie.Value != "" {
			if session, err := a.sessions.FindSession(r.Context(), cookie.Value); err == nil {
				ctx := context.WithValue(r.Context(), sessionCtxKey, session)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Auth) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			common.RespondWithError(w, http.StatusUnauthorized, "Não autorizado. Faça login para acessar.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityLoader resolves the identity cookie set by the Google OAuth
// callback, mirroring SessionLoader.
func (a *Auth) IdentityLoader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(IdentityCookieName)
		if err == nil && cookie.Value != "" {
			if identity, err := a.sessions.FindIdentity(r.Context(), cookie.Value); err == nil {
				ctx := context.WithValue(r.Context(), identityCtxKey, identity)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Auth) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			common.RespondWithError(w, http.StatusUnauthorized, "Não autorizado. Faça login com o Google.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func SessionFromContext(ctx context.Context) (*model.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*model.Session)
	return session, ok
}

func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(*model.Identity)
	return identity, ok
}
