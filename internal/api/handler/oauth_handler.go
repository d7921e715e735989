package handler

import (
	"net/http"

	"members_roulette/internal/api/middleware"
	"members_roulette/internal/app/service"

	"github.com/go-chi/chi/v5"
)

type OAuthHandler struct {
	oauthService *service.OAuthService
	auth         *middleware.Auth
}

func NewOAuthHandler(oauthService *service.OAuthService, auth *middleware.Auth) *OAuthHandler {
	return &OAuthHandler{oauthService: oauthService, auth: auth}
}

func (h *OAuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/google", h.googleLogin)
	r.Get("/google/callback", h.googleCallback)
	r.Get("/google/failure", h.googleFailure)

	r.Group(func(protected chi.Router) {
		protected.Use(h.auth.RequireIdentity)
		protected.Get("/logout", h.googleLogout)
	})
}

func (h *OAuthHandler) googleLogin(w http.ResponseWriter, r *http.Request) {
	url, err := h.oauthService.AuthURL()
	if err != nil {
		http.Redirect(w, r, "/auth/google/failure", http.StatusFound)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func (h *OAuthHandler) googleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("error") != "" {
		http.Redirect(w, r, "/auth/google/failure", http.StatusFound)
		return
	}

	identity, err := h.oauthService.HandleCallback(r.Context(), query.Get("state"), query.Get("code"))
	if err != nil {
		http.Redirect(w, r, "/auth/google/failure", http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.IdentityCookieName,
		Value:    identity.Token,
		Path:     "/",
		MaxAge:   int(h.oauthService.IdentityTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/private-google", http.StatusFound)
}

func (h *OAuthHandler) googleFailure(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte("Falha na autenticação com o Google."))
}

func (h *OAuthHandler) googleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.IdentityCookieName); err == nil && cookie.Value != "" {
		if err := h.oauthService.Logout(r.Context(), cookie.Value); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Erro ao encerrar a sessão do Google."))
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.IdentityCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Write([]byte("Logout do Google realizado com sucesso!"))
}
