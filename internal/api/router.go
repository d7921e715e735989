package api

import (
	"net/http"
	"time"

	"members_roulette/internal/api/docs"
	"members_roulette/internal/api/handler"
	"members_roulette/internal/api/middleware"
	"members_roulette/internal/app/service"
	"members_roulette/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	memberService *service.MemberService,
	userService *service.UserService,
	authService *service.AuthService,
	oauthService *service.OAuthService,
	sessionRepo repository.SessionRepository,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Loaders run on every request; guards only on protected subtrees.
	auth := middleware.NewAuth(sessionRepo)
	r.Use(auth.SessionLoader)
	r.Use(auth.IdentityLoader)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API funcionando..."))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API documentation
	r.Get("/api-docs", docs.UI)
	r.Get("/api-docs/openapi.json", docs.Spec)

	r.Route("/api", func(apiRouter chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		apiRouter.Route("/auth", authHandler.RegisterRoutes)

		// Member routes (session-protected)
		memberHandler := handler.NewMemberHandler(memberService)
		apiRouter.Route("/members", func(members chi.Router) {
			members.Use(auth.RequireSession)
			memberHandler.RegisterRoutes(members)
		})

		// User routes (session-protected)
		userHandler := handler.NewUserHandler(userService)
		apiRouter.Route("/users", func(users chi.Router) {
			users.Use(auth.RequireSession)
			userHandler.RegisterRoutes(users)
		})
	})

	// Google OAuth routes
	oauthHandler := handler.NewOAuthHandler(oauthService, auth)
	r.Route("/auth", oauthHandler.RegisterRoutes)

	r.Group(func(private chi.Router) {
		private.Use(auth.RequireSession)
		private.Get("/private-local", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Acesso autorizado via sessão local."))
		})
	})

	r.Group(func(private chi.Router) {
		private.Use(auth.RequireIdentity)
		private.Get("/private-google", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Acesso autorizado via conta Google."))
		})
	})

	return r
}
