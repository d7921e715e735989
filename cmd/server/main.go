package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"members_roulette/internal/api"
	"members_roulette/internal/app/service"
	"members_roulette/internal/domain/repository"
	"members_roulette/internal/platform/config"
	"members_roulette/internal/platform/database"
	"members_roulette/internal/platform/sessions"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize Database
	database.Connect()
	defer database.Close()
	if err := database.RunMigrations(database.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}
	fmt.Println("Database connected.")

	// 3. Initialize Redis (session store)
	sessions.ConnectRedis()
	defer sessions.CloseRedis()
	fmt.Println("Redis connected.")

	// 4. Initialize Repositories
	memberRepo := repository.NewPgMemberRepository(database.DB)
	userRepo := repository.NewPgUserRepository(database.DB)
	sessionRepo := repository.NewRedisSessionRepository(sessions.RDB)

	// 5. Initialize Services
	memberService := service.NewMemberService(memberRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, sessionRepo, config.AppConfig.SessionTTL)
	oauthService := service.NewOAuthService(
		sessionRepo,
		config.AppConfig.GoogleClientID,
		config.AppConfig.GoogleClientSecret,
		config.AppConfig.GoogleRedirectURL,
		config.AppConfig.SessionSecret,
		config.AppConfig.SessionTTL,
	)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(memberService, userService, authService, oauthService, sessionRepo)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.Port, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
