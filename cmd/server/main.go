// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/mentorhub/go-mentorhub/internal/config"
	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/handlers"
	"github.com/mentorhub/go-mentorhub/internal/middleware"
	"github.com/mentorhub/go-mentorhub/internal/ratelimit"
	"github.com/mentorhub/go-mentorhub/internal/repository/user"
	"github.com/mentorhub/go-mentorhub/internal/services"
	"github.com/mentorhub/go-mentorhub/internal/services/content"
	"github.com/mentorhub/go-mentorhub/internal/services/user_services"
	"github.com/mentorhub/go-mentorhub/internal/storage/kv"
)

// buildGenerator assembles the content generator. When an API key is
// configured the provider is wrapped with the template fallback; otherwise
// templates serve everything directly.
func buildGenerator(cfg *config.Config, logger services.Logger) content.Generator {
	templates := content.NewTemplateGenerator()
	if cfg.ContentAPIKey == "" {
		logger.Info("no content API key configured, using template generator")
		return templates
	}

	providerCfg := content.DefaultConfig()
	providerCfg.APIKey = cfg.ContentAPIKey
	providerCfg.BaseURL = cfg.ContentBaseURL
	providerCfg.Model = cfg.ContentModel

	return content.WithFallback(content.NewOpenAIProvider(providerCfg), templates, logger)
}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &kv.Record{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	logger := services.NewLogger("server")

	// --- Repositories ---
	userRepo := user.NewGormUserRepository(db)

	// --- Services ---
	authService := user_services.NewAuthService(userRepo, cfg.JWTSecretKey, services.NewLogger("auth"))
	userService := user_services.NewUserService(userRepo, services.NewLogger("user"))
	generator := buildGenerator(cfg, services.NewLogger("content"))

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(userService)
	mentorHandler := handlers.NewMentorHandler(userService, generator)

	// --- Rate Limiting ---
	authLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAuthConfig())
	defer authLimiter.Close()

	// --- Router Setup ---
	r := mux.NewRouter()
	authMiddleware := middleware.NewJWTMiddleware(authService)
	loginLimit := middleware.RateLimitMiddleware(authLimiter, "login")
	registerLimit := middleware.RateLimitMiddleware(authLimiter, "register")

	r.Use(middleware.CORS)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
	r.Handle("/api/users/register", registerLimit(http.HandlerFunc(authHandler.Register))).Methods("POST", "OPTIONS")
	r.Handle("/api/users/login", loginLimit(http.HandlerFunc(authHandler.Login))).Methods("POST", "OPTIONS")

	// --- Protected Routes ---
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/users/profile/{userId:[0-9]+}", profileHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/users/profile", profileHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/mentors", mentorHandler.GetMentors).Methods("GET")
	protected.HandleFunc("/classes", mentorHandler.GetUpcomingClasses).Methods("GET")

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:         port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting", "port", cfg.ServerPort, "environment", cfg.Environment)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped.")
}
