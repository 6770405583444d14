package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/wordpass/wordpass-go/internal/config"
	"github.com/wordpass/wordpass-go/internal/dictionary"
	"github.com/wordpass/wordpass-go/internal/handler"
	"github.com/wordpass/wordpass-go/internal/middleware"
	"github.com/wordpass/wordpass-go/internal/repository"
	"github.com/wordpass/wordpass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.Env == "production" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	dict, err := loadDictionary(cfg)
	if err != nil {
		slog.Error("loading dictionary failed", "error", err)
		os.Exit(1)
	}
	slog.Info("dictionary loaded", "words", dict.Len(), "lengths", len(dict.Lengths()))

	genService := service.NewGeneratorService(dict)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Get("/api/v1/dictionary", genHandler.HandleDictionary)
	})

	// Initialize DB-backed account and wordlist routes if the database is reachable.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — account routes disabled", "error", err)
	} else {
		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		wordlistRepo := repository.NewWordlistRepository(db)
		wordlistService := service.NewWordlistService(wordlistRepo)
		wordlistHandler := handler.NewWordlistHandler(wordlistService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/wordlists", wordlistHandler.HandleList)
			r.Post("/api/v1/wordlists", wordlistHandler.HandleCreate)
			r.Get("/api/v1/wordlists/{wordlist_id}", wordlistHandler.HandleGet)
			r.Put("/api/v1/wordlists/{wordlist_id}", wordlistHandler.HandleUpdate)
			r.Delete("/api/v1/wordlists/{wordlist_id}", wordlistHandler.HandleDelete)
			r.Post("/api/v1/wordlists/{wordlist_id}/generate", wordlistHandler.HandleGenerate)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// loadDictionary resolves the word corpus: an explicit file wins, then a
// remote URL, then the embedded default.
func loadDictionary(cfg config.Config) (*dictionary.Dictionary, error) {
	switch {
	case cfg.DictionaryPath != "":
		slog.Info("loading dictionary from file", "path", cfg.DictionaryPath)
		return dictionary.LoadFile(cfg.DictionaryPath)
	case cfg.DictionaryURL != "":
		slog.Info("loading dictionary from url", "url", cfg.DictionaryURL)
		return dictionary.Fetch(context.Background(), cfg.DictionaryURL)
	default:
		return dictionary.Embedded()
	}
}
