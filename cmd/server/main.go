package main

import (
	"net/http"
	"os"
	"time"

	"bookhaven/internal/config"
	"bookhaven/internal/database"
	"bookhaven/internal/handlers"
	"bookhaven/internal/middleware"
	"bookhaven/internal/repositories"
	"bookhaven/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Info().
		Str("port", cfg.Server.Port).
		Str("env", cfg.Server.Env).
		Str("db", cfg.Database.DBName).
		Msg("starting bookhaven server")

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	bookRepo := repositories.NewBookRepository(db.DB)
	cartItemRepo := repositories.NewCartItemRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	// Services
	tokenService := services.NewTokenService(cfg.JWT.Secret)
	receiptService := services.NewReceiptService()

	var emailService services.EmailService
	if cfg.Resend.APIKey != "" {
		emailService = services.NewResendEmailService(services.ResendConfig{
			APIKey:    cfg.Resend.APIKey,
			FromEmail: cfg.Resend.FromEmail,
			FromName:  cfg.Resend.FromName,
		})
	} else {
		log.Warn().Msg("no Resend API key configured, using mock email service")
		emailService = services.NewMockEmailService()
	}

	catalogService := services.NewCatalogService(bookRepo)
	cartService := services.NewCartService(cartItemRepo, bookRepo)
	authService := services.NewAuthService(userRepo, tokenService, emailService, cfg.Reset.BaseURL)
	orderService := services.NewOrderService(orderRepo, userRepo, cartItemRepo, bookRepo, receiptService)

	// Handlers
	bookHandler := handlers.NewBookHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	userHandler := handlers.NewUserHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Default().Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/books", bookHandler.Routes)
		r.Route("/cartItems", cartHandler.Routes)
		r.Route("/users", userHandler.Routes)
		r.Route("/orders", orderHandler.Routes)
	})

	addr := ":" + cfg.Server.Port
	log.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
