package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jaeholee/agenda-be/internal/api"
	"github.com/jaeholee/agenda-be/internal/auth"
	"github.com/jaeholee/agenda-be/internal/config"
	"github.com/jaeholee/agenda-be/internal/database"
	"github.com/jaeholee/agenda-be/internal/logger"
	"github.com/jaeholee/agenda-be/internal/repository"
	"github.com/jaeholee/agenda-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up repositories and services
	userRepo := repository.NewSQLiteUserRepository(db)
	agendaRepo := repository.NewSQLiteAgendaRepository(db)
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService, cfg.AllowEmptyUsername)
	agendaService := services.NewAgendaService(agendaRepo)

	// Set up router
	router := api.NewRouter(tokenService, authService, agendaService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
