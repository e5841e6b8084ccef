package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/empmgmt/employee-backend/internal/client"
	"github.com/empmgmt/employee-backend/internal/config"
	"github.com/empmgmt/employee-backend/internal/logger"
	"github.com/empmgmt/employee-backend/internal/service"
	"github.com/empmgmt/employee-backend/internal/webui"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.WebPort).
		Str("api", cfg.APIBaseURL).
		Msg("Starting Employee Management Web")

	// The web tier holds no database connection. Every operation goes
	// through the API with a freshly minted service token.
	tokenService := service.NewTokenService(cfg)
	employeeClient := client.NewEmployeeClient(cfg.APIBaseURL, tokenService, log)
	departmentClient := client.NewDepartmentClient(cfg.APIBaseURL, tokenService, log)

	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	handlers := webui.NewHandlers(employeeClient, departmentClient, log)
	handlers.Register(r)

	srv := &http.Server{
		Addr:    ":" + cfg.WebPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.WebPort).Msg("Web server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Web server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Web server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
