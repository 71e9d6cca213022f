package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"gatepass/internal/auth"
	"gatepass/internal/cache"
	"gatepass/internal/config"
	"gatepass/internal/db"
	"gatepass/internal/handler"
	"gatepass/internal/layout"
	"gatepass/internal/model"
	"gatepass/internal/notify"
	"gatepass/internal/repository"
	"gatepass/internal/router"
	"gatepass/internal/service"
)

// @title Gatepass API
// @version 1.0
// @description Event registration, badge printing and door check-in.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := gormDB.AutoMigrate(&model.Attendee{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	attendeeRepo := repository.NewAttendeeRepository(gormDB)
	layoutStore := layout.NewStore(cfg.LayoutPath)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	hub := notify.NewHub(log)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		_ = hub.Run(ctx)
	}()

	authService := service.NewAuthService(cfg.AdminUser, cfg.AdminPass, jwtService, tokenStore)
	attendeeService := service.NewAttendeeService(attendeeRepo, hub)
	layoutService := service.NewLayoutService(layoutStore)
	badgeService := service.NewBadgeService(attendeeRepo, layoutService, hub)
	importService := service.NewImportService(attendeeRepo, hub)
	exportService := service.NewExportService(attendeeRepo)

	authHandler := handler.NewAuthHandler(authService)
	attendeeHandler := handler.NewAttendeeHandler(attendeeService)
	scanHandler := handler.NewScanHandler(attendeeService)
	badgeHandler := handler.NewBadgeHandler(badgeService)
	importExportHandler := handler.NewImportExportHandler(importService, exportService)
	layoutHandler := handler.NewLayoutHandler(layoutService)
	wsHandler := handler.NewWSHandler(hub)

	router.Register(
		e,
		cfg,
		authHandler,
		attendeeHandler,
		scanHandler,
		badgeHandler,
		importExportHandler,
		layoutHandler,
		wsHandler,
	)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
