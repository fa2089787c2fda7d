package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ryklith/photo-library-chat/config"
	"github.com/ryklith/photo-library-chat/controllers"
	"github.com/ryklith/photo-library-chat/routes"
	chatservice "github.com/ryklith/photo-library-chat/services/chat"
	galleryservice "github.com/ryklith/photo-library-chat/services/gallery"
	"github.com/ryklith/photo-library-chat/utils/logging"
)

func main() {
	logging.InitLogger()
	cfg, err := config.Load()
	if err != nil {
		logging.ErrorLogger.Error("config load error", zap.Error(err))
		os.Exit(1)
	}

	extractor := galleryservice.NewExtractor()
	dispatcher := chatservice.NewDispatcher(cfg, extractor)

	chatCtrl := controllers.NewChatController(dispatcher)
	webhookCtrl := controllers.NewWebhookController(dispatcher)
	galleryCtrl := controllers.NewGalleryController(extractor)
	healthCtrl := controllers.NewHealthController(cfg.AppName)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/api/chat", routes.ChatRoutes(chatCtrl))
	r.Mount("/api/test-webhook", routes.WebhookRoutes(webhookCtrl))
	r.Mount("/api/gallery", routes.GalleryRoutes(galleryCtrl))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
	logging.AppLogger.Info("server starting",
		zap.String("app", cfg.AppName),
		zap.Int("port", cfg.Port),
		zap.Bool("webhook_configured", cfg.WebhookURL != ""),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
