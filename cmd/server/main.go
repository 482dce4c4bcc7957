package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/givers/site/internal/config"
	"github.com/givers/site/internal/handler"
	"github.com/givers/site/internal/logging"
	"github.com/givers/site/internal/service"
	"github.com/givers/site/internal/sink"
	"github.com/givers/site/pkg/flash"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	flashSecret := flash.SecretBytes(cfg.FlashSecret)

	contactService := service.NewContactService(sink.NewLogSink(slog.Default()), flash.Notifier{})

	pages := handler.NewPageHandler(handler.PageConfig{
		SiteName:    cfg.SiteName,
		Contact:     cfg.Contact,
		FlashSecret: flashSecret,
	})
	rateLimiter := handler.NewRateLimiter(cfg.ContactRateLimit)
	defer rateLimiter.Close()

	router := handler.NewRouter(handler.RouterConfig{
		Site:         handler.New(cfg.SiteName, cfg.FrontendURL),
		Pages:        pages,
		Contact:      handler.NewContactHandler(contactService, pages, flashSecret),
		RateLimiter:  rateLimiter,
		FrameOrigins: []string{handler.Origin(cfg.Contact.MapEmbedURL)},
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
