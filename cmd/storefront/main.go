package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/acehidan/otastaionary-ecommence/internal/catalog"
	"github.com/acehidan/otastaionary-ecommence/internal/checkout"
	h "github.com/acehidan/otastaionary-ecommence/internal/http"
	"github.com/acehidan/otastaionary-ecommence/internal/shell"
)

type Config struct {
	HTTPPort          string
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	SessionTTL        time.Duration
	ProcessingDelay   time.Duration
	ConfirmationDelay time.Duration
}

func loadConfig() *Config {
	checkoutDefaults := checkout.DefaultConfig()

	return &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		RequestTimeout:    getDurationEnv("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		SessionTTL:        getDurationEnv("SESSION_TTL", shell.DefaultSessionTTL),
		ProcessingDelay:   getDurationEnv("PROCESSING_DELAY", checkoutDefaults.ProcessingDelay),
		ConfirmationDelay: getDurationEnv("CONFIRMATION_DELAY", checkoutDefaults.ConfirmationDelay),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func main() {
	cfg := loadConfig()

	cat := catalog.New()
	sessions := shell.NewStore(cat, checkout.Config{
		ProcessingDelay:   cfg.ProcessingDelay,
		ConfirmationDelay: cfg.ConfirmationDelay,
	}, cfg.SessionTTL)
	defer sessions.Close()

	router := h.NewRouter(cat, sessions, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s with %d products", cfg.HTTPPort, cat.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
