package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mtareb/medichat/internal/api"
	"github.com/mtareb/medichat/internal/upstream"
)

func main() {
	port := getEnv("PORT", "8080")
	upstreamURL := getEnv("UPSTREAM_URL", "http://localhost:8000")
	upstreamTimeout := getEnvSeconds("UPSTREAM_TIMEOUT_SECONDS", 15*time.Second)
	cookieSecure := getEnvBool("COOKIE_SECURE", false)

	client := upstream.New(upstreamURL, upstreamTimeout)
	handler, err := api.NewHandler(client, filepath.Join("internal", "templates"), cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Medichat",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "medichat_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}))

	app.Static("/static", filepath.Join("web", "static"))
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Medichat listening on http://0.0.0.0:%s (upstream: %s)", port, client.BaseURL())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("invalid %s %q, using default", key, raw)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func getEnvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("invalid %s %q, using default", key, raw)
		return fallback
	}
	return value
}
