package api

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mtareb/medichat/internal/upstream"
)

func newTestApp(t *testing.T, upstreamURL string) (*fiber.App, *Handler) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	apiDir := filepath.Dir(testFile)
	templatesDir := filepath.Join(filepath.Dir(apiDir), "templates")

	client := upstream.New(upstreamURL, 5*time.Second)
	handler, err := NewHandler(client, templatesDir, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}
