package handlers

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// Root is the liveness endpoint.
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Safety Alert API is running"})
}

// TestStore reports store connectivity best-effort: env presence, a ping and
// the first few collection names. Failures are captured as strings in the
// payload, never as a non-200.
func (h *Handler) TestStore(c *fiber.Ctx) error {
	resp := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.db == nil {
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Client().Ping(ctx, nil); err != nil {
		resp["database"] = "error: " + truncate(err.Error(), 50)
		return c.JSON(resp)
	}
	resp["connection_status"] = "connected"

	names, err := h.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		resp["database"] = "connected but error: " + truncate(err.Error(), 50)
		return c.JSON(resp)
	}
	if len(names) > 10 {
		names = names[:10]
	}
	resp["collections"] = names
	resp["database"] = "connected"

	return c.JSON(resp)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
