package routes

import (
	"github.com/fathima-sithara/alert-service/internal/handlers"
	"github.com/fathima-sithara/alert-service/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.Root)
	app.Get("/test", h.TestStore)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")
	api.Post("/register", h.Register)
	api.Get("/contacts/:user_id", h.ListContacts)
	api.Post("/alerts", h.TriggerAlert)
	api.Post("/alerts/cancel", h.CancelAlert)
	api.Get("/alerts/:user_id", h.ListAlerts)
}
