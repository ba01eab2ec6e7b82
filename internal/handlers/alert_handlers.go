package handlers

import (
	"github.com/fathima-sithara/alert-service/internal/models"
	"github.com/fathima-sithara/alert-service/internal/utils"
	"github.com/gofiber/fiber/v2"
)

type triggerAlertReq struct {
	UserID   string           `json:"user_id" validate:"required"`
	Message  string           `json:"message"`
	Location *models.Location `json:"location"`
}

type cancelAlertReq struct {
	AlertID string `json:"alert_id" validate:"required"`
	Pin     string `json:"pin"`
}

// TriggerAlert creates an active alert for the given user.
func (h *Handler) TriggerAlert(c *fiber.Ctx) error {
	var req triggerAlertReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.JSONValidationError(c, utils.FormatValidationErrors(err))
	}

	alert, err := h.alerts.Trigger(c.Context(), req.UserID, req.Message, req.Location)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"alert_id": alert.ID.Hex(), "status": alert.Status})
}

// CancelAlert sets an alert's status to canceled, PIN-gated when the owning
// user has one configured.
func (h *Handler) CancelAlert(c *fiber.Ctx) error {
	var req cancelAlertReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.JSONValidationError(c, utils.FormatValidationErrors(err))
	}

	alert, err := h.alerts.Cancel(c.Context(), req.AlertID, req.Pin)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"alert_id": alert.ID.Hex(), "status": alert.Status})
}

// ListAlerts returns every alert for the user id in the path, any status.
func (h *Handler) ListAlerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.List(c.Context(), c.Params("user_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(alerts)
}
