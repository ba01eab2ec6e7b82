package handlers

import (
	"github.com/fathima-sithara/alert-service/internal/models"
	"github.com/fathima-sithara/alert-service/internal/utils"
	"github.com/gofiber/fiber/v2"
)

type registerContactReq struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

type registerReq struct {
	Name           string               `json:"name" validate:"required"`
	Phone          string               `json:"phone" validate:"required"`
	Email          string               `json:"email" validate:"omitempty,email"`
	DefaultMessage string               `json:"default_message"`
	Pin            string               `json:"pin" validate:"omitempty,pin"`
	Contacts       []registerContactReq `json:"contacts" validate:"omitempty,dive"`
}

// Register creates the user plus any submitted contacts and returns the new
// user id.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.JSONValidationError(c, utils.FormatValidationErrors(err))
	}

	user := &models.User{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		DefaultMessage: req.DefaultMessage,
		Pin:            req.Pin,
	}
	contacts := make([]models.Contact, len(req.Contacts))
	for i, rc := range req.Contacts {
		contacts[i] = models.Contact{Name: rc.Name, Phone: rc.Phone, Email: rc.Email}
	}

	userID, err := h.users.Register(c.Context(), user, contacts)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"user_id": userID})
}

// ListContacts returns every contact stored against the user id in the path.
// The id is validated for format only; no user existence check.
func (h *Handler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.users.Contacts(c.Context(), c.Params("user_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(contacts)
}
