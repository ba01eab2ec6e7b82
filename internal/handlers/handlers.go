package handlers

import (
	"errors"

	"github.com/fathima-sithara/alert-service/internal/repository"
	"github.com/fathima-sithara/alert-service/internal/services"
	"github.com/fathima-sithara/alert-service/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var validate *validator.Validate

func init() {
	validate = utils.NewValidator()
}

type Handler struct {
	users  *services.UserService
	alerts *services.AlertService
	db     *mongo.Database
	logger *zap.SugaredLogger
}

func NewHandler(users *services.UserService, alerts *services.AlertService, db *mongo.Database, logger *zap.SugaredLogger) *Handler {
	return &Handler{users: users, alerts: alerts, db: db, logger: logger}
}

// respondError maps service/repository errors onto the HTTP surface. Anything
// outside the known taxonomy is treated as the store being unreachable.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, repository.ErrUserNotFound):
		return utils.JSONError(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, repository.ErrAlertNotFound):
		return utils.JSONError(c, fiber.StatusNotFound, "Alert not found")
	case errors.Is(err, services.ErrInvalidPIN):
		return utils.JSONError(c, fiber.StatusForbidden, "Invalid PIN")
	default:
		h.logger.Errorw("store operation failed", "path", c.Path(), "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Database not available")
	}
}
