package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ayoo/internal/middleware"
	"ayoo/internal/models"
	"ayoo/internal/repositories"
	"ayoo/internal/utils/response"
)

// requireMerchant returns the authenticated user and its merchant id.
// The onboarding gate runs before most of these handlers, so hitting the
// forbidden branch means the caller has no store yet. The returned errors
// are fiber sentinels so the caller can bail with `return err` and the
// app error handler writes the status.
func requireMerchant(c *fiber.Ctx) (*models.User, string, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, "", fiber.ErrUnauthorized
	}
	if user.MerchantID == "" {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "store setup incomplete")
	}
	return user, user.MerchantID, nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid record id")
	}
	return uint(id), nil
}

// writeError maps repository errors onto HTTP statuses; anything
// unrecognized is a 500 with the fallback message.
func writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, repositories.ErrRecordNotFound):
		return response.NotFound(c, "Record not found")
	case errors.Is(err, repositories.ErrVersionConflict):
		return response.Conflict(c, err.Error())
	default:
		return response.ServerError(c, fallback)
	}
}
