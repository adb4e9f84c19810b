package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ayoo/internal/middleware"
	"ayoo/internal/models"
	"ayoo/internal/services/user"
	"ayoo/internal/utils/response"
	"ayoo/internal/validation"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a merchant account.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Email, password, first name and last name are required")
	}

	created, err := h.userService.Create(&input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, created)
}

// Me returns the caller's account, the session-resolution endpoint the
// dashboard polls on load.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c, "Invalid claims")
	}

	u, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		return response.Unauthorized(c, "User not found")
	}

	return response.Success(c, u)
}

// Update merges a partial profile update into the caller's account.
// Fields not present in the body keep their stored values.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c, "Invalid claims")
	}

	var input models.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.userService.UpdateProfile(claims.UserID, &input)
	if err != nil {
		return response.ServerError(c, "Failed to update profile")
	}

	return response.Success(c, updated)
}

// DeleteAccount only revokes the caller's sessions. The account and its
// records stay; real deletion has never been wired up.
func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c, "Invalid claims")
	}

	if err := h.userService.DeactivateAccount(claims.UserID); err != nil {
		return response.ServerError(c, "Failed to delete account")
	}

	return response.Success(c, fiber.Map{
		"message": "Signed out",
	})
}
