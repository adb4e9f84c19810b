package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ayoo/internal/services/catalog"
	"ayoo/internal/utils/response"
	"ayoo/internal/validation"
)

type CategoryHandler struct {
	catalogService catalog.Service
}

func NewCategoryHandler(catalogService catalog.Service) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
	}
}

// List returns the merchant's categories. A backend failure yields an
// empty list, indistinguishable from a store with no categories yet.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	return response.Success(c, h.catalogService.ListCategories(merchantID))
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	user, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}

	var input catalog.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Category name is required")
	}

	created, err := h.catalogService.CreateCategory(merchantID, user.ID, input)
	if err != nil {
		return response.ServerError(c, "Failed to save category")
	}
	return response.Created(c, created)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input catalog.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Category name is required")
	}

	updated, err := h.catalogService.UpdateCategory(merchantID, id, input)
	if err != nil {
		return writeError(c, err, "Failed to update category")
	}
	return response.Success(c, updated)
}

// Toggle flips only the enabled flag and returns the stored record.
func (h *CategoryHandler) Toggle(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.catalogService.SetCategoryEnabled(merchantID, id, input.Enabled)
	if err != nil {
		return writeError(c, err, "Failed to update category")
	}
	return response.Success(c, updated)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteCategory(merchantID, id); err != nil {
		return writeError(c, err, "Failed to delete category")
	}
	return response.Success(c, fiber.Map{
		"message": "Category deleted",
	})
}
