package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ayoo/internal/services/catalog"
	"ayoo/internal/utils/response"
	"ayoo/internal/validation"
)

type ProductHandler struct {
	catalogService catalog.Service
}

func NewProductHandler(catalogService catalog.Service) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// List returns the merchant's products, optionally narrowed by the
// categoryId query parameter. A backend failure yields an empty list.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}

	var categoryID uint
	if raw := c.Query("categoryId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid category ID")
		}
		categoryID = uint(parsed)
	}

	return response.Success(c, h.catalogService.ListProducts(merchantID, categoryID))
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	user, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}

	var input catalog.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Product name, category and a non-negative price are required")
	}

	created, err := h.catalogService.CreateProduct(merchantID, user.ID, input)
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to save product")
	}
	return response.Created(c, created)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input catalog.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Product name, category and a non-negative price are required")
	}

	updated, err := h.catalogService.UpdateProduct(merchantID, id, input)
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			return response.BadRequest(c, err.Error())
		}
		return writeError(c, err, "Failed to update product")
	}
	return response.Success(c, updated)
}

// Toggle flips only the available flag and returns the stored record.
func (h *ProductHandler) Toggle(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input struct {
		Available bool `json:"available"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.catalogService.SetProductAvailable(merchantID, id, input.Available)
	if err != nil {
		return writeError(c, err, "Failed to update product")
	}
	return response.Success(c, updated)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteProduct(merchantID, id); err != nil {
		return writeError(c, err, "Failed to delete product")
	}
	return response.Success(c, fiber.Map{
		"message": "Product deleted",
	})
}
