package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ayoo/internal/services/deals"
	"ayoo/internal/utils/response"
	"ayoo/internal/validation"
)

type DealHandler struct {
	dealService deals.Service
}

func NewDealHandler(dealService deals.Service) *DealHandler {
	return &DealHandler{
		dealService: dealService,
	}
}

// List returns the merchant's deals, newest first. A backend failure
// yields an empty list.
func (h *DealHandler) List(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	return response.Success(c, h.dealService.List(merchantID))
}

func (h *DealHandler) Create(c *fiber.Ctx) error {
	user, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}

	var input deals.Input
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Deal name and a non-negative discount are required")
	}

	created, err := h.dealService.Create(merchantID, user.ID, input)
	if err != nil {
		if errors.Is(err, deals.ErrDealTypeRequired) || errors.Is(err, deals.ErrBadDateRange) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to save deal")
	}
	return response.Created(c, created)
}

func (h *DealHandler) Update(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input deals.Input
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Deal name and a non-negative discount are required")
	}

	updated, err := h.dealService.Update(merchantID, id, input)
	if err != nil {
		if errors.Is(err, deals.ErrDealTypeRequired) || errors.Is(err, deals.ErrBadDateRange) {
			return response.BadRequest(c, err.Error())
		}
		return writeError(c, err, "Failed to update deal")
	}
	return response.Success(c, updated)
}

// Toggle flips only the active flag and returns the stored record. The
// deal still only counts as live while the date window holds.
func (h *DealHandler) Toggle(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input struct {
		Active bool `json:"active"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.dealService.SetActive(merchantID, id, input.Active)
	if err != nil {
		return writeError(c, err, "Failed to update deal")
	}
	return response.Success(c, updated)
}

func (h *DealHandler) Delete(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.dealService.Delete(merchantID, id); err != nil {
		return writeError(c, err, "Failed to delete deal")
	}
	return response.Success(c, fiber.Map{
		"message": "Deal deleted",
	})
}
