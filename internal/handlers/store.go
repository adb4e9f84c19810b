package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ayoo/internal/services/store"
	"ayoo/internal/utils/response"
	"ayoo/internal/validation"
)

type StoreHandler struct {
	storeService store.Service
}

func NewStoreHandler(storeService store.Service) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// Get returns the merchant's store profile.
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}

	info, err := h.storeService.Get(merchantID)
	if err != nil {
		return writeError(c, err, "Failed to load store info")
	}
	return response.Success(c, info)
}

func (h *StoreHandler) Update(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input store.Input
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Store name and type are required")
	}

	updated, err := h.storeService.Update(merchantID, id, input)
	if err != nil {
		return writeError(c, err, "Failed to update store info")
	}
	return response.Success(c, updated)
}

// ToggleOpen flips only the open flag and returns the stored record.
func (h *StoreHandler) ToggleOpen(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}

	var input struct {
		StoreOpen bool `json:"storeOpen"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.storeService.ToggleOpen(merchantID, input.StoreOpen)
	if err != nil {
		return writeError(c, err, "Failed to update store status")
	}
	return response.Success(c, updated)
}
