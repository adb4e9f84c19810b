package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ayoo/internal/services/dashboard"
	"ayoo/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats returns the overview card numbers for the merchant.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}
	return response.Success(c, h.dashboardService.Stats(merchantID))
}

// Preview assembles the customer-facing storefront view. A merchant
// without a store record gets a 404 rather than an empty preview.
func (h *DashboardHandler) Preview(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}

	preview, err := h.dashboardService.Preview(merchantID)
	if err != nil {
		return writeError(c, err, "Failed to load store preview")
	}
	return response.Success(c, preview)
}
