package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"ayoo/internal/logger"
	"ayoo/internal/middleware"
	"ayoo/internal/services/onboarding"
	"ayoo/internal/storage"
	"ayoo/internal/utils/response"
	"ayoo/internal/validation"
)

type OnboardingHandler struct {
	onboardingService onboarding.Service
	objects           storage.ObjectStorage
}

func NewOnboardingHandler(onboardingService onboarding.Service, objects storage.ObjectStorage) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
		objects:           objects,
	}
}

// Complete finishes store setup. The form arrives as multipart so the
// logo rides along; if the save fails after the logo was stored, the
// uploaded object is deleted again rather than left orphaned.
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c, "Invalid claims")
	}

	input := onboarding.Input{
		StoreName:     c.FormValue("storeName"),
		StoreType:     c.FormValue("storeType"),
		Description:   c.FormValue("description"),
		Address:       c.FormValue("address"),
		ContactNumber: c.FormValue("contactNumber"),
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, "Store name, type, address and contact number are required")
	}

	logoURL := ""
	if file, err := c.FormFile("logo"); err == nil {
		logoURL, err = h.uploadLogo(c.Context(), claims.UserID, file)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		input.LogoURL = logoURL
	}

	updated, err := h.onboardingService.Complete(claims.UserID, input)
	if err != nil {
		if logoURL != "" {
			// Compensate so the failed save leaves no orphaned object.
			if delErr := h.objects.Delete(context.Background(), logoURL); delErr != nil {
				logger.Sugar().Warnw("failed to clean up uploaded logo",
					"url", logoURL, "error", delErr)
			}
		}
		if errors.Is(err, onboarding.ErrAlreadyOnboarded) {
			return response.Conflict(c, err.Error())
		}
		return response.ServerError(c, "Failed to set up your store. Please try again.")
	}

	return response.Success(c, updated)
}

func (h *OnboardingHandler) uploadLogo(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if err := validation.Image(contentType, file.Size); err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", errors.New("could not read uploaded file")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", errors.New("could not read uploaded file")
	}

	key := fmt.Sprintf("merchants/%d/logo-%s", userID, file.Filename)
	return h.objects.Upload(ctx, key, contentType, content)
}
