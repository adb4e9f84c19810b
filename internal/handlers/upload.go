package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ayoo/internal/metrics"
	"ayoo/internal/storage"
	"ayoo/internal/utils/response"
	"ayoo/internal/validation"
)

type UploadHandler struct {
	objects storage.ObjectStorage
}

func NewUploadHandler(objects storage.ObjectStorage) *UploadHandler {
	return &UploadHandler{
		objects: objects,
	}
}

// Image accepts a multipart image upload and returns its public URL.
// Product and deal forms upload here first, then submit the URL.
func (h *UploadHandler) Image(c *fiber.Ctx) error {
	_, merchantID, err := requireMerchant(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return response.BadRequest(c, "A file is required")
	}

	contentType := file.Header.Get("Content-Type")
	if err := validation.Image(contentType, file.Size); err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return response.BadRequest(c, err.Error())
	}

	f, err := file.Open()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return response.BadRequest(c, "Could not read uploaded file")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return response.BadRequest(c, "Could not read uploaded file")
	}

	key := fmt.Sprintf("merchants/%s/%d-%s-%s",
		merchantID, time.Now().Unix(), uuid.NewString()[:8], file.Filename)
	url, err := h.objects.Upload(c.Context(), key, contentType, content)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return response.ServerError(c, "Failed to store the uploaded file")
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	return response.Created(c, fiber.Map{"url": url})
}
