// internal/api/v1/handlers/upload_handler.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
)

type UploadHandler struct {
	UploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{UploadService: uploadService}
}

// Serve godoc
// @Summary Uploaded Photo
// @Description Serves a photo stored by a diagnosis or a community post. Public.
// @Tags Uploads
// @Produce image/png,image/jpeg
// @Param name path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} models.APIError
// @Router /uploads/{name} [get]
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	data, mimeType, err := h.UploadService.Upload(c.Context(), c.Params("name"))
	if err != nil {
		return serviceError("serve upload", err)
	}
	c.Set(fiber.HeaderContentType, mimeType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}
