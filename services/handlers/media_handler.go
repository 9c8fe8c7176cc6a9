package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/folio_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload Asset
// @Description Upload a media file into one of the known folders
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param folder path string true "Target folder (projects, slides, logos, cv)"
// @Param file formData file true "File to upload"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/media/{folder} [post]
func (h *MediaHandler) UploadAsset(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "Missing file")
	}

	resp, err := h.mediaSvc.UploadAsset(c.Params("folder"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Uploaded", resp)
}

// @Summary Delete Asset
// @Description Delete a media object by its storage path
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param object query string true "Object path inside the bucket"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/media [delete]
func (h *MediaHandler) DeleteAsset(c *fiber.Ctx) error {
	object := c.Query("object")
	if object == "" {
		return shared.NewBadRequestError(nil, "Missing object path")
	}

	if err := h.mediaSvc.DeleteAsset(object); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}
