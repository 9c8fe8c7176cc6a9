package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/lac-hong-legacy/folio_api/shared"
)

type ContactHandler struct {
	contactSvc ContactServiceInterface
}

func NewContactHandler(contactSvc ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactSvc: contactSvc,
	}
}

// @Summary Send Contact Message
// @Description Submit the contact form. Requests pass the abuse gate before reaching this handler.
// @Tags contact
// @Accept json
// @Produce json
// @Param contactRequest body dto.ContactRequest true "Contact message"
// @Success 200 {object} shared.Response{data=dto.ContactResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 429 {object} shared.Response
// @Router /api/v1/contact [post]
func (h *ContactHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	if err := h.contactSvc.ProcessContact(req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Message sent", dto.ContactResponse{Sent: true})
}
