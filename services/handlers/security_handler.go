package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/lac-hong-legacy/folio_api/shared"
)

// SecurityHandler exposes the block-history dashboard behind admin auth.
type SecurityHandler struct {
	contactSvc ContactServiceInterface
}

func NewSecurityHandler(contactSvc ContactServiceInterface) *SecurityHandler {
	return &SecurityHandler{
		contactSvc: contactSvc,
	}
}

// @Summary List Block History
// @Description List strike ledger entries, most recently updated first
// @Tags security
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} shared.Response{data=dto.BlockHistoryResponse}
// @Router /api/v1/admin/security/blocks [get]
func (h *SecurityHandler) ListBlocks(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	resp, err := h.contactSvc.BlockHistory(limit, offset)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Security Stats
// @Description Aggregate strike ledger and in-memory limiter statistics
// @Tags security
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.SecurityStatsResponse}
// @Router /api/v1/admin/security/stats [get]
func (h *SecurityHandler) Stats(c *fiber.Ctx) error {
	resp, err := h.contactSvc.SecurityStats()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Unblock Key
// @Description Reset a tracking key: clears its strikes and lifts any block
// @Tags security
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param unblockRequest body dto.UnblockRequest true "Key to unblock"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/security/unblock [post]
func (h *SecurityHandler) Unblock(c *fiber.Ctx) error {
	var req dto.UnblockRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	if err := h.contactSvc.Unblock(req.Key); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Key unblocked", nil)
}

// @Summary Cleanup Expired
// @Description Purge stale ledger rows and re-arm elapsed temporary blocks
// @Tags security
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.CleanupResponse}
// @Router /api/v1/admin/security/cleanup [post]
func (h *SecurityHandler) Cleanup(c *fiber.Ctx) error {
	resp, err := h.contactSvc.CleanupExpired()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}
