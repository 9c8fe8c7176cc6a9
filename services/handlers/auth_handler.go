package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/lac-hong-legacy/folio_api/shared"
)

type AuthHandler struct {
	authSvc AuthServiceInterface
}

func NewAuthHandler(authSvc AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// @Summary Admin Login
// @Description Authenticate the admin account and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Credentials"
// @Success 200 {object} shared.Response{data=dto.LoginResponse}
// @Failure 401 {object} shared.Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	resp, err := h.authSvc.Login(req, c.IP(), c.Get("User-Agent"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Admin Logout
// @Description Revoke the current session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	jti := c.Locals(shared.TokenID).(string)

	if err := h.authSvc.Logout(jti); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Logged out", nil)
}

// @Summary Change Password
// @Description Change the admin password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body dto.ChangePasswordRequest true "Password change"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	adminID := c.Locals(shared.AdminID).(string)

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	if err := h.authSvc.ChangePassword(adminID, req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Password changed", nil)
}

// @Summary Verify Token
// @Description Check that the presented token is still valid
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.VerifyResponse}
// @Router /api/v1/admin/verify/jwt [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	adminID := c.Locals(shared.AdminID).(string)

	resp, err := h.authSvc.Verify(adminID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}
