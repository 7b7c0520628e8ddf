package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/auth"
	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/application/usecase"
)

// ProfileHandler expone el perfil del usuario autenticado y las operaciones
// de cuenta (cambio de contraseña y de email).
type ProfileHandler struct {
	uc     *usecase.ProfileUseCase
	authUC *auth.AuthUseCase
}

// NewProfileHandler construye el handler de perfil.
func NewProfileHandler(uc *usecase.ProfileUseCase, authUC *auth.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc, authUC: authUC}
}

// Get GET /api/core/users/profile/
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update PATCH /api/core/users/profile/
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Statistics GET /api/core/users/profile/statistics/
func (h *ProfileHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics(c.Context(), GetTenantID(c), GetUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Completion GET /api/core/users/profile/completion/
func (h *ProfileHandler) Completion(c *fiber.Ctx) error {
	out, err := h.uc.Completion(c.Context(), GetUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Activity GET /api/core/users/profile/activity/?limit=10
func (h *ProfileHandler) Activity(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	out, err := h.uc.Activity(c.Context(), GetUserID(c), limit)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// ChangePassword POST /api/core/users/change-password/
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return failFields(c, "current_password y new_password son requeridos", map[string]string{
			"current_password": "requerido",
			"new_password":     "requerido",
		})
	}
	if err := h.authUC.ChangePassword(c.Context(), GetUserID(c), in); err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"changed": true})
}

// ChangeEmail POST /api/core/users/change-email/
func (h *ProfileHandler) ChangeEmail(c *fiber.Ctx) error {
	var in dto.ChangeEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Password == "" || in.NewEmail == "" {
		return failFields(c, "password y new_email son requeridos", map[string]string{
			"password":  "requerido",
			"new_email": "requerido",
		})
	}
	if err := h.authUC.ChangeEmail(c.Context(), GetUserID(c), in); err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"changed": true})
}
