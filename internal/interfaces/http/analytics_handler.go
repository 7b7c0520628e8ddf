package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/analytics"
)

// AnalyticsHandler expone el dashboard de lectura del tenant activo.
type AnalyticsHandler struct {
	uc *analytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler de analítica.
func NewAnalyticsHandler(uc *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard GET /api/analytics/dashboard/?meses=6
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	meses, _ := strconv.Atoi(c.Query("meses", "6"))
	out, err := h.uc.Get(c.Context(), GetTenantID(c), meses)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
