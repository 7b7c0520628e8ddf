package http

import "github.com/gofiber/fiber/v2"

// healthBody es el contrato público del health check: lo consumen sondas
// externas que comprueban campos concretos, no cambiar sus claves.
type healthBody struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Modules map[string]string `json:"modules"`
}

// Health GET /api/core/health/ (público).
func Health(c *fiber.Ctx) error {
	return c.JSON(healthBody{
		Status:  "ok",
		Message: "Arte Ideas Core App funcionando correctamente",
		Modules: map[string]string{
			"profile":       "disponible",
			"configuration": "disponible",
		},
	})
}
