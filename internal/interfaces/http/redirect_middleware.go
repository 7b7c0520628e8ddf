package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TrailingSlashRedirect redirige con 308 las rutas de la API sin barra final
// a su forma canónica con barra, preservando método y query string. Solo
// aplica bajo /api; /metrics y /docs quedan fuera del contrato de barras.
func TrailingSlashRedirect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if strings.HasPrefix(path, "/api") && !strings.HasSuffix(path, "/") {
			target := path + "/"
			if qs := string(c.Request().URI().QueryString()); qs != "" {
				target += "?" + qs
			}
			return c.Redirect(target, fiber.StatusPermanentRedirect)
		}
		return c.Next()
	}
}
