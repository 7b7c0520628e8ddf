package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
)

// ok responde {status:"ok", data} con el código indicado.
func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.OK(data))
}

// fail responde {status:"error", error:{code, message}}.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Err(code, message))
}

// failFields responde un error de validación con los motivos por campo.
func failFields(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrFields("VALIDATION", message, fields))
}

// mapError traduce los centinelas de dominio a la taxonomía HTTP. Los errores
// no reconocidos se registran con el correlation id y se responden redactados.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "credenciales inválidas")
	case errors.Is(err, domain.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido, expirado o revocado")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado")
	case errors.Is(err, domain.ErrTenantSuspended):
		return fail(c, fiber.StatusForbidden, "TENANT_SUSPENDED", "tenant suspendido")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "ya existe un recurso con esos datos")
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", "conflicto con el estado actual")
	case errors.Is(err, domain.ErrTenantRequired):
		return fail(c, fiber.StatusBadRequest, "TENANT_REQUIRED", "tenant requerido")
	}
	cid := GetCorrelationID(c)
	log.Error().Err(err).
		Str("correlation_id", cid).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
		Status: "error",
		Error: &dto.ErrorResponse{
			Code:          "INTERNAL",
			Message:       "error interno",
			CorrelationID: cid,
		},
	})
}

// ErrorHandler traduce los errores que Fiber genera por su cuenta (rutas
// desconocidas, método no soportado) al sobre de error de la API. El 405 de
// Fiber ya trae la cabecera Allow puesta por el router.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "ruta no encontrada")
		case fiber.StatusMethodNotAllowed:
			return fail(c, fiber.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "método no permitido")
		default:
			return fail(c, fe.Code, "HTTP_ERROR", fe.Message)
		}
	}
	return mapError(c, err)
}
