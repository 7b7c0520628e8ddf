package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP traducen
// estos centinelas a códigos de estado; los colaboradores de dominio no
// reinterpretan errores, solo los propagan envueltos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Autenticación: ErrInvalidCredentials cubre tanto usuario inexistente
	// como password incorrecto, para que la respuesta no distinga ambos casos.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido, expirado o revocado")

	// ErrTenantRequired: la ruta exige tenant activo y no se pudo resolver ninguno.
	ErrTenantRequired = errors.New("tenant requerido")
	// ErrTenantSuspended: el tenant existe pero está suspendido.
	ErrTenantSuspended = errors.New("tenant suspendido")
)
