package dto

import "time"

// LoginRequest entrada para login: username + password, tenant opcional para
// usuarios con varias membresías (por defecto la primera).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TenantID string `json:"tenant_id,omitempty"`
}

// LoginResponse salida con el par de credenciales.
type LoginResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

// RefreshRequest entrada para canjear un refresh token.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse salida del canje: nuevo access y refresh rotado.
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LogoutRequest entrada del logout. El campo es obligatorio (400 si falta o
// está vacío); la operación en sí es idempotente.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest entrada para cambio de contraseña.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangeEmailRequest entrada para cambio de email.
type ChangeEmailRequest struct {
	Password string `json:"password"`
	NewEmail string `json:"new_email"`
}

// SessionResponse una sesión del usuario (emisión de refresh token).
type SessionResponse struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}
