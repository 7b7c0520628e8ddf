package dto

import "time"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserWithRoleResponse usuario más su rol en el tenant activo.
type UserWithRoleResponse struct {
	UserResponse
	Role string `json:"role"`
}

// CreateUserRequest entrada para crear un usuario del tenant
// (config/users, requiere tenant_admin).
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateUserRequest entrada PATCH de config/users/{id}. Punteros para
// distinguir campo ausente de campo vacío.
type UpdateUserRequest struct {
	Email  *string `json:"email"`
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// UpdateProfileRequest entrada PATCH de users/profile.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ProfileStatisticsResponse actividad acumulada del usuario.
type ProfileStatisticsResponse struct {
	PedidosCreados        int `json:"pedidos_creados"`
	EventosCreados        int `json:"eventos_creados"`
	SesionesUltimos30Dias int `json:"sesiones_ultimos_30_dias"`
}

// ProfileCompletionResponse porcentaje de perfil completado y campos faltantes.
type ProfileCompletionResponse struct {
	Percent int      `json:"percent"`
	Missing []string `json:"missing,omitempty"`
}
