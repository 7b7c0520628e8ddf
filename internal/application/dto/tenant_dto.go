package dto

import "time"

// CreateTenantRequest entrada para crear un tenant (solo super admin).
type CreateTenantRequest struct {
	Name     string         `json:"name"`
	Settings map[string]any `json:"settings,omitempty"`
	// AdminUsername/AdminPassword crean el primer tenant_admin del tenant.
	AdminUsername string `json:"admin_username,omitempty"`
	AdminEmail    string `json:"admin_email,omitempty"`
	AdminPassword string `json:"admin_password,omitempty"`
}

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Status    string         `json:"status"`
	Settings  map[string]any `json:"settings,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BusinessConfigRequest entrada PUT de config/business: reemplaza la bolsa
// de configuración del tenant activo.
type BusinessConfigRequest struct {
	Settings map[string]any `json:"settings"`
}

// RolePermissionsResponse permisos efectivos de un rol en el tenant activo.
type RolePermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	// Default indica que el tenant no tiene overrides y rigen los permisos base.
	Default bool `json:"default"`
}

// SetRolePermissionsRequest entrada PUT de config/permissions/{role}.
type SetRolePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}
