package entity

import "time"

// Roles reconocidos por la política de acceso. El conjunto es cerrado: los
// permisos se definen sobre estos tres roles y las rutas declaran cuál exigen.
const (
	RoleSuperAdmin  = "super_admin"
	RoleTenantAdmin = "tenant_admin"
	RoleStaff       = "staff"
)

// Estados de cuenta de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un principal del sistema. Un usuario puede pertenecer a
// varios tenants (ver Membership); un super admin pertenece a todos.
// Nunca se elimina físicamente mientras esté referenciado: se desactiva.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive informa si la cuenta puede iniciar sesión.
func (u *User) IsActive() bool { return u.Status == UserStatusActive }

// Membership es la arista usuario↔tenant con el rol adjunto a esa relación.
type Membership struct {
	UserID    string
	TenantID  string
	Role      string // super_admin, tenant_admin, staff
	CreatedAt time.Time
}
