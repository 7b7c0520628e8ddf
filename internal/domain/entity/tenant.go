package entity

import "time"

// Estados de tenant. Un tenant nunca se elimina: se suspende.
const (
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
)

// Tenant es una instalación aislada de un cliente del sistema. Toda entidad
// de negocio lleva su TenantID y ninguna consulta cruza ese límite.
type Tenant struct {
	ID        string
	Name      string
	Status    string         // active, suspended
	Settings  map[string]any // bolsa de configuración de negocio (horarios, moneda, etc.)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive informa si el tenant admite tráfico.
func (t *Tenant) IsActive() bool { return t.Status == TenantStatusActive }
