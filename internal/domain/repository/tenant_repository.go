package repository

import (
	"context"

	"github.com/arteideas/backend/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error)
	Update(ctx context.Context, tenant *entity.Tenant) error
}

// RolePermissionRepository persiste la asignación permiso→rol por tenant.
// Si un tenant no tiene filas para un rol se usan los permisos por defecto
// del rol (authz.DefaultPermissions).
type RolePermissionRepository interface {
	GetRolePermissions(ctx context.Context, tenantID, role string) ([]string, bool, error)
	SetRolePermissions(ctx context.Context, tenantID, role string, permissions []string) error
}
