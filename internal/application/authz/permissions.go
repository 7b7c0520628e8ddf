package authz

import "github.com/arteideas/backend/internal/domain/entity"

// Claves de permiso reconocidas. El conjunto es cerrado: la administración
// de permisos solo puede asignar claves de esta lista a un rol.
const (
	PermProfileManage   = "core.profile.manage"
	PermBusinessConfig  = "core.config.business"
	PermUsersManage     = "core.config.users"
	PermRolesManage     = "core.config.roles"
	PermTenantsManage   = "core.config.tenants"
	PermCRMRead         = "crm.read"
	PermCRMWrite        = "crm.write"
	PermCommerceRead    = "commerce.read"
	PermCommerceWrite   = "commerce.write"
	PermOperationsRead  = "operations.read"
	PermOperationsWrite = "operations.write"
	PermFinanceRead     = "finance.read"
	PermFinanceWrite    = "finance.write"
	PermAnalyticsRead   = "analytics.read"
)

// AllPermissions lista ordenada de claves válidas.
var AllPermissions = []string{
	PermProfileManage,
	PermBusinessConfig,
	PermUsersManage,
	PermRolesManage,
	PermTenantsManage,
	PermCRMRead,
	PermCRMWrite,
	PermCommerceRead,
	PermCommerceWrite,
	PermOperationsRead,
	PermOperationsWrite,
	PermFinanceRead,
	PermFinanceWrite,
	PermAnalyticsRead,
}

// DefaultPermissions permisos por defecto de cada rol; un tenant puede
// recortar o ampliar los de tenant_admin y staff vía config/permissions.
var DefaultPermissions = map[string][]string{
	entity.RoleSuperAdmin: AllPermissions,
	entity.RoleTenantAdmin: {
		PermProfileManage, PermBusinessConfig, PermUsersManage, PermRolesManage,
		PermCRMRead, PermCRMWrite,
		PermCommerceRead, PermCommerceWrite,
		PermOperationsRead, PermOperationsWrite,
		PermFinanceRead, PermFinanceWrite,
		PermAnalyticsRead,
	},
	entity.RoleStaff: {
		PermProfileManage,
		PermCRMRead, PermCRMWrite,
		PermCommerceRead,
		PermOperationsRead,
	},
}

// ValidPermission informa si la clave pertenece al conjunto cerrado.
func ValidPermission(key string) bool {
	for _, p := range AllPermissions {
		if p == key {
			return true
		}
	}
	return false
}

// ValidRole informa si el rol es uno de los reconocidos.
func ValidRole(role string) bool {
	return role == entity.RoleSuperAdmin || role == entity.RoleTenantAdmin || role == entity.RoleStaff
}
