package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arteideas/backend/internal/application/authz"
	"github.com/arteideas/backend/internal/domain/entity"
)

func principal(roles ...string) *authz.Principal {
	return &authz.Principal{UserID: "u1", Roles: roles}
}

func TestDecide_TablaDeDecision(t *testing.T) {
	cases := []struct {
		name string
		in   authz.Input
		want authz.Decision
	}{
		{
			name: "ruta pública sin credenciales",
			in:   authz.Input{RequiredRole: ""},
			want: authz.Allow,
		},
		{
			name: "ruta protegida sin credenciales",
			in:   authz.Input{RequiredRole: entity.RoleStaff},
			want: authz.DenyUnauthorized,
		},
		{
			name: "staff accede a ruta staff",
			in: authz.Input{
				Principal:    principal(entity.RoleStaff),
				ActiveTenant: "t1",
				RequiredRole: entity.RoleStaff,
			},
			want: authz.Allow,
		},
		{
			name: "staff no accede a ruta de admin",
			in: authz.Input{
				Principal:    principal(entity.RoleStaff),
				ActiveTenant: "t1",
				RequiredRole: entity.RoleTenantAdmin,
			},
			want: authz.DenyForbidden,
		},
		{
			name: "admin del tenant accede a ruta de admin",
			in: authz.Input{
				Principal:    principal(entity.RoleTenantAdmin),
				ActiveTenant: "t1",
				RequiredRole: entity.RoleTenantAdmin,
			},
			want: authz.Allow,
		},
		{
			name: "objeto de otro tenant responde como inexistente",
			in: authz.Input{
				Principal:    principal(entity.RoleTenantAdmin),
				ActiveTenant: "t1",
				RequiredRole: entity.RoleStaff,
				TargetTenant: "t2",
			},
			want: authz.DenyNotFound,
		},
		{
			name: "super admin cruza tenants",
			in: authz.Input{
				Principal:    principal(entity.RoleSuperAdmin),
				ActiveTenant: "t1",
				RequiredRole: entity.RoleStaff,
				TargetTenant: "t2",
			},
			want: authz.Allow,
		},
		{
			name: "super admin accede a rutas de super admin",
			in: authz.Input{
				Principal:    principal(entity.RoleSuperAdmin),
				RequiredRole: entity.RoleSuperAdmin,
			},
			want: authz.Allow,
		},
		{
			name: "admin no accede a rutas de super admin",
			in: authz.Input{
				Principal:    principal(entity.RoleTenantAdmin),
				ActiveTenant: "t1",
				RequiredRole: entity.RoleSuperAdmin,
			},
			want: authz.DenyForbidden,
		},
		{
			name: "sin rol en el tenant activo el recurso no se distingue de inexistente",
			in: authz.Input{
				Principal:    principal(),
				ActiveTenant: "t1",
				RequiredRole: entity.RoleStaff,
			},
			want: authz.DenyNotFound,
		},
		{
			name: "rol desconocido no otorga capacidad",
			in: authz.Input{
				Principal:    principal("gerente"),
				ActiveTenant: "t1",
				RequiredRole: entity.RoleStaff,
			},
			want: authz.DenyNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.Decide(tc.in))
		})
	}
}

func TestDecide_ClaveDePermiso(t *testing.T) {
	cases := []struct {
		name string
		in   authz.Input
		want authz.Decision
	}{
		{
			name: "rango suficiente con el permiso presente",
			in: authz.Input{
				Principal:          principal(entity.RoleStaff),
				ActiveTenant:       "t1",
				RequiredRole:       entity.RoleStaff,
				RequiredPermission: authz.PermCommerceWrite,
				Permissions:        []string{authz.PermCommerceRead, authz.PermCommerceWrite},
			},
			want: authz.Allow,
		},
		{
			name: "rango suficiente sin el permiso",
			in: authz.Input{
				Principal:          principal(entity.RoleStaff),
				ActiveTenant:       "t1",
				RequiredRole:       entity.RoleStaff,
				RequiredPermission: authz.PermCommerceWrite,
				Permissions:        []string{authz.PermCommerceRead},
			},
			want: authz.DenyForbidden,
		},
		{
			name: "admin recortado por override del tenant",
			in: authz.Input{
				Principal:          principal(entity.RoleTenantAdmin),
				ActiveTenant:       "t1",
				RequiredRole:       entity.RoleStaff,
				RequiredPermission: authz.PermFinanceWrite,
				Permissions:        []string{authz.PermFinanceRead},
			},
			want: authz.DenyForbidden,
		},
		{
			name: "el super admin no se recorta por permisos",
			in: authz.Input{
				Principal:          principal(entity.RoleSuperAdmin),
				ActiveTenant:       "t1",
				RequiredRole:       entity.RoleStaff,
				RequiredPermission: authz.PermFinanceWrite,
				Permissions:        nil,
			},
			want: authz.Allow,
		},
		{
			name: "el rango insuficiente pesa más que el permiso",
			in: authz.Input{
				Principal:          principal(entity.RoleStaff),
				ActiveTenant:       "t1",
				RequiredRole:       entity.RoleTenantAdmin,
				RequiredPermission: authz.PermUsersManage,
				Permissions:        []string{authz.PermUsersManage},
			},
			want: authz.DenyForbidden,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.Decide(tc.in))
		})
	}
}

func TestDefaultPermissions_RolesValidos(t *testing.T) {
	assert.True(t, authz.ValidRole(entity.RoleSuperAdmin))
	assert.True(t, authz.ValidRole(entity.RoleTenantAdmin))
	assert.True(t, authz.ValidRole(entity.RoleStaff))
	assert.False(t, authz.ValidRole("gerente"))

	// El super admin tiene el conjunto completo; staff un subconjunto propio.
	assert.ElementsMatch(t, authz.AllPermissions, authz.DefaultPermissions[entity.RoleSuperAdmin])
	assert.Subset(t, authz.DefaultPermissions[entity.RoleTenantAdmin], authz.DefaultPermissions[entity.RoleStaff])
	assert.Less(t, len(authz.DefaultPermissions[entity.RoleStaff]), len(authz.AllPermissions))
}
