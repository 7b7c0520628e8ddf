package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arteideas/backend/internal/application/authz"
	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

// ConfigUseCase administración del tenant: configuración de negocio, usuarios,
// roles y permisos. Las operaciones de tenants (crear, listar) son de super
// admin y operan fuera del tenant activo.
type ConfigUseCase struct {
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	permRepo   repository.RolePermissionRepository
}

// NewConfigUseCase construye el caso de uso de configuración.
func NewConfigUseCase(tenantRepo repository.TenantRepository, userRepo repository.UserRepository, permRepo repository.RolePermissionRepository) *ConfigUseCase {
	return &ConfigUseCase{tenantRepo: tenantRepo, userRepo: userRepo, permRepo: permRepo}
}

// GetBusinessConfig devuelve la bolsa de configuración del tenant activo.
func (uc *ConfigUseCase) GetBusinessConfig(ctx context.Context, tenantID string) (*dto.TenantResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return toTenantResponse(tenant), nil
}

// PutBusinessConfig reemplaza la bolsa de configuración del tenant activo.
func (uc *ConfigUseCase) PutBusinessConfig(ctx context.Context, tenantID string, in dto.BusinessConfigRequest) (*dto.TenantResponse, error) {
	if in.Settings == nil {
		return nil, domain.ErrInvalidInput
	}
	tenant, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	tenant.Settings = in.Settings
	tenant.UpdatedAt = time.Now()
	if err := uc.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// ListUsers usuarios del tenant con su rol.
func (uc *ConfigUseCase) ListUsers(ctx context.Context, tenantID string, limit, offset int) ([]dto.UserWithRoleResponse, error) {
	users, err := uc.userRepo.ListByTenant(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserWithRoleResponse, 0, len(users))
	for _, u := range users {
		role := ""
		if m, err := uc.userRepo.GetMembership(ctx, u.ID, tenantID); err == nil && m != nil {
			role = m.Role
		}
		out = append(out, dto.UserWithRoleResponse{UserResponse: *toUserResponse(u), Role: role})
	}
	return out, nil
}

// CreateUser crea un usuario dentro del tenant activo con el rol indicado.
// El rol super_admin no puede otorgarse desde aquí.
func (uc *ConfigUseCase) CreateUser(ctx context.Context, tenantID string, in dto.CreateUserRequest) (*dto.UserWithRoleResponse, error) {
	if in.Username == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == "" {
		in.Role = entity.RoleStaff
	}
	if in.Role == entity.RoleSuperAdmin || !authz.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByUsername(ctx, in.Username); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.userRepo.GetByEmail(ctx, in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Username
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	m := &entity.Membership{UserID: user.ID, TenantID: tenantID, Role: in.Role, CreatedAt: now}
	if err := uc.userRepo.AddMembership(ctx, m); err != nil {
		return nil, err
	}
	return &dto.UserWithRoleResponse{UserResponse: *toUserResponse(user), Role: in.Role}, nil
}

// GetUser usuario del tenant por id. Un usuario sin membresía en el tenant
// activo se responde como inexistente.
func (uc *ConfigUseCase) GetUser(ctx context.Context, tenantID, userID string) (*dto.UserWithRoleResponse, error) {
	m, err := uc.userRepo.GetMembership(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UserWithRoleResponse{UserResponse: *toUserResponse(user), Role: m.Role}, nil
}

// UpdateUser PATCH parcial de un usuario del tenant (datos y rol).
func (uc *ConfigUseCase) UpdateUser(ctx context.Context, tenantID, userID string, in dto.UpdateUserRequest) (*dto.UserWithRoleResponse, error) {
	m, err := uc.userRepo.GetMembership(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		if existing, _ := uc.userRepo.GetByEmail(ctx, *in.Email); existing != nil && existing.ID != userID {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Status != nil {
		if *in.Status != entity.UserStatusActive && *in.Status != entity.UserStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	if in.Role != nil {
		if *in.Role == entity.RoleSuperAdmin || !authz.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.userRepo.RemoveMembership(ctx, userID, tenantID); err != nil {
			return nil, err
		}
		m = &entity.Membership{UserID: userID, TenantID: tenantID, Role: *in.Role, CreatedAt: time.Now()}
		if err := uc.userRepo.AddMembership(ctx, m); err != nil {
			return nil, err
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserWithRoleResponse{UserResponse: *toUserResponse(user), Role: m.Role}, nil
}

// DeactivateUser baja lógica: quita la membresía del tenant y desactiva la
// cuenta si era su única membresía. Nunca hay borrado físico.
func (uc *ConfigUseCase) DeactivateUser(ctx context.Context, tenantID, userID string) error {
	m, err := uc.userRepo.GetMembership(ctx, userID, tenantID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if err := uc.userRepo.RemoveMembership(ctx, userID, tenantID); err != nil {
		return err
	}
	remaining, err := uc.userRepo.ListMemberships(ctx, userID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil || user == nil {
			return err
		}
		user.Status = entity.UserStatusInactive
		user.UpdatedAt = time.Now()
		return uc.userRepo.Update(ctx, user)
	}
	return nil
}

// ListRoles roles reconocidos por la política.
func (uc *ConfigUseCase) ListRoles(ctx context.Context) []string {
	return []string{entity.RoleSuperAdmin, entity.RoleTenantAdmin, entity.RoleStaff}
}

// ListPermissions permisos efectivos de todos los roles en el tenant activo.
func (uc *ConfigUseCase) ListPermissions(ctx context.Context, tenantID string) ([]dto.RolePermissionsResponse, error) {
	roles := []string{entity.RoleTenantAdmin, entity.RoleStaff}
	out := make([]dto.RolePermissionsResponse, 0, len(roles))
	for _, role := range roles {
		resp, err := uc.GetRolePermissions(ctx, tenantID, role)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// GetRolePermissions permisos efectivos de un rol: override del tenant o los
// por defecto.
func (uc *ConfigUseCase) GetRolePermissions(ctx context.Context, tenantID, role string) (*dto.RolePermissionsResponse, error) {
	if !authz.ValidRole(role) || role == entity.RoleSuperAdmin {
		return nil, domain.ErrNotFound
	}
	perms, overridden, err := uc.permRepo.GetRolePermissions(ctx, tenantID, role)
	if err != nil {
		return nil, err
	}
	if !overridden {
		perms = authz.DefaultPermissions[role]
	}
	return &dto.RolePermissionsResponse{Role: role, Permissions: perms, Default: !overridden}, nil
}

// EffectivePermissions une los permisos efectivos de los roles del principal
// en el tenant: el override almacenado si existe, los por defecto si no.
// Es la fuente que consultan los gates de permiso del router.
func (uc *ConfigUseCase) EffectivePermissions(ctx context.Context, tenantID string, roles []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, role := range roles {
		if !authz.ValidRole(role) {
			continue
		}
		if role == entity.RoleSuperAdmin {
			return authz.AllPermissions, nil
		}
		perms, overridden, err := uc.permRepo.GetRolePermissions(ctx, tenantID, role)
		if err != nil {
			return nil, err
		}
		if !overridden {
			perms = authz.DefaultPermissions[role]
		}
		for _, p := range perms {
			seen[p] = true
		}
	}
	// Orden estable: el del conjunto cerrado.
	out := make([]string, 0, len(seen))
	for _, p := range authz.AllPermissions {
		if seen[p] {
			out = append(out, p)
		}
	}
	return out, nil
}

// SetRolePermissions fija el override de permisos de un rol del tenant.
// Solo acepta claves del conjunto cerrado.
func (uc *ConfigUseCase) SetRolePermissions(ctx context.Context, tenantID, role string, in dto.SetRolePermissionsRequest) (*dto.RolePermissionsResponse, error) {
	if !authz.ValidRole(role) || role == entity.RoleSuperAdmin {
		return nil, domain.ErrNotFound
	}
	for _, p := range in.Permissions {
		if !authz.ValidPermission(p) {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.permRepo.SetRolePermissions(ctx, tenantID, role, in.Permissions); err != nil {
		return nil, err
	}
	return &dto.RolePermissionsResponse{Role: role, Permissions: in.Permissions}, nil
}

// ListTenants todos los tenants (super admin).
func (uc *ConfigUseCase) ListTenants(ctx context.Context, limit, offset int) ([]dto.TenantResponse, error) {
	tenants, err := uc.tenantRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, *toTenantResponse(t))
	}
	return out, nil
}

// CreateTenant crea un tenant y, opcionalmente, su primer tenant_admin.
func (uc *ConfigUseCase) CreateTenant(ctx context.Context, in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	settings := in.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Status:    entity.TenantStatusActive,
		Settings:  settings,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	if in.AdminUsername != "" {
		_, err := uc.CreateUser(ctx, tenant.ID, dto.CreateUserRequest{
			Username: in.AdminUsername,
			Email:    in.AdminEmail,
			Password: in.AdminPassword,
			Role:     entity.RoleTenantAdmin,
		})
		if err != nil {
			return nil, err
		}
	}
	return toTenantResponse(tenant), nil
}

// ListTenantUsers usuarios de un tenant arbitrario (super admin).
func (uc *ConfigUseCase) ListTenantUsers(ctx context.Context, tenantID string, limit, offset int) ([]dto.UserWithRoleResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return uc.ListUsers(ctx, tenantID, limit, offset)
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Status:    t.Status,
		Settings:  t.Settings,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
