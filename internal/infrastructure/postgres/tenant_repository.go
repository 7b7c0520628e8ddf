package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL.
// Settings se guarda como JSONB.
type TenantRepo struct {
	pool *pgxpool.Pool
}

// NewTenantRepository construye el adaptador de persistencia para tenants.
func NewTenantRepository(pool *pgxpool.Pool) *TenantRepo {
	return &TenantRepo{pool: pool}
}

// Create persiste un nuevo tenant.
func (r *TenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	settings, err := json.Marshal(tenant.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	query := `
		INSERT INTO tenants (id, name, status, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.pool.Exec(ctx, query,
		tenant.ID, tenant.Name, tenant.Status, settings, tenant.CreatedAt, tenant.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID, (nil, nil) si no existe.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	var t entity.Tenant
	var settings []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, status, settings, created_at, updated_at FROM tenants WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Status, &settings, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &t.Settings); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	}
	return &t, nil
}

// List lista tenants con paginación.
func (r *TenantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, status, settings, created_at, updated_at FROM tenants ORDER BY created_at LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		var settings []byte
		if err := rows.Scan(&t.ID, &t.Name, &t.Status, &settings, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		if len(settings) > 0 {
			if err := json.Unmarshal(settings, &t.Settings); err != nil {
				return nil, fmt.Errorf("unmarshal settings: %w", err)
			}
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza un tenant.
func (r *TenantRepo) Update(ctx context.Context, tenant *entity.Tenant) error {
	settings, err := json.Marshal(tenant.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	query := `
		UPDATE tenants SET name = $2, status = $3, settings = $4, updated_at = $5
		WHERE id = $1`
	_, err = r.pool.Exec(ctx, query,
		tenant.ID, tenant.Name, tenant.Status, settings, tenant.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

var _ repository.RolePermissionRepository = (*RolePermissionRepo)(nil)

// RolePermissionRepo persiste los permisos por rol de cada tenant como array JSONB.
// La ausencia de fila significa "usar los permisos por defecto del rol".
type RolePermissionRepo struct {
	pool *pgxpool.Pool
}

// NewRolePermissionRepository construye el adaptador para permisos de rol.
func NewRolePermissionRepository(pool *pgxpool.Pool) *RolePermissionRepo {
	return &RolePermissionRepo{pool: pool}
}

// GetRolePermissions devuelve los permisos personalizados del rol en el tenant.
// El segundo valor indica si existe personalización.
func (r *RolePermissionRepo) GetRolePermissions(ctx context.Context, tenantID, role string) ([]string, bool, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT permissions FROM rol_permisos WHERE tenant_id = $1 AND role = $2`,
		tenantID, role,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get rol permisos: %w", err)
	}
	var perms []string
	if err := json.Unmarshal(raw, &perms); err != nil {
		return nil, false, fmt.Errorf("unmarshal permisos: %w", err)
	}
	return perms, true, nil
}

// SetRolePermissions reemplaza los permisos del rol en el tenant (upsert).
func (r *RolePermissionRepo) SetRolePermissions(ctx context.Context, tenantID, role string, permissions []string) error {
	raw, err := json.Marshal(permissions)
	if err != nil {
		return fmt.Errorf("marshal permisos: %w", err)
	}
	query := `
		INSERT INTO rol_permisos (tenant_id, role, permissions, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (tenant_id, role) DO UPDATE SET permissions = EXCLUDED.permissions, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, tenantID, role, raw); err != nil {
		return fmt.Errorf("set rol permisos: %w", err)
	}
	return nil
}
