package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

var _ repository.ActivoDigitalRepository = (*ActivoDigitalRepo)(nil)

// ActivoDigitalRepo implementación del puerto ActivoDigitalRepository sobre PostgreSQL.
type ActivoDigitalRepo struct {
	pool *pgxpool.Pool
}

// NewActivoDigitalRepository construye el adaptador de persistencia para entregables CRM.
func NewActivoDigitalRepository(pool *pgxpool.Pool) *ActivoDigitalRepo {
	return &ActivoDigitalRepo{pool: pool}
}

const activoDigitalColumns = `id, tenant_id, cliente_id, nombre, tipo, referencia, created_at, updated_at`

// Create persiste un nuevo activo digital.
func (r *ActivoDigitalRepo) Create(ctx context.Context, a *entity.ActivoDigital) error {
	query := `
		INSERT INTO activos_digitales (` + activoDigitalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.TenantID, a.ClienteID, a.Nombre, a.Tipo, a.Referencia, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert activo digital: %w", err)
	}
	return nil
}

// GetByID obtiene un activo digital del tenant, (nil, nil) si no existe.
func (r *ActivoDigitalRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.ActivoDigital, error) {
	var a entity.ActivoDigital
	err := r.pool.QueryRow(ctx,
		`SELECT `+activoDigitalColumns+` FROM activos_digitales WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(&a.ID, &a.TenantID, &a.ClienteID, &a.Nombre, &a.Tipo, &a.Referencia, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activo digital: %w", err)
	}
	return &a, nil
}

// List lista activos digitales del tenant con paginación.
func (r *ActivoDigitalRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.ActivoDigital, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+activoDigitalColumns+` FROM activos_digitales WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activos digitales: %w", err)
	}
	return r.collect(rows)
}

// ListByCliente lista los activos digitales de un cliente del tenant.
func (r *ActivoDigitalRepo) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]*entity.ActivoDigital, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+activoDigitalColumns+` FROM activos_digitales WHERE tenant_id = $1 AND cliente_id = $2 ORDER BY created_at DESC`,
		tenantID, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list activos digitales por cliente: %w", err)
	}
	return r.collect(rows)
}

func (r *ActivoDigitalRepo) collect(rows pgx.Rows) ([]*entity.ActivoDigital, error) {
	defer rows.Close()
	var list []*entity.ActivoDigital
	for rows.Next() {
		var a entity.ActivoDigital
		if err := rows.Scan(&a.ID, &a.TenantID, &a.ClienteID, &a.Nombre, &a.Tipo, &a.Referencia, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan activo digital: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un activo digital del tenant.
func (r *ActivoDigitalRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM activos_digitales WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete activo digital: %w", err)
	}
	return nil
}
