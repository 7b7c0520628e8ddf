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

var _ repository.OrdenProduccionRepository = (*OrdenProduccionRepo)(nil)

// OrdenProduccionRepo implementación del puerto OrdenProduccionRepository sobre PostgreSQL.
type OrdenProduccionRepo struct {
	pool *pgxpool.Pool
}

// NewOrdenProduccionRepository construye el adaptador de persistencia para órdenes de producción.
func NewOrdenProduccionRepository(pool *pgxpool.Pool) *OrdenProduccionRepo {
	return &OrdenProduccionRepo{pool: pool}
}

const ordenColumns = `id, tenant_id, pedido_id, cliente_id, contrato_id, descripcion, estado, fecha_inicio, fecha_fin, created_at, updated_at`

// Create persiste una nueva orden de producción.
func (r *OrdenProduccionRepo) Create(ctx context.Context, o *entity.OrdenProduccion) error {
	query := `
		INSERT INTO ordenes_produccion (` + ordenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		o.ID, o.TenantID, o.PedidoID, o.ClienteID, o.ContratoID, o.Descripcion, o.Estado,
		o.FechaInicio, o.FechaFin, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert orden produccion: %w", err)
	}
	return nil
}

// GetByID obtiene una orden del tenant, (nil, nil) si no existe.
func (r *OrdenProduccionRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.OrdenProduccion, error) {
	var o entity.OrdenProduccion
	err := r.pool.QueryRow(ctx,
		`SELECT `+ordenColumns+` FROM ordenes_produccion WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(&o.ID, &o.TenantID, &o.PedidoID, &o.ClienteID, &o.ContratoID, &o.Descripcion, &o.Estado,
		&o.FechaInicio, &o.FechaFin, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden produccion: %w", err)
	}
	return &o, nil
}

// List lista órdenes del tenant con paginación.
func (r *OrdenProduccionRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.OrdenProduccion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ordenColumns+` FROM ordenes_produccion WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ordenes produccion: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenProduccion
	for rows.Next() {
		var o entity.OrdenProduccion
		if err := rows.Scan(&o.ID, &o.TenantID, &o.PedidoID, &o.ClienteID, &o.ContratoID, &o.Descripcion, &o.Estado,
			&o.FechaInicio, &o.FechaFin, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan orden produccion: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza una orden del tenant.
func (r *OrdenProduccionRepo) Update(ctx context.Context, o *entity.OrdenProduccion) error {
	query := `
		UPDATE ordenes_produccion SET descripcion = $3, estado = $4, fecha_fin = $5, updated_at = $6
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		o.TenantID, o.ID, o.Descripcion, o.Estado, o.FechaFin, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update orden produccion: %w", err)
	}
	return nil
}

// Delete elimina una orden del tenant.
func (r *OrdenProduccionRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ordenes_produccion WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete orden produccion: %w", err)
	}
	return nil
}
