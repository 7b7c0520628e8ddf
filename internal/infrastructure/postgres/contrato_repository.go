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

var _ repository.ContratoRepository = (*ContratoRepo)(nil)

// ContratoRepo implementación del puerto ContratoRepository sobre PostgreSQL.
type ContratoRepo struct {
	pool *pgxpool.Pool
}

// NewContratoRepository construye el adaptador de persistencia para contratos.
func NewContratoRepository(pool *pgxpool.Pool) *ContratoRepo {
	return &ContratoRepo{pool: pool}
}

const contratoColumns = `id, tenant_id, cliente_id, titulo, descripcion, monto, fecha_inicio, fecha_fin, estado, created_at, updated_at`

// Create persiste un nuevo contrato.
func (r *ContratoRepo) Create(ctx context.Context, c *entity.Contrato) error {
	query := `
		INSERT INTO contratos (` + contratoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.TenantID, c.ClienteID, c.Titulo, c.Descripcion, c.Monto,
		c.FechaInicio, c.FechaFin, c.Estado, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contrato: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato del tenant, (nil, nil) si no existe.
func (r *ContratoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Contrato, error) {
	var c entity.Contrato
	err := r.pool.QueryRow(ctx,
		`SELECT `+contratoColumns+` FROM contratos WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(&c.ID, &c.TenantID, &c.ClienteID, &c.Titulo, &c.Descripcion, &c.Monto,
		&c.FechaInicio, &c.FechaFin, &c.Estado, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contrato: %w", err)
	}
	return &c, nil
}

// List lista contratos del tenant con paginación.
func (r *ContratoRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Contrato, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contratoColumns+` FROM contratos WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contratos: %w", err)
	}
	return r.collect(rows)
}

// ListByCliente lista los contratos de un cliente del tenant.
func (r *ContratoRepo) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]*entity.Contrato, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contratoColumns+` FROM contratos WHERE tenant_id = $1 AND cliente_id = $2 ORDER BY created_at DESC`,
		tenantID, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list contratos por cliente: %w", err)
	}
	return r.collect(rows)
}

func (r *ContratoRepo) collect(rows pgx.Rows) ([]*entity.Contrato, error) {
	defer rows.Close()
	var list []*entity.Contrato
	for rows.Next() {
		var c entity.Contrato
		if err := rows.Scan(&c.ID, &c.TenantID, &c.ClienteID, &c.Titulo, &c.Descripcion, &c.Monto,
			&c.FechaInicio, &c.FechaFin, &c.Estado, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contrato: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un contrato del tenant.
func (r *ContratoRepo) Update(ctx context.Context, c *entity.Contrato) error {
	query := `
		UPDATE contratos SET titulo = $3, descripcion = $4, monto = $5, fecha_inicio = $6, fecha_fin = $7, estado = $8, updated_at = $9
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		c.TenantID, c.ID, c.Titulo, c.Descripcion, c.Monto, c.FechaInicio, c.FechaFin, c.Estado, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update contrato: %w", err)
	}
	return nil
}

// Delete elimina un contrato del tenant. Los pedidos que lo referencian quedan con contrato NULL.
func (r *ContratoRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contratos WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete contrato: %w", err)
	}
	return nil
}
