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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

const pedidoColumns = `id, tenant_id, numero, cliente_id, contrato_id, descripcion, estado, total, fecha_entrega, created_at, updated_at`

// Create persiste un nuevo pedido.
func (r *PedidoRepo) Create(ctx context.Context, p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (` + pedidoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.TenantID, p.Numero, p.ClienteID, p.ContratoID, p.Descripcion, p.Estado,
		p.Total, p.FechaEntrega, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido del tenant, (nil, nil) si no existe.
func (r *PedidoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Pedido, error) {
	var p entity.Pedido
	err := r.pool.QueryRow(ctx,
		`SELECT `+pedidoColumns+` FROM pedidos WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(&p.ID, &p.TenantID, &p.Numero, &p.ClienteID, &p.ContratoID, &p.Descripcion, &p.Estado,
		&p.Total, &p.FechaEntrega, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// List lista pedidos del tenant con paginación.
func (r *PedidoRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Pedido, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+pedidoColumns+` FROM pedidos WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	return r.collect(rows)
}

// ListByCliente lista los pedidos de un cliente del tenant.
func (r *PedidoRepo) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]*entity.Pedido, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+pedidoColumns+` FROM pedidos WHERE tenant_id = $1 AND cliente_id = $2 ORDER BY created_at DESC`,
		tenantID, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos por cliente: %w", err)
	}
	return r.collect(rows)
}

func (r *PedidoRepo) collect(rows pgx.Rows) ([]*entity.Pedido, error) {
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Numero, &p.ClienteID, &p.ContratoID, &p.Descripcion, &p.Estado,
			&p.Total, &p.FechaEntrega, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un pedido del tenant.
func (r *PedidoRepo) Update(ctx context.Context, p *entity.Pedido) error {
	query := `
		UPDATE pedidos SET contrato_id = $3, descripcion = $4, estado = $5, total = $6, fecha_entrega = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		p.TenantID, p.ID, p.ContratoID, p.Descripcion, p.Estado, p.Total, p.FechaEntrega, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// Delete elimina un pedido del tenant.
func (r *PedidoRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM pedidos WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}

// NextNumero avanza el contador del tenant de forma atómica y devuelve el
// correlativo visible (PED-000001, PED-000002, ...).
func (r *PedidoRepo) NextNumero(ctx context.Context, tenantID string) (string, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO pedido_contadores (tenant_id, valor) VALUES ($1, 1)
		ON CONFLICT (tenant_id) DO UPDATE SET valor = pedido_contadores.valor + 1
		RETURNING valor`, tenantID,
	).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("next numero pedido: %w", err)
	}
	return fmt.Sprintf("PED-%06d", n), nil
}
