package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	pool *pgxpool.Pool
}

// NewProductoRepository construye el adaptador de persistencia para inventario.
func NewProductoRepository(pool *pgxpool.Pool) *ProductoRepo {
	return &ProductoRepo{pool: pool}
}

const productoColumns = `id, tenant_id, sku, nombre, categoria, precio, costo, stock, stock_minimo, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.TenantID, p.SKU, p.Nombre, p.Categoria, p.Precio, p.Costo,
		p.Stock, p.StockMinimo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del tenant, (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Producto, error) {
	return r.findOne(ctx,
		`SELECT `+productoColumns+` FROM productos WHERE tenant_id = $1 AND id = $2`, tenantID, id)
}

// GetBySKU obtiene un producto por SKU dentro del tenant.
func (r *ProductoRepo) GetBySKU(ctx context.Context, tenantID, sku string) (*entity.Producto, error) {
	return r.findOne(ctx,
		`SELECT `+productoColumns+` FROM productos WHERE tenant_id = $1 AND sku = $2`, tenantID, sku)
}

func (r *ProductoRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.TenantID, &p.SKU, &p.Nombre, &p.Categoria, &p.Precio, &p.Costo,
		&p.Stock, &p.StockMinimo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista productos del tenant con paginación.
func (r *ProductoRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Producto, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productoColumns+` FROM productos WHERE tenant_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.TenantID, &p.SKU, &p.Nombre, &p.Categoria, &p.Precio, &p.Costo,
			&p.Stock, &p.StockMinimo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto del tenant. No toca el stock.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $3, categoria = $4, precio = $5, costo = $6, stock_minimo = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		p.TenantID, p.ID, p.Nombre, p.Categoria, p.Precio, p.Costo, p.StockMinimo, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// AdjustStock aplica el delta dentro de una transacción con bloqueo de fila.
// Devuelve (nil, nil) si el producto no existe y ErrConflict si el stock
// quedaría negativo.
func (r *ProductoRepo) AdjustStock(ctx context.Context, tenantID, id string, delta int) (*entity.Producto, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var stock int
	err = tx.QueryRow(ctx,
		`SELECT stock FROM productos WHERE tenant_id = $1 AND id = $2 FOR UPDATE`, tenantID, id,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock producto: %w", err)
	}
	if stock+delta < 0 {
		return nil, domain.ErrConflict
	}

	var p entity.Producto
	err = tx.QueryRow(ctx, `
		UPDATE productos SET stock = stock + $3, updated_at = now()
		WHERE tenant_id = $1 AND id = $2
		RETURNING `+productoColumns,
		tenantID, id, delta,
	).Scan(&p.ID, &p.TenantID, &p.SKU, &p.Nombre, &p.Categoria, &p.Precio, &p.Costo,
		&p.Stock, &p.StockMinimo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return &p, nil
}

// Delete elimina un producto del tenant.
func (r *ProductoRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM productos WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
