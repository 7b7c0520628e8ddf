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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
// La columna nombre_folded guarda el nombre sin tildes y en minúsculas para
// que la búsqueda sea insensible a acentos.
type ClienteRepo struct {
	pool *pgxpool.Pool
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(pool *pgxpool.Pool) *ClienteRepo {
	return &ClienteRepo{pool: pool}
}

const clienteColumns = `id, tenant_id, nombre, documento, email, telefono, direccion, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, tenant_id, nombre, nombre_folded, documento, email, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.TenantID, c.Nombre, fold(c.Nombre), c.Documento, c.Email, c.Telefono, c.Direccion,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del tenant, (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Cliente, error) {
	return r.findOne(ctx,
		`SELECT `+clienteColumns+` FROM clientes WHERE tenant_id = $1 AND id = $2`, tenantID, id)
}

// GetByDocumento obtiene un cliente por documento dentro del tenant.
func (r *ClienteRepo) GetByDocumento(ctx context.Context, tenantID, documento string) (*entity.Cliente, error) {
	return r.findOne(ctx,
		`SELECT `+clienteColumns+` FROM clientes WHERE tenant_id = $1 AND documento = $2`, tenantID, documento)
}

func (r *ClienteRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.TenantID, &c.Nombre, &c.Documento, &c.Email, &c.Telefono, &c.Direccion,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes del tenant con paginación.
func (r *ClienteRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Cliente, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clienteColumns+` FROM clientes WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return r.collect(rows)
}

// Search busca clientes por nombre sin distinguir tildes ni mayúsculas.
func (r *ClienteRepo) Search(ctx context.Context, tenantID, term string, limit int) ([]*entity.Cliente, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clienteColumns+` FROM clientes
		 WHERE tenant_id = $1 AND nombre_folded LIKE '%' || $2 || '%' ESCAPE '\'
		 ORDER BY nombre LIMIT $3`,
		tenantID, escapeLike(fold(term)), limit)
	if err != nil {
		return nil, fmt.Errorf("search clientes: %w", err)
	}
	return r.collect(rows)
}

func (r *ClienteRepo) collect(rows pgx.Rows) ([]*entity.Cliente, error) {
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Nombre, &c.Documento, &c.Email, &c.Telefono, &c.Direccion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente del tenant.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $3, nombre_folded = $4, documento = $5, email = $6, telefono = $7, direccion = $8, updated_at = $9
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		c.TenantID, c.ID, c.Nombre, fold(c.Nombre), c.Documento, c.Email, c.Telefono, c.Direccion, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente del tenant. Sus pedidos y órdenes caen en cascada.
func (r *ClienteRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM clientes WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
