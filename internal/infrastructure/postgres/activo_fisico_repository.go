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

var _ repository.ActivoFisicoRepository = (*ActivoFisicoRepo)(nil)

// ActivoFisicoRepo implementación del puerto ActivoFisicoRepository sobre
// PostgreSQL, incluyendo mantenimientos, repuestos y financiamientos.
type ActivoFisicoRepo struct {
	pool *pgxpool.Pool
}

// NewActivoFisicoRepository construye el adaptador de persistencia para activos físicos.
func NewActivoFisicoRepository(pool *pgxpool.Pool) *ActivoFisicoRepo {
	return &ActivoFisicoRepo{pool: pool}
}

const activoFisicoColumns = `id, tenant_id, codigo, nombre, categoria, estado, fecha_compra, valor, created_at, updated_at`

// Create persiste un nuevo activo físico.
func (r *ActivoFisicoRepo) Create(ctx context.Context, a *entity.ActivoFisico) error {
	query := `
		INSERT INTO activos_fisicos (` + activoFisicoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.TenantID, a.Codigo, a.Nombre, a.Categoria, a.Estado,
		a.FechaCompra, a.Valor, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert activo fisico: %w", err)
	}
	return nil
}

// GetByID obtiene un activo del tenant, (nil, nil) si no existe.
func (r *ActivoFisicoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.ActivoFisico, error) {
	var a entity.ActivoFisico
	err := r.pool.QueryRow(ctx,
		`SELECT `+activoFisicoColumns+` FROM activos_fisicos WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(&a.ID, &a.TenantID, &a.Codigo, &a.Nombre, &a.Categoria, &a.Estado,
		&a.FechaCompra, &a.Valor, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activo fisico: %w", err)
	}
	return &a, nil
}

// List lista activos del tenant con paginación.
func (r *ActivoFisicoRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.ActivoFisico, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+activoFisicoColumns+` FROM activos_fisicos WHERE tenant_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activos fisicos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivoFisico
	for rows.Next() {
		var a entity.ActivoFisico
		if err := rows.Scan(&a.ID, &a.TenantID, &a.Codigo, &a.Nombre, &a.Categoria, &a.Estado,
			&a.FechaCompra, &a.Valor, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan activo fisico: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un activo del tenant.
func (r *ActivoFisicoRepo) Update(ctx context.Context, a *entity.ActivoFisico) error {
	query := `
		UPDATE activos_fisicos SET nombre = $3, categoria = $4, estado = $5, valor = $6, updated_at = $7
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		a.TenantID, a.ID, a.Nombre, a.Categoria, a.Estado, a.Valor, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update activo fisico: %w", err)
	}
	return nil
}

// Delete elimina un activo del tenant junto con su historial.
func (r *ActivoFisicoRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM activos_fisicos WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete activo fisico: %w", err)
	}
	return nil
}

// CreateMantenimiento registra una intervención sobre un activo.
func (r *ActivoFisicoRepo) CreateMantenimiento(ctx context.Context, m *entity.Mantenimiento) error {
	query := `
		INSERT INTO mantenimientos (id, tenant_id, activo_id, tipo, descripcion, fecha, costo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.TenantID, m.ActivoID, m.Tipo, m.Descripcion, m.Fecha, m.Costo, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert mantenimiento: %w", err)
	}
	return nil
}

// ListMantenimientos lista el historial de un activo, más reciente primero.
func (r *ActivoFisicoRepo) ListMantenimientos(ctx context.Context, tenantID, activoID string) ([]*entity.Mantenimiento, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tenant_id, activo_id, tipo, descripcion, fecha, costo, created_at
		 FROM mantenimientos WHERE tenant_id = $1 AND activo_id = $2 ORDER BY fecha DESC`,
		tenantID, activoID)
	if err != nil {
		return nil, fmt.Errorf("list mantenimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mantenimiento
	for rows.Next() {
		var m entity.Mantenimiento
		if err := rows.Scan(&m.ID, &m.TenantID, &m.ActivoID, &m.Tipo, &m.Descripcion, &m.Fecha, &m.Costo, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mantenimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CreateRepuesto registra un repuesto.
func (r *ActivoFisicoRepo) CreateRepuesto(ctx context.Context, rep *entity.Repuesto) error {
	query := `
		INSERT INTO repuestos (id, tenant_id, activo_id, nombre, cantidad, costo_unitario, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		rep.ID, rep.TenantID, nullIfEmpty(rep.ActivoID), rep.Nombre, rep.Cantidad, rep.CostoUnitario,
		rep.CreatedAt, rep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert repuesto: %w", err)
	}
	return nil
}

// ListRepuestos lista los repuestos del tenant con paginación.
func (r *ActivoFisicoRepo) ListRepuestos(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Repuesto, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tenant_id, activo_id, nombre, cantidad, costo_unitario, created_at, updated_at
		 FROM repuestos WHERE tenant_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list repuestos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Repuesto
	for rows.Next() {
		var rep entity.Repuesto
		var activoID *string
		if err := rows.Scan(&rep.ID, &rep.TenantID, &activoID, &rep.Nombre, &rep.Cantidad, &rep.CostoUnitario,
			&rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan repuesto: %w", err)
		}
		if activoID != nil {
			rep.ActivoID = *activoID
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// UpdateRepuesto actualiza un repuesto del tenant.
func (r *ActivoFisicoRepo) UpdateRepuesto(ctx context.Context, rep *entity.Repuesto) error {
	query := `
		UPDATE repuestos SET nombre = $3, cantidad = $4, costo_unitario = $5, updated_at = $6
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		rep.TenantID, rep.ID, rep.Nombre, rep.Cantidad, rep.CostoUnitario, rep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update repuesto: %w", err)
	}
	return nil
}

// CreateFinanciamiento registra un crédito asociado a un activo.
func (r *ActivoFisicoRepo) CreateFinanciamiento(ctx context.Context, f *entity.Financiamiento) error {
	query := `
		INSERT INTO financiamientos (id, tenant_id, activo_id, entidad, monto, cuotas, tasa_interes, fecha_inicio, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		f.ID, f.TenantID, f.ActivoID, f.Entidad, f.Monto, f.Cuotas, f.TasaInteres,
		f.FechaInicio, f.Estado, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert financiamiento: %w", err)
	}
	return nil
}

// ListFinanciamientos lista los financiamientos del tenant con paginación.
func (r *ActivoFisicoRepo) ListFinanciamientos(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Financiamiento, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tenant_id, activo_id, entidad, monto, cuotas, tasa_interes, fecha_inicio, estado, created_at, updated_at
		 FROM financiamientos WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list financiamientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Financiamiento
	for rows.Next() {
		var f entity.Financiamiento
		if err := rows.Scan(&f.ID, &f.TenantID, &f.ActivoID, &f.Entidad, &f.Monto, &f.Cuotas, &f.TasaInteres,
			&f.FechaInicio, &f.Estado, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan financiamiento: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
