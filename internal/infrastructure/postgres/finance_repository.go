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

var _ repository.CategoriaGastoRepository = (*CategoriaGastoRepo)(nil)

// CategoriaGastoRepo implementación del puerto CategoriaGastoRepository sobre PostgreSQL.
type CategoriaGastoRepo struct {
	pool *pgxpool.Pool
}

// NewCategoriaGastoRepository construye el adaptador para categorías de gasto.
func NewCategoriaGastoRepository(pool *pgxpool.Pool) *CategoriaGastoRepo {
	return &CategoriaGastoRepo{pool: pool}
}

const categoriaColumns = `id, tenant_id, nombre, descripcion, created_at, updated_at`

// Create persiste una nueva categoría.
func (r *CategoriaGastoRepo) Create(ctx context.Context, c *entity.CategoriaGasto) error {
	query := `
		INSERT INTO categorias_gasto (` + categoriaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.TenantID, c.Nombre, c.Descripcion, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria gasto: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría del tenant, (nil, nil) si no existe.
func (r *CategoriaGastoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.CategoriaGasto, error) {
	return r.findOne(ctx,
		`SELECT `+categoriaColumns+` FROM categorias_gasto WHERE tenant_id = $1 AND id = $2`, tenantID, id)
}

// GetByNombre obtiene una categoría por nombre dentro del tenant.
func (r *CategoriaGastoRepo) GetByNombre(ctx context.Context, tenantID, nombre string) (*entity.CategoriaGasto, error) {
	return r.findOne(ctx,
		`SELECT `+categoriaColumns+` FROM categorias_gasto WHERE tenant_id = $1 AND nombre = $2`, tenantID, nombre)
}

func (r *CategoriaGastoRepo) findOne(ctx context.Context, query string, args ...any) (*entity.CategoriaGasto, error) {
	var c entity.CategoriaGasto
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.TenantID, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria gasto: %w", err)
	}
	return &c, nil
}

// List lista las categorías del tenant.
func (r *CategoriaGastoRepo) List(ctx context.Context, tenantID string) ([]*entity.CategoriaGasto, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoriaColumns+` FROM categorias_gasto WHERE tenant_id = $1 ORDER BY nombre`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list categorias gasto: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoriaGasto
	for rows.Next() {
		var c entity.CategoriaGasto
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria gasto: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría del tenant.
func (r *CategoriaGastoRepo) Update(ctx context.Context, c *entity.CategoriaGasto) error {
	query := `
		UPDATE categorias_gasto SET nombre = $3, descripcion = $4, updated_at = $5
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query, c.TenantID, c.ID, c.Nombre, c.Descripcion, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria gasto: %w", err)
	}
	return nil
}

// Delete elimina una categoría del tenant.
func (r *CategoriaGastoRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM categorias_gasto WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete categoria gasto: %w", err)
	}
	return nil
}

var _ repository.GastoPersonalRepository = (*GastoPersonalRepo)(nil)

// GastoPersonalRepo implementación del puerto GastoPersonalRepository sobre PostgreSQL.
type GastoPersonalRepo struct {
	pool *pgxpool.Pool
}

// NewGastoPersonalRepository construye el adaptador para gastos de planilla.
func NewGastoPersonalRepository(pool *pgxpool.Pool) *GastoPersonalRepo {
	return &GastoPersonalRepo{pool: pool}
}

const gastoPersonalColumns = `id, tenant_id, categoria_id, empleado, periodo, monto, fecha_pago, created_at, updated_at`

// Create persiste un nuevo gasto de planilla.
func (r *GastoPersonalRepo) Create(ctx context.Context, g *entity.GastoPersonal) error {
	query := `
		INSERT INTO gastos_personal (` + gastoPersonalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		g.ID, g.TenantID, g.CategoriaID, g.Empleado, g.Periodo, g.Monto, g.FechaPago,
		g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert gasto personal: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto de planilla del tenant, (nil, nil) si no existe.
func (r *GastoPersonalRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.GastoPersonal, error) {
	var g entity.GastoPersonal
	err := r.pool.QueryRow(ctx,
		`SELECT `+gastoPersonalColumns+` FROM gastos_personal WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(&g.ID, &g.TenantID, &g.CategoriaID, &g.Empleado, &g.Periodo, &g.Monto, &g.FechaPago,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto personal: %w", err)
	}
	return &g, nil
}

// List lista gastos de planilla del tenant con paginación.
func (r *GastoPersonalRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.GastoPersonal, error) {
	query := `SELECT ` + gastoPersonalColumns + ` FROM gastos_personal WHERE tenant_id = $1 ORDER BY fecha_pago DESC`
	args := []any{tenantID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos personal: %w", err)
	}
	return r.collect(rows)
}

// ListByPeriodo lista los gastos de planilla imputados a un periodo YYYY-MM.
func (r *GastoPersonalRepo) ListByPeriodo(ctx context.Context, tenantID, periodo string) ([]*entity.GastoPersonal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+gastoPersonalColumns+` FROM gastos_personal WHERE tenant_id = $1 AND periodo = $2 ORDER BY empleado`,
		tenantID, periodo)
	if err != nil {
		return nil, fmt.Errorf("list gastos personal por periodo: %w", err)
	}
	return r.collect(rows)
}

func (r *GastoPersonalRepo) collect(rows pgx.Rows) ([]*entity.GastoPersonal, error) {
	defer rows.Close()
	var list []*entity.GastoPersonal
	for rows.Next() {
		var g entity.GastoPersonal
		if err := rows.Scan(&g.ID, &g.TenantID, &g.CategoriaID, &g.Empleado, &g.Periodo, &g.Monto, &g.FechaPago,
			&g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan gasto personal: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza un gasto de planilla del tenant.
func (r *GastoPersonalRepo) Update(ctx context.Context, g *entity.GastoPersonal) error {
	query := `
		UPDATE gastos_personal SET categoria_id = $3, empleado = $4, periodo = $5, monto = $6, fecha_pago = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		g.TenantID, g.ID, g.CategoriaID, g.Empleado, g.Periodo, g.Monto, g.FechaPago, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update gasto personal: %w", err)
	}
	return nil
}

// Delete elimina un gasto de planilla del tenant.
func (r *GastoPersonalRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gastos_personal WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete gasto personal: %w", err)
	}
	return nil
}

var _ repository.GastoServicioRepository = (*GastoServicioRepo)(nil)

// GastoServicioRepo implementación del puerto GastoServicioRepository sobre PostgreSQL.
type GastoServicioRepo struct {
	pool *pgxpool.Pool
}

// NewGastoServicioRepository construye el adaptador para gastos de servicios.
func NewGastoServicioRepository(pool *pgxpool.Pool) *GastoServicioRepo {
	return &GastoServicioRepo{pool: pool}
}

const gastoServicioColumns = `id, tenant_id, categoria_id, servicio, proveedor, monto, fecha, created_at, updated_at`

// Create persiste un nuevo gasto de servicios.
func (r *GastoServicioRepo) Create(ctx context.Context, g *entity.GastoServicio) error {
	query := `
		INSERT INTO gastos_servicio (` + gastoServicioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		g.ID, g.TenantID, g.CategoriaID, g.Servicio, g.Proveedor, g.Monto, g.Fecha,
		g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert gasto servicio: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto de servicios del tenant, (nil, nil) si no existe.
func (r *GastoServicioRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.GastoServicio, error) {
	var g entity.GastoServicio
	err := r.pool.QueryRow(ctx,
		`SELECT `+gastoServicioColumns+` FROM gastos_servicio WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(&g.ID, &g.TenantID, &g.CategoriaID, &g.Servicio, &g.Proveedor, &g.Monto, &g.Fecha,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto servicio: %w", err)
	}
	return &g, nil
}

// List lista gastos de servicios del tenant con paginación.
func (r *GastoServicioRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.GastoServicio, error) {
	query := `SELECT ` + gastoServicioColumns + ` FROM gastos_servicio WHERE tenant_id = $1 ORDER BY fecha DESC`
	args := []any{tenantID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos servicio: %w", err)
	}
	defer rows.Close()
	var list []*entity.GastoServicio
	for rows.Next() {
		var g entity.GastoServicio
		if err := rows.Scan(&g.ID, &g.TenantID, &g.CategoriaID, &g.Servicio, &g.Proveedor, &g.Monto, &g.Fecha,
			&g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan gasto servicio: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza un gasto de servicios del tenant.
func (r *GastoServicioRepo) Update(ctx context.Context, g *entity.GastoServicio) error {
	query := `
		UPDATE gastos_servicio SET categoria_id = $3, servicio = $4, proveedor = $5, monto = $6, fecha = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		g.TenantID, g.ID, g.CategoriaID, g.Servicio, g.Proveedor, g.Monto, g.Fecha, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update gasto servicio: %w", err)
	}
	return nil
}

// Delete elimina un gasto de servicios del tenant.
func (r *GastoServicioRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gastos_servicio WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete gasto servicio: %w", err)
	}
	return nil
}

var _ repository.PresupuestoRepository = (*PresupuestoRepo)(nil)

// PresupuestoRepo implementación del puerto PresupuestoRepository sobre PostgreSQL.
type PresupuestoRepo struct {
	pool *pgxpool.Pool
}

// NewPresupuestoRepository construye el adaptador para presupuestos.
func NewPresupuestoRepository(pool *pgxpool.Pool) *PresupuestoRepo {
	return &PresupuestoRepo{pool: pool}
}

const presupuestoColumns = `id, tenant_id, categoria_id, periodo, monto, created_at, updated_at`

// Create persiste un nuevo presupuesto. (categoría, periodo) es único por tenant.
func (r *PresupuestoRepo) Create(ctx context.Context, p *entity.Presupuesto) error {
	query := `
		INSERT INTO presupuestos (` + presupuestoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.TenantID, p.CategoriaID, p.Periodo, p.Monto, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert presupuesto: %w", err)
	}
	return nil
}

// GetByID obtiene un presupuesto del tenant, (nil, nil) si no existe.
func (r *PresupuestoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Presupuesto, error) {
	return r.findOne(ctx,
		`SELECT `+presupuestoColumns+` FROM presupuestos WHERE tenant_id = $1 AND id = $2`, tenantID, id)
}

// GetByCategoriaPeriodo obtiene el presupuesto de una categoría en un periodo.
func (r *PresupuestoRepo) GetByCategoriaPeriodo(ctx context.Context, tenantID, categoriaID, periodo string) (*entity.Presupuesto, error) {
	return r.findOne(ctx,
		`SELECT `+presupuestoColumns+` FROM presupuestos WHERE tenant_id = $1 AND categoria_id = $2 AND periodo = $3`,
		tenantID, categoriaID, periodo)
}

func (r *PresupuestoRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Presupuesto, error) {
	var p entity.Presupuesto
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.TenantID, &p.CategoriaID, &p.Periodo, &p.Monto, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get presupuesto: %w", err)
	}
	return &p, nil
}

// List lista presupuestos del tenant, filtrando por periodo si se indica.
func (r *PresupuestoRepo) List(ctx context.Context, tenantID string, periodo string) ([]*entity.Presupuesto, error) {
	query := `SELECT ` + presupuestoColumns + ` FROM presupuestos WHERE tenant_id = $1`
	args := []any{tenantID}
	if periodo != "" {
		query += ` AND periodo = $2`
		args = append(args, periodo)
	}
	query += ` ORDER BY periodo DESC, categoria_id`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list presupuestos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Presupuesto
	for rows.Next() {
		var p entity.Presupuesto
		if err := rows.Scan(&p.ID, &p.TenantID, &p.CategoriaID, &p.Periodo, &p.Monto, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan presupuesto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un presupuesto del tenant.
func (r *PresupuestoRepo) Update(ctx context.Context, p *entity.Presupuesto) error {
	query := `
		UPDATE presupuestos SET monto = $3, updated_at = $4
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query, p.TenantID, p.ID, p.Monto, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update presupuesto: %w", err)
	}
	return nil
}

// Delete elimina un presupuesto del tenant.
func (r *PresupuestoRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM presupuestos WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete presupuesto: %w", err)
	}
	return nil
}
