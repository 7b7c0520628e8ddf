package repository

import (
	"context"

	"github.com/arteideas/backend/internal/domain/entity"
)

// CategoriaGastoRepository puerto de persistencia para categorías de gasto.
type CategoriaGastoRepository interface {
	Create(ctx context.Context, c *entity.CategoriaGasto) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.CategoriaGasto, error)
	GetByNombre(ctx context.Context, tenantID, nombre string) (*entity.CategoriaGasto, error)
	List(ctx context.Context, tenantID string) ([]*entity.CategoriaGasto, error)
	Update(ctx context.Context, c *entity.CategoriaGasto) error
	Delete(ctx context.Context, tenantID, id string) error
}

// GastoPersonalRepository puerto de persistencia para gastos de planilla.
type GastoPersonalRepository interface {
	Create(ctx context.Context, g *entity.GastoPersonal) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.GastoPersonal, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.GastoPersonal, error)
	ListByPeriodo(ctx context.Context, tenantID, periodo string) ([]*entity.GastoPersonal, error)
	Update(ctx context.Context, g *entity.GastoPersonal) error
	Delete(ctx context.Context, tenantID, id string) error
}

// GastoServicioRepository puerto de persistencia para gastos de servicios.
type GastoServicioRepository interface {
	Create(ctx context.Context, g *entity.GastoServicio) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.GastoServicio, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.GastoServicio, error)
	Update(ctx context.Context, g *entity.GastoServicio) error
	Delete(ctx context.Context, tenantID, id string) error
}

// PresupuestoRepository puerto de persistencia para presupuestos.
type PresupuestoRepository interface {
	Create(ctx context.Context, p *entity.Presupuesto) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Presupuesto, error)
	GetByCategoriaPeriodo(ctx context.Context, tenantID, categoriaID, periodo string) (*entity.Presupuesto, error)
	List(ctx context.Context, tenantID string, periodo string) ([]*entity.Presupuesto, error)
	Update(ctx context.Context, p *entity.Presupuesto) error
	Delete(ctx context.Context, tenantID, id string) error
}
