package repository

import (
	"context"

	"github.com/arteideas/backend/internal/domain/entity"
)

// OrdenProduccionRepository puerto de persistencia para órdenes de producción.
type OrdenProduccionRepository interface {
	Create(ctx context.Context, o *entity.OrdenProduccion) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.OrdenProduccion, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.OrdenProduccion, error)
	Update(ctx context.Context, o *entity.OrdenProduccion) error
	Delete(ctx context.Context, tenantID, id string) error
}

// ActivoFisicoRepository puerto de persistencia para activos físicos y sus
// subrecursos (mantenimientos, repuestos, financiamientos).
type ActivoFisicoRepository interface {
	Create(ctx context.Context, a *entity.ActivoFisico) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.ActivoFisico, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.ActivoFisico, error)
	Update(ctx context.Context, a *entity.ActivoFisico) error
	Delete(ctx context.Context, tenantID, id string) error

	CreateMantenimiento(ctx context.Context, m *entity.Mantenimiento) error
	ListMantenimientos(ctx context.Context, tenantID, activoID string) ([]*entity.Mantenimiento, error)

	CreateRepuesto(ctx context.Context, r *entity.Repuesto) error
	ListRepuestos(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Repuesto, error)
	UpdateRepuesto(ctx context.Context, r *entity.Repuesto) error

	CreateFinanciamiento(ctx context.Context, f *entity.Financiamiento) error
	ListFinanciamientos(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Financiamiento, error)
}
