package operations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

// ActivoFisicoUseCase casos de uso de activos físicos y sus subrecursos.
type ActivoFisicoUseCase struct {
	repo repository.ActivoFisicoRepository
}

// NewActivoFisicoUseCase construye el caso de uso.
func NewActivoFisicoUseCase(repo repository.ActivoFisicoRepository) *ActivoFisicoUseCase {
	return &ActivoFisicoUseCase{repo: repo}
}

// Create registra un activo físico del taller.
func (uc *ActivoFisicoUseCase) Create(ctx context.Context, tenantID string, in dto.CreateActivoFisicoRequest) (*dto.ActivoFisicoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	activo := &entity.ActivoFisico{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Codigo:      in.Codigo,
		Nombre:      in.Nombre,
		Categoria:   in.Categoria,
		Estado:      entity.ActivoOperativo,
		FechaCompra: in.FechaCompra,
		Valor:       in.Valor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, activo); err != nil {
		return nil, err
	}
	return toActivoFisicoResponse(activo), nil
}

// GetByID devuelve un activo del tenant o ErrNotFound.
func (uc *ActivoFisicoUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ActivoFisicoResponse, error) {
	activo, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	return toActivoFisicoResponse(activo), nil
}

// List lista activos del tenant.
func (uc *ActivoFisicoUseCase) List(ctx context.Context, tenantID string, limit, offset int) ([]*dto.ActivoFisicoResponse, error) {
	list, err := uc.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivoFisicoResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toActivoFisicoResponse(a))
	}
	return out, nil
}

// Update PATCH parcial de un activo físico.
func (uc *ActivoFisicoUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateActivoFisicoRequest) (*dto.ActivoFisicoResponse, error) {
	activo, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		activo.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		activo.Categoria = *in.Categoria
	}
	if in.Estado != nil {
		switch *in.Estado {
		case entity.ActivoOperativo, entity.ActivoEnMantenimiento, entity.ActivoDeBaja:
			activo.Estado = *in.Estado
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Valor != nil {
		activo.Valor = *in.Valor
	}
	activo.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, activo); err != nil {
		return nil, err
	}
	return toActivoFisicoResponse(activo), nil
}

// Delete elimina un activo del tenant.
func (uc *ActivoFisicoUseCase) Delete(ctx context.Context, tenantID, id string) error {
	activo, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if activo == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, tenantID, id)
}

// RegistrarMantenimiento registra una intervención sobre un activo. Un
// mantenimiento correctivo deja el activo en estado en_mantenimiento.
func (uc *ActivoFisicoUseCase) RegistrarMantenimiento(ctx context.Context, tenantID, activoID string, in dto.CreateMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	if in.Tipo != entity.MantenimientoPreventivo && in.Tipo != entity.MantenimientoCorrectivo {
		return nil, domain.ErrInvalidInput
	}
	activo, err := uc.repo.GetByID(ctx, tenantID, activoID)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	m := &entity.Mantenimiento{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ActivoID:    activoID,
		Tipo:        in.Tipo,
		Descripcion: in.Descripcion,
		Fecha:       in.Fecha,
		Costo:       in.Costo,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.CreateMantenimiento(ctx, m); err != nil {
		return nil, err
	}
	if in.Tipo == entity.MantenimientoCorrectivo && activo.Estado == entity.ActivoOperativo {
		activo.Estado = entity.ActivoEnMantenimiento
		activo.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, activo); err != nil {
			return nil, err
		}
	}
	return toMantenimientoResponse(m), nil
}

// ListMantenimientos lista el historial de un activo.
func (uc *ActivoFisicoUseCase) ListMantenimientos(ctx context.Context, tenantID, activoID string) ([]*dto.MantenimientoResponse, error) {
	activo, err := uc.repo.GetByID(ctx, tenantID, activoID)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListMantenimientos(ctx, tenantID, activoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MantenimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMantenimientoResponse(m))
	}
	return out, nil
}

// CreateRepuesto registra un repuesto, asociado a un activo o genérico.
func (uc *ActivoFisicoUseCase) CreateRepuesto(ctx context.Context, tenantID string, in dto.CreateRepuestoRequest) (*dto.RepuestoResponse, error) {
	if in.Nombre == "" || in.Cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ActivoID != "" {
		activo, err := uc.repo.GetByID(ctx, tenantID, in.ActivoID)
		if err != nil {
			return nil, err
		}
		if activo == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	r := &entity.Repuesto{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		ActivoID:      in.ActivoID,
		Nombre:        in.Nombre,
		Cantidad:      in.Cantidad,
		CostoUnitario: in.CostoUnitario,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.CreateRepuesto(ctx, r); err != nil {
		return nil, err
	}
	return toRepuestoResponse(r), nil
}

// ListRepuestos lista los repuestos del tenant.
func (uc *ActivoFisicoUseCase) ListRepuestos(ctx context.Context, tenantID string, limit, offset int) ([]*dto.RepuestoResponse, error) {
	list, err := uc.repo.ListRepuestos(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RepuestoResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRepuestoResponse(r))
	}
	return out, nil
}

// CreateFinanciamiento registra un crédito asociado a un activo.
func (uc *ActivoFisicoUseCase) CreateFinanciamiento(ctx context.Context, tenantID string, in dto.CreateFinanciamientoRequest) (*dto.FinanciamientoResponse, error) {
	if in.ActivoID == "" || in.Entidad == "" || in.Cuotas <= 0 {
		return nil, domain.ErrInvalidInput
	}
	activo, err := uc.repo.GetByID(ctx, tenantID, in.ActivoID)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	f := &entity.Financiamiento{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ActivoID:    in.ActivoID,
		Entidad:     in.Entidad,
		Monto:       in.Monto,
		Cuotas:      in.Cuotas,
		TasaInteres: in.TasaInteres,
		FechaInicio: in.FechaInicio,
		Estado:      "vigente",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateFinanciamiento(ctx, f); err != nil {
		return nil, err
	}
	return toFinanciamientoResponse(f), nil
}

// ListFinanciamientos lista los financiamientos del tenant.
func (uc *ActivoFisicoUseCase) ListFinanciamientos(ctx context.Context, tenantID string, limit, offset int) ([]*dto.FinanciamientoResponse, error) {
	list, err := uc.repo.ListFinanciamientos(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FinanciamientoResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFinanciamientoResponse(f))
	}
	return out, nil
}

func toActivoFisicoResponse(a *entity.ActivoFisico) *dto.ActivoFisicoResponse {
	return &dto.ActivoFisicoResponse{
		ID:          a.ID,
		Codigo:      a.Codigo,
		Nombre:      a.Nombre,
		Categoria:   a.Categoria,
		Estado:      a.Estado,
		FechaCompra: a.FechaCompra,
		Valor:       a.Valor,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toMantenimientoResponse(m *entity.Mantenimiento) *dto.MantenimientoResponse {
	return &dto.MantenimientoResponse{
		ID:          m.ID,
		ActivoID:    m.ActivoID,
		Tipo:        m.Tipo,
		Descripcion: m.Descripcion,
		Fecha:       m.Fecha,
		Costo:       m.Costo,
	}
}

func toFinanciamientoResponse(f *entity.Financiamiento) *dto.FinanciamientoResponse {
	return &dto.FinanciamientoResponse{
		ID:          f.ID,
		ActivoID:    f.ActivoID,
		Entidad:     f.Entidad,
		Monto:       f.Monto,
		Cuotas:      f.Cuotas,
		TasaInteres: f.TasaInteres,
		FechaInicio: f.FechaInicio,
		Estado:      f.Estado,
	}
}

func toRepuestoResponse(r *entity.Repuesto) *dto.RepuestoResponse {
	return &dto.RepuestoResponse{
		ID:            r.ID,
		ActivoID:      r.ActivoID,
		Nombre:        r.Nombre,
		Cantidad:      r.Cantidad,
		CostoUnitario: r.CostoUnitario,
	}
}
