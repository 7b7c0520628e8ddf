package finance

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

var periodoRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// FinanceUseCase casos de uso del módulo de finanzas: categorías, gastos de
// planilla y servicios, y presupuestos con su ejecución.
type FinanceUseCase struct {
	categoriaRepo   repository.CategoriaGastoRepository
	personalRepo    repository.GastoPersonalRepository
	servicioRepo    repository.GastoServicioRepository
	presupuestoRepo repository.PresupuestoRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(
	categoriaRepo repository.CategoriaGastoRepository,
	personalRepo repository.GastoPersonalRepository,
	servicioRepo repository.GastoServicioRepository,
	presupuestoRepo repository.PresupuestoRepository,
) *FinanceUseCase {
	return &FinanceUseCase{
		categoriaRepo:   categoriaRepo,
		personalRepo:    personalRepo,
		servicioRepo:    servicioRepo,
		presupuestoRepo: presupuestoRepo,
	}
}

// CreateCategoria crea una categoría de gasto. El nombre es único por tenant.
func (uc *FinanceUseCase) CreateCategoria(ctx context.Context, tenantID string, in dto.CreateCategoriaGastoRequest) (*dto.CategoriaGastoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoriaRepo.GetByNombre(ctx, tenantID, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.CategoriaGasto{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoriaRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// ListCategorias lista las categorías del tenant.
func (uc *FinanceUseCase) ListCategorias(ctx context.Context, tenantID string) ([]*dto.CategoriaGastoResponse, error) {
	list, err := uc.categoriaRepo.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaGastoResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// DeleteCategoria elimina una categoría del tenant.
func (uc *FinanceUseCase) DeleteCategoria(ctx context.Context, tenantID, id string) error {
	c, err := uc.categoriaRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.categoriaRepo.Delete(ctx, tenantID, id)
}

// CreateGastoPersonal registra un gasto de planilla.
func (uc *FinanceUseCase) CreateGastoPersonal(ctx context.Context, tenantID string, in dto.CreateGastoPersonalRequest) (*dto.GastoPersonalResponse, error) {
	if in.Empleado == "" || !periodoRe.MatchString(in.Periodo) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireCategoria(ctx, tenantID, in.CategoriaID); err != nil {
		return nil, err
	}
	now := time.Now()
	g := &entity.GastoPersonal{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		CategoriaID: in.CategoriaID,
		Empleado:    in.Empleado,
		Periodo:     in.Periodo,
		Monto:       in.Monto,
		FechaPago:   in.FechaPago,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.personalRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return toGastoPersonalResponse(g), nil
}

// ListGastosPersonal lista gastos de planilla, opcionalmente por periodo.
func (uc *FinanceUseCase) ListGastosPersonal(ctx context.Context, tenantID, periodo string, limit, offset int) ([]*dto.GastoPersonalResponse, error) {
	var list []*entity.GastoPersonal
	var err error
	if periodo != "" {
		if !periodoRe.MatchString(periodo) {
			return nil, domain.ErrInvalidInput
		}
		list, err = uc.personalRepo.ListByPeriodo(ctx, tenantID, periodo)
	} else {
		list, err = uc.personalRepo.List(ctx, tenantID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GastoPersonalResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGastoPersonalResponse(g))
	}
	return out, nil
}

// DeleteGastoPersonal elimina un gasto de planilla del tenant.
func (uc *FinanceUseCase) DeleteGastoPersonal(ctx context.Context, tenantID, id string) error {
	g, err := uc.personalRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrNotFound
	}
	return uc.personalRepo.Delete(ctx, tenantID, id)
}

// CreateGastoServicio registra un gasto de servicios.
func (uc *FinanceUseCase) CreateGastoServicio(ctx context.Context, tenantID string, in dto.CreateGastoServicioRequest) (*dto.GastoServicioResponse, error) {
	if in.Servicio == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireCategoria(ctx, tenantID, in.CategoriaID); err != nil {
		return nil, err
	}
	now := time.Now()
	g := &entity.GastoServicio{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		CategoriaID: in.CategoriaID,
		Servicio:    in.Servicio,
		Proveedor:   in.Proveedor,
		Monto:       in.Monto,
		Fecha:       in.Fecha,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.servicioRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return toGastoServicioResponse(g), nil
}

// ListGastosServicio lista gastos de servicios del tenant.
func (uc *FinanceUseCase) ListGastosServicio(ctx context.Context, tenantID string, limit, offset int) ([]*dto.GastoServicioResponse, error) {
	list, err := uc.servicioRepo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GastoServicioResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGastoServicioResponse(g))
	}
	return out, nil
}

// DeleteGastoServicio elimina un gasto de servicios del tenant.
func (uc *FinanceUseCase) DeleteGastoServicio(ctx context.Context, tenantID, id string) error {
	g, err := uc.servicioRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrNotFound
	}
	return uc.servicioRepo.Delete(ctx, tenantID, id)
}

// CreatePresupuesto fija el techo de gasto de una categoría en un periodo.
// Repetir (categoría, periodo) es conflicto, no upsert.
func (uc *FinanceUseCase) CreatePresupuesto(ctx context.Context, tenantID string, in dto.CreatePresupuestoRequest) (*dto.PresupuestoResponse, error) {
	if !periodoRe.MatchString(in.Periodo) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireCategoria(ctx, tenantID, in.CategoriaID); err != nil {
		return nil, err
	}
	existing, err := uc.presupuestoRepo.GetByCategoriaPeriodo(ctx, tenantID, in.CategoriaID, in.Periodo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Presupuesto{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		CategoriaID: in.CategoriaID,
		Periodo:     in.Periodo,
		Monto:       in.Monto,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.presupuestoRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.toPresupuestoResponse(ctx, p)
}

// ListPresupuestos lista presupuestos del tenant, opcionalmente por periodo,
// con la ejecución acumulada de cada uno.
func (uc *FinanceUseCase) ListPresupuestos(ctx context.Context, tenantID, periodo string) ([]*dto.PresupuestoResponse, error) {
	if periodo != "" && !periodoRe.MatchString(periodo) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.presupuestoRepo.List(ctx, tenantID, periodo)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PresupuestoResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.toPresupuestoResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// DeletePresupuesto elimina un presupuesto del tenant.
func (uc *FinanceUseCase) DeletePresupuesto(ctx context.Context, tenantID, id string) error {
	p, err := uc.presupuestoRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.presupuestoRepo.Delete(ctx, tenantID, id)
}

func (uc *FinanceUseCase) requireCategoria(ctx context.Context, tenantID, categoriaID string) error {
	if categoriaID == "" {
		return domain.ErrInvalidInput
	}
	c, err := uc.categoriaRepo.GetByID(ctx, tenantID, categoriaID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return nil
}

// ejecutado acumula los gastos de la categoría imputados al periodo: la
// planilla por su campo periodo y los servicios por el mes de su fecha.
func (uc *FinanceUseCase) ejecutado(ctx context.Context, tenantID, categoriaID, periodo string) (decimal.Decimal, error) {
	total := decimal.Zero
	personal, err := uc.personalRepo.ListByPeriodo(ctx, tenantID, periodo)
	if err != nil {
		return decimal.Zero, err
	}
	for _, g := range personal {
		if g.CategoriaID == categoriaID {
			total = total.Add(g.Monto)
		}
	}
	servicios, err := uc.servicioRepo.List(ctx, tenantID, 0, 0)
	if err != nil {
		return decimal.Zero, err
	}
	for _, g := range servicios {
		if g.CategoriaID == categoriaID && g.Fecha.Format("2006-01") == periodo {
			total = total.Add(g.Monto)
		}
	}
	return total, nil
}

func (uc *FinanceUseCase) toPresupuestoResponse(ctx context.Context, p *entity.Presupuesto) (*dto.PresupuestoResponse, error) {
	ejecutado, err := uc.ejecutado(ctx, p.TenantID, p.CategoriaID, p.Periodo)
	if err != nil {
		return nil, err
	}
	return &dto.PresupuestoResponse{
		ID:          p.ID,
		CategoriaID: p.CategoriaID,
		Periodo:     p.Periodo,
		Monto:       p.Monto,
		Ejecutado:   ejecutado,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func toCategoriaResponse(c *entity.CategoriaGasto) *dto.CategoriaGastoResponse {
	return &dto.CategoriaGastoResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		CreatedAt:   c.CreatedAt,
	}
}

func toGastoPersonalResponse(g *entity.GastoPersonal) *dto.GastoPersonalResponse {
	return &dto.GastoPersonalResponse{
		ID:          g.ID,
		CategoriaID: g.CategoriaID,
		Empleado:    g.Empleado,
		Periodo:     g.Periodo,
		Monto:       g.Monto,
		FechaPago:   g.FechaPago,
		CreatedAt:   g.CreatedAt,
	}
}

func toGastoServicioResponse(g *entity.GastoServicio) *dto.GastoServicioResponse {
	return &dto.GastoServicioResponse{
		ID:          g.ID,
		CategoriaID: g.CategoriaID,
		Servicio:    g.Servicio,
		Proveedor:   g.Proveedor,
		Monto:       g.Monto,
		Fecha:       g.Fecha,
		CreatedAt:   g.CreatedAt,
	}
}
