package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

// ContratoPDFGenerator genera el documento imprimible de un contrato.
type ContratoPDFGenerator interface {
	GenerateContratoPDF(ctx context.Context, contrato *entity.Contrato, cliente *entity.Cliente, tenant *entity.Tenant) ([]byte, error)
}

// ContratoUseCase casos de uso de contratos.
type ContratoUseCase struct {
	repo        repository.ContratoRepository
	clienteRepo repository.ClienteRepository
	tenantRepo  repository.TenantRepository
	pdf         ContratoPDFGenerator
}

// NewContratoUseCase construye el caso de uso.
func NewContratoUseCase(repo repository.ContratoRepository, clienteRepo repository.ClienteRepository, tenantRepo repository.TenantRepository, pdf ContratoPDFGenerator) *ContratoUseCase {
	return &ContratoUseCase{repo: repo, clienteRepo: clienteRepo, tenantRepo: tenantRepo, pdf: pdf}
}

// Create crea un contrato para un cliente del tenant.
func (uc *ContratoUseCase) Create(ctx context.Context, tenantID string, in dto.CreateContratoRequest) (*dto.ContratoResponse, error) {
	if in.ClienteID == "" || in.Titulo == "" || in.FechaInicio.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, tenantID, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	contrato := &entity.Contrato{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ClienteID:   in.ClienteID,
		Titulo:      in.Titulo,
		Descripcion: in.Descripcion,
		Monto:       in.Monto,
		FechaInicio: in.FechaInicio,
		FechaFin:    in.FechaFin,
		Estado:      entity.ContratoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, contrato); err != nil {
		return nil, err
	}
	return toContratoResponse(contrato), nil
}

// GetByID devuelve un contrato del tenant o ErrNotFound.
func (uc *ContratoUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ContratoResponse, error) {
	contrato, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if contrato == nil {
		return nil, domain.ErrNotFound
	}
	return toContratoResponse(contrato), nil
}

// List lista contratos del tenant, opcionalmente por cliente.
func (uc *ContratoUseCase) List(ctx context.Context, tenantID, clienteID string, limit, offset int) ([]*dto.ContratoResponse, error) {
	var list []*entity.Contrato
	var err error
	if clienteID != "" {
		list, err = uc.repo.ListByCliente(ctx, tenantID, clienteID)
	} else {
		list, err = uc.repo.List(ctx, tenantID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContratoResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContratoResponse(c))
	}
	return out, nil
}

// Update PATCH parcial de un contrato.
func (uc *ContratoUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateContratoRequest) (*dto.ContratoResponse, error) {
	contrato, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if contrato == nil {
		return nil, domain.ErrNotFound
	}
	if in.Titulo != nil {
		contrato.Titulo = *in.Titulo
	}
	if in.Descripcion != nil {
		contrato.Descripcion = *in.Descripcion
	}
	if in.Monto != nil {
		contrato.Monto = *in.Monto
	}
	if in.FechaFin != nil {
		contrato.FechaFin = in.FechaFin
	}
	if in.Estado != nil {
		switch *in.Estado {
		case entity.ContratoActivo, entity.ContratoFinalizado, entity.ContratoAnulado:
			contrato.Estado = *in.Estado
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	contrato.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, contrato); err != nil {
		return nil, err
	}
	return toContratoResponse(contrato), nil
}

// Delete elimina un contrato; los pedidos que lo referencien quedan con
// contrato NULL (política SET NULL del esquema).
func (uc *ContratoUseCase) Delete(ctx context.Context, tenantID, id string) error {
	contrato, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if contrato == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, tenantID, id)
}

// PDF genera el documento del contrato.
func (uc *ContratoUseCase) PDF(ctx context.Context, tenantID, id string) ([]byte, error) {
	contrato, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if contrato == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, tenantID, contrato.ClienteID)
	if err != nil {
		return nil, err
	}
	tenant, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateContratoPDF(ctx, contrato, cliente, tenant)
}

func toContratoResponse(c *entity.Contrato) *dto.ContratoResponse {
	return &dto.ContratoResponse{
		ID:          c.ID,
		ClienteID:   c.ClienteID,
		Titulo:      c.Titulo,
		Descripcion: c.Descripcion,
		Monto:       c.Monto,
		FechaInicio: c.FechaInicio,
		FechaFin:    c.FechaFin,
		Estado:      c.Estado,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
