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

// ProduccionUseCase casos de uso de órdenes de producción.
type ProduccionUseCase struct {
	repo        repository.OrdenProduccionRepository
	pedidoRepo  repository.PedidoRepository
	clienteRepo repository.ClienteRepository
}

// NewProduccionUseCase construye el caso de uso.
func NewProduccionUseCase(repo repository.OrdenProduccionRepository, pedidoRepo repository.PedidoRepository, clienteRepo repository.ClienteRepository) *ProduccionUseCase {
	return &ProduccionUseCase{repo: repo, pedidoRepo: pedidoRepo, clienteRepo: clienteRepo}
}

// Create abre una orden de producción. Si viene de un pedido, el cliente y
// el contrato se heredan de él.
func (uc *ProduccionUseCase) Create(ctx context.Context, tenantID string, in dto.CreateOrdenProduccionRequest) (*dto.OrdenProduccionResponse, error) {
	in.Normalize()
	if in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	clienteID := in.ClienteID
	contratoID := in.ContratoID
	if in.PedidoID != nil {
		pedido, err := uc.pedidoRepo.GetByID(ctx, tenantID, *in.PedidoID)
		if err != nil {
			return nil, err
		}
		if pedido == nil {
			return nil, domain.ErrNotFound
		}
		clienteID = pedido.ClienteID
		contratoID = pedido.ContratoID
	}
	if clienteID == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, tenantID, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	orden := &entity.OrdenProduccion{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		PedidoID:    in.PedidoID,
		ClienteID:   clienteID,
		ContratoID:  contratoID,
		Descripcion: in.Descripcion,
		Estado:      entity.ProduccionPendiente,
		FechaInicio: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, orden); err != nil {
		return nil, err
	}
	return toOrdenResponse(orden), nil
}

// GetByID devuelve una orden del tenant o ErrNotFound.
func (uc *ProduccionUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.OrdenProduccionResponse, error) {
	orden, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	return toOrdenResponse(orden), nil
}

// List lista órdenes del tenant.
func (uc *ProduccionUseCase) List(ctx context.Context, tenantID string, limit, offset int) ([]*dto.OrdenProduccionResponse, error) {
	list, err := uc.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrdenProduccionResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrdenResponse(o))
	}
	return out, nil
}

// Update PATCH parcial de una orden. Pasar a "terminada" sella FechaFin si el
// cliente no la envió.
func (uc *ProduccionUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateOrdenProduccionRequest) (*dto.OrdenProduccionResponse, error) {
	orden, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	if in.Descripcion != nil {
		orden.Descripcion = *in.Descripcion
	}
	if in.Estado != nil {
		switch *in.Estado {
		case entity.ProduccionPendiente, entity.ProduccionEnProceso, entity.ProduccionTerminada:
			orden.Estado = *in.Estado
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.FechaFin != nil {
		orden.FechaFin = in.FechaFin
	}
	if orden.Estado == entity.ProduccionTerminada && orden.FechaFin == nil {
		now := time.Now()
		orden.FechaFin = &now
	}
	orden.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, orden); err != nil {
		return nil, err
	}
	return toOrdenResponse(orden), nil
}

// Delete elimina una orden del tenant.
func (uc *ProduccionUseCase) Delete(ctx context.Context, tenantID, id string) error {
	orden, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if orden == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, tenantID, id)
}

func toOrdenResponse(o *entity.OrdenProduccion) *dto.OrdenProduccionResponse {
	return &dto.OrdenProduccionResponse{
		ID:          o.ID,
		PedidoID:    o.PedidoID,
		ClienteID:   o.ClienteID,
		ClientID:    o.ClienteID,
		ContratoID:  o.ContratoID,
		ContractID:  o.ContratoID,
		Descripcion: o.Descripcion,
		Estado:      o.Estado,
		FechaInicio: o.FechaInicio,
		FechaFin:    o.FechaFin,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
