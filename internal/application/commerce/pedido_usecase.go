package commerce

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

// PedidoUseCase casos de uso de pedidos.
type PedidoUseCase struct {
	repo         repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	contratoRepo repository.ContratoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository, clienteRepo repository.ClienteRepository, contratoRepo repository.ContratoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, clienteRepo: clienteRepo, contratoRepo: contratoRepo}
}

// Create crea un pedido para un cliente del tenant, con contrato opcional.
func (uc *PedidoUseCase) Create(ctx context.Context, tenantID string, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	in.Normalize()
	if in.ClienteID == "" || in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, tenantID, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.ContratoID != nil {
		contrato, err := uc.contratoRepo.GetByID(ctx, tenantID, *in.ContratoID)
		if err != nil {
			return nil, err
		}
		if contrato == nil {
			return nil, domain.ErrNotFound
		}
	}
	numero, err := uc.repo.NextNumero(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	pedido := &entity.Pedido{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Numero:       numero,
		ClienteID:    in.ClienteID,
		ContratoID:   in.ContratoID,
		Descripcion:  in.Descripcion,
		Estado:       entity.PedidoPendiente,
		Total:        in.Total,
		FechaEntrega: in.FechaEntrega,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, pedido); err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// GetByID devuelve un pedido del tenant o ErrNotFound. Un pedido de otro
// tenant es indistinguible de uno inexistente.
func (uc *PedidoUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.PedidoResponse, error) {
	pedido, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	return toPedidoResponse(pedido), nil
}

// List lista pedidos del tenant, opcionalmente por cliente.
func (uc *PedidoUseCase) List(ctx context.Context, tenantID, clienteID string, limit, offset int) ([]*dto.PedidoResponse, error) {
	var list []*entity.Pedido
	var err error
	if clienteID != "" {
		list, err = uc.repo.ListByCliente(ctx, tenantID, clienteID)
	} else {
		list, err = uc.repo.List(ctx, tenantID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPedidoResponse(p))
	}
	return out, nil
}

// Update PATCH parcial de un pedido.
func (uc *PedidoUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if in.Descripcion != nil {
		pedido.Descripcion = *in.Descripcion
	}
	if in.Estado != nil {
		switch *in.Estado {
		case entity.PedidoPendiente, entity.PedidoEnProceso, entity.PedidoEntregado, entity.PedidoCancelado:
			pedido.Estado = *in.Estado
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Total != nil {
		pedido.Total = *in.Total
	}
	if in.FechaEntrega != nil {
		pedido.FechaEntrega = in.FechaEntrega
	}
	if in.ContratoID != nil {
		if *in.ContratoID == "" {
			pedido.ContratoID = nil
		} else {
			contrato, err := uc.contratoRepo.GetByID(ctx, tenantID, *in.ContratoID)
			if err != nil {
				return nil, err
			}
			if contrato == nil {
				return nil, domain.ErrNotFound
			}
			pedido.ContratoID = in.ContratoID
		}
	}
	pedido.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// Delete elimina un pedido del tenant.
func (uc *PedidoUseCase) Delete(ctx context.Context, tenantID, id string) error {
	pedido, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if pedido == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, tenantID, id)
}

// toPedidoResponse emite las claves canónicas y sus alias legados; ambas
// series deben mantenerse idénticas para no romper clientes antiguos.
func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	return &dto.PedidoResponse{
		ID:           p.ID,
		Numero:       p.Numero,
		ClienteID:    p.ClienteID,
		ClientID:     p.ClienteID,
		ContratoID:   p.ContratoID,
		ContractID:   p.ContratoID,
		Descripcion:  p.Descripcion,
		Estado:       p.Estado,
		Total:        p.Total,
		FechaEntrega: p.FechaEntrega,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
