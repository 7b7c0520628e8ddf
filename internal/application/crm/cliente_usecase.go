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

// ClienteUseCase casos de uso de clientes CRM. Todas las operaciones reciben
// el tenant activo y jamás leen fuera de él.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente. Documento es único por tenant.
func (uc *ClienteUseCase) Create(ctx context.Context, tenantID string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Documento == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByDocumento(ctx, tenantID, in.Documento)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Nombre:    in.Nombre,
		Documento: in.Documento,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID devuelve un cliente del tenant o ErrNotFound.
func (uc *ClienteUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes del tenant; con term hace búsqueda insensible a tildes.
func (uc *ClienteUseCase) List(ctx context.Context, tenantID, term string, limit, offset int) ([]*dto.ClienteResponse, error) {
	var list []*entity.Cliente
	var err error
	if term != "" {
		list, err = uc.repo.Search(ctx, tenantID, term, limit)
	} else {
		list, err = uc.repo.List(ctx, tenantID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update PATCH parcial de un cliente.
func (uc *ClienteUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Nombre = *in.Nombre
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete elimina un cliente del tenant. Sus pedidos caen en cascada.
func (uc *ClienteUseCase) Delete(ctx context.Context, tenantID, id string) error {
	cliente, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, tenantID, id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Documento: c.Documento,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
