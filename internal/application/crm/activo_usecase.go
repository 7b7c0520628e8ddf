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

// ActivoUseCase casos de uso de entregables digitales de CRM.
type ActivoUseCase struct {
	repo        repository.ActivoDigitalRepository
	clienteRepo repository.ClienteRepository
}

// NewActivoUseCase construye el caso de uso.
func NewActivoUseCase(repo repository.ActivoDigitalRepository, clienteRepo repository.ClienteRepository) *ActivoUseCase {
	return &ActivoUseCase{repo: repo, clienteRepo: clienteRepo}
}

// Create registra un entregable asociado a un cliente del tenant.
func (uc *ActivoUseCase) Create(ctx context.Context, tenantID string, in dto.CreateActivoDigitalRequest) (*dto.ActivoDigitalResponse, error) {
	if in.ClienteID == "" || in.Nombre == "" || in.Tipo == "" {
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
	activo := &entity.ActivoDigital{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		ClienteID:  in.ClienteID,
		Nombre:     in.Nombre,
		Tipo:       in.Tipo,
		Referencia: in.Referencia,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, activo); err != nil {
		return nil, err
	}
	return toActivoDigitalResponse(activo), nil
}

// GetByID devuelve un entregable del tenant o ErrNotFound.
func (uc *ActivoUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ActivoDigitalResponse, error) {
	activo, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	return toActivoDigitalResponse(activo), nil
}

// List lista entregables del tenant, opcionalmente por cliente.
func (uc *ActivoUseCase) List(ctx context.Context, tenantID, clienteID string, limit, offset int) ([]*dto.ActivoDigitalResponse, error) {
	var list []*entity.ActivoDigital
	var err error
	if clienteID != "" {
		list, err = uc.repo.ListByCliente(ctx, tenantID, clienteID)
	} else {
		list, err = uc.repo.List(ctx, tenantID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivoDigitalResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toActivoDigitalResponse(a))
	}
	return out, nil
}

// Delete elimina un entregable del tenant.
func (uc *ActivoUseCase) Delete(ctx context.Context, tenantID, id string) error {
	activo, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if activo == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, tenantID, id)
}

func toActivoDigitalResponse(a *entity.ActivoDigital) *dto.ActivoDigitalResponse {
	return &dto.ActivoDigitalResponse{
		ID:         a.ID,
		ClienteID:  a.ClienteID,
		Nombre:     a.Nombre,
		Tipo:       a.Tipo,
		Referencia: a.Referencia,
		CreatedAt:  a.CreatedAt,
	}
}
