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

// AgendaUseCase casos de uso de la agenda de eventos.
type AgendaUseCase struct {
	repo repository.EventoRepository
}

// NewAgendaUseCase construye el caso de uso.
func NewAgendaUseCase(repo repository.EventoRepository) *AgendaUseCase {
	return &AgendaUseCase{repo: repo}
}

// Create crea un evento programado.
func (uc *AgendaUseCase) Create(ctx context.Context, tenantID string, in dto.CreateEventoRequest) (*dto.EventoResponse, error) {
	if in.Titulo == "" || in.Inicio.IsZero() || in.Fin.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.Fin.Before(in.Inicio) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	evento := &entity.Evento{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Titulo:      in.Titulo,
		Descripcion: in.Descripcion,
		Lugar:       in.Lugar,
		Inicio:      in.Inicio,
		Fin:         in.Fin,
		ClienteID:   in.ClienteID,
		Estado:      entity.EventoProgramado,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, evento); err != nil {
		return nil, err
	}
	return toEventoResponse(evento), nil
}

// GetByID devuelve un evento del tenant o ErrNotFound.
func (uc *AgendaUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.EventoResponse, error) {
	evento, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, domain.ErrNotFound
	}
	return toEventoResponse(evento), nil
}

// List lista eventos del tenant.
func (uc *AgendaUseCase) List(ctx context.Context, tenantID string, limit, offset int) ([]*dto.EventoResponse, error) {
	list, err := uc.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EventoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEventoResponse(e))
	}
	return out, nil
}

// Proximos eventos programados de los próximos dias días.
func (uc *AgendaUseCase) Proximos(ctx context.Context, tenantID string, dias, limit int) (*dto.ProximosEventosResponse, error) {
	if dias <= 0 {
		dias = 30
	}
	if limit <= 0 {
		limit = 10
	}
	desde := time.Now()
	hasta := desde.AddDate(0, 0, dias)
	list, err := uc.repo.ListProximos(ctx, tenantID, desde, hasta, limit)
	if err != nil {
		return nil, err
	}
	out := dto.ProximosEventosResponse{Eventos: make([]dto.EventoResponse, 0, len(list))}
	for _, e := range list {
		out.Eventos = append(out.Eventos, *toEventoResponse(e))
	}
	return &out, nil
}

// Update PATCH parcial de un evento.
func (uc *AgendaUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateEventoRequest) (*dto.EventoResponse, error) {
	evento, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, domain.ErrNotFound
	}
	if in.Titulo != nil {
		evento.Titulo = *in.Titulo
	}
	if in.Descripcion != nil {
		evento.Descripcion = *in.Descripcion
	}
	if in.Lugar != nil {
		evento.Lugar = *in.Lugar
	}
	if in.Inicio != nil {
		evento.Inicio = *in.Inicio
	}
	if in.Fin != nil {
		evento.Fin = *in.Fin
	}
	if evento.Fin.Before(evento.Inicio) {
		return nil, domain.ErrInvalidInput
	}
	if in.Estado != nil {
		switch *in.Estado {
		case entity.EventoProgramado, entity.EventoRealizado, entity.EventoCancelado:
			evento.Estado = *in.Estado
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	evento.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, evento); err != nil {
		return nil, err
	}
	return toEventoResponse(evento), nil
}

// Delete elimina un evento del tenant.
func (uc *AgendaUseCase) Delete(ctx context.Context, tenantID, id string) error {
	evento, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if evento == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, tenantID, id)
}

func toEventoResponse(e *entity.Evento) *dto.EventoResponse {
	return &dto.EventoResponse{
		ID:          e.ID,
		Titulo:      e.Titulo,
		Descripcion: e.Descripcion,
		Lugar:       e.Lugar,
		Inicio:      e.Inicio,
		Fin:         e.Fin,
		ClienteID:   e.ClienteID,
		Estado:      e.Estado,
		CreatedAt:   e.CreatedAt,
	}
}
