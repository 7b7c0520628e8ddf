package repository

import (
	"context"
	"time"

	"github.com/arteideas/backend/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para clientes CRM.
// Search es insensible a tildes: "perez" encuentra "Pérez".
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Cliente, error)
	GetByDocumento(ctx context.Context, tenantID, documento string) (*entity.Cliente, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Cliente, error)
	Search(ctx context.Context, tenantID, term string, limit int) ([]*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, tenantID, id string) error
}

// ContratoRepository puerto de persistencia para contratos.
type ContratoRepository interface {
	Create(ctx context.Context, c *entity.Contrato) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Contrato, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Contrato, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]*entity.Contrato, error)
	Update(ctx context.Context, c *entity.Contrato) error
	Delete(ctx context.Context, tenantID, id string) error
}

// EventoRepository puerto de persistencia para la agenda.
type EventoRepository interface {
	Create(ctx context.Context, e *entity.Evento) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Evento, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Evento, error)
	// ListProximos devuelve eventos programados entre desde y hasta, ordenados por inicio.
	ListProximos(ctx context.Context, tenantID string, desde, hasta time.Time, limit int) ([]*entity.Evento, error)
	Update(ctx context.Context, e *entity.Evento) error
	Delete(ctx context.Context, tenantID, id string) error
}

// ActivoDigitalRepository puerto de persistencia para entregables CRM.
type ActivoDigitalRepository interface {
	Create(ctx context.Context, a *entity.ActivoDigital) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.ActivoDigital, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.ActivoDigital, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]*entity.ActivoDigital, error)
	Delete(ctx context.Context, tenantID, id string) error
}
