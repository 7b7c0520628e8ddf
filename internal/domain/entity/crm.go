package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente es un cliente del negocio (CRM), siempre dentro de un tenant.
// Documento es único por tenant.
type Cliente struct {
	ID        string
	TenantID  string
	Nombre    string
	Documento string // DNI / RUC
	Email     string
	Telefono  string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Estados de contrato.
const (
	ContratoActivo     = "activo"
	ContratoFinalizado = "finalizado"
	ContratoAnulado    = "anulado"
)

// Contrato es un acuerdo de servicio con un cliente.
type Contrato struct {
	ID          string
	TenantID    string
	ClienteID   string
	Titulo      string
	Descripcion string
	Monto       decimal.Decimal
	FechaInicio time.Time
	FechaFin    *time.Time
	Estado      string // activo, finalizado, anulado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Estados de evento de agenda.
const (
	EventoProgramado = "programado"
	EventoRealizado  = "realizado"
	EventoCancelado  = "cancelado"
)

// Evento es una cita de la agenda (sesión fotográfica, entrega, reunión).
type Evento struct {
	ID          string
	TenantID    string
	Titulo      string
	Descripcion string
	Lugar       string
	Inicio      time.Time
	Fin         time.Time
	ClienteID   string // opcional: evento interno si está vacío
	Estado      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivoDigital es un entregable de CRM (fotografías, diseños, marcos
// digitalizados) asociado a un cliente.
type ActivoDigital struct {
	ID         string
	TenantID   string
	ClienteID  string
	Nombre     string
	Tipo       string // foto, diseño, video
	Referencia string // ubicación externa del recurso
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
