package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClienteRequest entrada para crear un cliente CRM.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// UpdateClienteRequest entrada PATCH de un cliente.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Documento string    `json:"documento"`
	Email     string    `json:"email,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateContratoRequest entrada para crear un contrato.
type CreateContratoRequest struct {
	ClienteID   string          `json:"cliente_id"`
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion,omitempty"`
	Monto       decimal.Decimal `json:"monto"`
	FechaInicio time.Time       `json:"fecha_inicio"`
	FechaFin    *time.Time      `json:"fecha_fin,omitempty"`
}

// UpdateContratoRequest entrada PATCH de un contrato.
type UpdateContratoRequest struct {
	Titulo      *string          `json:"titulo"`
	Descripcion *string          `json:"descripcion"`
	Monto       *decimal.Decimal `json:"monto"`
	FechaFin    *time.Time       `json:"fecha_fin"`
	Estado      *string          `json:"estado"`
}

// ContratoResponse salida de un contrato.
type ContratoResponse struct {
	ID          string          `json:"id"`
	ClienteID   string          `json:"cliente_id"`
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion,omitempty"`
	Monto       decimal.Decimal `json:"monto"`
	FechaInicio time.Time       `json:"fecha_inicio"`
	FechaFin    *time.Time      `json:"fecha_fin,omitempty"`
	Estado      string          `json:"estado"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateEventoRequest entrada para crear un evento de agenda.
type CreateEventoRequest struct {
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion,omitempty"`
	Lugar       string    `json:"lugar,omitempty"`
	Inicio      time.Time `json:"inicio"`
	Fin         time.Time `json:"fin"`
	ClienteID   string    `json:"cliente_id,omitempty"`
}

// UpdateEventoRequest entrada PATCH de un evento.
type UpdateEventoRequest struct {
	Titulo      *string    `json:"titulo"`
	Descripcion *string    `json:"descripcion"`
	Lugar       *string    `json:"lugar"`
	Inicio      *time.Time `json:"inicio"`
	Fin         *time.Time `json:"fin"`
	Estado      *string    `json:"estado"`
}

// EventoResponse salida de un evento.
type EventoResponse struct {
	ID          string    `json:"id"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion,omitempty"`
	Lugar       string    `json:"lugar,omitempty"`
	Inicio      time.Time `json:"inicio"`
	Fin         time.Time `json:"fin"`
	ClienteID   string    `json:"cliente_id,omitempty"`
	Estado      string    `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProximosEventosResponse salida del demo público de agenda.
type ProximosEventosResponse struct {
	Eventos []EventoResponse `json:"eventos"`
}

// CreateActivoDigitalRequest entrada para registrar un entregable CRM.
type CreateActivoDigitalRequest struct {
	ClienteID  string `json:"cliente_id"`
	Nombre     string `json:"nombre"`
	Tipo       string `json:"tipo"`
	Referencia string `json:"referencia,omitempty"`
}

// ActivoDigitalResponse salida de un entregable CRM.
type ActivoDigitalResponse struct {
	ID         string    `json:"id"`
	ClienteID  string    `json:"cliente_id"`
	Nombre     string    `json:"nombre"`
	Tipo       string    `json:"tipo"`
	Referencia string    `json:"referencia,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
