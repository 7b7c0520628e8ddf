package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrdenProduccionRequest entrada para crear una orden de producción.
// Igual que en pedidos, se aceptan los alias legados en inglés.
type CreateOrdenProduccionRequest struct {
	PedidoID    *string `json:"pedido_id,omitempty"`
	ClienteID   string  `json:"cliente_id"`
	ContratoID  *string `json:"contrato_id,omitempty"`
	ClientID    string  `json:"client_id,omitempty"`
	ContractID  *string `json:"contract_id,omitempty"`
	Descripcion string  `json:"descripcion"`
}

// Normalize resuelve los alias legados hacia los campos canónicos.
func (r *CreateOrdenProduccionRequest) Normalize() {
	if r.ClienteID == "" && r.ClientID != "" {
		r.ClienteID = r.ClientID
	}
	if r.ContratoID == nil && r.ContractID != nil {
		r.ContratoID = r.ContractID
	}
}

// UpdateOrdenProduccionRequest entrada PATCH de una orden.
type UpdateOrdenProduccionRequest struct {
	Descripcion *string    `json:"descripcion"`
	Estado      *string    `json:"estado"`
	FechaFin    *time.Time `json:"fecha_fin"`
}

// OrdenProduccionResponse salida de una orden de producción, con claves
// legadas estables.
type OrdenProduccionResponse struct {
	ID          string     `json:"id"`
	PedidoID    *string    `json:"pedido_id,omitempty"`
	ClienteID   string     `json:"cliente_id"`
	ClientID    string     `json:"client_id"`
	ContratoID  *string    `json:"contrato_id,omitempty"`
	ContractID  *string    `json:"contract_id,omitempty"`
	Descripcion string     `json:"descripcion"`
	Estado      string     `json:"estado"`
	FechaInicio time.Time  `json:"fecha_inicio"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateActivoFisicoRequest entrada para registrar un activo físico.
type CreateActivoFisicoRequest struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria,omitempty"`
	FechaCompra time.Time       `json:"fecha_compra"`
	Valor       decimal.Decimal `json:"valor"`
}

// UpdateActivoFisicoRequest entrada PATCH de un activo físico.
type UpdateActivoFisicoRequest struct {
	Nombre    *string          `json:"nombre"`
	Categoria *string          `json:"categoria"`
	Estado    *string          `json:"estado"`
	Valor     *decimal.Decimal `json:"valor"`
}

// ActivoFisicoResponse salida de un activo físico.
type ActivoFisicoResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria,omitempty"`
	Estado      string          `json:"estado"`
	FechaCompra time.Time       `json:"fecha_compra"`
	Valor       decimal.Decimal `json:"valor"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateMantenimientoRequest entrada para registrar un mantenimiento.
type CreateMantenimientoRequest struct {
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion,omitempty"`
	Fecha       time.Time       `json:"fecha"`
	Costo       decimal.Decimal `json:"costo"`
}

// MantenimientoResponse salida de un mantenimiento.
type MantenimientoResponse struct {
	ID          string          `json:"id"`
	ActivoID    string          `json:"activo_id"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion,omitempty"`
	Fecha       time.Time       `json:"fecha"`
	Costo       decimal.Decimal `json:"costo"`
}

// CreateRepuestoRequest entrada para registrar un repuesto.
type CreateRepuestoRequest struct {
	ActivoID      string          `json:"activo_id,omitempty"`
	Nombre        string          `json:"nombre"`
	Cantidad      int             `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
}

// RepuestoResponse salida de un repuesto.
type RepuestoResponse struct {
	ID            string          `json:"id"`
	ActivoID      string          `json:"activo_id,omitempty"`
	Nombre        string          `json:"nombre"`
	Cantidad      int             `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
}

// CreateFinanciamientoRequest entrada para registrar un financiamiento.
type CreateFinanciamientoRequest struct {
	ActivoID    string          `json:"activo_id"`
	Entidad     string          `json:"entidad"`
	Monto       decimal.Decimal `json:"monto"`
	Cuotas      int             `json:"cuotas"`
	TasaInteres decimal.Decimal `json:"tasa_interes"`
	FechaInicio time.Time       `json:"fecha_inicio"`
}

// FinanciamientoResponse salida de un financiamiento.
type FinanciamientoResponse struct {
	ID          string          `json:"id"`
	ActivoID    string          `json:"activo_id"`
	Entidad     string          `json:"entidad"`
	Monto       decimal.Decimal `json:"monto"`
	Cuotas      int             `json:"cuotas"`
	TasaInteres decimal.Decimal `json:"tasa_interes"`
	FechaInicio time.Time       `json:"fecha_inicio"`
	Estado      string          `json:"estado"`
}
