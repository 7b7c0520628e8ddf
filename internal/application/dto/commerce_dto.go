package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePedidoRequest entrada para crear un pedido. Acepta los nombres en
// español y los legados en inglés; si llegan ambos gana el español.
type CreatePedidoRequest struct {
	ClienteID    string          `json:"cliente_id"`
	ContratoID   *string         `json:"contrato_id,omitempty"`
	ClientID     string          `json:"client_id,omitempty"`   // alias legado
	ContractID   *string         `json:"contract_id,omitempty"` // alias legado
	Descripcion  string          `json:"descripcion"`
	Total        decimal.Decimal `json:"total"`
	FechaEntrega *time.Time      `json:"fecha_entrega,omitempty"`
}

// Normalize resuelve los alias legados hacia los campos canónicos.
func (r *CreatePedidoRequest) Normalize() {
	if r.ClienteID == "" && r.ClientID != "" {
		r.ClienteID = r.ClientID
	}
	if r.ContratoID == nil && r.ContractID != nil {
		r.ContratoID = r.ContractID
	}
}

// UpdatePedidoRequest entrada PATCH de un pedido.
type UpdatePedidoRequest struct {
	Descripcion  *string          `json:"descripcion"`
	Estado       *string          `json:"estado"`
	Total        *decimal.Decimal `json:"total"`
	FechaEntrega *time.Time       `json:"fecha_entrega"`
	ContratoID   *string          `json:"contrato_id"`
}

// PedidoResponse salida de un pedido. Los alias legados client_id/contract_id
// se emiten junto con los canónicos: las claves de respuesta son estables
// aunque el esquema haya renombrado las columnas.
type PedidoResponse struct {
	ID           string          `json:"id"`
	Numero       string          `json:"numero"`
	ClienteID    string          `json:"cliente_id"`
	ClientID     string          `json:"client_id"`
	ContratoID   *string         `json:"contrato_id,omitempty"`
	ContractID   *string         `json:"contract_id,omitempty"`
	Descripcion  string          `json:"descripcion"`
	Estado       string          `json:"estado"`
	Total        decimal.Decimal `json:"total"`
	FechaEntrega *time.Time      `json:"fecha_entrega,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateProductoRequest entrada para crear un producto de inventario.
type CreateProductoRequest struct {
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stock_minimo"`
}

// UpdateProductoRequest entrada PATCH de un producto.
type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre"`
	Categoria   *string          `json:"categoria"`
	Precio      *decimal.Decimal `json:"precio"`
	Costo       *decimal.Decimal `json:"costo"`
	StockMinimo *int             `json:"stock_minimo"`
}

// AdjustStockRequest entrada POST de ajuste de stock (delta con signo).
type AdjustStockRequest struct {
	Delta  int    `json:"delta"`
	Motivo string `json:"motivo,omitempty"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stock_minimo"`
	BajoStock   bool            `json:"bajo_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
