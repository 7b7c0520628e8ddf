package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido.
const (
	PedidoPendiente = "pendiente"
	PedidoEnProceso = "en_proceso"
	PedidoEntregado = "entregado"
	PedidoCancelado = "cancelado"
)

// Pedido es una orden de venta. ClienteID es obligatorio y se elimina en
// cascada con el cliente; ContratoID es opcional y se pone a NULL si el
// contrato desaparece.
type Pedido struct {
	ID           string
	TenantID     string
	Numero       string // correlativo visible por tenant
	ClienteID    string
	ContratoID   *string
	Descripcion  string
	Estado       string
	Total        decimal.Decimal
	FechaEntrega *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Producto es un artículo de inventario con precios decimales.
// SKU es único por tenant.
type Producto struct {
	ID          string
	TenantID    string
	SKU         string
	Nombre      string
	Categoria   string
	Precio      decimal.Decimal
	Costo       decimal.Decimal
	Stock       int
	StockMinimo int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BajoStock informa si el producto está por debajo de su mínimo.
func (p *Producto) BajoStock() bool { return p.Stock < p.StockMinimo }
