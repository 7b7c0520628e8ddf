package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden de producción.
const (
	ProduccionPendiente = "pendiente"
	ProduccionEnProceso = "en_proceso"
	ProduccionTerminada = "terminada"
)

// OrdenProduccion es el trabajo de taller asociado a un pedido. Comparte la
// semántica de claves de Pedido: cliente en cascada, contrato a NULL.
type OrdenProduccion struct {
	ID          string
	TenantID    string
	PedidoID    *string
	ClienteID   string
	ContratoID  *string
	Descripcion string
	Estado      string
	FechaInicio time.Time
	FechaFin    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Estados de activo físico.
const (
	ActivoOperativo       = "operativo"
	ActivoEnMantenimiento = "en_mantenimiento"
	ActivoDeBaja          = "de_baja"
)

// ActivoFisico es un equipo del taller (cámaras, impresoras, plotters).
type ActivoFisico struct {
	ID          string
	TenantID    string
	Codigo      string
	Nombre      string
	Categoria   string
	Estado      string
	FechaCompra time.Time
	Valor       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tipos de mantenimiento.
const (
	MantenimientoPreventivo = "preventivo"
	MantenimientoCorrectivo = "correctivo"
)

// Mantenimiento es una intervención sobre un activo físico.
type Mantenimiento struct {
	ID          string
	TenantID    string
	ActivoID    string
	Tipo        string
	Descripcion string
	Fecha       time.Time
	Costo       decimal.Decimal
	CreatedAt   time.Time
}

// Repuesto es una pieza de recambio inventariada para los activos.
type Repuesto struct {
	ID            string
	TenantID      string
	ActivoID      string // opcional: repuesto genérico si está vacío
	Nombre        string
	Cantidad      int
	CostoUnitario decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Financiamiento registra un crédito asociado a la compra de un activo.
type Financiamiento struct {
	ID          string
	TenantID    string
	ActivoID    string
	Entidad     string
	Monto       decimal.Decimal
	Cuotas      int
	TasaInteres decimal.Decimal // porcentaje anual
	FechaInicio time.Time
	Estado      string // vigente, cancelado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
