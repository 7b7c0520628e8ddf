package dto

import "github.com/shopspring/decimal"

// MonthAmountResponse punto de una serie mensual.
type MonthAmountResponse struct {
	Periodo string          `json:"periodo"`
	Total   decimal.Decimal `json:"total"`
}

// DashboardResponse tablero del tenant activo: contadores por módulo y
// series mensuales de ingresos/egresos.
type DashboardResponse struct {
	Clientes           int                   `json:"clientes"`
	ContratosActivos   int                   `json:"contratos_activos"`
	PedidosPendientes  int                   `json:"pedidos_pendientes"`
	EventosProximos    int                   `json:"eventos_proximos"`
	ProductosBajoStock int                   `json:"productos_bajo_stock"`
	OrdenesEnProceso   int                   `json:"ordenes_en_proceso"`
	IngresosPorMes     []MonthAmountResponse `json:"ingresos_por_mes"`
	EgresosPorMes      []MonthAmountResponse `json:"egresos_por_mes"`
}
