package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardCounts contadores por módulo para el tablero del tenant.
type DashboardCounts struct {
	Clientes           int
	ContratosActivos   int
	PedidosPendientes  int
	EventosProximos    int
	ProductosBajoStock int
	OrdenesEnProceso   int
}

// MonthAmount total mensual para series de ingresos/egresos.
type MonthAmount struct {
	Periodo string // YYYY-MM
	Total   decimal.Decimal
}

// UserStats actividad acumulada de un usuario dentro del tenant.
type UserStats struct {
	PedidosCreados        int
	EventosCreados        int
	SesionesUltimos30Dias int
}

// AnalyticsRepository consultas de solo lectura para el tablero.
type AnalyticsRepository interface {
	GetDashboardCounts(ctx context.Context, tenantID string) (*DashboardCounts, error)
	GetIngresosPorMes(ctx context.Context, tenantID string, meses int) ([]MonthAmount, error)
	GetEgresosPorMes(ctx context.Context, tenantID string, meses int) ([]MonthAmount, error)
	GetUserStats(ctx context.Context, tenantID, userID string) (*UserStats, error)
}
