package analytics

import (
	"context"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain/repository"
)

// DashboardUseCase arma el tablero del tenant activo.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Get devuelve los contadores por módulo y las series mensuales de los
// últimos meses (por defecto 6, tope 24).
func (uc *DashboardUseCase) Get(ctx context.Context, tenantID string, meses int) (*dto.DashboardResponse, error) {
	if meses <= 0 {
		meses = 6
	}
	if meses > 24 {
		meses = 24
	}
	counts, err := uc.repo.GetDashboardCounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	ingresos, err := uc.repo.GetIngresosPorMes(ctx, tenantID, meses)
	if err != nil {
		return nil, err
	}
	egresos, err := uc.repo.GetEgresosPorMes(ctx, tenantID, meses)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Clientes:           counts.Clientes,
		ContratosActivos:   counts.ContratosActivos,
		PedidosPendientes:  counts.PedidosPendientes,
		EventosProximos:    counts.EventosProximos,
		ProductosBajoStock: counts.ProductosBajoStock,
		OrdenesEnProceso:   counts.OrdenesEnProceso,
		IngresosPorMes:     toSeries(ingresos),
		EgresosPorMes:      toSeries(egresos),
	}, nil
}

func toSeries(in []repository.MonthAmount) []dto.MonthAmountResponse {
	out := make([]dto.MonthAmountResponse, 0, len(in))
	for _, m := range in {
		out = append(out, dto.MonthAmountResponse{Periodo: m.Periodo, Total: m.Total})
	}
	return out
}
