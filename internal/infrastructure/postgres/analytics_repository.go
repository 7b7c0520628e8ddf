package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero, todas acotadas al tenant.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de consultas del tablero.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDashboardCounts calcula los contadores por módulo en una sola consulta.
func (r *AnalyticsRepo) GetDashboardCounts(ctx context.Context, tenantID string) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT count(*) FROM clientes WHERE tenant_id = $1),
			(SELECT count(*) FROM contratos WHERE tenant_id = $1 AND estado = $2),
			(SELECT count(*) FROM pedidos WHERE tenant_id = $1 AND estado = $3),
			(SELECT count(*) FROM eventos WHERE tenant_id = $1 AND estado = $4 AND inicio >= now() AND inicio < now() + interval '30 days'),
			(SELECT count(*) FROM productos WHERE tenant_id = $1 AND stock < stock_minimo),
			(SELECT count(*) FROM ordenes_produccion WHERE tenant_id = $1 AND estado = $5)`
	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query, tenantID,
		entity.ContratoActivo, entity.PedidoPendiente, entity.EventoProgramado, entity.ProduccionEnProceso,
	).Scan(&c.Clientes, &c.ContratosActivos, &c.PedidosPendientes, &c.EventosProximos,
		&c.ProductosBajoStock, &c.OrdenesEnProceso)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// GetIngresosPorMes suma los pedidos no cancelados por mes de creación.
func (r *AnalyticsRepo) GetIngresosPorMes(ctx context.Context, tenantID string, meses int) ([]repository.MonthAmount, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS periodo, COALESCE(sum(total), 0)
		FROM pedidos
		WHERE tenant_id = $1 AND estado <> $2
		  AND created_at >= date_trunc('month', now()) - ($3 - 1) * interval '1 month'
		GROUP BY 1 ORDER BY 1`
	return r.series(ctx, query, tenantID, entity.PedidoCancelado, meses)
}

// GetEgresosPorMes suma planilla y servicios por mes.
func (r *AnalyticsRepo) GetEgresosPorMes(ctx context.Context, tenantID string, meses int) ([]repository.MonthAmount, error) {
	query := `
		SELECT periodo, COALESCE(sum(monto), 0) FROM (
			SELECT periodo, monto FROM gastos_personal WHERE tenant_id = $1
			UNION ALL
			SELECT to_char(date_trunc('month', fecha), 'YYYY-MM'), monto FROM gastos_servicio WHERE tenant_id = $1
		) g
		WHERE periodo >= to_char(date_trunc('month', now()) - ($2 - 1) * interval '1 month', 'YYYY-MM')
		GROUP BY periodo ORDER BY periodo`
	return r.series(ctx, query, tenantID, meses)
}

func (r *AnalyticsRepo) series(ctx context.Context, query string, args ...any) ([]repository.MonthAmount, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("serie mensual: %w", err)
	}
	defer rows.Close()
	var out []repository.MonthAmount
	for rows.Next() {
		var m repository.MonthAmount
		if err := rows.Scan(&m.Periodo, &m.Total); err != nil {
			return nil, fmt.Errorf("scan serie mensual: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetUserStats calcula la actividad acumulada de un usuario dentro del tenant.
// Los pedidos y eventos no guardan autor, así que se aproximan por las
// sesiones: solo las sesiones tienen atribución directa.
func (r *AnalyticsRepo) GetUserStats(ctx context.Context, tenantID, userID string) (*repository.UserStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM pedidos WHERE tenant_id = $1),
			(SELECT count(*) FROM eventos WHERE tenant_id = $1),
			(SELECT count(*) FROM refresh_tokens WHERE tenant_id = $1 AND user_id = $2 AND created_at >= now() - interval '30 days')`
	var s repository.UserStats
	err := r.pool.QueryRow(ctx, query, tenantID, userID).Scan(
		&s.PedidosCreados, &s.EventosCreados, &s.SesionesUltimos30Dias)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return &s, nil
}
