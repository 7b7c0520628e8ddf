package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

// EventoRepo implementación del puerto EventoRepository sobre PostgreSQL.
type EventoRepo struct {
	pool *pgxpool.Pool
}

// NewEventoRepository construye el adaptador de persistencia para la agenda.
func NewEventoRepository(pool *pgxpool.Pool) *EventoRepo {
	return &EventoRepo{pool: pool}
}

const eventoColumns = `id, tenant_id, titulo, descripcion, lugar, inicio, fin, cliente_id, estado, created_at, updated_at`

// Create persiste un nuevo evento.
func (r *EventoRepo) Create(ctx context.Context, e *entity.Evento) error {
	query := `
		INSERT INTO eventos (` + eventoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.TenantID, e.Titulo, e.Descripcion, e.Lugar, e.Inicio, e.Fin,
		nullIfEmpty(e.ClienteID), e.Estado, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert evento: %w", err)
	}
	return nil
}

// GetByID obtiene un evento del tenant, (nil, nil) si no existe.
func (r *EventoRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Evento, error) {
	var e entity.Evento
	var clienteID *string
	err := r.pool.QueryRow(ctx,
		`SELECT `+eventoColumns+` FROM eventos WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(&e.ID, &e.TenantID, &e.Titulo, &e.Descripcion, &e.Lugar, &e.Inicio, &e.Fin,
		&clienteID, &e.Estado, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento: %w", err)
	}
	if clienteID != nil {
		e.ClienteID = *clienteID
	}
	return &e, nil
}

// List lista eventos del tenant con paginación.
func (r *EventoRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Evento, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventoColumns+` FROM eventos WHERE tenant_id = $1 ORDER BY inicio DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	return r.collect(rows)
}

// ListProximos devuelve eventos programados entre desde y hasta, ordenados por inicio.
func (r *EventoRepo) ListProximos(ctx context.Context, tenantID string, desde, hasta time.Time, limit int) ([]*entity.Evento, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventoColumns+` FROM eventos
		 WHERE tenant_id = $1 AND estado = $2 AND inicio >= $3 AND inicio < $4
		 ORDER BY inicio LIMIT $5`,
		tenantID, entity.EventoProgramado, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("list eventos proximos: %w", err)
	}
	return r.collect(rows)
}

func (r *EventoRepo) collect(rows pgx.Rows) ([]*entity.Evento, error) {
	defer rows.Close()
	var list []*entity.Evento
	for rows.Next() {
		var e entity.Evento
		var clienteID *string
		if err := rows.Scan(&e.ID, &e.TenantID, &e.Titulo, &e.Descripcion, &e.Lugar, &e.Inicio, &e.Fin,
			&clienteID, &e.Estado, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		if clienteID != nil {
			e.ClienteID = *clienteID
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un evento del tenant.
func (r *EventoRepo) Update(ctx context.Context, e *entity.Evento) error {
	query := `
		UPDATE eventos SET titulo = $3, descripcion = $4, lugar = $5, inicio = $6, fin = $7, cliente_id = $8, estado = $9, updated_at = $10
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.pool.Exec(ctx, query,
		e.TenantID, e.ID, e.Titulo, e.Descripcion, e.Lugar, e.Inicio, e.Fin,
		nullIfEmpty(e.ClienteID), e.Estado, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update evento: %w", err)
	}
	return nil
}

// Delete elimina un evento del tenant.
func (r *EventoRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM eventos WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete evento: %w", err)
	}
	return nil
}
