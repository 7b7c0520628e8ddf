package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"
)

const migrationsTable = "schema_migrations"

// Manager aplica el registro de migraciones sobre una conexión database/sql.
type Manager struct {
	db         *sql.DB
	migrations []Migration
}

// NewManager construye el manager con un registro.
func NewManager(db *sql.DB, migrations []Migration) *Manager {
	return &Manager{db: db, migrations: migrations}
}

// Plan devuelve las migraciones en orden de aplicación: orden topológico de
// las dependencias, con empates resueltos por ID para que el plan sea
// determinista. Un ciclo en las dependencias es un error de configuración.
func Plan(migrations []Migration) ([]Migration, error) {
	byID := make(map[string]Migration, len(migrations))
	for _, m := range migrations {
		if _, ok := byID[m.ID()]; ok {
			return nil, fmt.Errorf("migracion duplicada: %s", m.ID())
		}
		byID[m.ID()] = m
	}

	// Cada migración depende implícitamente de la anterior de su módulo.
	indegree := make(map[string]int, len(migrations))
	dependents := make(map[string][]string)
	deps := func(m Migration) []string {
		out := append([]string(nil), m.DependsOn...)
		if m.Ordinal > 1 {
			out = append(out, fmt.Sprintf("%s.%04d", m.Module, m.Ordinal-1))
		}
		return out
	}
	for _, m := range migrations {
		id := m.ID()
		if _, ok := indegree[id]; !ok {
			indegree[id] = 0
		}
		for _, dep := range deps(m) {
			if _, ok := byID[dep]; !ok {
				return nil, fmt.Errorf("migracion %s depende de %s, que no existe", id, dep)
			}
			indegree[id]++
			dependents[dep] = append(dependents[dep], id)
		}
	}

	var ready []string
	for id, n := range indegree {
		if n == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	plan := make([]Migration, 0, len(migrations))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		plan = append(plan, byID[id])
		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
		sort.Strings(ready)
	}
	if len(plan) != len(migrations) {
		var stuck []string
		for id, n := range indegree {
			if n > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("ciclo en dependencias de migraciones: %v", stuck)
	}
	return plan, nil
}

// Up aplica todas las migraciones pendientes, cada una en su transacción.
func (m *Manager) Up(ctx context.Context) error {
	if err := m.ensureTable(ctx); err != nil {
		return err
	}
	plan, err := Plan(m.migrations)
	if err != nil {
		return err
	}
	applied, err := m.listApplied(ctx)
	if err != nil {
		return err
	}
	for _, mig := range plan {
		if applied[mig.ID()] {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return fmt.Errorf("aplicar migracion %s: %w", mig.ID(), err)
		}
	}
	return nil
}

// Status devuelve cada migración del plan con su estado de aplicación.
func (m *Manager) Status(ctx context.Context) ([]MigrationStatus, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}
	plan, err := Plan(m.migrations)
	if err != nil {
		return nil, err
	}
	applied, err := m.listApplied(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MigrationStatus, 0, len(plan))
	for _, mig := range plan {
		out = append(out, MigrationStatus{ID: mig.ID(), Applied: applied[mig.ID()]})
	}
	return out, nil
}

// MigrationStatus estado de una entrada del registro.
type MigrationStatus struct {
	ID      string
	Applied bool
}

func (m *Manager) apply(ctx context.Context, mig Migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	for _, stmt := range mig.Statements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO `+migrationsTable+` (id, applied_at) VALUES ($1, $2)`,
		mig.ID(), time.Now().UTC()); err != nil {
		return err
	}
	return tx.Commit()
}

func (m *Manager) ensureTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+migrationsTable+` (
			id text PRIMARY KEY,
			applied_at timestamptz NOT NULL DEFAULT now()
		)`)
	return err
}

func (m *Manager) listApplied(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT id FROM `+migrationsTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}
