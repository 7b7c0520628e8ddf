package migrate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arteideas/backend/internal/migrate"
)

func TestCreateModel_SQL(t *testing.T) {
	op := migrate.CreateModel{
		Table: "contratos",
		Fields: []migrate.Field{
			{Name: "id", Type: "uuid", NotNull: true},
			{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &migrate.Ref{Table: "tenants", OnDelete: migrate.OnDeleteCascade}},
			{Name: "cliente_id", Type: "uuid", NotNull: true, Ref: &migrate.Ref{Table: "clientes", OnDelete: migrate.OnDeleteProtect}},
			{Name: "estado", Type: "text", NotNull: true, Default: "'activo'"},
		},
	}

	stmts := op.Statements()
	require.Len(t, stmts, 1)
	sql := stmts[0]

	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS contratos")
	assert.Contains(t, sql, "tenant_id uuid NOT NULL REFERENCES tenants(id) ON DELETE CASCADE")
	// PROTECT se materializa como RESTRICT en PostgreSQL.
	assert.Contains(t, sql, "cliente_id uuid NOT NULL REFERENCES clientes(id) ON DELETE RESTRICT")
	assert.Contains(t, sql, "estado text NOT NULL DEFAULT 'activo'")
	// Sin clave primaria declarada se asume id.
	assert.Contains(t, sql, "PRIMARY KEY (id)")
}

func TestCreateModel_ClavePrimariaCompuesta(t *testing.T) {
	op := migrate.CreateModel{
		Table:      "membresias",
		PrimaryKey: []string{"user_id", "tenant_id"},
		Fields: []migrate.Field{
			{Name: "user_id", Type: "uuid", NotNull: true},
			{Name: "tenant_id", Type: "uuid", NotNull: true},
		},
	}
	require.Len(t, op.Statements(), 1)
	assert.Contains(t, op.Statements()[0], "PRIMARY KEY (user_id, tenant_id)")
}

func TestAddField_SQL(t *testing.T) {
	op := migrate.AddField{
		Table: "productos",
		Field: migrate.Field{Name: "stock_minimo", Type: "integer", NotNull: true, Default: "0"},
	}
	stmts := op.Statements()
	require.Len(t, stmts, 1)
	assert.Equal(t,
		"ALTER TABLE productos ADD COLUMN IF NOT EXISTS stock_minimo integer NOT NULL DEFAULT 0;",
		stmts[0])
}

func TestRenameField_GuardadoPorCatalogo(t *testing.T) {
	op := migrate.RenameField{Table: "pedidos", Old: "client_id", New: "cliente_id"}

	stmts := op.Statements()
	require.Len(t, stmts, 1)
	sql := stmts[0]

	assert.Contains(t, sql, "ALTER TABLE pedidos RENAME COLUMN client_id TO cliente_id;")
	// El guard exige columna vieja presente y nueva ausente para que
	// reaplicar el registro completo sea inocuo.
	assert.Contains(t, sql, "information_schema.columns")
	assert.Contains(t, sql, "column_name = 'client_id'")
	assert.Contains(t, sql, "NOT EXISTS")
	assert.Contains(t, sql, "column_name = 'cliente_id'")
}

func TestAlterField_ReemplazaConstraint(t *testing.T) {
	op := migrate.AlterField{
		Table:  "pedidos",
		Column: "cliente_id",
		Ref:    &migrate.Ref{Table: "clientes", OnDelete: migrate.OnDeleteCascade},
	}

	stmts := op.Statements()
	require.Len(t, stmts, 3)

	// Primero caen todas las FK previas de la columna, con el nombre que
	// tengan: tras un rename la columna arrastra la constraint original.
	assert.Contains(t, stmts[0], "pg_constraint")
	assert.Contains(t, stmts[0], "con.contype = 'f'")
	assert.Contains(t, stmts[0], "a.attname = 'cliente_id'")
	assert.Contains(t, stmts[0], "DROP CONSTRAINT")

	assert.Equal(t,
		"ALTER TABLE pedidos ADD CONSTRAINT fk_pedidos_cliente_id FOREIGN KEY (cliente_id) REFERENCES clientes(id) ON DELETE CASCADE;",
		stmts[1])
	assert.Equal(t, "ALTER TABLE pedidos ALTER COLUMN cliente_id SET NOT NULL;", stmts[2])
}

func TestAlterField_NullableSinRef(t *testing.T) {
	op := migrate.AlterField{Table: "eventos", Column: "cliente_id", Nullable: true}

	stmts := op.Statements()
	require.Len(t, stmts, 2)
	assert.NotContains(t, strings.Join(stmts, "\n"), "ADD CONSTRAINT")
	assert.Equal(t, "ALTER TABLE eventos ALTER COLUMN cliente_id DROP NOT NULL;", stmts[1])
}

func TestCreateIndex_SQL(t *testing.T) {
	unico := migrate.CreateIndex{
		Table: "pedidos", Name: "ux_pedidos_tenant_numero",
		Columns: []string{"tenant_id", "numero"}, Unique: true,
	}
	require.Equal(t,
		[]string{"CREATE UNIQUE INDEX IF NOT EXISTS ux_pedidos_tenant_numero ON pedidos (tenant_id, numero);"},
		unico.Statements())

	simple := migrate.CreateIndex{Table: "gastos_personal", Name: "ix_gastos_personal_periodo", Columns: []string{"tenant_id", "periodo"}}
	require.Equal(t,
		[]string{"CREATE INDEX IF NOT EXISTS ix_gastos_personal_periodo ON gastos_personal (tenant_id, periodo);"},
		simple.Statements())
}

func TestMigration_IDyStatements(t *testing.T) {
	m := migrate.Migration{
		Module:  "commerce",
		Ordinal: 2,
		Ops: []migrate.Operation{
			migrate.RawSQL{SQL: "SELECT 1;"},
			migrate.RawSQL{SQL: "SELECT 2;"},
		},
	}
	assert.Equal(t, "commerce.0002", m.ID())
	assert.Equal(t, []string{"SELECT 1;", "SELECT 2;"}, m.Statements())
}
