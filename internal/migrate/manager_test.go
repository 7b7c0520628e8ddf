package migrate_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arteideas/backend/internal/migrate"
)

func mig(module string, ordinal int, deps ...string) migrate.Migration {
	return migrate.Migration{
		Module:    module,
		Ordinal:   ordinal,
		DependsOn: deps,
		Ops:       []migrate.Operation{migrate.RawSQL{SQL: "SELECT 1;"}},
	}
}

func planIDs(t *testing.T, migrations []migrate.Migration) []string {
	t.Helper()
	plan, err := migrate.Plan(migrations)
	require.NoError(t, err)
	ids := make([]string, len(plan))
	for i, m := range plan {
		ids[i] = m.ID()
	}
	return ids
}

func TestPlan_OrdenTopologico(t *testing.T) {
	// Entrada deliberadamente desordenada: el plan respeta dependencias y
	// resuelve empates por ID.
	migrations := []migrate.Migration{
		mig("finance", 1, "core.0001"),
		mig("commerce", 2, "crm.0001"),
		mig("crm", 1, "core.0001"),
		mig("commerce", 1, "crm.0001"),
		mig("core", 1),
	}

	assert.Equal(t,
		[]string{"core.0001", "crm.0001", "commerce.0001", "commerce.0002", "finance.0001"},
		planIDs(t, migrations))
}

func TestPlan_Determinista(t *testing.T) {
	a := []migrate.Migration{mig("core", 1), mig("crm", 1, "core.0001"), mig("commerce", 1, "crm.0001")}
	b := []migrate.Migration{mig("commerce", 1, "crm.0001"), mig("core", 1), mig("crm", 1, "core.0001")}

	assert.Equal(t, planIDs(t, a), planIDs(t, b))
}

func TestPlan_OrdinalImplicito(t *testing.T) {
	// Sin DependsOn explícito, core.0002 igualmente va después de core.0001.
	ids := planIDs(t, []migrate.Migration{mig("core", 2), mig("core", 1)})
	assert.Equal(t, []string{"core.0001", "core.0002"}, ids)
}

func TestPlan_DependenciaInexistente(t *testing.T) {
	_, err := migrate.Plan([]migrate.Migration{mig("crm", 1, "core.0001")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no existe")
}

func TestPlan_Duplicada(t *testing.T) {
	_, err := migrate.Plan([]migrate.Migration{mig("core", 1), mig("core", 1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicada")
}

func TestPlan_Ciclo(t *testing.T) {
	_, err := migrate.Plan([]migrate.Migration{
		mig("a", 1, "b.0001"),
		mig("b", 1, "a.0001"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ciclo")
}

func TestRegistry_PlanValido(t *testing.T) {
	registry := migrate.Registry()
	ids := planIDs(t, registry)

	require.Len(t, ids, len(registry))
	assert.Equal(t, "core.0001", ids[0], "el esquema core va primero")

	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	assert.Less(t, pos["crm.0001"], pos["commerce.0001"])
	assert.Less(t, pos["commerce.0001"], pos["commerce.0002"])
	assert.Less(t, pos["commerce.0001"], pos["operations.0001"])
}

func TestUp_AplicaSoloPendientes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrations := []migrate.Migration{mig("core", 1), mig("core", 2)}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("core.0001"))

	// Solo core.0002 está pendiente; se aplica en su propia transacción.
	mock.ExpectBegin()
	mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("core.0002", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mgr := migrate.NewManager(db, migrations)
	require.NoError(t, mgr.Up(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUp_EsquemaAlDia(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("core.0001"))

	mgr := migrate.NewManager(db, []migrate.Migration{mig("core", 1)})
	require.NoError(t, mgr.Up(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUp_FallaDeshaceLaTransaccion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mock.ExpectBegin()
	mock.ExpectExec("SELECT 1").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	mgr := migrate.NewManager(db, []migrate.Migration{mig("core", 1)})
	err = mgr.Up(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "core.0001")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatus_MezclaAplicadasYPendientes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("core.0001"))

	mgr := migrate.NewManager(db, []migrate.Migration{mig("core", 1), mig("core", 2)})
	status, err := mgr.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, status, 2)
	assert.Equal(t, migrate.MigrationStatus{ID: "core.0001", Applied: true}, status[0])
	assert.Equal(t, migrate.MigrationStatus{ID: "core.0002", Applied: false}, status[1])
}
