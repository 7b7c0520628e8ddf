// Package migrate aplica el registro de evolución del esquema: migraciones
// declarativas ordenadas por (módulo, ordinal) con dependencias entre módulos.
// Toda operación genera SQL idempotente, así reaplicar el registro completo
// sobre un esquema ya migrado no cambia nada.
package migrate

import (
	"fmt"
	"strings"
)

// Políticas de borrado para claves foráneas.
const (
	OnDeleteCascade = "CASCADE"
	OnDeleteProtect = "PROTECT"
	OnDeleteSetNull = "SET_NULL"
)

// Ref describe el destino de una clave foránea.
type Ref struct {
	Table    string
	Column   string // por defecto "id"
	OnDelete string // OnDeleteCascade, OnDeleteProtect, OnDeleteSetNull
}

func (r Ref) refColumn() string {
	if r.Column == "" {
		return "id"
	}
	return r.Column
}

func (r Ref) onDeleteSQL() string {
	switch r.OnDelete {
	case OnDeleteCascade:
		return "ON DELETE CASCADE"
	case OnDeleteSetNull:
		return "ON DELETE SET NULL"
	default:
		// PROTECT es el comportamiento RESTRICT de PostgreSQL.
		return "ON DELETE RESTRICT"
	}
}

// Field describe una columna declarada en CreateModel o AddField.
type Field struct {
	Name    string
	Type    string
	NotNull bool
	Default string
	Ref     *Ref
}

func (f Field) columnSQL() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(" ")
	b.WriteString(f.Type)
	if f.NotNull {
		b.WriteString(" NOT NULL")
	}
	if f.Default != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(f.Default)
	}
	if f.Ref != nil {
		fmt.Fprintf(&b, " REFERENCES %s(%s) %s", f.Ref.Table, f.Ref.refColumn(), f.Ref.onDeleteSQL())
	}
	return b.String()
}

// Operation es una operación declarativa del registro. Statements devuelve el
// SQL idempotente que la materializa.
type Operation interface {
	Statements() []string
}

// CreateModel crea una tabla con su clave primaria.
type CreateModel struct {
	Table      string
	PrimaryKey []string // por defecto ["id"]
	Fields     []Field
}

// Statements genera CREATE TABLE IF NOT EXISTS.
func (op CreateModel) Statements() []string {
	cols := make([]string, 0, len(op.Fields)+1)
	for _, f := range op.Fields {
		cols = append(cols, "\t"+f.columnSQL())
	}
	pk := op.PrimaryKey
	if len(pk) == 0 {
		pk = []string{"id"}
	}
	cols = append(cols, "\tPRIMARY KEY ("+strings.Join(pk, ", ")+")")
	return []string{fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);", op.Table, strings.Join(cols, ",\n"))}
}

// AddField agrega una columna a una tabla existente.
type AddField struct {
	Table string
	Field Field
}

// Statements genera ALTER TABLE ADD COLUMN IF NOT EXISTS.
func (op AddField) Statements() []string {
	return []string{fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s;", op.Table, op.Field.columnSQL())}
}

// RenameField renombra una columna preservando sus datos. Reaplicar sobre un
// esquema ya renombrado no hace nada: el guard del catálogo exige que exista
// la columna vieja y no exista la nueva.
type RenameField struct {
	Table string
	Old   string
	New   string
}

// Statements genera el DO block guardado por information_schema.
func (op RenameField) Statements() []string {
	return []string{fmt.Sprintf(`DO $$
BEGIN
	IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = '%[1]s' AND column_name = '%[2]s')
	   AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = '%[1]s' AND column_name = '%[3]s') THEN
		ALTER TABLE %[1]s RENAME COLUMN %[2]s TO %[3]s;
	END IF;
END $$;`, op.Table, op.Old, op.New)}
}

// AlterField cambia el destino referencial, la política de borrado y la
// nulabilidad de una columna. La constraint se nombra de forma estable
// (fk_<tabla>_<columna>) para poder reemplazarla de forma idempotente.
type AlterField struct {
	Table    string
	Column   string
	Ref      *Ref // nil deja la columna sin clave foránea
	Nullable bool
}

// Statements genera el reemplazo guardado de la constraint y el cambio de
// nulabilidad. Se eliminan todas las claves foráneas previas de la columna,
// tengan el nombre que tengan: tras un rename la columna arrastra la
// constraint con su nombre original.
func (op AlterField) Statements() []string {
	constraint := fmt.Sprintf("fk_%s_%s", op.Table, op.Column)
	stmts := []string{fmt.Sprintf(`DO $$
DECLARE c text;
BEGIN
	FOR c IN
		SELECT con.conname FROM pg_constraint con
		JOIN pg_class t ON t.oid = con.conrelid
		JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(con.conkey)
		WHERE t.relname = '%[1]s' AND con.contype = 'f' AND a.attname = '%[2]s'
	LOOP
		EXECUTE format('ALTER TABLE %%I DROP CONSTRAINT %%I', '%[1]s', c);
	END LOOP;
END $$;`, op.Table, op.Column)}
	if op.Ref != nil {
		stmts = append(stmts, fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s) %s;",
			op.Table, constraint, op.Column, op.Ref.Table, op.Ref.refColumn(), op.Ref.onDeleteSQL()))
	}
	if op.Nullable {
		stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP NOT NULL;", op.Table, op.Column))
	} else {
		stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET NOT NULL;", op.Table, op.Column))
	}
	return stmts
}

// CreateIndex crea un índice, único si se pide.
type CreateIndex struct {
	Table   string
	Name    string
	Columns []string
	Unique  bool
}

// Statements genera CREATE [UNIQUE] INDEX IF NOT EXISTS.
func (op CreateIndex) Statements() []string {
	unique := ""
	if op.Unique {
		unique = "UNIQUE "
	}
	return []string{fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s ON %s (%s);",
		unique, op.Name, op.Table, strings.Join(op.Columns, ", "))}
}

// RawSQL ejecuta SQL arbitrario. El autor es responsable de su idempotencia.
type RawSQL struct {
	SQL string
}

// Statements devuelve el SQL tal cual.
func (op RawSQL) Statements() []string { return []string{op.SQL} }

// Migration es una entrada del registro: todas las operaciones de un módulo
// en un ordinal, con sus dependencias sobre otras entradas.
type Migration struct {
	Module    string
	Ordinal   int
	DependsOn []string // IDs "modulo.NNNN"
	Ops       []Operation
}

// ID identifica la migración en el registro y en schema_migrations.
func (m Migration) ID() string {
	return fmt.Sprintf("%s.%04d", m.Module, m.Ordinal)
}

// Statements concatena el SQL de todas las operaciones en orden.
func (m Migration) Statements() []string {
	var out []string
	for _, op := range m.Ops {
		out = append(out, op.Statements()...)
	}
	return out
}
