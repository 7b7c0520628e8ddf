package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoriaGasto clasifica los gastos del tenant. Nombre único por tenant.
type CategoriaGasto struct {
	ID          string
	TenantID    string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GastoPersonal es un egreso de planilla (sueldo, bonificación).
// Periodo en formato YYYY-MM.
type GastoPersonal struct {
	ID          string
	TenantID    string
	CategoriaID string
	Empleado    string
	Periodo     string
	Monto       decimal.Decimal
	FechaPago   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GastoServicio es un egreso por servicios (luz, agua, internet, alquiler).
type GastoServicio struct {
	ID          string
	TenantID    string
	CategoriaID string
	Servicio    string
	Proveedor   string
	Monto       decimal.Decimal
	Fecha       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Presupuesto fija el techo de gasto de una categoría en un periodo YYYY-MM.
// Único por (categoría, periodo) dentro del tenant.
type Presupuesto struct {
	ID          string
	TenantID    string
	CategoriaID string
	Periodo     string
	Monto       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
