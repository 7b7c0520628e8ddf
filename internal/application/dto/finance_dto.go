package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoriaGastoRequest entrada para crear una categoría de gasto.
type CreateCategoriaGastoRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// CategoriaGastoResponse salida de una categoría de gasto.
type CategoriaGastoResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateGastoPersonalRequest entrada para registrar un gasto de planilla.
type CreateGastoPersonalRequest struct {
	CategoriaID string          `json:"categoria_id"`
	Empleado    string          `json:"empleado"`
	Periodo     string          `json:"periodo"` // YYYY-MM
	Monto       decimal.Decimal `json:"monto"`
	FechaPago   time.Time       `json:"fecha_pago"`
}

// GastoPersonalResponse salida de un gasto de planilla.
type GastoPersonalResponse struct {
	ID          string          `json:"id"`
	CategoriaID string          `json:"categoria_id"`
	Empleado    string          `json:"empleado"`
	Periodo     string          `json:"periodo"`
	Monto       decimal.Decimal `json:"monto"`
	FechaPago   time.Time       `json:"fecha_pago"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateGastoServicioRequest entrada para registrar un gasto de servicios.
type CreateGastoServicioRequest struct {
	CategoriaID string          `json:"categoria_id"`
	Servicio    string          `json:"servicio"`
	Proveedor   string          `json:"proveedor,omitempty"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
}

// GastoServicioResponse salida de un gasto de servicios.
type GastoServicioResponse struct {
	ID          string          `json:"id"`
	CategoriaID string          `json:"categoria_id"`
	Servicio    string          `json:"servicio"`
	Proveedor   string          `json:"proveedor,omitempty"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreatePresupuestoRequest entrada para fijar un presupuesto.
type CreatePresupuestoRequest struct {
	CategoriaID string          `json:"categoria_id"`
	Periodo     string          `json:"periodo"` // YYYY-MM
	Monto       decimal.Decimal `json:"monto"`
}

// PresupuestoResponse salida de un presupuesto con su ejecución.
type PresupuestoResponse struct {
	ID          string          `json:"id"`
	CategoriaID string          `json:"categoria_id"`
	Periodo     string          `json:"periodo"`
	Monto       decimal.Decimal `json:"monto"`
	Ejecutado   decimal.Decimal `json:"ejecutado"`
	CreatedAt   time.Time       `json:"created_at"`
}
