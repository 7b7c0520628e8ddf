// Package pdf implementa el documento imprimible de un contrato de servicio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estudio (tenant)  │  Título + Estado del contrato  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Documento + contacto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Descripción del servicio contratado               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONDICIONES: Monto / Fecha inicio / Fecha fin              │
//	│  FIRMAS: Estudio + Cliente                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/arteideas/backend/internal/application/crm"
	"github.com/arteideas/backend/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ crm.ContratoPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa crm.ContratoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateContratoPDF genera el PDF del contrato y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateContratoPDF(
	_ context.Context,
	contrato *entity.Contrato,
	cliente *entity.Cliente,
	tenant *entity.Tenant,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Contrato de Servicio", true).
		WithAuthor(tenant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(contrato, tenant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range detalleRows(contrato) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(condicionesRow(contrato))
	m.AddRows(line.NewRow(10))
	m.AddRows(firmasRow(cliente, tenant))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del estudio (izq) y título + estado del contrato (der).
func headerRow(contrato *entity.Contrato, tenant *entity.Tenant) core.Row {
	fecha := contrato.FechaInicio.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(tenant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Contrato de servicio", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(contrato.Titulo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+contrato.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del cliente contratante.
func clienteRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(cliente.Documento, "—"),
				nonEmpty(cliente.Email, "—"),
				nonEmpty(cliente.Telefono, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// detalleRows: descripción del servicio contratado, partida en líneas.
func detalleRows(contrato *entity.Contrato) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("DETALLE DEL SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	descripcion := contrato.Descripcion
	if descripcion == "" {
		descripcion = contrato.Titulo
	}
	for _, chunk := range splitEvery(descripcion, 110) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 8.5, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// condicionesRow: monto y vigencia.
func condicionesRow(contrato *entity.Contrato) core.Row {
	fin := "—"
	if contrato.FechaFin != nil {
		fin = contrato.FechaFin.Format("02/01/2006")
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Monto del contrato:"),
			label("Inicio:"),
			label("Fin:"),
		),
		col.New(4).Add(
			value("S/ "+formatMoney(contrato.Monto.StringFixed(2))),
			value(contrato.FechaInicio.Format("02/01/2006")),
			value(fin),
		),
	)
}

// firmasRow: líneas de firma para el estudio y el cliente.
func firmasRow(cliente *entity.Cliente, tenant *entity.Tenant) core.Row {
	firma := func(nombre string) core.Col {
		return col.New(6).Add(
			text.New("________________________", props.Text{
				Size: 9, Align: align.Center, Top: 1,
			}),
			text.New(nombre, props.Text{
				Size: 8, Align: align.Center, Top: 7, Color: colorGray,
			}),
		)
	}
	return row.New(14).Add(
		firma(tenant.Name),
		firma(cliente.Nombre),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta comas de miles en un string numérico con dos decimales.
// Ej: "25000.00" → "25,000.00"
func formatMoney(s string) string {
	entero := s
	resto := ""
	for i, c := range s {
		if c == '.' {
			entero = s[:i]
			resto = s[i:]
			break
		}
	}
	n := len(entero)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3+len(resto))
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, entero[i])
	}
	return string(buf) + resto
}

// splitEvery divide s en trozos de max n caracteres.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
