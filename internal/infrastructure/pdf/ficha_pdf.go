// Package pdf implementa la exportación de la ficha completa de un semoviente
// como documento PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del animal  │  Nro. de marca + Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS GENERALES: especie/raza, sexo, fechas, parentesco     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Historial médico (fecha, evento, diagnóstico, costo) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Movimientos (fecha, tipo, origen, destino, valor)    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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
	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

var _ usecase.FichaPDFGenerator = (*FichaGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// FichaGenerator genera la ficha completa de un semoviente con Maroto v2.
type FichaGenerator struct{}

// NewFichaGenerator construye el generador.
func NewFichaGenerator() *FichaGenerator { return &FichaGenerator{} }

// Generar genera el PDF y devuelve sus bytes.
func (g *FichaGenerator) Generar(ficha dto.FichaCompletaResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de Semoviente", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ficha))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datosRows(ficha)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tituloSeccion("HISTORIAL MÉDICO"))
	m.AddRows(medicoHeaderRow())
	for _, reg := range ficha.HistorialMedico {
		m.AddRows(medicoRow(reg))
	}
	if len(ficha.HistorialMedico) == 0 {
		m.AddRows(filaVacia("Sin registros médicos"))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tituloSeccion("HISTORIAL DE MOVIMIENTOS"))
	m.AddRows(movimientoHeaderRow())
	for _, mov := range ficha.HistorialMovimientos {
		m.AddRows(movimientoRow(mov))
	}
	if len(ficha.HistorialMovimientos) == 0 {
		m.AddRows(filaVacia("Sin movimientos"))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del animal (izq), nro de marca y estado (der).
func headerRow(ficha dto.FichaCompletaResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(ficha.Datos.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ficha de semoviente", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("MARCA "+ficha.Datos.NroMarca, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+ficha.Datos.Estado, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// datosRows: datos generales en pares etiqueta/valor.
func datosRows(ficha dto.FichaCompletaResponse) []core.Row {
	d := ficha.Datos
	pares := [][2]string{
		{"Especie", textoDe(ficha.NombreEspecie)},
		{"Raza", textoDe(ficha.NombreRaza)},
		{"Sexo", d.Sexo},
		{"Fecha de nacimiento", d.FechaNacimiento.Format("02/01/2006")},
		{"Tipo de ingreso", d.TipoIngreso},
		{"Fecha de ingreso", d.FechaIngreso.Format("02/01/2006")},
		{"Nro. de registro", textoDe(d.NroRegistro)},
		{"Nro. de chip", textoDe(d.NroChip)},
		{"Nro. sanitario", textoDe(d.NroSanitario)},
		{"Peso actual", pesoTexto(d.PesoActual, d.FechaPeso)},
	}

	rows := make([]core.Row, 0, (len(pares)+1)/2)
	for i := 0; i < len(pares); i += 2 {
		cols := []core.Col{parCol(pares[i][0], pares[i][1])}
		if i+1 < len(pares) {
			cols = append(cols, parCol(pares[i+1][0], pares[i+1][1]))
		}
		rows = append(rows, row.New(10).Add(cols...))
	}
	return rows
}

func parCol(etiqueta, valor string) core.Col {
	return col.New(6).Add(
		text.New(etiqueta, props.Text{Size: 7, Color: colorGray, Top: 1}),
		text.New(valor, props.Text{Size: 9, Top: 5}),
	)
}

func tituloSeccion(titulo string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
		),
	)
}

func medicoHeaderRow() core.Row {
	return row.New(6).Add(
		celdaHeader(2, "Fecha"),
		celdaHeader(3, "Evento"),
		celdaHeader(4, "Diagnóstico"),
		celdaHeader(3, "Costo"),
	)
}

func medicoRow(reg dto.RegistroMedicoResponse) core.Row {
	return row.New(6).Add(
		celda(2, reg.FechaConsulta.Format("02/01/2006")),
		celda(3, reg.TipoEventoMedico),
		celda(4, textoDe(reg.Diagnostico)),
		celda(3, montoTexto(reg.Costo)),
	)
}

func movimientoHeaderRow() core.Row {
	return row.New(6).Add(
		celdaHeader(2, "Fecha"),
		celdaHeader(3, "Tipo"),
		celdaHeader(2, "Origen"),
		celdaHeader(2, "Destino"),
		celdaHeader(3, "Valor"),
	)
}

func movimientoRow(mov dto.MovimientoResponse) core.Row {
	return row.New(6).Add(
		celda(2, mov.FechaMovimiento.Format("02/01/2006")),
		celda(3, mov.TipoMovimiento),
		celda(2, fincaTexto(mov.FincaOrigenID)),
		celda(2, fincaTexto(mov.FincaDestinoID)),
		celda(3, montoTexto(mov.Valor)),
	)
}

func filaVacia(texto string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(texto, props.Text{Size: 8, Color: colorGray, Top: 1})),
	)
}

func celdaHeader(size int, texto_ string) core.Col {
	return col.New(size).Add(
		text.New(texto_, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
	)
}

func celda(size int, texto_ string) core.Col {
	return col.New(size).Add(text.New(texto_, props.Text{Size: 8, Top: 1}))
}

func textoDe(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func fincaTexto(id *int64) string {
	if id == nil {
		return "—"
	}
	return fmt.Sprintf("Finca #%d", *id)
}

func montoTexto(v *decimal.Decimal) string {
	if v == nil {
		return "—"
	}
	return "$ " + v.StringFixed(2)
}

func pesoTexto(peso *decimal.Decimal, fecha *dto.Fecha) string {
	if peso == nil {
		return "—"
	}
	s := peso.StringFixed(1) + " kg"
	if fecha != nil {
		s += " (" + fecha.Format("02/01/2006") + ")"
	}
	return s
}
