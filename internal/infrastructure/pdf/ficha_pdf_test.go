package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/infrastructure/pdf"
)

func strPtr(s string) *string                       { return &s }
func int64Ptr(v int64) *int64                       { return &v }
func decimalPtr(v decimal.Decimal) *decimal.Decimal { return &v }

func fichaDePrueba() dto.FichaCompletaResponse {
	nacimiento := time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC)
	return dto.FichaCompletaResponse{
		Datos: dto.SemovienteResponse{
			IDSemoviente:    10,
			NroMarca:        "MX-0042",
			Nombre:          "Lucero",
			FechaNacimiento: dto.Fecha{Time: nacimiento},
			Sexo:            "Hembra",
			IDFinca:         1,
			Estado:          "Activo",
			TipoIngreso:     "Nacimiento",
			FechaIngreso:    dto.Fecha{Time: nacimiento},
			PesoActual:      decimalPtr(decimal.NewFromInt(430)),
		},
		NombreEspecie: strPtr("Bovino"),
		NombreRaza:    strPtr("Brahman"),
		HistorialMedico: []dto.RegistroMedicoResponse{{
			IDRegistro:       1,
			IDSemoviente:     10,
			FechaConsulta:    dto.Fecha{Time: nacimiento.AddDate(0, 6, 0)},
			TipoEventoMedico: "Vacunación",
			Costo:            decimalPtr(decimal.NewFromInt(50)),
		}},
		HistorialMovimientos: []dto.MovimientoResponse{{
			IDMovimiento:    1,
			IDSemoviente:    10,
			TipoMovimiento:  "Nacimiento",
			FechaMovimiento: dto.Fecha{Time: nacimiento},
			FincaDestinoID:  int64Ptr(1),
		}},
	}
}

func TestGenerarFicha(t *testing.T) {
	gen := pdf.NewFichaGenerator()

	doc, err := gen.Generar(fichaDePrueba())
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "la salida debe ser un documento PDF")
}

func TestGenerarFichaSinHistoriales(t *testing.T) {
	gen := pdf.NewFichaGenerator()

	ficha := fichaDePrueba()
	ficha.HistorialMedico = nil
	ficha.HistorialMovimientos = nil
	ficha.NombreEspecie = nil
	ficha.Datos.PesoActual = nil

	doc, err := gen.Generar(ficha)
	require.NoError(t, err)
	assert.NotEmpty(t, doc, "una ficha sin historiales igual produce documento")
}
