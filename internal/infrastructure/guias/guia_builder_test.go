package guias

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func decimalPtr(v decimal.Decimal) *decimal.Decimal { return &v }

func datosDePrueba() usecase.GuiaDatos {
	return usecase.GuiaDatos{
		Semoviente: dto.SemovienteResponse{
			IDSemoviente:    42,
			NroMarca:        "MX-0042",
			Nombre:          "Estrella",
			Sexo:            "Hembra",
			FechaNacimiento: dto.Fecha{Time: time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)},
			NroChip:         strPtr("982000123456789"),
			PesoActual:      decimalPtr(decimal.NewFromInt(430)),
		},
		Movimiento: dto.MovimientoResponse{
			IDMovimiento:    7,
			IDSemoviente:    42,
			TipoMovimiento:  "Traslado",
			FechaMovimiento: dto.Fecha{Time: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)},
			FincaOrigenID:   int64Ptr(1),
			FincaDestinoID:  int64Ptr(2),
			Observaciones:   strPtr("Traslado por rotación de potreros"),
		},
		FincaOrigen: &dto.FincaResponse{
			IDFinca:     1,
			NombreFinca: "La Esperanza",
			Ubicacion:   strPtr("Vereda El Salado"),
			NombreAdmin: strPtr("Carlos Mejía"),
		},
		FincaDestino: &dto.FincaResponse{
			IDFinca:       2,
			NombreFinca:   "El Recreo",
			TelefonoAdmin: strPtr("3001234567"),
		},
	}
}

func TestConstruirGuia(t *testing.T) {
	out, err := NewBuilder().Construir(datosDePrueba())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	raiz := doc.Root()
	require.NotNil(t, raiz)
	assert.Equal(t, "GuiaMovilizacion", raiz.Tag)
	assert.NotEmpty(t, raiz.SelectAttrValue("id", ""))
	assert.Equal(t, "7", raiz.SelectAttrValue("idMovimiento", ""))

	assert.Equal(t, "2026-08-29", raiz.SelectElement("FechaMovimiento").Text())

	animal := raiz.SelectElement("Semoviente")
	require.NotNil(t, animal)
	assert.Equal(t, "42", animal.SelectAttrValue("id", ""))
	assert.Equal(t, "MX-0042", animal.SelectElement("NroMarca").Text())
	assert.Equal(t, "Estrella", animal.SelectElement("Nombre").Text())
	assert.Equal(t, "2022-03-15", animal.SelectElement("FechaNacimiento").Text())
	assert.Equal(t, "982000123456789", animal.SelectElement("NroChip").Text())
	assert.Nil(t, animal.SelectElement("NroSanitario"))

	peso := animal.SelectElement("PesoActual")
	require.NotNil(t, peso)
	assert.Equal(t, "kg", peso.SelectAttrValue("unidad", ""))
	assert.Equal(t, "430.0", peso.Text())

	origen := raiz.SelectElement("FincaOrigen")
	require.NotNil(t, origen)
	assert.Equal(t, "1", origen.SelectAttrValue("id", ""))
	assert.Equal(t, "La Esperanza", origen.SelectElement("Nombre").Text())
	assert.Equal(t, "Carlos Mejía", origen.SelectElement("Responsable").Text())

	destino := raiz.SelectElement("FincaDestino")
	require.NotNil(t, destino)
	assert.Equal(t, "El Recreo", destino.SelectElement("Nombre").Text())
	assert.Equal(t, "3001234567", destino.SelectElement("Telefono").Text())

	assert.Equal(t, "Traslado por rotación de potreros", raiz.SelectElement("Observaciones").Text())
}

func TestConstruirGuiaSinDetalleDeFincas(t *testing.T) {
	datos := datosDePrueba()
	datos.FincaOrigen = nil
	datos.FincaDestino = nil
	datos.Movimiento.Observaciones = nil

	out, err := NewBuilder().Construir(datos)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	origen := doc.Root().SelectElement("FincaOrigen")
	require.NotNil(t, origen)
	assert.Equal(t, "1", origen.SelectAttrValue("id", ""))
	assert.Nil(t, origen.SelectElement("Nombre"))
	assert.Nil(t, doc.Root().SelectElement("Observaciones"))
}

func TestGuiaConIDsDistintos(t *testing.T) {
	b := NewBuilder()
	primero, err := b.Construir(datosDePrueba())
	require.NoError(t, err)
	segundo, err := b.Construir(datosDePrueba())
	require.NoError(t, err)

	leerID := func(raw []byte) string {
		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(raw))
		return doc.Root().SelectAttrValue("id", "")
	}
	assert.NotEqual(t, leerID(primero), leerID(segundo))
}
