// Package guias arma la guía de movilización: el documento XML que ampara el
// traslado de un semoviente entre fincas.
package guias

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

var _ usecase.GuiaXMLBuilder = (*Builder)(nil)

// Builder construye guías de movilización con etree.
type Builder struct{}

// NewBuilder construye el builder.
func NewBuilder() *Builder { return &Builder{} }

// Construir serializa la guía de un Traslado. El identificador del documento
// es un UUID nuevo en cada emisión; la guía no reemplaza la entrada del libro,
// solo la representa.
func (b *Builder) Construir(datos usecase.GuiaDatos) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	guia := doc.CreateElement("GuiaMovilizacion")
	guia.CreateAttr("id", uuid.NewString())
	guia.CreateAttr("idMovimiento", fmt.Sprintf("%d", datos.Movimiento.IDMovimiento))

	fecha := guia.CreateElement("FechaMovimiento")
	fecha.SetText(datos.Movimiento.FechaMovimiento.Format("2006-01-02"))

	animal := guia.CreateElement("Semoviente")
	animal.CreateAttr("id", fmt.Sprintf("%d", datos.Semoviente.IDSemoviente))
	animal.CreateElement("NroMarca").SetText(datos.Semoviente.NroMarca)
	animal.CreateElement("Nombre").SetText(datos.Semoviente.Nombre)
	animal.CreateElement("Sexo").SetText(datos.Semoviente.Sexo)
	animal.CreateElement("FechaNacimiento").SetText(datos.Semoviente.FechaNacimiento.Format("2006-01-02"))
	if datos.Semoviente.NroChip != nil {
		animal.CreateElement("NroChip").SetText(*datos.Semoviente.NroChip)
	}
	if datos.Semoviente.NroSanitario != nil {
		animal.CreateElement("NroSanitario").SetText(*datos.Semoviente.NroSanitario)
	}
	if datos.Semoviente.PesoActual != nil {
		peso := animal.CreateElement("PesoActual")
		peso.CreateAttr("unidad", "kg")
		peso.SetText(datos.Semoviente.PesoActual.StringFixed(1))
	}

	agregarFinca(guia, "FincaOrigen", datos.Movimiento.FincaOrigenID, datos.FincaOrigen)
	agregarFinca(guia, "FincaDestino", datos.Movimiento.FincaDestinoID, datos.FincaDestino)

	if datos.Movimiento.Observaciones != nil {
		guia.CreateElement("Observaciones").SetText(*datos.Movimiento.Observaciones)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("guias: serializar guía: %w", err)
	}
	return out, nil
}

// agregarFinca añade el nodo de una finca; si el detalle no está disponible
// queda solo la referencia por id.
func agregarFinca(padre *etree.Element, tag string, id *int64, finca *dto.FincaResponse) {
	if id == nil && finca == nil {
		return
	}
	nodo := padre.CreateElement(tag)
	if id != nil {
		nodo.CreateAttr("id", fmt.Sprintf("%d", *id))
	}
	if finca == nil {
		return
	}
	nodo.CreateElement("Nombre").SetText(finca.NombreFinca)
	if finca.Ubicacion != nil {
		nodo.CreateElement("Ubicacion").SetText(*finca.Ubicacion)
	}
	if finca.NombreAdmin != nil {
		nodo.CreateElement("Responsable").SetText(*finca.NombreAdmin)
	}
	if finca.TelefonoAdmin != nil {
		nodo.CreateElement("Telefono").SetText(*finca.TelefonoAdmin)
	}
}
