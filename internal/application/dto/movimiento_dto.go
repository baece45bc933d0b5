package dto

import (
	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// CrearMovimientoRequest POST /api/semovientes/:id/movimientos. Solo admite
// transiciones de salida; Nacimiento y Compra se registran al crear el animal.
type CrearMovimientoRequest struct {
	Tipo          string           `json:"tipo"`
	DestinoID     *int64           `json:"destino_id"`
	Observaciones *string          `json:"observaciones"`
	Valor         *decimal.Decimal `json:"valor"`
}

// MovimientoResponse entrada del libro de movimientos.
type MovimientoResponse struct {
	IDMovimiento    int64            `json:"id_movimiento"`
	IDSemoviente    int64            `json:"id_semoviente"`
	TipoMovimiento  string           `json:"tipo_movimiento"`
	FechaMovimiento Fecha            `json:"fecha_movimiento"`
	FincaOrigenID   *int64           `json:"finca_origen_id"`
	FincaDestinoID  *int64           `json:"finca_destino_id"`
	Observaciones   *string          `json:"observaciones"`
	Valor           *decimal.Decimal `json:"valor"`
}

// MovimientoDesdeEntidad mapea la entidad a la respuesta.
func MovimientoDesdeEntidad(m *entity.Movimiento) MovimientoResponse {
	return MovimientoResponse{
		IDMovimiento:    m.ID,
		IDSemoviente:    m.IDSemoviente,
		TipoMovimiento:  m.TipoMovimiento,
		FechaMovimiento: Fecha{Time: m.FechaMovimiento},
		FincaOrigenID:   m.FincaOrigenID,
		FincaDestinoID:  m.FincaDestinoID,
		Observaciones:   m.Observaciones,
		Valor:           m.Valor,
	}
}

// MovimientosDesdeEntidades mapea un listado.
func MovimientosDesdeEntidades(ms []*entity.Movimiento) []MovimientoResponse {
	out := make([]MovimientoResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, MovimientoDesdeEntidad(m))
	}
	return out
}
