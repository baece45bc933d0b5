package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de movimientos. Nacimiento y Compra son
// movimientos de origen (se crean junto con el semoviente); Traslado, Venta y
// Muerte son transiciones de salida sobre un animal Activo.
const (
	MovimientoNacimiento = "Nacimiento"
	MovimientoCompra     = "Compra"
	MovimientoTraslado   = "Traslado"
	MovimientoVenta      = "Venta"
	MovimientoMuerte     = "Muerte"
)

// Movimiento es una entrada inmutable del libro de movimientos de un
// semoviente: nunca se actualiza ni se elimina, es la pista de auditoría de
// cada transición de estado y de cada evento de origen.
type Movimiento struct {
	ID              int64
	IDSemoviente    int64
	TipoMovimiento  string
	FechaMovimiento time.Time
	FincaOrigenID   *int64
	FincaDestinoID  *int64
	Observaciones   *string
	Valor           *decimal.Decimal // requerido > 0 en Venta y Compra; nil en el resto
}
