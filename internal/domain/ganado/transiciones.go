// Package ganado contiene las reglas puras del ciclo de vida de un
// semoviente: qué movimientos son válidos desde qué estado y qué estado
// resulta de cada movimiento. La ejecución transaccional vive en la capa de
// aplicación.
package ganado

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// estadoPorMovimiento: estado resultante de cada movimiento de salida.
var estadoPorMovimiento = map[string]string{
	entity.MovimientoTraslado: entity.EstadoTraslado,
	entity.MovimientoVenta:    entity.EstadoVendido,
	entity.MovimientoMuerte:   entity.EstadoFallecido,
}

// EsMovimientoDeSalida indica si el tipo es una transición sobre un animal Activo
// (a diferencia de Nacimiento/Compra, que son movimientos de origen).
func EsMovimientoDeSalida(tipo string) bool {
	_, ok := estadoPorMovimiento[tipo]
	return ok
}

// EstadoTrasMovimiento devuelve el estado que deja un movimiento de salida.
func EstadoTrasMovimiento(tipo string) (string, error) {
	estado, ok := estadoPorMovimiento[tipo]
	if !ok {
		return "", domain.Validacion(fmt.Sprintf("tipo de movimiento desconocido: %q", tipo))
	}
	return estado, nil
}

// Transicion es la solicitud de un movimiento de salida ya resuelta por el caller.
type Transicion struct {
	Tipo          string
	EstadoActual  string
	FincaActual   int64
	FincaDestino  *int64 // requerido en Traslado
	DestinoExiste bool   // el caller verificó la finca destino contra la DB
	Valor         *decimal.Decimal
}

// Validar aplica las precondiciones de la transición sin efectos:
//   - el animal debe estar Activo (ErrEstadoInvalido si no);
//   - Traslado exige destino existente y distinto del origen;
//   - Venta exige valor > 0; Traslado y Muerte no llevan valor.
func (t Transicion) Validar() error {
	if !EsMovimientoDeSalida(t.Tipo) {
		return domain.Validacion(fmt.Sprintf("tipo de movimiento inválido: %q", t.Tipo))
	}
	if t.EstadoActual != entity.EstadoActivo {
		return fmt.Errorf("no se puede mover un semoviente que no está 'Activo' (estado actual: %s): %w",
			t.EstadoActual, domain.ErrEstadoInvalido)
	}

	switch t.Tipo {
	case entity.MovimientoTraslado:
		if t.FincaDestino == nil {
			return domain.Validacion("destino_id es requerido para Traslado")
		}
		if *t.FincaDestino == t.FincaActual {
			return domain.Validacion("el destino debe ser distinto a la finca actual")
		}
		if !t.DestinoExiste {
			return fmt.Errorf("finca destino inexistente: %w", domain.ErrNoEncontrado)
		}
	case entity.MovimientoVenta:
		if t.Valor == nil || !t.Valor.GreaterThan(decimal.Zero) {
			return domain.Validacion("el \"valor\" (precio de venta) es requerido para una Venta")
		}
	}
	return nil
}

// ValidarIngreso valida las reglas de origen al crear un semoviente:
// Compra exige fecha de ingreso y valor de compra > 0; Nacimiento no lleva valor.
func ValidarIngreso(tipoIngreso string, valorCompra *decimal.Decimal) error {
	switch tipoIngreso {
	case entity.IngresoNacimiento:
		if valorCompra != nil && !valorCompra.IsZero() {
			return domain.Validacion("un Nacimiento no lleva valor_compra")
		}
	case entity.IngresoCompra:
		if valorCompra == nil || !valorCompra.GreaterThan(decimal.Zero) {
			return domain.Validacion("valor_compra es requerido y positivo para una Compra")
		}
	default:
		return domain.Validacion(fmt.Sprintf("tipo_ingreso inválido: %q", tipoIngreso))
	}
	return nil
}

// MovimientoDeOrigen devuelve el tipo de movimiento que registra el ingreso.
func MovimientoDeOrigen(tipoIngreso string) string {
	if tipoIngreso == entity.IngresoCompra {
		return entity.MovimientoCompra
	}
	return entity.MovimientoNacimiento
}
