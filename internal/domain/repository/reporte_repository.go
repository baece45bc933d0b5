package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventarioResumen desglose del inventario de una finca.
type InventarioResumen struct {
	Total      int
	PorEstado  map[string]int
	PorEspecie map[string]int
	PorSexo    map[string]int
}

// EventoSanitario registro médico con próxima fecha dentro del horizonte,
// enriquecido con la identificación del animal.
type EventoSanitario struct {
	IDRegistroMedico int64
	IDSemoviente     int64
	NroMarca         string
	NombreSemoviente string
	TipoEventoMedico string
	NombreVacuna     *string
	Dosis            *string
	Costo            *decimal.Decimal
	ProximaFecha     time.Time
}

// ReporteRepository consultas de solo lectura para los reportes por finca.
type ReporteRepository interface {
	Inventario(ctx context.Context, idFinca int64, incluirInactivos bool) (*InventarioResumen, error)
	// EventosProximos lista registros con proxima_fecha en [desde, hasta],
	// ordenados por proxima_fecha ascendente.
	EventosProximos(ctx context.Context, idFinca int64, desde, hasta time.Time) ([]EventoSanitario, error)
}
