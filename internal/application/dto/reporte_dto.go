package dto

import (
	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// InventarioResponse GET /api/reportes/fincas/:id/inventario.
type InventarioResponse struct {
	IDFinca    int64          `json:"id_finca"`
	Total      int            `json:"total"`
	PorEstado  map[string]int `json:"por_estado"`
	PorEspecie map[string]int `json:"por_especie"`
	PorSexo    map[string]int `json:"por_sexo"`
}

// InventarioDesdeResumen mapea el resumen del repositorio a la respuesta.
func InventarioDesdeResumen(idFinca int64, r *repository.InventarioResumen) InventarioResponse {
	return InventarioResponse{
		IDFinca:    idFinca,
		Total:      r.Total,
		PorEstado:  r.PorEstado,
		PorEspecie: r.PorEspecie,
		PorSexo:    r.PorSexo,
	}
}

// EventoSanitarioResponse evento próximo del calendario sanitario.
type EventoSanitarioResponse struct {
	IDRegistroMedico int64            `json:"id_registro_medico"`
	IDSemoviente     int64            `json:"id_semoviente"`
	NroMarca         string           `json:"nro_marca"`
	NombreSemoviente string           `json:"nombre_semoviente"`
	TipoEventoMedico string           `json:"tipo_evento_medico"`
	NombreVacuna     *string          `json:"nombre_vacuna"`
	Dosis            *string          `json:"dosis"`
	Costo            *decimal.Decimal `json:"costo"`
	ProximaFecha     Fecha            `json:"proxima_fecha"`
}

// CalendarioSanitarioResponse GET /api/reportes/fincas/:id/sanitario.
type CalendarioSanitarioResponse struct {
	IDFinca int64                     `json:"id_finca"`
	Desde   Fecha                     `json:"desde"`
	Hasta   Fecha                     `json:"hasta"`
	Dias    int                       `json:"dias"`
	Total   int                       `json:"total_encontrado"`
	Eventos []EventoSanitarioResponse `json:"eventos"`
}

// EventosDesdeRepositorio mapea los eventos del repositorio.
func EventosDesdeRepositorio(evs []repository.EventoSanitario) []EventoSanitarioResponse {
	out := make([]EventoSanitarioResponse, 0, len(evs))
	for _, e := range evs {
		out = append(out, EventoSanitarioResponse{
			IDRegistroMedico: e.IDRegistroMedico,
			IDSemoviente:     e.IDSemoviente,
			NroMarca:         e.NroMarca,
			NombreSemoviente: e.NombreSemoviente,
			TipoEventoMedico: e.TipoEventoMedico,
			NombreVacuna:     e.NombreVacuna,
			Dosis:            e.Dosis,
			Costo:            e.Costo,
			ProximaFecha:     Fecha{Time: e.ProximaFecha},
		})
	}
	return out
}
