package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas agregadas de solo lectura para los reportes por finca.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// Inventario arma el total y los desgloses por estado, especie y sexo en una
// sola pasada con GROUPING SETS.
func (r *ReporteRepo) Inventario(ctx context.Context, idFinca int64, incluirInactivos bool) (*repository.InventarioResumen, error) {
	filtro := ""
	if !incluirInactivos {
		filtro = ` AND s.estado = 'Activo'`
	}
	query := `
		SELECT s.estado, e.nombre_especie, s.sexo, COUNT(*)
		FROM semovientes s
		LEFT JOIN especies e ON e.id_especie = s.id_especie
		WHERE s.id_finca = $1` + filtro + `
		GROUP BY GROUPING SETS ((s.estado), (e.nombre_especie), (s.sexo), ())`

	rows, err := r.q.Query(ctx, query, idFinca)
	if err != nil {
		return nil, fmt.Errorf("inventario: %w", err)
	}
	defer rows.Close()

	resumen := &repository.InventarioResumen{
		PorEstado:  make(map[string]int),
		PorEspecie: make(map[string]int),
		PorSexo:    make(map[string]int),
	}
	for rows.Next() {
		var (
			estado, especie, sexo *string
			total                 int
		)
		if err := rows.Scan(&estado, &especie, &sexo, &total); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		switch {
		case estado != nil:
			resumen.PorEstado[*estado] = total
		case especie != nil:
			resumen.PorEspecie[*especie] = total
		case sexo != nil:
			resumen.PorSexo[*sexo] = total
		default:
			resumen.Total = total
		}
	}
	return resumen, rows.Err()
}

// EventosProximos lista registros con proxima_fecha en [desde, hasta],
// ordenados por proxima_fecha ascendente.
func (r *ReporteRepo) EventosProximos(ctx context.Context, idFinca int64, desde, hasta time.Time) ([]repository.EventoSanitario, error) {
	query := `
		SELECT rm.id_registro_medico, rm.id_semoviente, s.nro_marca, s.nombre,
		       rm.tipo_evento_medico, rm.nombre_vacuna, rm.dosis, rm.costo, rm.proxima_fecha
		FROM registros_medicos rm
		JOIN semovientes s ON s.id_semoviente = rm.id_semoviente
		WHERE s.id_finca = $1
		  AND rm.proxima_fecha IS NOT NULL
		  AND rm.proxima_fecha BETWEEN $2 AND $3
		ORDER BY rm.proxima_fecha ASC, rm.id_registro_medico ASC`

	rows, err := r.q.Query(ctx, query, idFinca, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("eventos proximos: %w", err)
	}
	defer rows.Close()

	var eventos []repository.EventoSanitario
	for rows.Next() {
		var e repository.EventoSanitario
		if err := rows.Scan(&e.IDRegistroMedico, &e.IDSemoviente, &e.NroMarca, &e.NombreSemoviente,
			&e.TipoEventoMedico, &e.NombreVacuna, &e.Dosis, &e.Costo, &e.ProximaFecha); err != nil {
			return nil, fmt.Errorf("scan evento sanitario: %w", err)
		}
		eventos = append(eventos, e)
	}
	return eventos, rows.Err()
}
