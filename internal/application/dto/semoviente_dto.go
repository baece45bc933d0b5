package dto

import (
	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// CrearSemovienteRequest POST /api/semovientes. La unión discriminada del
// esquema original se resuelve por TipoIngreso: Nacimiento exige madre/padre y
// prohíbe valor_compra; Compra exige fecha_ingreso y valor_compra positivo.
type CrearSemovienteRequest struct {
	NroMarca        string           `json:"nro_marca"`
	NroRegistro     *string          `json:"nro_registro"`
	Nombre          string           `json:"nombre"`
	FechaNacimiento Fecha            `json:"fecha_nacimiento"`
	Sexo            string           `json:"sexo"`
	IDRaza          int64            `json:"id_raza"`
	IDEspecie       int64            `json:"id_especie"`
	IDFinca         int64            `json:"id_finca"`
	TipoIngreso     string           `json:"tipo_ingreso"`
	IDMadre         *int64           `json:"id_madre"`
	IDPadre         *int64           `json:"id_padre"`
	FechaIngreso    *Fecha           `json:"fecha_ingreso"`
	ValorCompra     *decimal.Decimal `json:"valor_compra"`
}

// ActualizarSemovienteRequest PATCH /api/semovientes/:id (al menos un campo).
type ActualizarSemovienteRequest struct {
	NroMarca        *string          `json:"nro_marca"`
	NroRegistro     *string          `json:"nro_registro"`
	Nombre          *string          `json:"nombre"`
	FechaNacimiento *Fecha           `json:"fecha_nacimiento"`
	Sexo            *string          `json:"sexo"`
	IDRaza          *int64           `json:"id_raza"`
	IDEspecie       *int64           `json:"id_especie"`
	IDMadre         *int64           `json:"id_madre"`
	IDPadre         *int64           `json:"id_padre"`
	PesoActual      *decimal.Decimal `json:"peso_actual"`
	FechaPeso       *Fecha           `json:"fecha_peso"`
	FechaIngreso    *Fecha           `json:"fecha_ingreso"`
	NroChip         *string          `json:"nro_chip"`
	NroSanitario    *string          `json:"nro_sanitario"`
}

// CambiarEstadoRequest PATCH /api/semovientes/:id/estado.
type CambiarEstadoRequest struct {
	Estado        string  `json:"estado"`
	Fecha         *Fecha  `json:"fecha"`
	Motivo        *string `json:"motivo"`
	Observaciones *string `json:"observaciones"`
}

// SemovienteResponse representación de un semoviente.
type SemovienteResponse struct {
	IDSemoviente      int64            `json:"id_semoviente"`
	NroMarca          string           `json:"nro_marca"`
	NroRegistro       *string          `json:"nro_registro"`
	Nombre            string           `json:"nombre"`
	FechaNacimiento   Fecha            `json:"fecha_nacimiento"`
	Sexo              string           `json:"sexo"`
	IDRaza            int64            `json:"id_raza"`
	IDEspecie         int64            `json:"id_especie"`
	IDMadre           *int64           `json:"id_madre"`
	IDPadre           *int64           `json:"id_padre"`
	IDFinca           int64            `json:"id_finca"`
	Estado            string           `json:"estado"`
	TipoIngreso       string           `json:"tipo_ingreso"`
	FechaIngreso      Fecha            `json:"fecha_ingreso"`
	ValorCompra       *decimal.Decimal `json:"valor_compra"`
	PesoActual        *decimal.Decimal `json:"peso_actual"`
	FechaPeso         *Fecha           `json:"fecha_peso"`
	NroChip           *string          `json:"nro_chip"`
	NroSanitario      *string          `json:"nro_sanitario"`
	FechaSalida       *Fecha           `json:"fecha_salida"`
	FechaBaja         *Fecha           `json:"fecha_baja"`
	MotivoBaja        *string          `json:"motivo_baja"`
	ObservacionesBaja *string          `json:"observaciones_baja"`
}

// SemovienteDesdeEntidad mapea la entidad a la respuesta.
func SemovienteDesdeEntidad(s *entity.Semoviente) SemovienteResponse {
	return SemovienteResponse{
		IDSemoviente:      s.ID,
		NroMarca:          s.NroMarca,
		NroRegistro:       s.NroRegistro,
		Nombre:            s.Nombre,
		FechaNacimiento:   Fecha{Time: s.FechaNacimiento},
		Sexo:              s.Sexo,
		IDRaza:            s.IDRaza,
		IDEspecie:         s.IDEspecie,
		IDMadre:           s.IDMadre,
		IDPadre:           s.IDPadre,
		IDFinca:           s.IDFinca,
		Estado:            s.Estado,
		TipoIngreso:       s.TipoIngreso,
		FechaIngreso:      Fecha{Time: s.FechaIngreso},
		ValorCompra:       s.ValorCompra,
		PesoActual:        s.PesoActual,
		FechaPeso:         FechaDe(s.FechaPeso),
		NroChip:           s.NroChip,
		NroSanitario:      s.NroSanitario,
		FechaSalida:       FechaDe(s.FechaSalida),
		FechaBaja:         FechaDe(s.FechaBaja),
		MotivoBaja:        s.MotivoBaja,
		ObservacionesBaja: s.ObservacionesBaja,
	}
}

// SemovientesDesdeEntidades mapea un listado.
func SemovientesDesdeEntidades(ss []*entity.Semoviente) []SemovienteResponse {
	out := make([]SemovienteResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, SemovienteDesdeEntidad(s))
	}
	return out
}

// FichaCompletaResponse expediente completo de un semoviente.
type FichaCompletaResponse struct {
	Datos                SemovienteResponse       `json:"datos"`
	NombreEspecie        *string                  `json:"nombre_especie"`
	NombreRaza           *string                  `json:"nombre_raza"`
	HistorialMedico      []RegistroMedicoResponse `json:"historial_medico"`
	HistorialMovimientos []MovimientoResponse     `json:"historial_movimientos"`
}
