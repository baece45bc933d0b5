package dto

import (
	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// CrearRegistroMedicoRequest POST /api/semovientes/:id/registros-medicos.
type CrearRegistroMedicoRequest struct {
	FechaConsulta          Fecha            `json:"fecha_consulta"`
	TipoEventoMedico       string           `json:"tipo_evento_medico"`
	Diagnostico            *string          `json:"diagnostico"`
	TratamientoAplicado    *string          `json:"tratamiento_aplicado"`
	VeterinarioResponsable *string          `json:"veterinario_responsable"`
	Costo                  *decimal.Decimal `json:"costo"`
	Observaciones          *string          `json:"observaciones"`
	NombreVacuna           *string          `json:"nombre_vacuna"`
	Dosis                  *string          `json:"dosis"`
	ProximaFecha           *Fecha           `json:"proxima_fecha"`
}

// ActualizarRegistroMedicoRequest PATCH de un registro médico (al menos un campo).
type ActualizarRegistroMedicoRequest struct {
	FechaConsulta          *Fecha           `json:"fecha_consulta"`
	TipoEventoMedico       *string          `json:"tipo_evento_medico"`
	Diagnostico            *string          `json:"diagnostico"`
	TratamientoAplicado    *string          `json:"tratamiento_aplicado"`
	VeterinarioResponsable *string          `json:"veterinario_responsable"`
	Costo                  *decimal.Decimal `json:"costo"`
	Observaciones          *string          `json:"observaciones"`
	NombreVacuna           *string          `json:"nombre_vacuna"`
	Dosis                  *string          `json:"dosis"`
	ProximaFecha           *Fecha           `json:"proxima_fecha"`
}

// RegistroMedicoResponse representación de un registro médico.
type RegistroMedicoResponse struct {
	IDRegistro             int64            `json:"id_registro"`
	IDSemoviente           int64            `json:"id_semoviente"`
	FechaConsulta          Fecha            `json:"fecha_consulta"`
	TipoEventoMedico       string           `json:"tipo_evento_medico"`
	Diagnostico            *string          `json:"diagnostico"`
	TratamientoAplicado    *string          `json:"tratamiento_aplicado"`
	VeterinarioResponsable *string          `json:"veterinario_responsable"`
	Costo                  *decimal.Decimal `json:"costo"`
	Observaciones          *string          `json:"observaciones"`
	NombreVacuna           *string          `json:"nombre_vacuna"`
	Dosis                  *string          `json:"dosis"`
	ProximaFecha           *Fecha           `json:"proxima_fecha"`
}

// RegistroMedicoDesdeEntidad mapea la entidad a la respuesta.
func RegistroMedicoDesdeEntidad(r *entity.RegistroMedico) RegistroMedicoResponse {
	return RegistroMedicoResponse{
		IDRegistro:             r.ID,
		IDSemoviente:           r.IDSemoviente,
		FechaConsulta:          Fecha{Time: r.FechaConsulta},
		TipoEventoMedico:       r.TipoEventoMedico,
		Diagnostico:            r.Diagnostico,
		TratamientoAplicado:    r.TratamientoAplicado,
		VeterinarioResponsable: r.VeterinarioResponsable,
		Costo:                  r.Costo,
		Observaciones:          r.Observaciones,
		NombreVacuna:           r.NombreVacuna,
		Dosis:                  r.Dosis,
		ProximaFecha:           FechaDe(r.ProximaFecha),
	}
}

// RegistrosMedicosDesdeEntidades mapea un listado.
func RegistrosMedicosDesdeEntidades(rs []*entity.RegistroMedico) []RegistroMedicoResponse {
	out := make([]RegistroMedicoResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, RegistroMedicoDesdeEntidad(r))
	}
	return out
}
