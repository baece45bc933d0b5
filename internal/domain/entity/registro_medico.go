package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistroMedico es un evento sanitario/veterinario de un semoviente.
type RegistroMedico struct {
	ID                     int64
	IDSemoviente           int64
	FechaConsulta          time.Time
	TipoEventoMedico       string
	Diagnostico            *string
	TratamientoAplicado    *string
	VeterinarioResponsable *string
	Costo                  *decimal.Decimal
	Observaciones          *string
	NombreVacuna           *string
	Dosis                  *string
	ProximaFecha           *time.Time
}
