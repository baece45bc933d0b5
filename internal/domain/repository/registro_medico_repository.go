package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// RegistroMedicoPatch campos opcionales para la actualización parcial.
type RegistroMedicoPatch struct {
	FechaConsulta          *time.Time
	TipoEventoMedico       *string
	Diagnostico            *string
	TratamientoAplicado    *string
	VeterinarioResponsable *string
	Costo                  *decimal.Decimal
	Observaciones          *string
	NombreVacuna           *string
	Dosis                  *string
	ProximaFecha           *time.Time
}

// EstaVacio indica que no hay nada que actualizar.
func (p RegistroMedicoPatch) EstaVacio() bool {
	return p.FechaConsulta == nil && p.TipoEventoMedico == nil &&
		p.Diagnostico == nil && p.TratamientoAplicado == nil &&
		p.VeterinarioResponsable == nil && p.Costo == nil &&
		p.Observaciones == nil && p.NombreVacuna == nil &&
		p.Dosis == nil && p.ProximaFecha == nil
}

// RegistroMedicoRepository define el puerto para los eventos sanitarios.
type RegistroMedicoRepository interface {
	Create(ctx context.Context, r *entity.RegistroMedico) error
	ListBySemoviente(ctx context.Context, idSemoviente int64) ([]*entity.RegistroMedico, error)
	// ActualizarParcial exige que el registro pertenezca al semoviente.
	ActualizarParcial(ctx context.Context, idSemoviente, idRegistro int64, patch RegistroMedicoPatch) (*entity.RegistroMedico, error)
	// Delete devuelve false si no había registro que borrar.
	Delete(ctx context.Context, idSemoviente, idRegistro int64) (bool, error)
}
