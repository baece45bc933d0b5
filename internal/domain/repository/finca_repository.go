package repository

import (
	"context"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// FincaPatch campos opcionales para la actualización parcial de una finca.
type FincaPatch struct {
	NombreFinca   *string
	Ubicacion     *string
	NombreAdmin   *string
	TelefonoAdmin *string
}

// EstaVacio indica que no hay nada que actualizar.
func (p FincaPatch) EstaVacio() bool {
	return p.NombreFinca == nil && p.Ubicacion == nil &&
		p.NombreAdmin == nil && p.TelefonoAdmin == nil
}

// FincaRepository define el puerto de persistencia para fincas.
type FincaRepository interface {
	Create(ctx context.Context, f *entity.Finca) error
	GetByID(ctx context.Context, id int64) (*entity.Finca, error)
	Existe(ctx context.Context, id int64) (bool, error)
	ListAll(ctx context.Context) ([]*entity.Finca, error)
	// ListByUsuario lista las fincas donde el usuario tiene algún rol.
	ListByUsuario(ctx context.Context, idUsuario int64) ([]*entity.Finca, error)
	ActualizarParcial(ctx context.Context, id int64, patch FincaPatch) (*entity.Finca, error)
	Delete(ctx context.Context, id int64) error
	// SetAdministrador fija o limpia la denormalización fincas.administrador_id.
	SetAdministrador(ctx context.Context, idFinca int64, idUsuario *int64) error
}
