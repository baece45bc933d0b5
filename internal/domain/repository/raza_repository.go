package repository

import (
	"context"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// RazaRepository catálogo de especies y razas (solo lectura).
type RazaRepository interface {
	// RazaPerteneceAEspecie valida la pareja (id_raza, id_especie).
	RazaPerteneceAEspecie(ctx context.Context, idRaza, idEspecie int64) (bool, error)
	GetRaza(ctx context.Context, idRaza int64) (*entity.Raza, error)
	GetEspecie(ctx context.Context, idEspecie int64) (*entity.Especie, error)
}
