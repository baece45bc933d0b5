package repository

import (
	"context"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// MovimientoRepository define el puerto del libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovimientoRepository interface {
	Create(ctx context.Context, m *entity.Movimiento) error
	GetByID(ctx context.Context, id int64) (*entity.Movimiento, error)
	ListBySemoviente(ctx context.Context, idSemoviente int64) ([]*entity.Movimiento, error)
	// FincasRelacionadas devuelve la finca actual del animal más todas las
	// fincas origen/destino que aparecen en su historial (para decidir quién
	// puede leer el libro).
	FincasRelacionadas(ctx context.Context, idSemoviente int64) ([]int64, error)
}
