package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

var _ repository.RazaRepository = (*RazaRepo)(nil)

// RazaRepo catálogo de especies y razas sobre PostgreSQL (solo lectura).
type RazaRepo struct {
	q Querier
}

// NewRazaRepository construye el adaptador del catálogo.
func NewRazaRepository(q Querier) *RazaRepo {
	return &RazaRepo{q: q}
}

// RazaPerteneceAEspecie valida la pareja (id_raza, id_especie).
func (r *RazaRepo) RazaPerteneceAEspecie(ctx context.Context, idRaza, idEspecie int64) (bool, error) {
	var uno int
	err := r.q.QueryRow(ctx,
		`SELECT 1 FROM razas WHERE id_raza = $1 AND id_especie = $2 LIMIT 1`,
		idRaza, idEspecie).Scan(&uno)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("validar raza/especie: %w", err)
	}
	return true, nil
}

// GetRaza obtiene una raza por ID.
func (r *RazaRepo) GetRaza(ctx context.Context, idRaza int64) (*entity.Raza, error) {
	var raza entity.Raza
	err := r.q.QueryRow(ctx,
		`SELECT id_raza, id_especie, nombre_raza FROM razas WHERE id_raza = $1`, idRaza,
	).Scan(&raza.ID, &raza.IDEspecie, &raza.NombreRaza)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raza: %w", err)
	}
	return &raza, nil
}

// GetEspecie obtiene una especie por ID.
func (r *RazaRepo) GetEspecie(ctx context.Context, idEspecie int64) (*entity.Especie, error) {
	var especie entity.Especie
	err := r.q.QueryRow(ctx,
		`SELECT id_especie, nombre_especie FROM especies WHERE id_especie = $1`, idEspecie,
	).Scan(&especie.ID, &especie.NombreEspecie)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get especie: %w", err)
	}
	return &especie, nil
}
