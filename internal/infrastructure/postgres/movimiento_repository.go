package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const columnasMovimiento = `id_movimiento, id_semoviente, tipo_movimiento, fecha_movimiento,
	finca_origen_id, finca_destino_id, observaciones, valor`

// MovimientoRepo implementación del puerto MovimientoRepository sobre
// PostgreSQL. El libro es append-only: solo INSERT y SELECT.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador del libro de movimientos.
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create inserta una entrada del libro y fija el ID generado.
func (r *MovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos_semovientes
			(id_semoviente, tipo_movimiento, fecha_movimiento, finca_origen_id, finca_destino_id, observaciones, valor)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_movimiento`
	err := r.q.QueryRow(ctx, query,
		m.IDSemoviente, m.TipoMovimiento, m.FechaMovimiento,
		m.FincaOrigenID, m.FincaDestinoID, m.Observaciones, m.Valor,
	).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("semoviente o finca inexistente: %w", domain.ErrReferenciaInvalida)
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada del libro por ID.
func (r *MovimientoRepo) GetByID(ctx context.Context, id int64) (*entity.Movimiento, error) {
	var m entity.Movimiento
	err := r.q.QueryRow(ctx,
		`SELECT `+columnasMovimiento+` FROM movimientos_semovientes WHERE id_movimiento = $1`, id,
	).Scan(&m.ID, &m.IDSemoviente, &m.TipoMovimiento, &m.FechaMovimiento,
		&m.FincaOrigenID, &m.FincaDestinoID, &m.Observaciones, &m.Valor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// ListBySemoviente lista el libro del semoviente, más reciente primero.
func (r *MovimientoRepo) ListBySemoviente(ctx context.Context, idSemoviente int64) ([]*entity.Movimiento, error) {
	query := `
		SELECT ` + columnasMovimiento + `
		FROM movimientos_semovientes
		WHERE id_semoviente = $1
		ORDER BY fecha_movimiento DESC, id_movimiento DESC`
	rows, err := r.q.Query(ctx, query, idSemoviente)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var movimientos []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.IDSemoviente, &m.TipoMovimiento, &m.FechaMovimiento,
			&m.FincaOrigenID, &m.FincaDestinoID, &m.Observaciones, &m.Valor); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movimientos = append(movimientos, &m)
	}
	return movimientos, rows.Err()
}

// FincasRelacionadas devuelve la finca actual del animal más todas las fincas
// origen/destino de su historial. Vacío si el semoviente no existe.
func (r *MovimientoRepo) FincasRelacionadas(ctx context.Context, idSemoviente int64) ([]int64, error) {
	query := `
		SELECT id_finca FROM semovientes WHERE id_semoviente = $1
		UNION
		SELECT finca_origen_id FROM movimientos_semovientes
		 WHERE id_semoviente = $1 AND finca_origen_id IS NOT NULL
		UNION
		SELECT finca_destino_id FROM movimientos_semovientes
		 WHERE id_semoviente = $1 AND finca_destino_id IS NOT NULL`
	rows, err := r.q.Query(ctx, query, idSemoviente)
	if err != nil {
		return nil, fmt.Errorf("fincas relacionadas: %w", err)
	}
	defer rows.Close()

	var fincas []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan finca relacionada: %w", err)
		}
		fincas = append(fincas, id)
	}
	return fincas, rows.Err()
}
