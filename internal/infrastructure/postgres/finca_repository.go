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

var _ repository.FincaRepository = (*FincaRepo)(nil)

const columnasFinca = `id_finca, nombre_finca, ubicacion, nombre_admin, telefono_admin, administrador_id`

// FincaRepo implementación del puerto FincaRepository sobre PostgreSQL (usable con pool o tx).
type FincaRepo struct {
	q Querier
}

// NewFincaRepository construye el adaptador de persistencia para fincas.
func NewFincaRepository(q Querier) *FincaRepo {
	return &FincaRepo{q: q}
}

// Create persiste una finca nueva y fija el ID generado.
func (r *FincaRepo) Create(ctx context.Context, f *entity.Finca) error {
	query := `
		INSERT INTO fincas (nombre_finca, ubicacion, nombre_admin, telefono_admin, administrador_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_finca`
	err := r.q.QueryRow(ctx, query,
		f.NombreFinca, f.Ubicacion, f.NombreAdmin, f.TelefonoAdmin, f.AdministradorID,
	).Scan(&f.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ya existe una finca con ese nombre: %w", domain.ErrDuplicado)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("administrador_id no corresponde a un usuario existente: %w", domain.ErrReferenciaInvalida)
		}
		return fmt.Errorf("insert finca: %w", err)
	}
	return nil
}

// GetByID obtiene una finca por ID.
func (r *FincaRepo) GetByID(ctx context.Context, id int64) (*entity.Finca, error) {
	return r.get(ctx, `SELECT `+columnasFinca+` FROM fincas WHERE id_finca = $1`, id)
}

// Existe verifica la existencia de la finca.
func (r *FincaRepo) Existe(ctx context.Context, id int64) (bool, error) {
	var uno int
	err := r.q.QueryRow(ctx, `SELECT 1 FROM fincas WHERE id_finca = $1`, id).Scan(&uno)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("existe finca: %w", err)
	}
	return true, nil
}

// ListAll lista todas las fincas.
func (r *FincaRepo) ListAll(ctx context.Context) ([]*entity.Finca, error) {
	return r.list(ctx, `SELECT `+columnasFinca+` FROM fincas ORDER BY id_finca`)
}

// ListByUsuario lista las fincas donde el usuario tiene algún rol.
func (r *FincaRepo) ListByUsuario(ctx context.Context, idUsuario int64) ([]*entity.Finca, error) {
	query := `
		SELECT f.id_finca, f.nombre_finca, f.ubicacion, f.nombre_admin, f.telefono_admin, f.administrador_id
		FROM fincas f
		JOIN usuario_finca_roles ufr ON ufr.id_finca = f.id_finca
		WHERE ufr.id_usuario = $1
		GROUP BY f.id_finca
		ORDER BY f.id_finca`
	return r.list(ctx, query, idUsuario)
}

// ActualizarParcial arma el UPDATE solo con los campos presentes del patch.
func (r *FincaRepo) ActualizarParcial(ctx context.Context, id int64, patch repository.FincaPatch) (*entity.Finca, error) {
	var (
		sets []string
		args []any
	)
	add := func(columna string, valor any) {
		args = append(args, valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", columna, len(args)))
	}
	if patch.NombreFinca != nil {
		add("nombre_finca", *patch.NombreFinca)
	}
	if patch.Ubicacion != nil {
		add("ubicacion", *patch.Ubicacion)
	}
	if patch.NombreAdmin != nil {
		add("nombre_admin", *patch.NombreAdmin)
	}
	if patch.TelefonoAdmin != nil {
		add("telefono_admin", *patch.TelefonoAdmin)
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE fincas SET %s WHERE id_finca = $%d RETURNING `+columnasFinca,
		join(sets), len(args))
	return r.get(ctx, query, args...)
}

// Delete elimina la finca. Las FK RESTRICT de semovientes producen ErrConflicto.
func (r *FincaRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM fincas WHERE id_finca = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("la finca tiene semovientes o miembros asociados: %w", domain.ErrConflicto)
		}
		return fmt.Errorf("delete finca: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

// SetAdministrador fija o limpia la denormalización fincas.administrador_id.
func (r *FincaRepo) SetAdministrador(ctx context.Context, idFinca int64, idUsuario *int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE fincas SET administrador_id = $2 WHERE id_finca = $1`, idFinca, idUsuario)
	if err != nil {
		return fmt.Errorf("set administrador: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

func (r *FincaRepo) get(ctx context.Context, query string, args ...any) (*entity.Finca, error) {
	var f entity.Finca
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.NombreFinca, &f.Ubicacion, &f.NombreAdmin, &f.TelefonoAdmin, &f.AdministradorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finca: %w", err)
	}
	return &f, nil
}

func (r *FincaRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Finca, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fincas: %w", err)
	}
	defer rows.Close()

	var fincas []*entity.Finca
	for rows.Next() {
		var f entity.Finca
		if err := rows.Scan(&f.ID, &f.NombreFinca, &f.Ubicacion, &f.NombreAdmin, &f.TelefonoAdmin, &f.AdministradorID); err != nil {
			return nil, fmt.Errorf("scan finca: %w", err)
		}
		fincas = append(fincas, &f)
	}
	return fincas, rows.Err()
}
