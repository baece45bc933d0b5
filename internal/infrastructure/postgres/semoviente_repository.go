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

var _ repository.SemovienteRepository = (*SemovienteRepo)(nil)

const columnasSemoviente = `id_semoviente, nro_marca, nro_registro, nombre, fecha_nacimiento, sexo,
	id_raza, id_especie, id_madre, id_padre, id_finca, estado, tipo_ingreso, fecha_ingreso,
	valor_compra, peso_actual, fecha_peso, nro_chip, nro_sanitario,
	fecha_salida, fecha_baja, motivo_baja, observaciones_baja`

// SemovienteRepo implementación del puerto SemovienteRepository sobre PostgreSQL (usable con pool o tx).
type SemovienteRepo struct {
	q Querier
}

// NewSemovienteRepository construye el adaptador de persistencia para semovientes.
func NewSemovienteRepository(q Querier) *SemovienteRepo {
	return &SemovienteRepo{q: q}
}

// Create persiste un semoviente nuevo y fija el ID generado.
func (r *SemovienteRepo) Create(ctx context.Context, s *entity.Semoviente) error {
	query := `
		INSERT INTO semovientes
			(nro_marca, nro_registro, nombre, fecha_nacimiento, sexo,
			 id_raza, id_especie, id_madre, id_padre, id_finca, estado,
			 tipo_ingreso, fecha_ingreso, valor_compra)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id_semoviente`
	err := r.q.QueryRow(ctx, query,
		s.NroMarca, s.NroRegistro, s.Nombre, s.FechaNacimiento, s.Sexo,
		s.IDRaza, s.IDEspecie, s.IDMadre, s.IDPadre, s.IDFinca, s.Estado,
		s.TipoIngreso, s.FechaIngreso, s.ValorCompra,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("nro. de marca o registro duplicado: %w", domain.ErrDuplicado)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("finca, raza o padres inexistentes: %w", domain.ErrReferenciaInvalida)
		}
		return fmt.Errorf("insert semoviente: %w", err)
	}
	return nil
}

// GetByID obtiene un semoviente por ID.
func (r *SemovienteRepo) GetByID(ctx context.Context, id int64) (*entity.Semoviente, error) {
	return r.get(ctx, `SELECT `+columnasSemoviente+` FROM semovientes WHERE id_semoviente = $1`, id)
}

// GetParaTransicion carga la fila con bloqueo de escritura. Solo tiene sentido
// dentro de una transacción.
func (r *SemovienteRepo) GetParaTransicion(ctx context.Context, id int64) (*entity.Semoviente, error) {
	return r.get(ctx, `SELECT `+columnasSemoviente+` FROM semovientes WHERE id_semoviente = $1 FOR UPDATE`, id)
}

// ListByFinca lista los semovientes de la finca, por defecto solo los Activos.
func (r *SemovienteRepo) ListByFinca(ctx context.Context, idFinca int64, incluirInactivos bool) ([]*entity.Semoviente, error) {
	query := `SELECT ` + columnasSemoviente + ` FROM semovientes WHERE id_finca = $1`
	if !incluirInactivos {
		query += ` AND estado = 'Activo'`
	}
	query += ` ORDER BY id_semoviente DESC`

	rows, err := r.q.Query(ctx, query, idFinca)
	if err != nil {
		return nil, fmt.Errorf("list semovientes: %w", err)
	}
	defer rows.Close()

	var semovientes []*entity.Semoviente
	for rows.Next() {
		s, err := scanSemoviente(rows)
		if err != nil {
			return nil, err
		}
		semovientes = append(semovientes, s)
	}
	return semovientes, rows.Err()
}

// ActualizarParcial arma el UPDATE solo con los campos presentes del patch.
// El estado y la finca nunca se tocan por aquí.
func (r *SemovienteRepo) ActualizarParcial(ctx context.Context, id int64, patch repository.SemovientePatch) (*entity.Semoviente, error) {
	var (
		sets []string
		args []any
	)
	add := func(columna string, valor any) {
		args = append(args, valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", columna, len(args)))
	}
	if patch.NroMarca != nil {
		add("nro_marca", *patch.NroMarca)
	}
	if patch.NroRegistro != nil {
		add("nro_registro", *patch.NroRegistro)
	}
	if patch.Nombre != nil {
		add("nombre", *patch.Nombre)
	}
	if patch.FechaNacimiento != nil {
		add("fecha_nacimiento", *patch.FechaNacimiento)
	}
	if patch.Sexo != nil {
		add("sexo", *patch.Sexo)
	}
	if patch.IDRaza != nil {
		add("id_raza", *patch.IDRaza)
	}
	if patch.IDEspecie != nil {
		add("id_especie", *patch.IDEspecie)
	}
	if patch.IDMadre != nil {
		add("id_madre", *patch.IDMadre)
	}
	if patch.IDPadre != nil {
		add("id_padre", *patch.IDPadre)
	}
	if patch.PesoActual != nil {
		add("peso_actual", *patch.PesoActual)
	}
	if patch.FechaPeso != nil {
		add("fecha_peso", *patch.FechaPeso)
	}
	if patch.FechaIngreso != nil {
		add("fecha_ingreso", *patch.FechaIngreso)
	}
	if patch.NroChip != nil {
		add("nro_chip", *patch.NroChip)
	}
	if patch.NroSanitario != nil {
		add("nro_sanitario", *patch.NroSanitario)
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE semovientes SET %s WHERE id_semoviente = $%d RETURNING `+columnasSemoviente,
		join(sets), len(args))

	semoviente, err := r.get(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("nro. de marca o registro duplicado: %w", domain.ErrDuplicado)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("raza, especie o padres inexistentes: %w", domain.ErrReferenciaInvalida)
		}
	}
	return semoviente, err
}

// CambiarEstado aplica el override administrativo de estado. 'Activo' limpia
// los campos de baja; cualquier otro estado los fija con COALESCE sobre los previos.
func (r *SemovienteRepo) CambiarEstado(ctx context.Context, id int64, cambio repository.CambioEstado) (*entity.Semoviente, error) {
	// Volver a Activo limpia los campos de baja; cualquier otro estado los
	// completa con lo que venga en el cambio.
	if cambio.Estado == entity.EstadoActivo {
		query := `
			UPDATE semovientes
			   SET estado = $1,
			       fecha_baja = NULL,
			       motivo_baja = NULL,
			       observaciones_baja = NULL
			 WHERE id_semoviente = $2
			 RETURNING ` + columnasSemoviente
		return r.get(ctx, query, cambio.Estado, id)
	}
	query := `
		UPDATE semovientes
		   SET estado = $1,
		       fecha_baja = COALESCE($2, fecha_baja),
		       motivo_baja = COALESCE($3, motivo_baja),
		       observaciones_baja = COALESCE($4, observaciones_baja)
		 WHERE id_semoviente = $5
		 RETURNING ` + columnasSemoviente
	return r.get(ctx, query, cambio.Estado, cambio.Fecha, cambio.Motivo, cambio.Observaciones, id)
}

// AplicarTransicion muta estado, finca y campos de baja en una sola sentencia.
func (r *SemovienteRepo) AplicarTransicion(ctx context.Context, id int64, estado string, nuevaFinca *int64, baja *repository.Baja) error {
	query := `
		UPDATE semovientes
		   SET estado = $2,
		       id_finca = COALESCE($3, id_finca),
		       fecha_salida = COALESCE($4, fecha_salida),
		       fecha_baja = COALESCE($4, fecha_baja),
		       motivo_baja = COALESCE($5, motivo_baja),
		       observaciones_baja = COALESCE($6, observaciones_baja)
		 WHERE id_semoviente = $1`
	var (
		fecha  any
		motivo any
		obs    any
	)
	if baja != nil {
		fecha = baja.Fecha
		motivo = baja.Motivo
		obs = baja.Observaciones
	}
	cmd, err := r.q.Exec(ctx, query, id, estado, nuevaFinca, fecha, motivo, obs)
	if err != nil {
		return fmt.Errorf("aplicar transicion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

// AnularPadres pone a NULL id_madre/id_padre en la descendencia del animal.
func (r *SemovienteRepo) AnularPadres(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `
		UPDATE semovientes
		   SET id_madre = CASE WHEN id_madre = $1 THEN NULL ELSE id_madre END,
		       id_padre = CASE WHEN id_padre = $1 THEN NULL ELSE id_padre END
		 WHERE id_madre = $1 OR id_padre = $1`, id)
	if err != nil {
		return fmt.Errorf("anular padres: %w", err)
	}
	return nil
}

// Delete elimina el semoviente. Filas dependientes con RESTRICT producen ErrConflicto.
func (r *SemovienteRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM semovientes WHERE id_semoviente = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("existen datos relacionados (movimientos, registros médicos o descendencia): %w", domain.ErrConflicto)
		}
		return fmt.Errorf("delete semoviente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

func (r *SemovienteRepo) get(ctx context.Context, query string, args ...any) (*entity.Semoviente, error) {
	row := r.q.QueryRow(ctx, query, args...)
	s, err := scanSemovienteRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func scanSemoviente(rows pgx.Rows) (*entity.Semoviente, error) {
	return scanSemovienteRow(rows)
}

func scanSemovienteRow(row pgx.Row) (*entity.Semoviente, error) {
	var s entity.Semoviente
	err := row.Scan(
		&s.ID, &s.NroMarca, &s.NroRegistro, &s.Nombre, &s.FechaNacimiento, &s.Sexo,
		&s.IDRaza, &s.IDEspecie, &s.IDMadre, &s.IDPadre, &s.IDFinca, &s.Estado,
		&s.TipoIngreso, &s.FechaIngreso, &s.ValorCompra, &s.PesoActual, &s.FechaPeso,
		&s.NroChip, &s.NroSanitario, &s.FechaSalida, &s.FechaBaja, &s.MotivoBaja, &s.ObservacionesBaja,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan semoviente: %w", err)
	}
	return &s, nil
}
