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

var _ repository.RegistroMedicoRepository = (*RegistroMedicoRepo)(nil)

const columnasRegistro = `id_registro_medico, id_semoviente, fecha_consulta, tipo_evento_medico,
	diagnostico, tratamiento_aplicado, veterinario_responsable, costo, observaciones,
	nombre_vacuna, dosis, proxima_fecha`

// RegistroMedicoRepo implementación del puerto RegistroMedicoRepository sobre PostgreSQL.
type RegistroMedicoRepo struct {
	q Querier
}

// NewRegistroMedicoRepository construye el adaptador de eventos sanitarios.
func NewRegistroMedicoRepository(q Querier) *RegistroMedicoRepo {
	return &RegistroMedicoRepo{q: q}
}

// Create persiste un registro médico y fija el ID generado.
func (r *RegistroMedicoRepo) Create(ctx context.Context, reg *entity.RegistroMedico) error {
	query := `
		INSERT INTO registros_medicos
			(id_semoviente, fecha_consulta, tipo_evento_medico, diagnostico, tratamiento_aplicado,
			 veterinario_responsable, costo, observaciones, nombre_vacuna, dosis, proxima_fecha)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id_registro_medico`
	err := r.q.QueryRow(ctx, query,
		reg.IDSemoviente, reg.FechaConsulta, reg.TipoEventoMedico, reg.Diagnostico,
		reg.TratamientoAplicado, reg.VeterinarioResponsable, reg.Costo, reg.Observaciones,
		reg.NombreVacuna, reg.Dosis, reg.ProximaFecha,
	).Scan(&reg.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("semoviente inexistente: %w", domain.ErrReferenciaInvalida)
		}
		return fmt.Errorf("insert registro medico: %w", err)
	}
	return nil
}

// ListBySemoviente lista los registros del semoviente, más reciente primero.
func (r *RegistroMedicoRepo) ListBySemoviente(ctx context.Context, idSemoviente int64) ([]*entity.RegistroMedico, error) {
	query := `
		SELECT ` + columnasRegistro + `
		FROM registros_medicos
		WHERE id_semoviente = $1
		ORDER BY fecha_consulta DESC, id_registro_medico DESC`
	rows, err := r.q.Query(ctx, query, idSemoviente)
	if err != nil {
		return nil, fmt.Errorf("list registros medicos: %w", err)
	}
	defer rows.Close()

	var registros []*entity.RegistroMedico
	for rows.Next() {
		var reg entity.RegistroMedico
		if err := rows.Scan(&reg.ID, &reg.IDSemoviente, &reg.FechaConsulta, &reg.TipoEventoMedico,
			&reg.Diagnostico, &reg.TratamientoAplicado, &reg.VeterinarioResponsable, &reg.Costo,
			&reg.Observaciones, &reg.NombreVacuna, &reg.Dosis, &reg.ProximaFecha); err != nil {
			return nil, fmt.Errorf("scan registro medico: %w", err)
		}
		registros = append(registros, &reg)
	}
	return registros, rows.Err()
}

// ActualizarParcial arma el UPDATE solo con los campos presentes. El WHERE
// exige que el registro pertenezca al semoviente.
func (r *RegistroMedicoRepo) ActualizarParcial(ctx context.Context, idSemoviente, idRegistro int64, patch repository.RegistroMedicoPatch) (*entity.RegistroMedico, error) {
	var (
		sets []string
		args []any
	)
	add := func(columna string, valor any) {
		args = append(args, valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", columna, len(args)))
	}
	if patch.FechaConsulta != nil {
		add("fecha_consulta", *patch.FechaConsulta)
	}
	if patch.TipoEventoMedico != nil {
		add("tipo_evento_medico", *patch.TipoEventoMedico)
	}
	if patch.Diagnostico != nil {
		add("diagnostico", *patch.Diagnostico)
	}
	if patch.TratamientoAplicado != nil {
		add("tratamiento_aplicado", *patch.TratamientoAplicado)
	}
	if patch.VeterinarioResponsable != nil {
		add("veterinario_responsable", *patch.VeterinarioResponsable)
	}
	if patch.Costo != nil {
		add("costo", *patch.Costo)
	}
	if patch.Observaciones != nil {
		add("observaciones", *patch.Observaciones)
	}
	if patch.NombreVacuna != nil {
		add("nombre_vacuna", *patch.NombreVacuna)
	}
	if patch.Dosis != nil {
		add("dosis", *patch.Dosis)
	}
	if patch.ProximaFecha != nil {
		add("proxima_fecha", *patch.ProximaFecha)
	}
	args = append(args, idSemoviente, idRegistro)
	query := fmt.Sprintf(`
		UPDATE registros_medicos SET %s
		WHERE id_semoviente = $%d AND id_registro_medico = $%d
		RETURNING `+columnasRegistro,
		join(sets), len(args)-1, len(args))

	var reg entity.RegistroMedico
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&reg.ID, &reg.IDSemoviente, &reg.FechaConsulta, &reg.TipoEventoMedico,
		&reg.Diagnostico, &reg.TratamientoAplicado, &reg.VeterinarioResponsable, &reg.Costo,
		&reg.Observaciones, &reg.NombreVacuna, &reg.Dosis, &reg.ProximaFecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update registro medico: %w", err)
	}
	return &reg, nil
}

// Delete elimina el registro solo si pertenece al semoviente.
func (r *RegistroMedicoRepo) Delete(ctx context.Context, idSemoviente, idRegistro int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM registros_medicos WHERE id_semoviente = $1 AND id_registro_medico = $2`,
		idSemoviente, idRegistro)
	if err != nil {
		return false, fmt.Errorf("delete registro medico: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
