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

var _ repository.MiembroRepository = (*MiembroRepo)(nil)

// MiembroRepo implementación del puerto MiembroRepository sobre PostgreSQL
// (tabla usuario_finca_roles, clave única (id_usuario, id_finca)).
type MiembroRepo struct {
	q Querier
}

// NewMiembroRepository construye el adaptador de persistencia para membresías.
func NewMiembroRepository(q Querier) *MiembroRepo {
	return &MiembroRepo{q: q}
}

// GetRol devuelve el rol del usuario en la finca, o "" si no es miembro.
func (r *MiembroRepo) GetRol(ctx context.Context, idUsuario, idFinca int64) (string, error) {
	var rol string
	err := r.q.QueryRow(ctx,
		`SELECT rol FROM usuario_finca_roles WHERE id_usuario = $1 AND id_finca = $2 LIMIT 1`,
		idUsuario, idFinca,
	).Scan(&rol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get rol: %w", err)
	}
	return rol, nil
}

// RolesDeUsuario devuelve todos los roles por finca del usuario.
func (r *MiembroRepo) RolesDeUsuario(ctx context.Context, idUsuario int64) (map[int64]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id_finca, rol FROM usuario_finca_roles WHERE id_usuario = $1`, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("roles de usuario: %w", err)
	}
	defer rows.Close()

	roles := make(map[int64]string)
	for rows.Next() {
		var idFinca int64
		var rol string
		if err := rows.Scan(&idFinca, &rol); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		roles[idFinca] = rol
	}
	return roles, rows.Err()
}

// ListarPorFinca lista los miembros de la finca con sus datos de cuenta.
func (r *MiembroRepo) ListarPorFinca(ctx context.Context, idFinca int64) ([]*entity.MiembroDetalle, error) {
	query := `
		SELECT u.id_usuario, u.nombre_usuario, u.nombre_completo,
		       u.correo_electronico, u.rol AS rol_global, ufr.rol AS rol_finca
		FROM usuario_finca_roles ufr
		JOIN usuarios u ON u.id_usuario = ufr.id_usuario
		WHERE ufr.id_finca = $1
		ORDER BY u.nombre_usuario`
	rows, err := r.q.Query(ctx, query, idFinca)
	if err != nil {
		return nil, fmt.Errorf("listar miembros: %w", err)
	}
	defer rows.Close()

	var miembros []*entity.MiembroDetalle
	for rows.Next() {
		var m entity.MiembroDetalle
		if err := rows.Scan(&m.IDUsuario, &m.NombreUsuario, &m.NombreCompleto, &m.CorreoElectronico, &m.RolGlobal, &m.RolFinca); err != nil {
			return nil, fmt.Errorf("scan miembro: %w", err)
		}
		miembros = append(miembros, &m)
	}
	return miembros, rows.Err()
}

// ListarFincasConRol devuelve las fincas del usuario junto con su rol en cada una.
func (r *MiembroRepo) ListarFincasConRol(ctx context.Context, idUsuario int64) ([]repository.FincaConRol, error) {
	query := `
		SELECT f.id_finca, f.nombre_finca, ufr.rol
		FROM usuario_finca_roles ufr
		JOIN fincas f ON f.id_finca = ufr.id_finca
		WHERE ufr.id_usuario = $1
		ORDER BY f.id_finca`
	rows, err := r.q.Query(ctx, query, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("listar fincas con rol: %w", err)
	}
	defer rows.Close()

	var fincas []repository.FincaConRol
	for rows.Next() {
		var f repository.FincaConRol
		if err := rows.Scan(&f.IDFinca, &f.NombreFinca, &f.RolEnFinca); err != nil {
			return nil, fmt.Errorf("scan finca con rol: %w", err)
		}
		fincas = append(fincas, f)
	}
	return fincas, rows.Err()
}

// CompartenFincaComoAdmin verifica si existe una finca donde idAdmin es
// AdminFinca y idObjetivo tiene cualquier rol.
func (r *MiembroRepo) CompartenFincaComoAdmin(ctx context.Context, idAdmin, idObjetivo int64) (bool, error) {
	query := `
		SELECT 1
		FROM usuario_finca_roles a
		JOIN usuario_finca_roles o ON o.id_finca = a.id_finca
		WHERE a.id_usuario = $1 AND a.rol = 'AdminFinca'
		  AND o.id_usuario = $2
		LIMIT 1`
	var uno int
	err := r.q.QueryRow(ctx, query, idAdmin, idObjetivo).Scan(&uno)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("comparten finca: %w", err)
	}
	return true, nil
}

// Upsert inserta o reemplaza el único rol del par (usuario, finca).
func (r *MiembroRepo) Upsert(ctx context.Context, m *entity.MiembroFinca) error {
	query := `
		INSERT INTO usuario_finca_roles (id_usuario, id_finca, rol)
		VALUES ($1, $2, $3)
		ON CONFLICT (id_usuario, id_finca)
		DO UPDATE SET rol = EXCLUDED.rol`
	_, err := r.q.Exec(ctx, query, m.IDUsuario, m.IDFinca, m.Rol)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("usuario o finca inexistente: %w", domain.ErrReferenciaInvalida)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("conflicto por restricción de unicidad: %w", domain.ErrConflicto)
		}
		return fmt.Errorf("upsert miembro: %w", err)
	}
	return nil
}

// Delete elimina la fila solo si el rol almacenado coincide exactamente.
func (r *MiembroRepo) Delete(ctx context.Context, idUsuario, idFinca int64, rol string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM usuario_finca_roles WHERE id_usuario = $1 AND id_finca = $2 AND rol = $3`,
		idUsuario, idFinca, rol)
	if err != nil {
		return false, fmt.Errorf("delete miembro: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
