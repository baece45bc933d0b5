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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const columnasUsuario = `id_usuario, nombre_usuario, correo_electronico, contrasena, rol, nombre_completo`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para cuentas.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste una cuenta nueva y fija el ID generado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre_usuario, correo_electronico, contrasena, rol, nombre_completo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_usuario`
	err := r.q.QueryRow(ctx, query,
		u.NombreUsuario, u.CorreoElectronico, u.Contrasena, u.Rol, u.NombreCompleto,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("usuario o correo ya registrado: %w", domain.ErrDuplicado)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE id_usuario = $1`
	return r.get(ctx, query, id)
}

// GetByLogin busca por nombre_usuario O correo_electronico.
func (r *UsuarioRepo) GetByLogin(ctx context.Context, usuario string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + `
		FROM usuarios
		WHERE nombre_usuario = $1 OR correo_electronico = $1
		LIMIT 1`
	return r.get(ctx, query, usuario)
}

// List lista todas las cuentas.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios ORDER BY id_usuario`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.NombreUsuario, &u.CorreoElectronico, &u.Contrasena, &u.Rol, &u.NombreCompleto); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		usuarios = append(usuarios, &u)
	}
	return usuarios, rows.Err()
}

// ActualizarParcial arma el UPDATE solo con los campos presentes del patch.
func (r *UsuarioRepo) ActualizarParcial(ctx context.Context, id int64, patch repository.UsuarioPatch) (*entity.Usuario, error) {
	var (
		sets []string
		args []any
	)
	add := func(columna string, valor any) {
		args = append(args, valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", columna, len(args)))
	}
	if patch.NombreUsuario != nil {
		add("nombre_usuario", *patch.NombreUsuario)
	}
	if patch.CorreoElectronico != nil {
		add("correo_electronico", *patch.CorreoElectronico)
	}
	if patch.NombreCompleto != nil {
		add("nombre_completo", *patch.NombreCompleto)
	}
	if patch.Rol != nil {
		add("rol", *patch.Rol)
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE usuarios SET %s WHERE id_usuario = $%d RETURNING `+columnasUsuario,
		join(sets), len(args))

	usuario, err := r.get(ctx, query, args...)
	if err != nil && isUniqueViolation(err) {
		return nil, fmt.Errorf("usuario o correo ya registrado: %w", domain.ErrDuplicado)
	}
	return usuario, err
}

// ActualizarContrasena reemplaza el hash de la contraseña.
func (r *UsuarioRepo) ActualizarContrasena(ctx context.Context, id int64, hash string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE usuarios SET contrasena = $2 WHERE id_usuario = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update contrasena: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUsuarioNoEncontrado
	}
	return nil
}

// Delete elimina la cuenta. Las FK RESTRICT de otras tablas producen ErrConflicto.
func (r *UsuarioRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("existen datos asociados a la cuenta: %w", domain.ErrConflicto)
		}
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUsuarioNoEncontrado
	}
	return nil
}

func (r *UsuarioRepo) get(ctx context.Context, query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.NombreUsuario, &u.CorreoElectronico, &u.Contrasena, &u.Rol, &u.NombreCompleto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
