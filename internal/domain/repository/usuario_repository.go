package repository

import (
	"context"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// UsuarioPatch campos opcionales para la actualización parcial de una cuenta.
// nil significa "sin cambio"; el adaptador arma el UPDATE solo con los campos
// presentes (lista blanca, nunca SQL dinámico sobre claves del request).
type UsuarioPatch struct {
	NombreUsuario     *string
	CorreoElectronico *string
	NombreCompleto    *string
	Rol               *string // rol global; validado antes de llegar aquí
}

// EstaVacio indica que no hay nada que actualizar.
func (p UsuarioPatch) EstaVacio() bool {
	return p.NombreUsuario == nil && p.CorreoElectronico == nil &&
		p.NombreCompleto == nil && p.Rol == nil
}

// UsuarioRepository define el puerto de persistencia para cuentas.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	// GetByLogin busca por nombre_usuario O correo_electronico.
	GetByLogin(ctx context.Context, usuario string) (*entity.Usuario, error)
	List(ctx context.Context) ([]*entity.Usuario, error)
	ActualizarParcial(ctx context.Context, id int64, patch UsuarioPatch) (*entity.Usuario, error)
	ActualizarContrasena(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) error
}
