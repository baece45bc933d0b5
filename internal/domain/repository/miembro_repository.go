package repository

import (
	"context"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// FincaConRol finca visible para un usuario junto con su rol en ella.
type FincaConRol struct {
	IDFinca     int64
	NombreFinca string
	RolEnFinca  string
}

// MiembroRepository define el puerto de persistencia para la relación
// usuario↔finca (un único rol por par).
type MiembroRepository interface {
	// GetRol devuelve el rol del usuario en la finca, o "" si no es miembro.
	GetRol(ctx context.Context, idUsuario, idFinca int64) (string, error)
	// RolesDeUsuario devuelve todos los roles por finca del usuario.
	RolesDeUsuario(ctx context.Context, idUsuario int64) (map[int64]string, error)
	ListarPorFinca(ctx context.Context, idFinca int64) ([]*entity.MiembroDetalle, error)
	ListarFincasConRol(ctx context.Context, idUsuario int64) ([]FincaConRol, error)
	// CompartenFincaComoAdmin: ¿existe una finca donde idAdmin es AdminFinca y
	// idObjetivo tiene cualquier rol?
	CompartenFincaComoAdmin(ctx context.Context, idAdmin, idObjetivo int64) (bool, error)
	// Upsert inserta o reemplaza el único rol del par (usuario, finca).
	Upsert(ctx context.Context, m *entity.MiembroFinca) error
	// Delete elimina la fila solo si el rol almacenado coincide exactamente.
	// Devuelve false si no había fila que borrar.
	Delete(ctx context.Context, idUsuario, idFinca int64, rol string) (bool, error)
}
