package usecase

import (
	"context"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// cargarActor arma el actor del evaluador: identidad del token más los roles
// por finca leídos de la base. Para un SuperAdmin el mapa no importa, el
// evaluador corta antes de mirarlo.
func cargarActor(ctx context.Context, miembros repository.MiembroRepository, a dto.Actor) (authz.Actor, error) {
	if a.EsSuperAdmin() {
		return authz.Actor{IDUsuario: a.IDUsuario, RolGlobal: a.Rol}, nil
	}
	roles, err := miembros.RolesDeUsuario(ctx, a.IDUsuario)
	if err != nil {
		return authz.Actor{}, err
	}
	return authz.Actor{IDUsuario: a.IDUsuario, RolGlobal: a.Rol, RolesFinca: roles}, nil
}
