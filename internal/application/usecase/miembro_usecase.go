package usecase

import (
	"context"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// MiembroUseCase registro de membresías: un único rol por par (usuario, finca)
// con la denormalización fincas.administrador_id mantenida en la misma
// transacción que cada asignación o revocación.
type MiembroUseCase struct {
	miembroRepo repository.MiembroRepository
	fincaRepo   repository.FincaRepository
	tx          repository.TxRunner
}

// NewMiembroUseCase construye el caso de uso.
func NewMiembroUseCase(miembroRepo repository.MiembroRepository, fincaRepo repository.FincaRepository, tx repository.TxRunner) *MiembroUseCase {
	return &MiembroUseCase{miembroRepo: miembroRepo, fincaRepo: fincaRepo, tx: tx}
}

// Listar lista los miembros de la finca. Cualquier miembro o SuperAdmin.
func (uc *MiembroUseCase) Listar(ctx context.Context, actor dto.Actor, idFinca int64) ([]dto.MiembroResponse, error) {
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return nil, err
	}
	if !authz.PuedeEnFinca(ev, authz.OpLectura, idFinca) {
		return nil, domain.ErrProhibido
	}
	miembros, err := uc.miembroRepo.ListarPorFinca(ctx, idFinca)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MiembroResponse, 0, len(miembros))
	for _, m := range miembros {
		out = append(out, dto.MiembroDesdeEntidad(m))
	}
	return out, nil
}

// Asignar asigna o reemplaza el rol del usuario en la finca (upsert).
// SuperAdmin o AdminFinca de la finca. AdminFinca fija administrador_id;
// degradar desde AdminFinca lo limpia si apuntaba a ese usuario.
func (uc *MiembroUseCase) Asignar(ctx context.Context, actor dto.Actor, idFinca int64, in dto.AsignarMiembroRequest) (*dto.AsignacionResponse, error) {
	rol := entity.NormalizarRolFinca(in.Rol)
	if rol == "" {
		return nil, domain.Validacion("rol inválido: " + in.Rol)
	}
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return nil, err
	}
	if !authz.PuedeAsignarMiembro(ev, idFinca) {
		return nil, domain.ErrProhibido
	}

	err = uc.tx.EnTransaccion(ctx, func(r repository.Repositorios) error {
		rolAnterior, err := r.Miembros.GetRol(ctx, in.IDUsuario, idFinca)
		if err != nil {
			return err
		}
		if err := r.Miembros.Upsert(ctx, &entity.MiembroFinca{
			IDUsuario: in.IDUsuario,
			IDFinca:   idFinca,
			Rol:       rol,
		}); err != nil {
			return err
		}
		if rol == entity.RolFincaAdmin {
			return r.Fincas.SetAdministrador(ctx, idFinca, &in.IDUsuario)
		}
		if rolAnterior == entity.RolFincaAdmin {
			finca, err := r.Fincas.GetByID(ctx, idFinca)
			if err != nil {
				return err
			}
			if finca != nil && finca.AdministradorID != nil && *finca.AdministradorID == in.IDUsuario {
				return r.Fincas.SetAdministrador(ctx, idFinca, nil)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.AsignacionResponse{IDUsuario: in.IDUsuario, IDFinca: idFinca, Rol: rol}, nil
}

// Revocar elimina la asignación solo si el rol coincide exactamente.
// SuperAdmin o AdminFinca. Quitar AdminFinca limpia administrador_id si
// apuntaba a ese usuario.
func (uc *MiembroUseCase) Revocar(ctx context.Context, actor dto.Actor, idFinca, idUsuario int64, rol string) error {
	rolNorm := entity.NormalizarRolFinca(rol)
	if rolNorm == "" {
		return domain.Validacion("Debe enviar rol a remover (?rol=Empleado|Veterinario|AdminFinca)")
	}
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return err
	}
	if !authz.PuedeAsignarMiembro(ev, idFinca) {
		return domain.ErrProhibido
	}

	return uc.tx.EnTransaccion(ctx, func(r repository.Repositorios) error {
		borrado, err := r.Miembros.Delete(ctx, idUsuario, idFinca, rolNorm)
		if err != nil {
			return err
		}
		if !borrado {
			return domain.ErrNoEncontrado
		}
		if rolNorm == entity.RolFincaAdmin {
			finca, err := r.Fincas.GetByID(ctx, idFinca)
			if err != nil {
				return err
			}
			if finca != nil && finca.AdministradorID != nil && *finca.AdministradorID == idUsuario {
				return r.Fincas.SetAdministrador(ctx, idFinca, nil)
			}
		}
		return nil
	})
}
