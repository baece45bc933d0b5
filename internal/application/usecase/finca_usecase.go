package usecase

import (
	"context"
	"strings"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// FincaUseCase casos de uso CRUD de fincas.
type FincaUseCase struct {
	fincaRepo   repository.FincaRepository
	miembroRepo repository.MiembroRepository
}

// NewFincaUseCase construye el caso de uso.
func NewFincaUseCase(fincaRepo repository.FincaRepository, miembroRepo repository.MiembroRepository) *FincaUseCase {
	return &FincaUseCase{fincaRepo: fincaRepo, miembroRepo: miembroRepo}
}

// Crear crea una finca. Solo SuperAdmin; administrador_id es opcional y debe
// apuntar a un usuario existente (la FK lo garantiza).
func (uc *FincaUseCase) Crear(ctx context.Context, actor dto.Actor, in dto.CrearFincaRequest) (*dto.FincaResponse, error) {
	if !actor.EsSuperAdmin() {
		return nil, domain.ErrProhibido
	}
	if strings.TrimSpace(in.NombreFinca) == "" {
		return nil, domain.Validacion("nombre_finca es requerido")
	}
	finca := &entity.Finca{
		NombreFinca:     strings.TrimSpace(in.NombreFinca),
		Ubicacion:       in.Ubicacion,
		NombreAdmin:     in.NombreAdmin,
		TelefonoAdmin:   in.TelefonoAdmin,
		AdministradorID: in.AdministradorID,
	}
	if err := uc.fincaRepo.Create(ctx, finca); err != nil {
		return nil, err
	}
	resp := dto.FincaDesdeEntidad(finca)
	return &resp, nil
}

// Listar devuelve todas las fincas para un SuperAdmin o las fincas donde el
// actor tiene algún rol para el resto.
func (uc *FincaUseCase) Listar(ctx context.Context, actor dto.Actor) ([]dto.FincaResponse, error) {
	var (
		fincas []*entity.Finca
		err    error
	)
	if actor.EsSuperAdmin() {
		fincas, err = uc.fincaRepo.ListAll(ctx)
	} else {
		fincas, err = uc.fincaRepo.ListByUsuario(ctx, actor.IDUsuario)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.FincaResponse, 0, len(fincas))
	for _, f := range fincas {
		out = append(out, dto.FincaDesdeEntidad(f))
	}
	return out, nil
}

// GetPorID devuelve la finca si el actor es SuperAdmin o miembro.
func (uc *FincaUseCase) GetPorID(ctx context.Context, actor dto.Actor, id int64) (*dto.FincaResponse, error) {
	finca, err := uc.fincaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if finca == nil {
		return nil, domain.ErrNoEncontrado
	}
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return nil, err
	}
	if !authz.PuedeEnFinca(ev, authz.OpLectura, id) {
		return nil, domain.ErrProhibido
	}
	resp := dto.FincaDesdeEntidad(finca)
	return &resp, nil
}

// Actualizar edita la finca. SuperAdmin o AdminFinca de esa finca.
func (uc *FincaUseCase) Actualizar(ctx context.Context, actor dto.Actor, id int64, in dto.ActualizarFincaRequest) (*dto.FincaResponse, error) {
	patch := repository.FincaPatch{
		NombreFinca:   in.NombreFinca,
		Ubicacion:     in.Ubicacion,
		NombreAdmin:   in.NombreAdmin,
		TelefonoAdmin: in.TelefonoAdmin,
	}
	if patch.EstaVacio() {
		return nil, domain.Validacion("No hay campos para actualizar")
	}
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return nil, err
	}
	if !authz.PuedeEnFinca(ev, authz.OpAdministracion, id) {
		return nil, domain.ErrProhibido
	}
	finca, err := uc.fincaRepo.ActualizarParcial(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if finca == nil {
		return nil, domain.ErrNoEncontrado
	}
	resp := dto.FincaDesdeEntidad(finca)
	return &resp, nil
}

// Eliminar borra la finca. Solo SuperAdmin; las FK RESTRICT de semovientes
// producen 409 vía ErrConflicto.
func (uc *FincaUseCase) Eliminar(ctx context.Context, actor dto.Actor, id int64) error {
	if !actor.EsSuperAdmin() {
		return domain.ErrProhibido
	}
	return uc.fincaRepo.Delete(ctx, id)
}
