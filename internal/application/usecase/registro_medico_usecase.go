package usecase

import (
	"context"
	"strings"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// RegistroMedicoUseCase eventos sanitarios de un semoviente. Lectura para
// cualquier miembro; escritura para AdminFinca, Empleado o Veterinario;
// borrado solo AdminFinca.
type RegistroMedicoUseCase struct {
	registroRepo   repository.RegistroMedicoRepository
	semovienteRepo repository.SemovienteRepository
	miembroRepo    repository.MiembroRepository
}

// NewRegistroMedicoUseCase construye el caso de uso.
func NewRegistroMedicoUseCase(registroRepo repository.RegistroMedicoRepository, semovienteRepo repository.SemovienteRepository, miembroRepo repository.MiembroRepository) *RegistroMedicoUseCase {
	return &RegistroMedicoUseCase{registroRepo: registroRepo, semovienteRepo: semovienteRepo, miembroRepo: miembroRepo}
}

// Listar lista los registros médicos del semoviente, más reciente primero.
func (uc *RegistroMedicoUseCase) Listar(ctx context.Context, actor dto.Actor, idSemoviente int64) ([]dto.RegistroMedicoResponse, error) {
	if err := uc.verificar(ctx, actor, idSemoviente, authz.OpLectura); err != nil {
		return nil, err
	}
	registros, err := uc.registroRepo.ListBySemoviente(ctx, idSemoviente)
	if err != nil {
		return nil, err
	}
	return dto.RegistrosMedicosDesdeEntidades(registros), nil
}

// Crear registra un evento sanitario.
func (uc *RegistroMedicoUseCase) Crear(ctx context.Context, actor dto.Actor, idSemoviente int64, in dto.CrearRegistroMedicoRequest) (*dto.RegistroMedicoResponse, error) {
	if err := validarRegistroMedico(in); err != nil {
		return nil, err
	}
	if err := uc.verificar(ctx, actor, idSemoviente, authz.OpEscrituraRegistros); err != nil {
		return nil, err
	}
	registro := &entity.RegistroMedico{
		IDSemoviente:           idSemoviente,
		FechaConsulta:          in.FechaConsulta.Time,
		TipoEventoMedico:       strings.TrimSpace(in.TipoEventoMedico),
		Diagnostico:            in.Diagnostico,
		TratamientoAplicado:    in.TratamientoAplicado,
		VeterinarioResponsable: in.VeterinarioResponsable,
		Costo:                  in.Costo,
		Observaciones:          in.Observaciones,
		NombreVacuna:           in.NombreVacuna,
		Dosis:                  in.Dosis,
		ProximaFecha:           in.ProximaFecha.Ptr(),
	}
	if err := uc.registroRepo.Create(ctx, registro); err != nil {
		return nil, err
	}
	resp := dto.RegistroMedicoDesdeEntidad(registro)
	return &resp, nil
}

// Actualizar edita un evento sanitario; el registro debe pertenecer al semoviente.
func (uc *RegistroMedicoUseCase) Actualizar(ctx context.Context, actor dto.Actor, idSemoviente, idRegistro int64, in dto.ActualizarRegistroMedicoRequest) (*dto.RegistroMedicoResponse, error) {
	patch := repository.RegistroMedicoPatch{
		FechaConsulta:          in.FechaConsulta.Ptr(),
		TipoEventoMedico:       in.TipoEventoMedico,
		Diagnostico:            in.Diagnostico,
		TratamientoAplicado:    in.TratamientoAplicado,
		VeterinarioResponsable: in.VeterinarioResponsable,
		Costo:                  in.Costo,
		Observaciones:          in.Observaciones,
		NombreVacuna:           in.NombreVacuna,
		Dosis:                  in.Dosis,
		ProximaFecha:           in.ProximaFecha.Ptr(),
	}
	if patch.EstaVacio() {
		return nil, domain.Validacion("No hay campos para actualizar")
	}
	if in.Costo != nil && !in.Costo.GreaterThan(decimal.Zero) {
		return nil, domain.Validacion("costo debe ser positivo")
	}
	if err := uc.verificar(ctx, actor, idSemoviente, authz.OpEscrituraRegistros); err != nil {
		return nil, err
	}
	registro, err := uc.registroRepo.ActualizarParcial(ctx, idSemoviente, idRegistro, patch)
	if err != nil {
		return nil, err
	}
	if registro == nil {
		return nil, domain.ErrNoEncontrado
	}
	resp := dto.RegistroMedicoDesdeEntidad(registro)
	return &resp, nil
}

// Eliminar borra un evento sanitario. Solo AdminFinca o SuperAdmin.
func (uc *RegistroMedicoUseCase) Eliminar(ctx context.Context, actor dto.Actor, idSemoviente, idRegistro int64) error {
	if err := uc.verificar(ctx, actor, idSemoviente, authz.OpAdministracion); err != nil {
		return err
	}
	borrado, err := uc.registroRepo.Delete(ctx, idSemoviente, idRegistro)
	if err != nil {
		return err
	}
	if !borrado {
		return domain.ErrNoEncontrado
	}
	return nil
}

func (uc *RegistroMedicoUseCase) verificar(ctx context.Context, actor dto.Actor, idSemoviente int64, op authz.Operacion) error {
	semoviente, err := uc.semovienteRepo.GetByID(ctx, idSemoviente)
	if err != nil {
		return err
	}
	if semoviente == nil {
		return domain.ErrNoEncontrado
	}
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return err
	}
	if !authz.PuedeEnFinca(ev, op, semoviente.IDFinca) {
		return domain.ErrProhibido
	}
	return nil
}

func validarRegistroMedico(in dto.CrearRegistroMedicoRequest) error {
	var issues []string
	if in.FechaConsulta.IsZero() {
		issues = append(issues, "fecha_consulta es requerida")
	}
	if strings.TrimSpace(in.TipoEventoMedico) == "" {
		issues = append(issues, "tipo_evento_medico es requerido")
	}
	if in.Costo != nil && !in.Costo.GreaterThan(decimal.Zero) {
		issues = append(issues, "costo debe ser positivo")
	}
	if len(issues) > 0 {
		return domain.Validacion("Datos inválidos", issues...)
	}
	return nil
}
