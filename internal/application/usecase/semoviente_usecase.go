package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/ganado"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// FichaPDFGenerator genera la ficha completa como documento PDF.
type FichaPDFGenerator interface {
	Generar(ficha dto.FichaCompletaResponse) ([]byte, error)
}

// SemovienteUseCase casos de uso CRUD y de consulta de semovientes. Las
// transiciones de salida viven en MovimientoUseCase.
type SemovienteUseCase struct {
	semovienteRepo repository.SemovienteRepository
	miembroRepo    repository.MiembroRepository
	razaRepo       repository.RazaRepository
	registroRepo   repository.RegistroMedicoRepository
	movimientoRepo repository.MovimientoRepository
	tx             repository.TxRunner
	pdf            FichaPDFGenerator
}

// NewSemovienteUseCase construye el caso de uso.
func NewSemovienteUseCase(
	semovienteRepo repository.SemovienteRepository,
	miembroRepo repository.MiembroRepository,
	razaRepo repository.RazaRepository,
	registroRepo repository.RegistroMedicoRepository,
	movimientoRepo repository.MovimientoRepository,
	tx repository.TxRunner,
	pdf FichaPDFGenerator,
) *SemovienteUseCase {
	return &SemovienteUseCase{
		semovienteRepo: semovienteRepo,
		miembroRepo:    miembroRepo,
		razaRepo:       razaRepo,
		registroRepo:   registroRepo,
		movimientoRepo: movimientoRepo,
		tx:             tx,
		pdf:            pdf,
	}
}

// Crear registra un semoviente y su movimiento de origen (Nacimiento o
// Compra) en una sola transacción. Requiere AdminFinca de la finca destino.
func (uc *SemovienteUseCase) Crear(ctx context.Context, actor dto.Actor, in dto.CrearSemovienteRequest) (*dto.SemovienteResponse, error) {
	if err := validarCreacion(in); err != nil {
		return nil, err
	}
	if err := ganado.ValidarIngreso(in.TipoIngreso, in.ValorCompra); err != nil {
		return nil, err
	}
	if in.TipoIngreso == entity.IngresoNacimiento && (in.IDMadre == nil || in.IDPadre == nil) {
		return nil, domain.Validacion("id_madre e id_padre son requeridos para un Nacimiento")
	}
	if in.TipoIngreso == entity.IngresoCompra && in.FechaIngreso == nil {
		return nil, domain.Validacion("fecha_ingreso es requerida para una Compra")
	}

	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return nil, err
	}
	if !authz.PuedeEnFinca(ev, authz.OpAdministracion, in.IDFinca) {
		return nil, domain.ErrProhibido
	}

	ok, err := uc.razaRepo.RazaPerteneceAEspecie(ctx, in.IDRaza, in.IDEspecie)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Validacion("La raza no pertenece a esa especie")
	}

	// Nacimiento ingresa el día que nace; Compra el día de la compra.
	fechaIngreso := in.FechaNacimiento.Time
	if in.TipoIngreso == entity.IngresoCompra {
		fechaIngreso = in.FechaIngreso.Time
	}

	semoviente := &entity.Semoviente{
		NroMarca:        strings.TrimSpace(in.NroMarca),
		NroRegistro:     in.NroRegistro,
		Nombre:          strings.TrimSpace(in.Nombre),
		FechaNacimiento: in.FechaNacimiento.Time,
		Sexo:            in.Sexo,
		IDRaza:          in.IDRaza,
		IDEspecie:       in.IDEspecie,
		IDMadre:         in.IDMadre,
		IDPadre:         in.IDPadre,
		IDFinca:         in.IDFinca,
		Estado:          entity.EstadoActivo,
		TipoIngreso:     in.TipoIngreso,
		FechaIngreso:    fechaIngreso,
	}
	if in.TipoIngreso == entity.IngresoCompra {
		semoviente.ValorCompra = in.ValorCompra
	}

	obs := "Registro de Nacimiento"
	if in.TipoIngreso == entity.IngresoCompra {
		obs = "Registro de Compra"
	}

	err = uc.tx.EnTransaccion(ctx, func(r repository.Repositorios) error {
		if err := r.Semovientes.Create(ctx, semoviente); err != nil {
			return err
		}
		return r.Movimientos.Create(ctx, &entity.Movimiento{
			IDSemoviente:    semoviente.ID,
			TipoMovimiento:  ganado.MovimientoDeOrigen(in.TipoIngreso),
			FechaMovimiento: fechaIngreso,
			FincaDestinoID:  &semoviente.IDFinca,
			Observaciones:   &obs,
			Valor:           semoviente.ValorCompra,
		})
	})
	if err != nil {
		return nil, err
	}

	resp := dto.SemovienteDesdeEntidad(semoviente)
	return &resp, nil
}

// ListarPorFinca lista los semovientes de una finca. Cualquier miembro;
// por defecto solo los Activos.
func (uc *SemovienteUseCase) ListarPorFinca(ctx context.Context, actor dto.Actor, idFinca int64, incluirInactivos bool) ([]dto.SemovienteResponse, error) {
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return nil, err
	}
	if !authz.PuedeEnFinca(ev, authz.OpLectura, idFinca) {
		return nil, domain.ErrProhibido
	}
	semovientes, err := uc.semovienteRepo.ListByFinca(ctx, idFinca, incluirInactivos)
	if err != nil {
		return nil, err
	}
	return dto.SemovientesDesdeEntidades(semovientes), nil
}

// GetPorID devuelve un semoviente si el actor es miembro de su finca o SuperAdmin.
func (uc *SemovienteUseCase) GetPorID(ctx context.Context, actor dto.Actor, id int64) (*dto.SemovienteResponse, error) {
	semoviente, err := uc.cargarConLectura(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := dto.SemovienteDesdeEntidad(semoviente)
	return &resp, nil
}

// Actualizar edita campos de identificación y manejo. Nunca cambia estado ni
// finca; eso pasa solo por transiciones o por el cambio manual de estado.
func (uc *SemovienteUseCase) Actualizar(ctx context.Context, actor dto.Actor, id int64, in dto.ActualizarSemovienteRequest) (*dto.SemovienteResponse, error) {
	patch := repository.SemovientePatch{
		NroMarca:        in.NroMarca,
		NroRegistro:     in.NroRegistro,
		Nombre:          in.Nombre,
		FechaNacimiento: in.FechaNacimiento.Ptr(),
		Sexo:            in.Sexo,
		IDRaza:          in.IDRaza,
		IDEspecie:       in.IDEspecie,
		IDMadre:         in.IDMadre,
		IDPadre:         in.IDPadre,
		PesoActual:      in.PesoActual,
		FechaPeso:       in.FechaPeso.Ptr(),
		FechaIngreso:    in.FechaIngreso.Ptr(),
		NroChip:         in.NroChip,
		NroSanitario:    in.NroSanitario,
	}
	if patch.EstaVacio() {
		return nil, domain.Validacion("No hay campos para actualizar")
	}
	if in.Sexo != nil && !entity.EsSexoValido(*in.Sexo) {
		return nil, domain.Validacion("sexo inválido: " + *in.Sexo)
	}

	semoviente, err := uc.cargarConAdministracion(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// La pareja raza/especie resultante debe seguir siendo válida.
	idRaza, idEspecie := semoviente.IDRaza, semoviente.IDEspecie
	if in.IDRaza != nil {
		idRaza = *in.IDRaza
	}
	if in.IDEspecie != nil {
		idEspecie = *in.IDEspecie
	}
	if in.IDRaza != nil || in.IDEspecie != nil {
		ok, err := uc.razaRepo.RazaPerteneceAEspecie(ctx, idRaza, idEspecie)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.Validacion("La raza no pertenece a esa especie")
		}
	}

	actualizado, err := uc.semovienteRepo.ActualizarParcial(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, domain.ErrNoEncontrado
	}
	resp := dto.SemovienteDesdeEntidad(actualizado)
	return &resp, nil
}

// CambiarEstado aplica el override administrativo de estado: no registra
// movimiento en el libro. 'Activo' limpia los campos de baja, el resto los
// fija conservando los previos cuando no llegan.
func (uc *SemovienteUseCase) CambiarEstado(ctx context.Context, actor dto.Actor, id int64, in dto.CambiarEstadoRequest) (*dto.SemovienteResponse, error) {
	if !entity.EsEstadoValido(in.Estado) {
		return nil, domain.Validacion("estado inválido: " + in.Estado)
	}
	if _, err := uc.cargarConAdministracion(ctx, actor, id); err != nil {
		return nil, err
	}
	semoviente, err := uc.semovienteRepo.CambiarEstado(ctx, id, repository.CambioEstado{
		Estado:        in.Estado,
		Fecha:         in.Fecha.Ptr(),
		Motivo:        in.Motivo,
		Observaciones: in.Observaciones,
	})
	if err != nil {
		return nil, err
	}
	if semoviente == nil {
		return nil, domain.ErrNoEncontrado
	}
	resp := dto.SemovienteDesdeEntidad(semoviente)
	return &resp, nil
}

// Eliminar borra el animal anulando primero las referencias de parentesco en
// su descendencia. Otras filas dependientes con RESTRICT producen 409.
func (uc *SemovienteUseCase) Eliminar(ctx context.Context, actor dto.Actor, id int64) error {
	if _, err := uc.cargarConAdministracion(ctx, actor, id); err != nil {
		return err
	}
	return uc.tx.EnTransaccion(ctx, func(r repository.Repositorios) error {
		if err := r.Semovientes.AnularPadres(ctx, id); err != nil {
			return err
		}
		return r.Semovientes.Delete(ctx, id)
	})
}

// FichaCompleta arma el expediente: datos con nombres de raza y especie,
// historial médico e historial de movimientos.
func (uc *SemovienteUseCase) FichaCompleta(ctx context.Context, actor dto.Actor, id int64) (*dto.FichaCompletaResponse, error) {
	semoviente, err := uc.cargarConLectura(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	ficha := dto.FichaCompletaResponse{Datos: dto.SemovienteDesdeEntidad(semoviente)}

	if raza, err := uc.razaRepo.GetRaza(ctx, semoviente.IDRaza); err != nil {
		return nil, err
	} else if raza != nil {
		ficha.NombreRaza = &raza.NombreRaza
	}
	if especie, err := uc.razaRepo.GetEspecie(ctx, semoviente.IDEspecie); err != nil {
		return nil, err
	} else if especie != nil {
		ficha.NombreEspecie = &especie.NombreEspecie
	}

	registros, err := uc.registroRepo.ListBySemoviente(ctx, id)
	if err != nil {
		return nil, err
	}
	ficha.HistorialMedico = dto.RegistrosMedicosDesdeEntidades(registros)

	movimientos, err := uc.movimientoRepo.ListBySemoviente(ctx, id)
	if err != nil {
		return nil, err
	}
	ficha.HistorialMovimientos = dto.MovimientosDesdeEntidades(movimientos)

	return &ficha, nil
}

// FichaPDF exporta la ficha completa como PDF.
func (uc *SemovienteUseCase) FichaPDF(ctx context.Context, actor dto.Actor, id int64) ([]byte, error) {
	ficha, err := uc.FichaCompleta(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generar(*ficha)
}

func (uc *SemovienteUseCase) cargarConLectura(ctx context.Context, actor dto.Actor, id int64) (*entity.Semoviente, error) {
	return uc.cargar(ctx, actor, id, authz.OpLectura)
}

func (uc *SemovienteUseCase) cargarConAdministracion(ctx context.Context, actor dto.Actor, id int64) (*entity.Semoviente, error) {
	return uc.cargar(ctx, actor, id, authz.OpAdministracion)
}

func (uc *SemovienteUseCase) cargar(ctx context.Context, actor dto.Actor, id int64, op authz.Operacion) (*entity.Semoviente, error) {
	semoviente, err := uc.semovienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if semoviente == nil {
		return nil, domain.ErrNoEncontrado
	}
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return nil, err
	}
	if !authz.PuedeEnFinca(ev, op, semoviente.IDFinca) {
		return nil, domain.ErrProhibido
	}
	return semoviente, nil
}

func validarCreacion(in dto.CrearSemovienteRequest) error {
	var issues []string
	if strings.TrimSpace(in.NroMarca) == "" {
		issues = append(issues, "nro_marca es requerido")
	}
	if strings.TrimSpace(in.Nombre) == "" {
		issues = append(issues, "nombre es requerido")
	}
	if in.FechaNacimiento.IsZero() {
		issues = append(issues, "fecha_nacimiento es requerida")
	} else if in.FechaNacimiento.After(time.Now()) {
		issues = append(issues, "fecha_nacimiento no puede ser futura")
	}
	if !entity.EsSexoValido(in.Sexo) {
		issues = append(issues, "sexo debe ser Macho o Hembra")
	}
	if in.IDRaza <= 0 || in.IDEspecie <= 0 {
		issues = append(issues, "id_raza e id_especie son requeridos")
	}
	if in.IDFinca <= 0 {
		issues = append(issues, "id_finca es requerida")
	}
	if len(issues) > 0 {
		return domain.Validacion("Datos inválidos", issues...)
	}
	return nil
}
