package usecase

import (
	"context"
	"time"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/ganado"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// GuiaDatos insumo de la guía de movilización de un Traslado.
type GuiaDatos struct {
	Semoviente   dto.SemovienteResponse
	Movimiento   dto.MovimientoResponse
	FincaOrigen  *dto.FincaResponse
	FincaDestino *dto.FincaResponse
}

// GuiaXMLBuilder arma el documento XML de la guía de movilización.
type GuiaXMLBuilder interface {
	Construir(datos GuiaDatos) ([]byte, error)
}

// MovimientoUseCase transiciones de salida del ciclo de vida (Traslado, Venta,
// Muerte) y consulta del libro de movimientos.
type MovimientoUseCase struct {
	semovienteRepo repository.SemovienteRepository
	movimientoRepo repository.MovimientoRepository
	miembroRepo    repository.MiembroRepository
	fincaRepo      repository.FincaRepository
	tx             repository.TxRunner
	guias          GuiaXMLBuilder
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	semovienteRepo repository.SemovienteRepository,
	movimientoRepo repository.MovimientoRepository,
	miembroRepo repository.MiembroRepository,
	fincaRepo repository.FincaRepository,
	tx repository.TxRunner,
	guias GuiaXMLBuilder,
) *MovimientoUseCase {
	return &MovimientoUseCase{
		semovienteRepo: semovienteRepo,
		movimientoRepo: movimientoRepo,
		miembroRepo:    miembroRepo,
		fincaRepo:      fincaRepo,
		tx:             tx,
		guias:          guias,
	}
}

// Crear ejecuta una transición de salida. Dentro de una transacción: bloquea
// la fila del semoviente, valida las reglas del ciclo de vida, inserta
// exactamente una entrada en el libro y aplica el cambio de estado/finca/baja.
// Requiere AdminFinca de la finca de origen (o SuperAdmin).
func (uc *MovimientoUseCase) Crear(ctx context.Context, actor dto.Actor, idSemoviente int64, in dto.CrearMovimientoRequest) (*dto.MovimientoResponse, error) {
	if !ganado.EsMovimientoDeSalida(in.Tipo) {
		return nil, domain.Validacion("tipo debe ser Traslado, Venta o Muerte")
	}

	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return nil, err
	}

	var creado *entity.Movimiento
	err = uc.tx.EnTransaccion(ctx, func(r repository.Repositorios) error {
		semoviente, err := r.Semovientes.GetParaTransicion(ctx, idSemoviente)
		if err != nil {
			return err
		}
		if semoviente == nil {
			return domain.ErrNoEncontrado
		}
		if !authz.PuedeEnFinca(ev, authz.OpAdministracion, semoviente.IDFinca) {
			return domain.ErrProhibido
		}

		destinoExiste := false
		if in.Tipo == entity.MovimientoTraslado && in.DestinoID != nil {
			destinoExiste, err = r.Fincas.Existe(ctx, *in.DestinoID)
			if err != nil {
				return err
			}
		}
		transicion := ganado.Transicion{
			Tipo:          in.Tipo,
			EstadoActual:  semoviente.Estado,
			FincaActual:   semoviente.IDFinca,
			FincaDestino:  in.DestinoID,
			DestinoExiste: destinoExiste,
			Valor:         in.Valor,
		}
		if err := transicion.Validar(); err != nil {
			return err
		}

		hoy := time.Now().Truncate(24 * time.Hour)
		origen := semoviente.IDFinca
		movimiento := &entity.Movimiento{
			IDSemoviente:    idSemoviente,
			TipoMovimiento:  in.Tipo,
			FechaMovimiento: hoy,
			FincaOrigenID:   &origen,
			Observaciones:   in.Observaciones,
		}

		estado, err := ganado.EstadoTrasMovimiento(in.Tipo)
		if err != nil {
			return err
		}

		var nuevaFinca *int64
		var baja *repository.Baja
		switch in.Tipo {
		case entity.MovimientoTraslado:
			movimiento.FincaDestinoID = in.DestinoID
			nuevaFinca = in.DestinoID
		case entity.MovimientoVenta:
			movimiento.Valor = in.Valor
			baja = &repository.Baja{Fecha: hoy, Motivo: in.Tipo, Observaciones: in.Observaciones}
		case entity.MovimientoMuerte:
			baja = &repository.Baja{Fecha: hoy, Motivo: in.Tipo, Observaciones: in.Observaciones}
		}

		if err := r.Movimientos.Create(ctx, movimiento); err != nil {
			return err
		}
		if err := r.Semovientes.AplicarTransicion(ctx, idSemoviente, estado, nuevaFinca, baja); err != nil {
			return err
		}
		creado = movimiento
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := dto.MovimientoDesdeEntidad(creado)
	return &resp, nil
}

// Listar devuelve el libro del semoviente, más reciente primero. El actor debe
// ser miembro de la finca actual o de cualquier finca origen/destino del
// historial, o SuperAdmin.
func (uc *MovimientoUseCase) Listar(ctx context.Context, actor dto.Actor, idSemoviente int64) ([]dto.MovimientoResponse, error) {
	if err := uc.verificarLectura(ctx, actor, idSemoviente); err != nil {
		return nil, err
	}
	movimientos, err := uc.movimientoRepo.ListBySemoviente(ctx, idSemoviente)
	if err != nil {
		return nil, err
	}
	return dto.MovimientosDesdeEntidades(movimientos), nil
}

// GuiaXML genera la guía de movilización de una entrada Traslado del libro.
func (uc *MovimientoUseCase) GuiaXML(ctx context.Context, actor dto.Actor, idSemoviente, idMovimiento int64) ([]byte, error) {
	if err := uc.verificarLectura(ctx, actor, idSemoviente); err != nil {
		return nil, err
	}
	movimiento, err := uc.movimientoRepo.GetByID(ctx, idMovimiento)
	if err != nil {
		return nil, err
	}
	if movimiento == nil || movimiento.IDSemoviente != idSemoviente {
		return nil, domain.ErrNoEncontrado
	}
	if movimiento.TipoMovimiento != entity.MovimientoTraslado {
		return nil, domain.Validacion("Solo los movimientos de Traslado tienen guía de movilización")
	}
	semoviente, err := uc.semovienteRepo.GetByID(ctx, idSemoviente)
	if err != nil {
		return nil, err
	}
	if semoviente == nil {
		return nil, domain.ErrNoEncontrado
	}

	datos := GuiaDatos{
		Semoviente: dto.SemovienteDesdeEntidad(semoviente),
		Movimiento: dto.MovimientoDesdeEntidad(movimiento),
	}
	if movimiento.FincaOrigenID != nil {
		if finca, err := uc.fincaRepo.GetByID(ctx, *movimiento.FincaOrigenID); err != nil {
			return nil, err
		} else if finca != nil {
			f := dto.FincaDesdeEntidad(finca)
			datos.FincaOrigen = &f
		}
	}
	if movimiento.FincaDestinoID != nil {
		if finca, err := uc.fincaRepo.GetByID(ctx, *movimiento.FincaDestinoID); err != nil {
			return nil, err
		} else if finca != nil {
			f := dto.FincaDesdeEntidad(finca)
			datos.FincaDestino = &f
		}
	}
	return uc.guias.Construir(datos)
}

func (uc *MovimientoUseCase) verificarLectura(ctx context.Context, actor dto.Actor, idSemoviente int64) error {
	if actor.EsSuperAdmin() {
		return nil
	}
	fincas, err := uc.movimientoRepo.FincasRelacionadas(ctx, idSemoviente)
	if err != nil {
		return err
	}
	if len(fincas) == 0 {
		return domain.ErrNoEncontrado
	}
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return err
	}
	for _, idFinca := range fincas {
		if authz.PuedeEnFinca(ev, authz.OpLectura, idFinca) {
			return nil
		}
	}
	return domain.ErrProhibido
}
