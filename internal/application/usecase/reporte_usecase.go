package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// Horizonte admitido del calendario sanitario, en días.
const (
	DiasMinimo  = 1
	DiasMaximo  = 1825
	DiasDefecto = 30
)

// ReporteUseCase reportes agregados por finca: inventario y calendario
// sanitario. Ambos exigen membresía en la finca (o SuperAdmin).
type ReporteUseCase struct {
	reporteRepo      repository.ReporteRepository
	fincaRepo        repository.FincaRepository
	miembroRepo      repository.MiembroRepository
	incluirInactivos bool // default de include_inactivos cuando el caller no lo manda
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(reporteRepo repository.ReporteRepository, fincaRepo repository.FincaRepository, miembroRepo repository.MiembroRepository, incluirInactivos bool) *ReporteUseCase {
	return &ReporteUseCase{reporteRepo: reporteRepo, fincaRepo: fincaRepo, miembroRepo: miembroRepo, incluirInactivos: incluirInactivos}
}

// Inventario devuelve el total y los desgloses por estado, especie y sexo.
// incluirInactivos nil toma el default de configuración.
func (uc *ReporteUseCase) Inventario(ctx context.Context, actor dto.Actor, idFinca int64, incluirInactivos *bool) (*dto.InventarioResponse, error) {
	if err := uc.verificarMembresia(ctx, actor, idFinca); err != nil {
		return nil, err
	}
	incluir := uc.incluirInactivos
	if incluirInactivos != nil {
		incluir = *incluirInactivos
	}
	resumen, err := uc.reporteRepo.Inventario(ctx, idFinca, incluir)
	if err != nil {
		return nil, err
	}
	resp := dto.InventarioDesdeResumen(idFinca, resumen)
	return &resp, nil
}

// Sanitario lista los eventos con próxima fecha dentro de los próximos dias
// días, ordenados por fecha ascendente. dias nil toma el default de 30; un
// valor explícito fuera de 1..1825 (incluido 0) se rechaza.
func (uc *ReporteUseCase) Sanitario(ctx context.Context, actor dto.Actor, idFinca int64, dias *int) (*dto.CalendarioSanitarioResponse, error) {
	horizonte := DiasDefecto
	if dias != nil {
		horizonte = *dias
	}
	if horizonte < DiasMinimo || horizonte > DiasMaximo {
		return nil, domain.Validacion(fmt.Sprintf("dias debe estar entre %d y %d", DiasMinimo, DiasMaximo))
	}
	if err := uc.verificarMembresia(ctx, actor, idFinca); err != nil {
		return nil, err
	}

	desde := time.Now().Truncate(24 * time.Hour)
	hasta := desde.AddDate(0, 0, horizonte)
	eventos, err := uc.reporteRepo.EventosProximos(ctx, idFinca, desde, hasta)
	if err != nil {
		return nil, err
	}
	mapeados := dto.EventosDesdeRepositorio(eventos)
	return &dto.CalendarioSanitarioResponse{
		IDFinca: idFinca,
		Desde:   dto.Fecha{Time: desde},
		Hasta:   dto.Fecha{Time: hasta},
		Dias:    horizonte,
		Total:   len(mapeados),
		Eventos: mapeados,
	}, nil
}

func (uc *ReporteUseCase) verificarMembresia(ctx context.Context, actor dto.Actor, idFinca int64) error {
	existe, err := uc.fincaRepo.Existe(ctx, idFinca)
	if err != nil {
		return err
	}
	if !existe {
		return domain.ErrNoEncontrado
	}
	ev, err := cargarActor(ctx, uc.miembroRepo, actor)
	if err != nil {
		return err
	}
	if !authz.PuedeEnFinca(ev, authz.OpLectura, idFinca) {
		return domain.ErrProhibido
	}
	return nil
}
