package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposoft/ganaderia-api/internal/application/usecase"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

type entornoReportes struct {
	uc       *usecase.ReporteUseCase
	reportes *fakeReporteRepo
	miembros *fakeMiembroRepo
}

func nuevoEntornoReportes(incluirInactivosDefecto bool) *entornoReportes {
	e := &entornoReportes{
		reportes: &fakeReporteRepo{},
		miembros: newFakeMiembroRepo(),
	}
	fincas := newFakeFincaRepo(&entity.Finca{ID: 1, NombreFinca: "La Esperanza"})
	e.uc = usecase.NewReporteUseCase(e.reportes, fincas, e.miembros, incluirInactivosDefecto)
	return e
}

func TestInventario_DesgloseYTotal(t *testing.T) {
	e := nuevoEntornoReportes(false)
	e.miembros.conRol(adminFinca1.IDUsuario, 1, entity.RolFincaEmpleado)
	e.reportes.resumen = &repository.InventarioResumen{
		Total:      12,
		PorEstado:  map[string]int{entity.EstadoActivo: 10, entity.EstadoVendido: 2},
		PorEspecie: map[string]int{"Bovino": 9, "Equino": 3},
		PorSexo:    map[string]int{entity.SexoHembra: 7, entity.SexoMacho: 5},
	}

	inv, err := e.uc.Inventario(context.Background(), adminFinca1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inv.IDFinca)
	assert.Equal(t, 12, inv.Total)
	assert.Equal(t, 10, inv.PorEstado[entity.EstadoActivo])
	assert.Equal(t, 9, inv.PorEspecie["Bovino"])
	assert.Equal(t, 7, inv.PorSexo[entity.SexoHembra])
}

func TestInventario_FlagPorDefectoYExplicito(t *testing.T) {
	e := nuevoEntornoReportes(true)
	e.miembros.conRol(adminFinca1.IDUsuario, 1, entity.RolFincaEmpleado)

	_, err := e.uc.Inventario(context.Background(), adminFinca1, 1, nil)
	require.NoError(t, err)
	assert.True(t, e.reportes.ultimoIncluir, "sin flag se usa el default de configuración")

	explicito := false
	_, err = e.uc.Inventario(context.Background(), adminFinca1, 1, &explicito)
	require.NoError(t, err)
	assert.False(t, e.reportes.ultimoIncluir, "el flag explícito del caller manda")
}

func TestInventario_NoMiembroProhibido(t *testing.T) {
	e := nuevoEntornoReportes(false)

	_, err := e.uc.Inventario(context.Background(), adminFinca1, 1, nil)
	assert.ErrorIs(t, err, domain.ErrProhibido)
}

func TestInventario_FincaInexistente(t *testing.T) {
	e := nuevoEntornoReportes(false)

	_, err := e.uc.Inventario(context.Background(), superAdmin, 99, nil)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestSanitario_HorizontePorDefecto(t *testing.T) {
	e := nuevoEntornoReportes(false)
	e.miembros.conRol(adminFinca1.IDUsuario, 1, entity.RolFincaVeterinario)

	cal, err := e.uc.Sanitario(context.Background(), adminFinca1, 1, nil)
	require.NoError(t, err)

	dias := int(e.reportes.ultimoHasta.Sub(e.reportes.ultimoDesde).Hours() / 24)
	assert.Equal(t, usecase.DiasDefecto, dias)
	assert.Equal(t, usecase.DiasDefecto, cal.Dias, "el horizonte usado vuelve en la respuesta")
	assert.Equal(t, int64(1), cal.IDFinca)
	assert.Zero(t, cal.Total)
	assert.Empty(t, cal.Eventos)
}

func TestSanitario_DiasFueraDeRango(t *testing.T) {
	e := nuevoEntornoReportes(false)
	e.miembros.conRol(adminFinca1.IDUsuario, 1, entity.RolFincaVeterinario)

	for _, dias := range []int{0, -3, usecase.DiasMaximo + 1} {
		_, err := e.uc.Sanitario(context.Background(), adminFinca1, 1, &dias)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "dias=%d", dias)
	}
}

func TestSanitario_EventosOrdenados(t *testing.T) {
	e := nuevoEntornoReportes(false)
	e.miembros.conRol(adminFinca1.IDUsuario, 1, entity.RolFincaVeterinario)
	e.reportes.eventos = []repository.EventoSanitario{
		{
			IDRegistroMedico: 1,
			IDSemoviente:     10,
			NroMarca:         "MX-0010",
			NombreSemoviente: "Estrella",
			TipoEventoMedico: "Vacunación",
			NombreVacuna:     strPtr("Aftosa"),
			ProximaFecha:     time.Now().AddDate(0, 0, 5),
		},
		{
			IDRegistroMedico: 2,
			IDSemoviente:     11,
			NroMarca:         "MX-0011",
			NombreSemoviente: "Lucero",
			TipoEventoMedico: "Desparasitación",
			ProximaFecha:     time.Now().AddDate(0, 0, 12),
		},
	}

	dias := 30
	cal, err := e.uc.Sanitario(context.Background(), adminFinca1, 1, &dias)
	require.NoError(t, err)
	require.Len(t, cal.Eventos, 2)
	assert.Equal(t, 2, cal.Total)
	assert.Equal(t, 30, cal.Dias)
	assert.Equal(t, "MX-0010", cal.Eventos[0].NroMarca)
	assert.Equal(t, "Desparasitación", cal.Eventos[1].TipoEventoMedico)
}

func TestSanitario_SuperAdminSinRoles(t *testing.T) {
	e := nuevoEntornoReportes(false)

	dias := 30
	_, err := e.uc.Sanitario(context.Background(), superAdmin, 1, &dias)
	require.NoError(t, err)
}
