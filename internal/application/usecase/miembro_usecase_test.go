package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

type entornoMiembros struct {
	uc       *usecase.MiembroUseCase
	miembros *fakeMiembroRepo
	fincas   *fakeFincaRepo
}

func nuevoEntornoMiembros(fincas ...*entity.Finca) *entornoMiembros {
	e := &entornoMiembros{
		miembros: newFakeMiembroRepo(),
		fincas:   newFakeFincaRepo(fincas...),
	}
	tx := &fakeTx{repos: repository.Repositorios{Fincas: e.fincas, Miembros: e.miembros}}
	e.uc = usecase.NewMiembroUseCase(e.miembros, e.fincas, tx)
	return e
}

func TestAsignar_AdminFincaFijaAdministradorID(t *testing.T) {
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza"})

	asignacion, err := e.uc.Asignar(context.Background(), superAdmin, 1, dto.AsignarMiembroRequest{
		IDUsuario: 7,
		Rol:       "adminfinca", // casing histórico: se normaliza en el borde
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolFincaAdmin, asignacion.Rol)

	finca, _ := e.fincas.GetByID(context.Background(), 1)
	require.NotNil(t, finca.AdministradorID)
	assert.Equal(t, int64(7), *finca.AdministradorID)
}

func TestAsignar_DegradarAdminLimpiaAdministradorID(t *testing.T) {
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza", AdministradorID: int64Ptr(7)})
	e.miembros.conRol(7, 1, entity.RolFincaAdmin)

	_, err := e.uc.Asignar(context.Background(), superAdmin, 1, dto.AsignarMiembroRequest{
		IDUsuario: 7,
		Rol:       entity.RolFincaEmpleado,
	})
	require.NoError(t, err)

	rol, _ := e.miembros.GetRol(context.Background(), 7, 1)
	assert.Equal(t, entity.RolFincaEmpleado, rol, "el upsert reemplaza el rol anterior")

	finca, _ := e.fincas.GetByID(context.Background(), 1)
	assert.Nil(t, finca.AdministradorID, "degradar al administrador limpia la denormalización")
}

func TestAsignar_DegradarOtroAdminNoTocaAdministradorID(t *testing.T) {
	// administrador_id apunta al usuario 8; degradar al usuario 7 no lo toca.
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza", AdministradorID: int64Ptr(8)})
	e.miembros.conRol(7, 1, entity.RolFincaAdmin)
	e.miembros.conRol(8, 1, entity.RolFincaAdmin)

	_, err := e.uc.Asignar(context.Background(), superAdmin, 1, dto.AsignarMiembroRequest{
		IDUsuario: 7,
		Rol:       entity.RolFincaVeterinario,
	})
	require.NoError(t, err)

	finca, _ := e.fincas.GetByID(context.Background(), 1)
	require.NotNil(t, finca.AdministradorID)
	assert.Equal(t, int64(8), *finca.AdministradorID)
}

func TestAsignar_AdminFincaPuedeAsignarEnSuFinca(t *testing.T) {
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza"})
	e.miembros.conRol(adminFinca1.IDUsuario, 1, entity.RolFincaAdmin)

	_, err := e.uc.Asignar(context.Background(), adminFinca1, 1, dto.AsignarMiembroRequest{
		IDUsuario: 9,
		Rol:       entity.RolFincaVeterinario,
	})
	require.NoError(t, err)

	rol, _ := e.miembros.GetRol(context.Background(), 9, 1)
	assert.Equal(t, entity.RolFincaVeterinario, rol)
}

func TestAsignar_EmpleadoProhibido(t *testing.T) {
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza"})
	e.miembros.conRol(adminFinca1.IDUsuario, 1, entity.RolFincaEmpleado)

	_, err := e.uc.Asignar(context.Background(), adminFinca1, 1, dto.AsignarMiembroRequest{
		IDUsuario: 9,
		Rol:       entity.RolFincaEmpleado,
	})
	assert.ErrorIs(t, err, domain.ErrProhibido)
}

func TestAsignar_RolInvalido(t *testing.T) {
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza"})

	_, err := e.uc.Asignar(context.Background(), superAdmin, 1, dto.AsignarMiembroRequest{
		IDUsuario: 9,
		Rol:       "Gerente",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRevocar_RolExacto(t *testing.T) {
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza"})
	e.miembros.conRol(9, 1, entity.RolFincaEmpleado)

	// Rol que no coincide: no borra nada.
	err := e.uc.Revocar(context.Background(), superAdmin, 1, 9, entity.RolFincaVeterinario)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)

	err = e.uc.Revocar(context.Background(), superAdmin, 1, 9, entity.RolFincaEmpleado)
	require.NoError(t, err)
	rol, _ := e.miembros.GetRol(context.Background(), 9, 1)
	assert.Empty(t, rol)
}

func TestRevocar_AdminLimpiaAdministradorID(t *testing.T) {
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza", AdministradorID: int64Ptr(7)})
	e.miembros.conRol(7, 1, entity.RolFincaAdmin)

	err := e.uc.Revocar(context.Background(), superAdmin, 1, 7, entity.RolFincaAdmin)
	require.NoError(t, err)

	finca, _ := e.fincas.GetByID(context.Background(), 1)
	assert.Nil(t, finca.AdministradorID)
}

func TestRevocar_SinRolEnQuery(t *testing.T) {
	e := nuevoEntornoMiembros(&entity.Finca{ID: 1, NombreFinca: "La Esperanza"})

	err := e.uc.Revocar(context.Background(), superAdmin, 1, 9, "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
