package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

func actorConRol(idFinca int64, rol string) authz.Actor {
	return authz.Actor{
		IDUsuario:  10,
		RolGlobal:  entity.RolGlobalUsuario,
		RolesFinca: map[int64]string{idFinca: rol},
	}
}

func TestPuedeEnFinca_SuperAdminPermiteTodo(t *testing.T) {
	sa := authz.Actor{IDUsuario: 1, RolGlobal: entity.RolGlobalSuperAdmin}
	assert.True(t, authz.PuedeEnFinca(sa, authz.OpLectura, 5))
	assert.True(t, authz.PuedeEnFinca(sa, authz.OpEscrituraRegistros, 5))
	assert.True(t, authz.PuedeEnFinca(sa, authz.OpAdministracion, 5))
}

func TestPuedeEnFinca_MiembroLee_NoMiembroNo(t *testing.T) {
	emp := actorConRol(3, entity.RolFincaEmpleado)
	assert.True(t, authz.PuedeEnFinca(emp, authz.OpLectura, 3),
		"cualquier rol en la finca basta para leer")
	assert.False(t, authz.PuedeEnFinca(emp, authz.OpLectura, 4),
		"sin rol en la finca 4 no hay lectura")
}

func TestPuedeEnFinca_EscrituraRegistros(t *testing.T) {
	for _, rol := range []string{entity.RolFincaAdmin, entity.RolFincaEmpleado, entity.RolFincaVeterinario} {
		assert.True(t, authz.PuedeEnFinca(actorConRol(3, rol), authz.OpEscrituraRegistros, 3), rol)
	}
	assert.False(t, authz.PuedeEnFinca(actorConRol(9, entity.RolFincaEmpleado), authz.OpEscrituraRegistros, 3))
}

func TestPuedeEnFinca_AdministracionSoloAdminFinca(t *testing.T) {
	assert.True(t, authz.PuedeEnFinca(actorConRol(3, entity.RolFincaAdmin), authz.OpAdministracion, 3))
	assert.False(t, authz.PuedeEnFinca(actorConRol(3, entity.RolFincaEmpleado), authz.OpAdministracion, 3))
	assert.False(t, authz.PuedeEnFinca(actorConRol(3, entity.RolFincaVeterinario), authz.OpAdministracion, 3))
}

func TestPuedeCrearSuperAdmin(t *testing.T) {
	assert.True(t, authz.PuedeCrearSuperAdmin(authz.Actor{RolGlobal: entity.RolGlobalSuperAdmin}))
	assert.False(t, authz.PuedeCrearSuperAdmin(authz.Actor{RolGlobal: entity.RolGlobalUsuario}))
	assert.False(t, authz.PuedeCrearSuperAdmin(authz.Actor{}))
}

func TestPuedeEliminarUsuario(t *testing.T) {
	sa := authz.Actor{RolGlobal: entity.RolGlobalSuperAdmin}
	comun := authz.Actor{RolGlobal: entity.RolGlobalUsuario}

	// Ningún actor elimina SuperAdmins.
	assert.False(t, authz.PuedeEliminarUsuario(sa, entity.RolGlobalSuperAdmin, false))
	assert.False(t, authz.PuedeEliminarUsuario(comun, entity.RolGlobalSuperAdmin, true))

	// SuperAdmin elimina cualquier cuenta común.
	assert.True(t, authz.PuedeEliminarUsuario(sa, entity.RolGlobalUsuario, false))

	// Actor común necesita compartir finca donde es AdminFinca.
	assert.True(t, authz.PuedeEliminarUsuario(comun, entity.RolGlobalUsuario, true))
	assert.False(t, authz.PuedeEliminarUsuario(comun, entity.RolGlobalUsuario, false))
}
