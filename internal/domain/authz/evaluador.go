// Package authz implementa el evaluador de autorización: un predicado puro
// sobre el actor y el contexto del recurso. No consulta la base de datos; el
// caller carga los roles por finca del actor antes de evaluar.
package authz

import "github.com/camposoft/ganaderia-api/internal/domain/entity"

// Actor es la identidad efectiva de una petición: rol global del token más
// los roles por finca cargados por el caller.
type Actor struct {
	IDUsuario  int64
	RolGlobal  string
	RolesFinca map[int64]string // id_finca -> rol en esa finca
}

// EsSuperAdmin indica si el actor tiene el rol global SuperAdmin.
func (a Actor) EsSuperAdmin() bool {
	return a.RolGlobal == entity.RolGlobalSuperAdmin
}

// RolEnFinca devuelve el rol del actor en la finca, o cadena vacía.
func (a Actor) RolEnFinca(idFinca int64) string {
	if a.RolesFinca == nil {
		return ""
	}
	return a.RolesFinca[idFinca]
}

// Operacion clasifica lo que se intenta hacer sobre un recurso de finca.
type Operacion int

const (
	// OpLectura: lecturas con alcance de finca; basta cualquier rol en la finca.
	OpLectura Operacion = iota
	// OpEscrituraRegistros: crear/editar registros médicos; AdminFinca,
	// Empleado o Veterinario.
	OpEscrituraRegistros
	// OpAdministracion: crear/editar/eliminar entidades de la finca, gestionar
	// miembros y cambiar el ciclo de vida de semovientes; solo AdminFinca.
	OpAdministracion
)

// PuedeEnFinca decide ALLOW/DENY para una operación con alcance de finca.
// Precedencia: SuperAdmin global permite todo; después decide el rol del actor
// en esa finca; cualquier otro caso es DENY.
func PuedeEnFinca(actor Actor, op Operacion, idFinca int64) bool {
	if actor.EsSuperAdmin() {
		return true
	}
	rol := actor.RolEnFinca(idFinca)
	if rol == "" {
		return false
	}
	switch op {
	case OpLectura:
		return true
	case OpEscrituraRegistros:
		return rol == entity.RolFincaAdmin || rol == entity.RolFincaEmpleado || rol == entity.RolFincaVeterinario
	case OpAdministracion:
		return rol == entity.RolFincaAdmin
	}
	return false
}

// PuedeCrearSuperAdmin: solo un SuperAdmin existente puede crear otro SuperAdmin.
func PuedeCrearSuperAdmin(actor Actor) bool {
	return actor.EsSuperAdmin()
}

// PuedeAsignarMiembro decide si el actor puede asignar o revocar roles en la finca.
func PuedeAsignarMiembro(actor Actor, idFinca int64) bool {
	return PuedeEnFinca(actor, OpAdministracion, idFinca)
}

// PuedeEliminarUsuario decide la eliminación de cuentas:
//   - nadie elimina a un SuperAdmin, ni siquiera otro SuperAdmin;
//   - un SuperAdmin elimina cualquier cuenta no-SuperAdmin;
//   - un actor común solo si comparte una finca donde él es AdminFinca con el
//     objetivo (comparteFincaComoAdmin lo resuelve el caller contra la DB).
func PuedeEliminarUsuario(actor Actor, rolObjetivo string, comparteFincaComoAdmin bool) bool {
	if rolObjetivo == entity.RolGlobalSuperAdmin {
		return false
	}
	if actor.EsSuperAdmin() {
		return true
	}
	return comparteFincaComoAdmin
}
