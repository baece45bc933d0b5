package dto

import "github.com/camposoft/ganaderia-api/internal/domain/entity"

// AsignarMiembroRequest POST /api/fincas/:id/miembros.
type AsignarMiembroRequest struct {
	IDUsuario int64  `json:"id_usuario"`
	Rol       string `json:"rol"`
}

// AsignacionResponse fila resultante del upsert.
type AsignacionResponse struct {
	IDUsuario int64  `json:"id_usuario"`
	IDFinca   int64  `json:"id_finca"`
	Rol       string `json:"rol"`
}

// MiembroResponse fila del listado de miembros.
type MiembroResponse struct {
	IDUsuario         int64  `json:"id_usuario"`
	NombreUsuario     string `json:"nombre_usuario"`
	NombreCompleto    string `json:"nombre_completo"`
	CorreoElectronico string `json:"correo_electronico"`
	RolGlobal         string `json:"rol_global"`
	RolFinca          string `json:"rol_finca"`
}

// MiembroDesdeEntidad mapea el detalle del join.
func MiembroDesdeEntidad(m *entity.MiembroDetalle) MiembroResponse {
	return MiembroResponse{
		IDUsuario:         m.IDUsuario,
		NombreUsuario:     m.NombreUsuario,
		NombreCompleto:    m.NombreCompleto,
		CorreoElectronico: m.CorreoElectronico,
		RolGlobal:         m.RolGlobal,
		RolFinca:          m.RolFinca,
	}
}
