package dto

import "github.com/camposoft/ganaderia-api/internal/domain/entity"

// UsuarioResponse representación pública de una cuenta (nunca incluye la contraseña).
type UsuarioResponse struct {
	IDUsuario         int64  `json:"id_usuario"`
	NombreUsuario     string `json:"nombre_usuario"`
	CorreoElectronico string `json:"correo_electronico"`
	Rol               string `json:"rol"`
	NombreCompleto    string `json:"nombre_completo"`
}

// UsuarioDesdeEntidad mapea la entidad a su forma pública.
func UsuarioDesdeEntidad(u *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		IDUsuario:         u.ID,
		NombreUsuario:     u.NombreUsuario,
		CorreoElectronico: u.CorreoElectronico,
		Rol:               u.Rol,
		NombreCompleto:    u.NombreCompleto,
	}
}

// FincaConRolResponse finca visible en el perfil con el rol del usuario en ella.
type FincaConRolResponse struct {
	IDFinca     int64  `json:"id_finca"`
	NombreFinca string `json:"nombre_finca"`
	RolEnFinca  string `json:"rol_en_finca"`
}

// PerfilResponse respuesta de GET /api/usuarios/me.
type PerfilResponse struct {
	Usuario UsuarioResponse       `json:"usuario"`
	Fincas  []FincaConRolResponse `json:"fincas"`
}

// ActualizarPerfilRequest PATCH /api/usuarios/me (al menos un campo).
type ActualizarPerfilRequest struct {
	NombreCompleto    *string `json:"nombre_completo"`
	CorreoElectronico *string `json:"correo_electronico"`
}

// ActualizarUsuarioAdminRequest PATCH /api/usuarios/:id (solo SuperAdmin).
type ActualizarUsuarioAdminRequest struct {
	NombreUsuario     *string `json:"nombre_usuario"`
	CorreoElectronico *string `json:"correo_electronico"`
	NombreCompleto    *string `json:"nombre_completo"`
	Rol               *string `json:"rol"`
}

// CambiarContrasenaRequest PATCH /api/usuarios/me/password.
type CambiarContrasenaRequest struct {
	ContrasenaActual string `json:"contrasena_actual"`
	ContrasenaNueva  string `json:"contrasena_nueva"`
}

// CambiarPasswordRequest PATCH /api/usuarios/:id/password.
// SuperAdmin sobre terceros: solo Nueva. Propietario: ContrasenaActual + Nueva.
type CambiarPasswordRequest struct {
	ContrasenaActual string `json:"contrasena_actual"`
	Nueva            string `json:"nueva"`
}

// ResetearContrasenaRequest POST /api/usuarios/:id/password/reset (solo SuperAdmin).
type ResetearContrasenaRequest struct {
	Nueva string `json:"nueva"`
}
