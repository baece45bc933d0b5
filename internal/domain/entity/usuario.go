package entity

// Roles globales válidos para Usuario.
const (
	RolGlobalSuperAdmin = "SuperAdmin"
	RolGlobalUsuario    = "Usuario"
)

// Usuario representa una cuenta del sistema. El rol global decide el acceso
// transversal; los permisos por finca viven en MiembroFinca.
type Usuario struct {
	ID                int64
	NombreUsuario     string
	CorreoElectronico string
	Contrasena        string // hash bcrypt, nunca en claro después de persistir
	Rol               string // SuperAdmin | Usuario
	NombreCompleto    string
}

// EsSuperAdmin indica si la cuenta tiene el rol global SuperAdmin.
func (u *Usuario) EsSuperAdmin() bool {
	return u.Rol == RolGlobalSuperAdmin
}

// EsRolGlobalValido valida el rol global.
func EsRolGlobalValido(rol string) bool {
	return rol == RolGlobalSuperAdmin || rol == RolGlobalUsuario
}
