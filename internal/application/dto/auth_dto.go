package dto

// AsignacionFinca asignación opcional a una finca al registrar un usuario.
type AsignacionFinca struct {
	IDFinca  int64  `json:"id_finca"`
	RolFinca string `json:"rol_finca"`
}

// RegisterRequest cuerpo de POST /api/auth/register.
type RegisterRequest struct {
	NombreUsuario     string           `json:"nombre_usuario"`
	CorreoElectronico string           `json:"correo_electronico"`
	Contrasena        string           `json:"contrasena"`
	NombreCompleto    string           `json:"nombre_completo"`
	RolGlobal         string           `json:"rol_global"`
	Asignacion        *AsignacionFinca `json:"asignacion"`
}

// LoginRequest cuerpo de POST /api/auth/login. Usuario acepta nombre de
// usuario o correo electrónico.
type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

// RefreshRequest cuerpo de POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokensResponse par de tokens emitidos.
type TokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse tokens más el usuario público.
type LoginResponse struct {
	TokensResponse
	Usuario UsuarioResponse `json:"usuario"`
}
