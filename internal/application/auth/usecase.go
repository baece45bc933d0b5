package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
	"github.com/camposoft/ganaderia-api/pkg/jwt"
)

// JWTConfig configuración para la emisión de tokens de acceso y refresco.
type JWTConfig struct {
	Secret            string
	RefreshSecret     string
	ExpMinutes        int
	RefreshExpMinutes int
	Issuer            string
}

// AuthUseCase casos de uso de autenticación: registro, login y refresco.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	miembroRepo repository.MiembroRepository
	fincaRepo   repository.FincaRepository
	tx          repository.TxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, miembroRepo repository.MiembroRepository, fincaRepo repository.FincaRepository, tx repository.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, miembroRepo: miembroRepo, fincaRepo: fincaRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea una cuenta. El registro es público para rol Usuario sin
// asignación; crear un SuperAdmin exige un actor SuperAdmin, y la asignación a
// finca exige SuperAdmin o AdminFinca de esa finca. Inserción de cuenta y
// upsert de membresía ocurren en una sola transacción.
func (uc *AuthUseCase) Register(ctx context.Context, actor *dto.Actor, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if err := validarRegistro(in); err != nil {
		return nil, err
	}

	rol := in.RolGlobal
	if rol == "" {
		rol = entity.RolGlobalUsuario
	}
	if !entity.EsRolGlobalValido(rol) {
		return nil, domain.Validacion("rol_global inválido: " + rol)
	}

	if rol == entity.RolGlobalSuperAdmin {
		if actor == nil || !authz.PuedeCrearSuperAdmin(authz.Actor{IDUsuario: actor.IDUsuario, RolGlobal: actor.Rol}) {
			return nil, domain.ErrProhibido
		}
	}

	var asignacion *entity.MiembroFinca
	if in.Asignacion != nil {
		rolFinca := entity.NormalizarRolFinca(in.Asignacion.RolFinca)
		if rolFinca == "" {
			return nil, domain.Validacion("rol_finca inválido: " + in.Asignacion.RolFinca)
		}
		if actor == nil {
			return nil, domain.ErrNoAutorizado
		}
		evaluado, err := uc.cargarActor(ctx, *actor)
		if err != nil {
			return nil, err
		}
		if !authz.PuedeAsignarMiembro(evaluado, in.Asignacion.IDFinca) {
			return nil, domain.ErrProhibido
		}
		asignacion = &entity.MiembroFinca{IDFinca: in.Asignacion.IDFinca, Rol: rolFinca}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		NombreUsuario:     strings.TrimSpace(in.NombreUsuario),
		CorreoElectronico: strings.TrimSpace(in.CorreoElectronico),
		Contrasena:        string(hash),
		Rol:               rol,
		NombreCompleto:    strings.TrimSpace(in.NombreCompleto),
	}

	err = uc.tx.EnTransaccion(ctx, func(r repository.Repositorios) error {
		if err := r.Usuarios.Create(ctx, usuario); err != nil {
			return err
		}
		if asignacion != nil {
			asignacion.IDUsuario = usuario.ID
			if err := r.Miembros.Upsert(ctx, asignacion); err != nil {
				return err
			}
			if asignacion.Rol == entity.RolFincaAdmin {
				if err := r.Fincas.SetAdministrador(ctx, asignacion.IDFinca, &usuario.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := dto.UsuarioDesdeEntidad(usuario)
	return &resp, nil
}

// Login verifica credenciales (usuario acepta nombre de usuario o correo) y
// emite el par de tokens.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Contrasena == "" {
		return nil, domain.Validacion("usuario y contrasena son requeridos")
	}
	usuario, err := uc.usuarioRepo.GetByLogin(ctx, strings.TrimSpace(in.Usuario))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	tokens, err := uc.emitirTokens(usuario)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		TokensResponse: *tokens,
		Usuario:        dto.UsuarioDesdeEntidad(usuario),
	}, nil
}

// Refresh valida el token de refresco y reemite ambos tokens. La cuenta debe
// seguir existiendo; el rol se relee de la base, no del token viejo.
func (uc *AuthUseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.TokensResponse, error) {
	if in.RefreshToken == "" {
		return nil, domain.Validacion("refreshToken es requerido")
	}
	claims, err := jwt.Parse(uc.jwtCfg.RefreshSecret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrNoAutorizado
	}
	usuario, err := uc.usuarioRepo.GetByID(ctx, claims.IDUsuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNoAutorizado
	}
	return uc.emitirTokens(usuario)
}

func (uc *AuthUseCase) emitirTokens(u *entity.Usuario) (*dto.TokensResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.NombreUsuario, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.RefreshSecret, u.ID, u.NombreUsuario, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokensResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (uc *AuthUseCase) cargarActor(ctx context.Context, a dto.Actor) (authz.Actor, error) {
	roles, err := uc.miembroRepo.RolesDeUsuario(ctx, a.IDUsuario)
	if err != nil {
		return authz.Actor{}, err
	}
	return authz.Actor{IDUsuario: a.IDUsuario, RolGlobal: a.Rol, RolesFinca: roles}, nil
}

func validarRegistro(in dto.RegisterRequest) error {
	var issues []string
	if len(strings.TrimSpace(in.NombreUsuario)) < 3 {
		issues = append(issues, "nombre_usuario: mínimo 3 caracteres")
	}
	if !strings.Contains(in.CorreoElectronico, "@") {
		issues = append(issues, "correo_electronico: correo inválido")
	}
	if len(in.Contrasena) < 8 {
		issues = append(issues, "contrasena: mínimo 8 caracteres")
	}
	if len(strings.TrimSpace(in.NombreCompleto)) < 3 {
		issues = append(issues, "nombre_completo: mínimo 3 caracteres")
	}
	if len(issues) > 0 {
		return domain.Validacion("Datos inválidos", issues...)
	}
	return nil
}
