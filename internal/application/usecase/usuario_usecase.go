package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/authz"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso de cuentas: perfil, administración y contraseñas.
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioRepository
	miembroRepo repository.MiembroRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository, miembroRepo repository.MiembroRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo, miembroRepo: miembroRepo}
}

// Perfil devuelve la cuenta del actor más sus fincas con rol. Un SuperAdmin no
// tiene membresías; su lista llega de ListarFincasConRol vacía y se deja así.
func (uc *UsuarioUseCase) Perfil(ctx context.Context, actor dto.Actor) (*dto.PerfilResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(ctx, actor.IDUsuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	fincas, err := uc.miembroRepo.ListarFincasConRol(ctx, actor.IDUsuario)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FincaConRolResponse, 0, len(fincas))
	for _, f := range fincas {
		out = append(out, dto.FincaConRolResponse{
			IDFinca:     f.IDFinca,
			NombreFinca: f.NombreFinca,
			RolEnFinca:  f.RolEnFinca,
		})
	}
	return &dto.PerfilResponse{Usuario: dto.UsuarioDesdeEntidad(usuario), Fincas: out}, nil
}

// ActualizarPerfil edita los campos propios permitidos (nombre_completo, correo).
func (uc *UsuarioUseCase) ActualizarPerfil(ctx context.Context, actor dto.Actor, in dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error) {
	patch := repository.UsuarioPatch{
		NombreCompleto:    in.NombreCompleto,
		CorreoElectronico: in.CorreoElectronico,
	}
	if patch.EstaVacio() {
		return nil, domain.Validacion("No hay campos para actualizar")
	}
	if in.CorreoElectronico != nil && !strings.Contains(*in.CorreoElectronico, "@") {
		return nil, domain.Validacion("correo_electronico: correo inválido")
	}
	if in.NombreCompleto != nil && len(strings.TrimSpace(*in.NombreCompleto)) < 3 {
		return nil, domain.Validacion("nombre_completo: mínimo 3 caracteres")
	}
	usuario, err := uc.usuarioRepo.ActualizarParcial(ctx, actor.IDUsuario, patch)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	resp := dto.UsuarioDesdeEntidad(usuario)
	return &resp, nil
}

// Listar lista todas las cuentas. Solo SuperAdmin.
func (uc *UsuarioUseCase) Listar(ctx context.Context, actor dto.Actor) ([]dto.UsuarioResponse, error) {
	if !actor.EsSuperAdmin() {
		return nil, domain.ErrProhibido
	}
	usuarios, err := uc.usuarioRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, dto.UsuarioDesdeEntidad(u))
	}
	return out, nil
}

// ActualizarAdmin edita cualquier cuenta, incluido el rol global. Solo SuperAdmin.
func (uc *UsuarioUseCase) ActualizarAdmin(ctx context.Context, actor dto.Actor, id int64, in dto.ActualizarUsuarioAdminRequest) (*dto.UsuarioResponse, error) {
	if !actor.EsSuperAdmin() {
		return nil, domain.ErrProhibido
	}
	patch := repository.UsuarioPatch{
		NombreUsuario:     in.NombreUsuario,
		CorreoElectronico: in.CorreoElectronico,
		NombreCompleto:    in.NombreCompleto,
		Rol:               in.Rol,
	}
	if patch.EstaVacio() {
		return nil, domain.Validacion("No hay campos para actualizar")
	}
	if in.Rol != nil && !entity.EsRolGlobalValido(*in.Rol) {
		return nil, domain.Validacion("rol inválido: " + *in.Rol)
	}
	if in.CorreoElectronico != nil && !strings.Contains(*in.CorreoElectronico, "@") {
		return nil, domain.Validacion("correo_electronico: correo inválido")
	}
	usuario, err := uc.usuarioRepo.ActualizarParcial(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	resp := dto.UsuarioDesdeEntidad(usuario)
	return &resp, nil
}

// Eliminar borra una cuenta según las reglas del evaluador: nunca un
// SuperAdmin; un SuperAdmin borra cualquier otra cuenta; un usuario común
// solo a quien comparte una finca donde él es AdminFinca.
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, actor dto.Actor, id int64) error {
	if id == actor.IDUsuario {
		return domain.Validacion("No puede eliminar su propia cuenta")
	}
	objetivo, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if objetivo == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	comparten := false
	if !actor.EsSuperAdmin() {
		comparten, err = uc.miembroRepo.CompartenFincaComoAdmin(ctx, actor.IDUsuario, id)
		if err != nil {
			return err
		}
	}
	ev := authz.Actor{IDUsuario: actor.IDUsuario, RolGlobal: actor.Rol}
	if !authz.PuedeEliminarUsuario(ev, objetivo.Rol, comparten) {
		return domain.ErrProhibido
	}
	return uc.usuarioRepo.Delete(ctx, id)
}

// CambiarContrasenaPropia cambia la contraseña del actor verificando la actual.
func (uc *UsuarioUseCase) CambiarContrasenaPropia(ctx context.Context, actor dto.Actor, in dto.CambiarContrasenaRequest) error {
	if len(in.ContrasenaNueva) < 8 {
		return domain.Validacion("contrasena_nueva: mínimo 8 caracteres")
	}
	if in.ContrasenaNueva == in.ContrasenaActual {
		return domain.Validacion("La contraseña nueva debe ser distinta a la actual")
	}
	return uc.cambiarVerificando(ctx, actor.IDUsuario, in.ContrasenaActual, in.ContrasenaNueva)
}

// CambiarContrasenaDe cambia la contraseña de la cuenta id: el propietario
// verifica la actual; un SuperAdmin la fija directo sobre cuentas no-SuperAdmin.
func (uc *UsuarioUseCase) CambiarContrasenaDe(ctx context.Context, actor dto.Actor, id int64, in dto.CambiarPasswordRequest) error {
	if len(in.Nueva) < 8 {
		return domain.Validacion("nueva: mínimo 8 caracteres")
	}
	if id == actor.IDUsuario {
		return uc.cambiarVerificando(ctx, id, in.ContrasenaActual, in.Nueva)
	}
	if !actor.EsSuperAdmin() {
		return domain.ErrProhibido
	}
	objetivo, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if objetivo == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	if objetivo.EsSuperAdmin() {
		return domain.ErrProhibido
	}
	return uc.fijar(ctx, id, in.Nueva)
}

// ResetearContrasena fija la contraseña de una cuenta sin verificar la
// anterior. Solo SuperAdmin, nunca sobre otro SuperAdmin.
func (uc *UsuarioUseCase) ResetearContrasena(ctx context.Context, actor dto.Actor, id int64, nueva string) error {
	if !actor.EsSuperAdmin() {
		return domain.ErrProhibido
	}
	if len(nueva) < 8 {
		return domain.Validacion("nueva: mínimo 8 caracteres")
	}
	objetivo, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if objetivo == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	if objetivo.EsSuperAdmin() && objetivo.ID != actor.IDUsuario {
		return domain.ErrProhibido
	}
	return uc.fijar(ctx, id, nueva)
}

func (uc *UsuarioUseCase) cambiarVerificando(ctx context.Context, id int64, actual, nueva string) error {
	usuario, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(actual)); err != nil {
		return domain.ErrCredencialesInvalidas
	}
	return uc.fijar(ctx, id, nueva)
}

func (uc *UsuarioUseCase) fijar(ctx context.Context, id int64, nueva string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.ActualizarContrasena(ctx, id, string(hash))
}
