package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/camposoft/ganaderia-api/internal/application/auth"
	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
	pkgjwt "github.com/camposoft/ganaderia-api/pkg/jwt"
)

// Fakes mínimos en memoria. Solo implementan lo que el flujo de auth toca.

type usuariosFake struct {
	porID  map[int64]*entity.Usuario
	nextID int64
}

func (f *usuariosFake) Create(_ context.Context, u *entity.Usuario) error {
	for _, existente := range f.porID {
		if existente.NombreUsuario == u.NombreUsuario || existente.CorreoElectronico == u.CorreoElectronico {
			return domain.ErrDuplicado
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.porID[u.ID] = u
	return nil
}

func (f *usuariosFake) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	return f.porID[id], nil
}

func (f *usuariosFake) GetByLogin(_ context.Context, usuario string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.NombreUsuario == usuario || u.CorreoElectronico == usuario {
			return u, nil
		}
	}
	return nil, nil
}

func (f *usuariosFake) List(_ context.Context) ([]*entity.Usuario, error) { return nil, nil }

func (f *usuariosFake) ActualizarParcial(_ context.Context, id int64, _ repository.UsuarioPatch) (*entity.Usuario, error) {
	return f.porID[id], nil
}

func (f *usuariosFake) ActualizarContrasena(_ context.Context, _ int64, _ string) error { return nil }

func (f *usuariosFake) Delete(_ context.Context, id int64) error {
	delete(f.porID, id)
	return nil
}

type miembrosFake struct {
	roles    map[int64]map[int64]string
	upserted []*entity.MiembroFinca
}

func (f *miembrosFake) GetRol(_ context.Context, idUsuario, idFinca int64) (string, error) {
	return f.roles[idUsuario][idFinca], nil
}

func (f *miembrosFake) RolesDeUsuario(_ context.Context, idUsuario int64) (map[int64]string, error) {
	return f.roles[idUsuario], nil
}

func (f *miembrosFake) ListarPorFinca(_ context.Context, _ int64) ([]*entity.MiembroDetalle, error) {
	return nil, nil
}

func (f *miembrosFake) ListarFincasConRol(_ context.Context, _ int64) ([]repository.FincaConRol, error) {
	return nil, nil
}

func (f *miembrosFake) CompartenFincaComoAdmin(_ context.Context, _, _ int64) (bool, error) {
	return false, nil
}

func (f *miembrosFake) Upsert(_ context.Context, m *entity.MiembroFinca) error {
	if f.roles == nil {
		f.roles = map[int64]map[int64]string{}
	}
	if f.roles[m.IDUsuario] == nil {
		f.roles[m.IDUsuario] = map[int64]string{}
	}
	f.roles[m.IDUsuario][m.IDFinca] = m.Rol
	f.upserted = append(f.upserted, m)
	return nil
}

func (f *miembrosFake) Delete(_ context.Context, _, _ int64, _ string) (bool, error) {
	return false, nil
}

type fincasFake struct {
	admins map[int64]*int64
}

func (f *fincasFake) Create(_ context.Context, _ *entity.Finca) error { return nil }
func (f *fincasFake) GetByID(_ context.Context, _ int64) (*entity.Finca, error) {
	return nil, nil
}
func (f *fincasFake) Existe(_ context.Context, _ int64) (bool, error)    { return true, nil }
func (f *fincasFake) ListAll(_ context.Context) ([]*entity.Finca, error) { return nil, nil }
func (f *fincasFake) ListByUsuario(_ context.Context, _ int64) ([]*entity.Finca, error) {
	return nil, nil
}
func (f *fincasFake) ActualizarParcial(_ context.Context, _ int64, _ repository.FincaPatch) (*entity.Finca, error) {
	return nil, nil
}
func (f *fincasFake) Delete(_ context.Context, _ int64) error { return nil }
func (f *fincasFake) SetAdministrador(_ context.Context, idFinca int64, idUsuario *int64) error {
	if f.admins == nil {
		f.admins = map[int64]*int64{}
	}
	f.admins[idFinca] = idUsuario
	return nil
}

type txFake struct {
	repos repository.Repositorios
}

func (f *txFake) EnTransaccion(_ context.Context, fn func(r repository.Repositorios) error) error {
	return fn(f.repos)
}

type entorno struct {
	uc       *auth.AuthUseCase
	usuarios *usuariosFake
	miembros *miembrosFake
	fincas   *fincasFake
}

func nuevoEntorno() *entorno {
	e := &entorno{
		usuarios: &usuariosFake{porID: map[int64]*entity.Usuario{}},
		miembros: &miembrosFake{roles: map[int64]map[int64]string{}},
		fincas:   &fincasFake{},
	}
	tx := &txFake{repos: repository.Repositorios{
		Usuarios: e.usuarios,
		Miembros: e.miembros,
		Fincas:   e.fincas,
	}}
	e.uc = auth.NewAuthUseCase(e.usuarios, e.miembros, e.fincas, tx, auth.JWTConfig{
		Secret:            "secret-de-acceso",
		RefreshSecret:     "secret-de-refresco",
		ExpMinutes:        15,
		RefreshExpMinutes: 7 * 24 * 60,
		Issuer:            "ganaderia-api-test",
	})
	return e
}

func registroValido() dto.RegisterRequest {
	return dto.RegisterRequest{
		NombreUsuario:     "carlos",
		CorreoElectronico: "carlos@campo.co",
		Contrasena:        "clave-segura-123",
		NombreCompleto:    "Carlos Mejía",
	}
}

func TestRegister_PublicoCreaUsuarioComun(t *testing.T) {
	e := nuevoEntorno()

	usuario, err := e.uc.Register(context.Background(), nil, registroValido())
	require.NoError(t, err)
	assert.Equal(t, entity.RolGlobalUsuario, usuario.Rol, "sin rol explícito la cuenta nace como Usuario")
	assert.Equal(t, "carlos", usuario.NombreUsuario)

	// La contraseña queda hasheada, nunca en claro.
	cuenta := e.usuarios.porID[usuario.IDUsuario]
	assert.NotEqual(t, "clave-segura-123", cuenta.Contrasena)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cuenta.Contrasena), []byte("clave-segura-123")))
}

func TestRegister_DatosInvalidos(t *testing.T) {
	e := nuevoEntorno()

	in := registroValido()
	in.NombreUsuario = "ab"
	in.CorreoElectronico = "sin-arroba"
	in.Contrasena = "corta"

	_, err := e.uc.Register(context.Background(), nil, in)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)

	var val *domain.ValidacionError
	require.ErrorAs(t, err, &val)
	assert.Len(t, val.Issues, 3, "cada campo inválido aporta su issue")
}

func TestRegister_SuperAdminRequiereActorSuperAdmin(t *testing.T) {
	e := nuevoEntorno()

	in := registroValido()
	in.RolGlobal = entity.RolGlobalSuperAdmin

	// Anónimo no puede.
	_, err := e.uc.Register(context.Background(), nil, in)
	assert.ErrorIs(t, err, domain.ErrProhibido)

	// Un usuario común tampoco.
	comun := dto.Actor{IDUsuario: 7, Rol: entity.RolGlobalUsuario}
	_, err = e.uc.Register(context.Background(), &comun, in)
	assert.ErrorIs(t, err, domain.ErrProhibido)

	// Un SuperAdmin sí.
	root := dto.Actor{IDUsuario: 1, Rol: entity.RolGlobalSuperAdmin}
	usuario, err := e.uc.Register(context.Background(), &root, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RolGlobalSuperAdmin, usuario.Rol)
}

func TestRegister_AsignacionAFinca(t *testing.T) {
	e := nuevoEntorno()

	in := registroValido()
	in.Asignacion = &dto.AsignacionFinca{IDFinca: 1, RolFinca: "empleado"}

	// Anónimo no puede asignar.
	_, err := e.uc.Register(context.Background(), nil, in)
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)

	// AdminFinca de otra finca no puede.
	e.miembros.roles[7] = map[int64]string{2: entity.RolFincaAdmin}
	admin := dto.Actor{IDUsuario: 7, Rol: entity.RolGlobalUsuario}
	_, err = e.uc.Register(context.Background(), &admin, in)
	assert.ErrorIs(t, err, domain.ErrProhibido)

	// AdminFinca de la finca destino sí, y el rol se normaliza.
	e.miembros.roles[7][1] = entity.RolFincaAdmin
	usuario, err := e.uc.Register(context.Background(), &admin, in)
	require.NoError(t, err)

	require.Len(t, e.miembros.upserted, 1)
	assert.Equal(t, usuario.IDUsuario, e.miembros.upserted[0].IDUsuario)
	assert.Equal(t, entity.RolFincaEmpleado, e.miembros.upserted[0].Rol)
	assert.Empty(t, e.fincas.admins, "asignar Empleado no toca administrador_id")
}

func TestRegister_AsignacionAdminFincaFijaAdministrador(t *testing.T) {
	e := nuevoEntorno()

	in := registroValido()
	in.Asignacion = &dto.AsignacionFinca{IDFinca: 3, RolFinca: "AdminFinca"}

	root := dto.Actor{IDUsuario: 1, Rol: entity.RolGlobalSuperAdmin}
	usuario, err := e.uc.Register(context.Background(), &root, in)
	require.NoError(t, err)

	require.Contains(t, e.fincas.admins, int64(3))
	require.NotNil(t, e.fincas.admins[3])
	assert.Equal(t, usuario.IDUsuario, *e.fincas.admins[3])
}

func TestLogin(t *testing.T) {
	e := nuevoEntorno()
	_, err := e.uc.Register(context.Background(), nil, registroValido())
	require.NoError(t, err)

	// Por nombre de usuario.
	resp, err := e.uc.Login(context.Background(), dto.LoginRequest{Usuario: "carlos", Contrasena: "clave-segura-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "carlos", resp.Usuario.NombreUsuario)

	// Por correo.
	_, err = e.uc.Login(context.Background(), dto.LoginRequest{Usuario: "carlos@campo.co", Contrasena: "clave-segura-123"})
	require.NoError(t, err)

	// Contraseña incorrecta y cuenta inexistente responden igual.
	_, err = e.uc.Login(context.Background(), dto.LoginRequest{Usuario: "carlos", Contrasena: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	_, err = e.uc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Contrasena: "clave-segura-123"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestRefresh(t *testing.T) {
	e := nuevoEntorno()
	_, err := e.uc.Register(context.Background(), nil, registroValido())
	require.NoError(t, err)

	resp, err := e.uc.Login(context.Background(), dto.LoginRequest{Usuario: "carlos", Contrasena: "clave-segura-123"})
	require.NoError(t, err)

	tokens, err := e.uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	// El access token no sirve como refresh: secrets distintos.
	_, err = e.uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: resp.AccessToken})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

func TestRefresh_CuentaEliminada(t *testing.T) {
	e := nuevoEntorno()
	usuario, err := e.uc.Register(context.Background(), nil, registroValido())
	require.NoError(t, err)

	refresh, err := pkgjwt.Generate("secret-de-refresco", usuario.IDUsuario, usuario.NombreUsuario, usuario.Rol, "ganaderia-api-test", 60)
	require.NoError(t, err)

	require.NoError(t, e.usuarios.Delete(context.Background(), usuario.IDUsuario))

	_, err = e.uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: refresh})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

func TestRegister_Duplicado(t *testing.T) {
	e := nuevoEntorno()
	_, err := e.uc.Register(context.Background(), nil, registroValido())
	require.NoError(t, err)

	_, err = e.uc.Register(context.Background(), nil, registroValido())
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}
