package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/camposoft/ganaderia-api/internal/interfaces/http"
	pkgjwt "github.com/camposoft/ganaderia-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "ganaderia-api-test"
	testExpMin    = 60
)

// buildTestApp arma una app Fiber mínima con una ruta protegida por JWT y,
// opcionalmente, por RequireSuperAdmin.
func buildTestApp(soloSuperAdmin bool) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if soloSuperAdmin {
		handlers = append(handlers, apphttp.RequireSuperAdmin())
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		actor, _ := apphttp.GetActor(c)
		return c.JSON(fiber.Map{
			"id_usuario": actor.IDUsuario,
			"usuario":    actor.NombreUsuario,
			"rol":        actor.Rol,
		})
	})
	app.Get("/protegida", handlers...)
	return app
}

func tokenConRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, 7, "carlos", rol, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ExtraeActor(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, tokenConRol(t, "Usuario"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(7), body["id_usuario"])
	assert.Equal(t, "carlos", body["usuario"])
	assert.Equal(t, "Usuario", body["rol"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(false)
	tok, err := pkgjwt.Generate(testJWTSecret, 7, "carlos", "Usuario", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSuperAdmin_SuperAdminAccede(t *testing.T) {
	app := buildTestApp(true)
	resp := doRequest(t, app, tokenConRol(t, "SuperAdmin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"SuperAdmin debe poder acceder a ruta restringida")
}

func TestRequireSuperAdmin_UsuarioBloqueado(t *testing.T) {
	app := buildTestApp(true)
	resp := doRequest(t, app, tokenConRol(t, "Usuario"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"rol global Usuario no debe acceder a rutas de SuperAdmin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"ok":false`)
	assert.Contains(t, string(body), "SuperAdmin")
}

func TestOptionalAuth_SinTokenSigueAnonimo(t *testing.T) {
	app := fiber.New()
	app.Post("/registro", apphttp.OptionalAuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		_, autenticado := apphttp.GetActor(c)
		return c.JSON(fiber.Map{"autenticado": autenticado})
	})

	req := httptest.NewRequest(http.MethodPost, "/registro", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body["autenticado"])
}

func TestOptionalAuth_TokenInvalidoRechaza(t *testing.T) {
	app := fiber.New()
	app.Post("/registro", apphttp.OptionalAuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/registro", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 42, "maria", "SuperAdmin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.IDUsuario)
	assert.Equal(t, "maria", claims.NombreUsuario)
	assert.Equal(t, "SuperAdmin", claims.Rol)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 42, "maria", "Usuario", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
