package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/auth"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	FincaUC      *usecase.FincaUseCase
	MiembroUC    *usecase.MiembroUseCase
	SemovienteUC *usecase.SemovienteUseCase
	MovimientoUC *usecase.MovimientoUseCase
	RegistroUC   *usecase.RegistroMedicoUseCase
	ReporteUC    *usecase.ReporteUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth. Register es público para cuentas básicas; con token puede crear
	// SuperAdmin o asignar a finca, por eso el auth opcional.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", OptionalAuthMiddleware(deps.JWTSecret), authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Todo lo demás requiere Bearer Token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios: perfil propio primero, administración después.
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/me", usuarioHandler.Perfil)
	usuarios.Patch("/me", usuarioHandler.ActualizarPerfil)
	usuarios.Patch("/me/password", usuarioHandler.CambiarContrasenaPropia)
	usuarios.Get("/", RequireSuperAdmin(), usuarioHandler.Listar)
	usuarios.Patch("/:id", RequireSuperAdmin(), usuarioHandler.Actualizar)
	usuarios.Delete("/:id", usuarioHandler.Eliminar)
	usuarios.Patch("/:id/password", usuarioHandler.CambiarContrasena)
	usuarios.Patch("/:id/password/reset", RequireSuperAdmin(), usuarioHandler.ResetearContrasena)

	// Fincas, membresías y reportes por finca.
	fincas := protected.Group("/fincas")
	fincaHandler := NewFincaHandler(deps.FincaUC, deps.MiembroUC)
	semovienteHandler := NewSemovienteHandler(deps.SemovienteUC)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	fincas.Get("/", fincaHandler.Listar)
	fincas.Post("/", fincaHandler.Crear)
	fincas.Get("/:id", fincaHandler.GetPorID)
	fincas.Patch("/:id", fincaHandler.Actualizar)
	fincas.Delete("/:id", fincaHandler.Eliminar)
	fincas.Get("/:id/miembros", fincaHandler.ListarMiembros)
	fincas.Post("/:id/miembros", fincaHandler.AsignarMiembro)
	fincas.Delete("/:id/miembros/:idUsuario", fincaHandler.RevocarMiembro)
	fincas.Get("/:id/semovientes", semovienteHandler.ListarPorFinca)
	fincas.Get("/:id/reportes/inventario", reporteHandler.Inventario)
	fincas.Get("/:id/reportes/sanitario", reporteHandler.Sanitario)

	// Semovientes: datos, ciclo de vida, historial médico y libro de movimientos.
	semovientes := protected.Group("/semovientes")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	registroHandler := NewRegistroMedicoHandler(deps.RegistroUC)
	semovientes.Get("/", semovienteHandler.Listar)
	semovientes.Post("/", semovienteHandler.Crear)
	semovientes.Get("/:id", semovienteHandler.GetPorID)
	semovientes.Patch("/:id", semovienteHandler.Actualizar)
	semovientes.Delete("/:id", semovienteHandler.Eliminar)
	semovientes.Patch("/:id/estado", semovienteHandler.CambiarEstado)
	semovientes.Get("/:id/ficha-completa", semovienteHandler.FichaCompleta)
	semovientes.Get("/:id/ficha.pdf", semovienteHandler.FichaPDF)
	semovientes.Get("/:id/eventos", registroHandler.Listar)
	semovientes.Post("/:id/eventos", registroHandler.Crear)
	semovientes.Patch("/:id/eventos/:idRegistro", registroHandler.Actualizar)
	semovientes.Delete("/:id/eventos/:idRegistro", registroHandler.Eliminar)
	semovientes.Get("/:id/movimientos", movimientoHandler.Listar)
	semovientes.Post("/:id/movimientos", movimientoHandler.Crear)
	semovientes.Get("/:id/movimientos/:idMovimiento/guia.xml", movimientoHandler.GuiaXML)
}
