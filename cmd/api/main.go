package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/camposoft/ganaderia-api/internal/application/auth"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
	"github.com/camposoft/ganaderia-api/internal/infrastructure/guias"
	infrapdf "github.com/camposoft/ganaderia-api/internal/infrastructure/pdf"
	"github.com/camposoft/ganaderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/camposoft/ganaderia-api/internal/interfaces/http"
	"github.com/camposoft/ganaderia-api/pkg/config"
	"github.com/camposoft/ganaderia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	dbLog := log.Componente("postgres")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		dbLog.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	dbLog.Info().Str("host", cfg.DB.Host).Msg("pool de conexiones listo")
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	fincaRepo := postgres.NewFincaRepository(pool)
	miembroRepo := postgres.NewMiembroRepository(pool)
	semovienteRepo := postgres.NewSemovienteRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	registroRepo := postgres.NewRegistroMedicoRepository(pool)
	razaRepo := postgres.NewRazaRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fichaGenerator := infrapdf.NewFichaGenerator()
	guiaBuilder := guias.NewBuilder()

	authUC := auth.NewAuthUseCase(usuarioRepo, miembroRepo, fincaRepo, txRunner, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		RefreshSecret:     cfg.JWT.RefreshSecret,
		ExpMinutes:        cfg.JWT.ExpMinutes,
		RefreshExpMinutes: cfg.JWT.RefreshExpMinutes,
		Issuer:            cfg.JWT.Issuer,
	})
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, miembroRepo)
	fincaUC := usecase.NewFincaUseCase(fincaRepo, miembroRepo)
	miembroUC := usecase.NewMiembroUseCase(miembroRepo, fincaRepo, txRunner)
	semovienteUC := usecase.NewSemovienteUseCase(semovienteRepo, miembroRepo, razaRepo, registroRepo, movimientoRepo, txRunner, fichaGenerator)
	movimientoUC := usecase.NewMovimientoUseCase(semovienteRepo, movimientoRepo, miembroRepo, fincaRepo, txRunner, guiaBuilder)
	registroUC := usecase.NewRegistroMedicoUseCase(registroRepo, semovienteRepo, miembroRepo)
	reporteUC := usecase.NewReporteUseCase(reporteRepo, fincaRepo, miembroRepo, cfg.Reportes.IncluirInactivos)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ganadería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UsuarioUC:    usuarioUC,
		FincaUC:      fincaUC,
		MiembroUC:    miembroUC,
		SemovienteUC: semovienteUC,
		MovimientoUC: movimientoUC,
		RegistroUC:   registroUC,
		ReporteUC:    reporteUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
