package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/arteideas/backend/docs"
	"github.com/arteideas/backend/internal/application/analytics"
	"github.com/arteideas/backend/internal/application/auth"
	"github.com/arteideas/backend/internal/application/commerce"
	"github.com/arteideas/backend/internal/application/crm"
	"github.com/arteideas/backend/internal/application/finance"
	"github.com/arteideas/backend/internal/application/operations"
	"github.com/arteideas/backend/internal/application/usecase"
	infrapdf "github.com/arteideas/backend/internal/infrastructure/pdf"
	"github.com/arteideas/backend/internal/infrastructure/postgres"
	httpRouter "github.com/arteideas/backend/internal/interfaces/http"
	"github.com/arteideas/backend/pkg/config"
	"github.com/arteideas/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	permRepo := postgres.NewRolePermissionRepository(pool)
	tokenRepo := postgres.NewRefreshTokenRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	contratoRepo := postgres.NewContratoRepository(pool)
	eventoRepo := postgres.NewEventoRepository(pool)
	activoDigitalRepo := postgres.NewActivoDigitalRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ordenRepo := postgres.NewOrdenProduccionRepository(pool)
	activoFisicoRepo := postgres.NewActivoFisicoRepository(pool)
	categoriaRepo := postgres.NewCategoriaGastoRepository(pool)
	gastoPersonalRepo := postgres.NewGastoPersonalRepository(pool)
	gastoServicioRepo := postgres.NewGastoServicioRepository(pool)
	presupuestoRepo := postgres.NewPresupuestoRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, tokenRepo, auth.JWTConfig{
		Secret:        cfg.JWT.Secret,
		AccessMinutes: cfg.JWT.AccessMinutes,
		RefreshDays:   cfg.JWT.RefreshDays,
		Issuer:        cfg.JWT.Issuer,
	})
	profileUC := usecase.NewProfileUseCase(userRepo, tokenRepo, analyticsRepo)
	configUC := usecase.NewConfigUseCase(tenantRepo, userRepo, permRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	clienteUC := crm.NewClienteUseCase(clienteRepo)
	contratoUC := crm.NewContratoUseCase(contratoRepo, clienteRepo, tenantRepo, pdfGenerator)
	agendaUC := crm.NewAgendaUseCase(eventoRepo)
	activoUC := crm.NewActivoUseCase(activoDigitalRepo, clienteRepo)

	pedidoUC := commerce.NewPedidoUseCase(pedidoRepo, clienteRepo, contratoRepo)
	productoUC := commerce.NewProductoUseCase(productoRepo)
	produccionUC := operations.NewProduccionUseCase(ordenRepo, pedidoRepo, clienteRepo)
	activoFisicoUC := operations.NewActivoFisicoUseCase(activoFisicoRepo)
	financeUC := finance.NewFinanceUseCase(categoriaRepo, gastoPersonalRepo, gastoServicioRepo, presupuestoRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:       cfg.App.Name,
		StrictRouting: true,
		ErrorHandler:  httpRouter.ErrorHandler,
		ReadTimeout:   time.Second * 10,
		WriteTimeout:  time.Second * 10,
		IdleTimeout:   time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.CorrelationMiddleware())
	app.Use(httpRouter.MetricsMiddleware())
	app.Use(httpRouter.TrailingSlashRedirect())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Arte Ideas API",
	}))

	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProfileUC:      profileUC,
		ConfigUC:       configUC,
		ClienteUC:      clienteUC,
		ContratoUC:     contratoUC,
		AgendaUC:       agendaUC,
		ActivoUC:       activoUC,
		PedidoUC:       pedidoUC,
		ProductoUC:     productoUC,
		ProduccionUC:   produccionUC,
		ActivoFisicoUC: activoFisicoUC,
		FinanceUC:      financeUC,
		DashboardUC:    dashboardUC,
		Permissions:    configUC,
		JWTSecret:      cfg.JWT.Secret,
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
