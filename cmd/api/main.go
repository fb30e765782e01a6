package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/davidmtzc/inventra-api/internal/application/alerts"
	"github.com/davidmtzc/inventra-api/internal/application/auth"
	"github.com/davidmtzc/inventra-api/internal/application/inventory"
	"github.com/davidmtzc/inventra-api/internal/application/reports"
	"github.com/davidmtzc/inventra-api/internal/application/usecase"
	"github.com/davidmtzc/inventra-api/internal/infrastructure/notify"
	infrapdf "github.com/davidmtzc/inventra-api/internal/infrastructure/pdf"
	"github.com/davidmtzc/inventra-api/internal/infrastructure/postgres"
	httpRouter "github.com/davidmtzc/inventra-api/internal/interfaces/http"
	"github.com/davidmtzc/inventra-api/pkg/config"
	"github.com/davidmtzc/inventra-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sumideros de notificación de alertas, según configuración.
	var notifiers []alerts.Notifier
	if cfg.SMTP.Host != "" {
		notifiers = append(notifiers, notify.NewEmailNotifier(cfg.SMTP, log))
		log.Info().Msg("notificador de correo habilitado")
	}
	if cfg.AMQP.URL != "" {
		publisher, err := notify.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer publisher.Close()
		notifiers = append(notifiers, publisher)
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("publicador de eventos habilitado")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	applyMovementUC := inventory.NewApplyMovementUseCase(txRunner, productRepo)
	movementHistoryUC := inventory.NewMovementHistoryUseCase(movementRepo, productRepo)
	sweepUC := alerts.NewSweepUseCase(productRepo, alertRepo, notifiers, log)
	lifecycleUC := alerts.NewLifecycleUseCase(alertRepo)
	reportUC := reports.NewInventoryReportUseCase(productRepo, infrapdf.NewMarotoReportGenerator())

	retention := time.Duration(cfg.Alerts.RetentionDays) * 24 * time.Hour

	// Barrido periódico de alertas y purga de resueltas.
	scheduler := alerts.NewScheduler(
		sweepUC, lifecycleUC,
		cfg.Alerts.SystemActorID,
		cfg.Alerts.SweepInterval, retention,
		log,
	)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		CategoryUC:      categoryUC,
		ApplyMovement:   applyMovementUC,
		MovementHistory: movementHistoryUC,
		AlertLifecycle:  lifecycleUC,
		AlertSweep:      sweepUC,
		ReportUC:        reportUC,
		AlertRetention:  retention,
		JWTSecret:       cfg.JWT.Secret,
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
