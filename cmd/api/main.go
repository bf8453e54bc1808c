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

	_ "github.com/rafaelfarias/almoxarifado-api/docs"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/auth"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/catalog"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/movement"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/report"
	infrapdf "github.com/rafaelfarias/almoxarifado-api/internal/infrastructure/pdf"
	"github.com/rafaelfarias/almoxarifado-api/internal/infrastructure/postgres"
	httpRouter "github.com/rafaelfarias/almoxarifado-api/internal/interfaces/http"
	"github.com/rafaelfarias/almoxarifado-api/pkg/config"
	"github.com/rafaelfarias/almoxarifado-api/pkg/logger"
)

// @title        Almoxarifado API
// @version      1.0
// @description  Rastreamento de insumos do almoxarifado central até hospitais, UBS e unidades atendidas.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	hospitalRepo := postgres.NewHospitalRepository(pool)
	unitRepo := postgres.NewServedUnitRepository(pool)
	configRepo := postgres.NewStockConfigRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := movement.NewProcessMovementUseCase(txRunner, userRepo, hospitalRepo, unitRepo, patientRepo)
	historyUC := movement.NewHistoryUseCase(movementRepo)
	importUC := movement.NewImportUseCase(engine, itemRepo, hospitalRepo, unitRepo)

	itemUC := catalog.NewItemUseCase(itemRepo)
	hospitalUC := catalog.NewHospitalUseCase(hospitalRepo, unitRepo)
	patientUC := catalog.NewPatientUseCase(patientRepo, hospitalRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	stockReportUC := report.NewStockReportUseCase(itemRepo, hospitalRepo, unitRepo, configRepo, pdfGenerator)
	consumptionUC := report.NewConsumptionUseCase(movementRepo, itemRepo, configRepo)
	alertsUC := report.NewAlertsUseCase(itemRepo, configRepo, hospitalRepo, unitRepo)

	authUC := auth.NewAuthUseCase(userRepo, hospitalRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almoxarifado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ItemUC:        itemUC,
		HospitalUC:    hospitalUC,
		PatientUC:     patientUC,
		Engine:        engine,
		HistoryUC:     historyUC,
		ImportUC:      importUC,
		StockReport:   stockReportUC,
		ConsumptionUC: consumptionUC,
		AlertsUC:      alertsUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
