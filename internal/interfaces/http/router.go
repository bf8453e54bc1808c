package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/auth"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/catalog"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/movement"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/report"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ItemUC        *catalog.ItemUseCase
	HospitalUC    *catalog.HospitalUseCase
	PatientUC     *catalog.PatientUseCase
	Engine        *movement.ProcessMovementUseCase
	HistoryUC     *movement.HistoryUseCase
	ImportUC      *movement.ImportUseCase
	StockReport   *report.StockReportUseCase
	ConsumptionUC *report.ConsumptionUseCase
	AlertsUC      *report.AlertsUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de insumos: escrita restrita a papéis centrais
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", RequireRole(entity.RoleAdmin, entity.RoleCentralOperator), itemHandler.Create)
	items.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleCentralOperator), itemHandler.Update)

	// Hospitais, UBS e unidades atendidas
	hospitals := protected.Group("/hospitals")
	hospitalHandler := NewHospitalHandler(deps.HospitalUC)
	hospitals.Get("/", hospitalHandler.List)
	hospitals.Get("/:id", hospitalHandler.GetByID)
	hospitals.Get("/:id/units", hospitalHandler.ListUnits)
	hospitals.Post("/", RequireRole(entity.RoleAdmin), hospitalHandler.Create)
	hospitals.Put("/:id", RequireRole(entity.RoleAdmin), hospitalHandler.Update)
	hospitals.Post("/:id/units", RequireRole(entity.RoleAdmin), hospitalHandler.CreateUnit)

	// Pacientes
	patients := protected.Group("/patients")
	patientHandler := NewPatientHandler(deps.PatientUC)
	patients.Get("/", patientHandler.List)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Post("/", patientHandler.Create)
	patients.Put("/:id", patientHandler.Update)

	// Movimentação: a autorização fina por papel/escopo fica no motor
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Engine, deps.HistoryUC)
	movements.Post("/", movementHandler.Process)
	movements.Get("/", movementHandler.List)
	importHandler := NewImportHandler(deps.ImportUC)
	movements.Post("/import", RequireRole(entity.RoleAdmin, entity.RoleCentralOperator), importHandler.Import)

	// Relatórios
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.StockReport, deps.ConsumptionUC, deps.AlertsUC)
	reports.Get("/stock-position", reportHandler.StockPosition)
	reports.Get("/consumption", reportHandler.Consumption)
	reports.Get("/minimum-alerts", reportHandler.MinimumAlerts)
}
