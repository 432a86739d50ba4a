package router

import (
	"pizzeria_backend/internal/handlers"
	"pizzeria_backend/internal/services"
	"pizzeria_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, st *store.Store) {
	// Initialize Services
	salesService := services.NewSalesService(st)
	purchaseService := services.NewPurchaseService(st)
	menuService := services.NewMenuService(st)
	companyService := services.NewCompanyService(st)
	analyticsService := services.NewAnalyticsService(st)
	fiscalService := services.NewFiscalService(st)
	exportService := services.NewExportService(st)

	// Initialize Handlers
	salesHandler := handlers.NewSalesHandler(salesService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	menuHandler := handlers.NewMenuHandler(menuService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	fiscalHandler := handlers.NewFiscalHandler(fiscalService)
	exportHandler := handlers.NewExportHandler(exportService)

	apiV1 := engine.Group("/api/v1")
	{
		SetupSaleRoutes(apiV1, salesHandler)
		SetupPurchaseRoutes(apiV1, purchaseHandler)
		SetupMenuRoutes(apiV1, menuHandler)
		SetupCompanyRoutes(apiV1, companyHandler)
		SetupAnalyticsRoutes(apiV1, analyticsHandler)
		SetupFiscalRoutes(apiV1, fiscalHandler)
		SetupExportRoutes(apiV1, exportHandler)
	}
}
