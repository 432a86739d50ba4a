package router

import (
	"pizzeria_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupSaleRoutes sets up the sale posting/listing routes.
func SetupSaleRoutes(apiGroup *gin.RouterGroup, salesHandler *handlers.SalesHandler) {
	saleRoutes := apiGroup.Group("/sales")
	{
		saleRoutes.POST("", salesHandler.PostSale)
		saleRoutes.GET("", salesHandler.GetSales)
	}
}

// SetupPurchaseRoutes sets up the purchase/expense routes.
func SetupPurchaseRoutes(apiGroup *gin.RouterGroup, purchaseHandler *handlers.PurchaseHandler) {
	purchaseRoutes := apiGroup.Group("/purchases")
	{
		purchaseRoutes.POST("", purchaseHandler.PostPurchase)
		purchaseRoutes.GET("", purchaseHandler.GetPurchases)
		purchaseRoutes.GET("/categories", purchaseHandler.GetCategories)
	}
}

// SetupMenuRoutes sets up the menu and stock grid editor routes.
func SetupMenuRoutes(apiGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	menuRoutes := apiGroup.Group("/menu")
	{
		menuRoutes.GET("", menuHandler.GetMenu)
		menuRoutes.PUT("", menuHandler.ReplaceMenu)
	}
	stockRoutes := apiGroup.Group("/stock")
	{
		stockRoutes.GET("", menuHandler.GetStock)
		stockRoutes.PUT("", menuHandler.UpdateStock)
	}
}

// SetupCompanyRoutes sets up the company profile routes.
func SetupCompanyRoutes(apiGroup *gin.RouterGroup, companyHandler *handlers.CompanyHandler) {
	companyRoutes := apiGroup.Group("/company")
	{
		companyRoutes.GET("", companyHandler.GetCompany)
		companyRoutes.PUT("", companyHandler.UpdateCompany)
	}
}

// SetupAnalyticsRoutes sets up the dashboard analytics routes.
func SetupAnalyticsRoutes(apiGroup *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	analyticsRoutes := apiGroup.Group("/analytics")
	{
		analyticsRoutes.GET("/summary", analyticsHandler.GetSummary)
		analyticsRoutes.GET("/range", analyticsHandler.GetRange)
	}
}

// SetupFiscalRoutes sets up the fiscal document routes.
func SetupFiscalRoutes(apiGroup *gin.RouterGroup, fiscalHandler *handlers.FiscalHandler) {
	fiscalRoutes := apiGroup.Group("/fiscal")
	{
		fiscalRoutes.GET("/nfce/daily", fiscalHandler.GetDailyArchive)
		fiscalRoutes.GET("/nfce/:id", fiscalHandler.GetNFCe)
	}
}

// SetupExportRoutes sets up the one-shot export routes.
func SetupExportRoutes(apiGroup *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	exportRoutes := apiGroup.Group("/export")
	{
		exportRoutes.GET("/sql", exportHandler.GetSQLDump)
		exportRoutes.GET("/csv", exportHandler.GetCSVExport)
		exportRoutes.GET("/report", exportHandler.GetPDFReport)
	}
}
