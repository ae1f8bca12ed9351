package handlers

import (
	"net/http"

	"github.com/billbook-app/billbook_backend/cmd/docs"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authRateLimit bounds the public credential endpoints per client IP.
const authRateLimit = "20-M"

// RegisterHandlers mounts every route on the engine. The auth group is public
// (rate limited); everything else under /api requires a bearer token via the
// supplied auth middleware.
func RegisterHandlers(engine *gin.Engine, svc *portssvc.ServiceContainer, authMiddleware gin.HandlerFunc, isProduction bool) {
	engine.GET("/", healthCheck)
	engine.GET("/health", healthCheck)

	if !isProduction {
		docs.SwaggerInfo.BasePath = "/api"
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := NewAuthHandler(svc.Auth, svc.User)
	businessHandler := NewBusinessHandler(svc.Business, svc.User)
	customerHandler := NewCustomerHandler(svc.Customer, svc.User)
	vendorHandler := NewVendorHandler(svc.Vendor, svc.User)
	productHandler := NewProductHandler(svc.Product, svc.User)
	expenseHandler := NewExpenseHandler(svc.ExpenseCategory, svc.Expense, svc.User)
	invoiceHandler := NewInvoiceHandler(svc.Invoice, svc.User)
	paymentHandler := NewPaymentHandler(svc.Payment, svc.User)
	reportingHandler := NewReportingHandler(svc.Reporting, svc.User)
	solarHandler := NewSolarHandler(svc.Solar, svc.User)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.Use(newAuthRateLimiter())
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.POST("/businesses", businessHandler.Create)
		protected.GET("/businesses", businessHandler.List)
		protected.GET("/businesses/:id", businessHandler.Get)
		protected.PUT("/businesses/:id", businessHandler.Update)

		protected.POST("/customers", customerHandler.Create)
		protected.GET("/customers", customerHandler.List)
		protected.GET("/customers/:id", customerHandler.Get)
		protected.PUT("/customers/:id", customerHandler.Update)
		protected.DELETE("/customers/:id", customerHandler.Delete)

		protected.POST("/vendors", vendorHandler.Create)
		protected.GET("/vendors", vendorHandler.List)
		protected.GET("/vendors/:id", vendorHandler.Get)
		protected.PUT("/vendors/:id", vendorHandler.Update)
		protected.DELETE("/vendors/:id", vendorHandler.Delete)

		protected.POST("/products", productHandler.Create)
		protected.GET("/products", productHandler.List)
		protected.GET("/products/:id", productHandler.Get)
		protected.PUT("/products/:id", productHandler.Update)
		protected.DELETE("/products/:id", productHandler.Delete)

		protected.POST("/expense-categories", expenseHandler.CreateCategory)
		protected.GET("/expense-categories", expenseHandler.ListCategories)

		protected.POST("/expenses", expenseHandler.CreateExpense)
		protected.GET("/expenses", expenseHandler.ListExpenses)
		protected.GET("/expenses/:id", expenseHandler.GetExpense)
		protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

		protected.POST("/invoices", invoiceHandler.Create)
		protected.GET("/invoices", invoiceHandler.List)
		protected.GET("/invoices/:id", invoiceHandler.Get)
		protected.DELETE("/invoices/:id", invoiceHandler.Delete)

		protected.POST("/payments", paymentHandler.Create)
		protected.GET("/payments", paymentHandler.List)

		protected.GET("/dashboard/stats", reportingHandler.DashboardStats)
		protected.GET("/reports/sales", reportingHandler.SalesReport)
		protected.GET("/reports/expenses", reportingHandler.ExpenseReport)

		protected.POST("/solar/projects", solarHandler.CreateProject)
		protected.GET("/solar/projects", solarHandler.ListProjects)
		protected.GET("/solar/projects/:id", solarHandler.GetProject)
		protected.PUT("/solar/projects/:id", solarHandler.UpdateProject)
		protected.DELETE("/solar/projects/:id", solarHandler.DeleteProject)

		protected.POST("/solar/milestones", solarHandler.CreateMilestone)
		protected.GET("/solar/milestones/:projectId", solarHandler.ListMilestones)
		protected.PUT("/solar/milestones/:id/status", solarHandler.UpdateMilestoneStatus)

		protected.POST("/solar/materials", solarHandler.CreateMaterialConsumption)
		protected.GET("/solar/materials/:projectId", solarHandler.ListMaterials)

		protected.POST("/solar/documents", solarHandler.CreateDocument)
		protected.GET("/solar/documents/:projectId", solarHandler.ListDocuments)
		protected.PUT("/solar/documents/:id/status", solarHandler.UpdateDocumentStatus)

		protected.POST("/solar/subsidies", solarHandler.CreateSubsidy)
		protected.GET("/solar/subsidies/:projectId", solarHandler.ListSubsidies)
		protected.PUT("/solar/subsidies/:id/status", solarHandler.UpdateSubsidyStatus)

		protected.GET("/solar/dashboard", reportingHandler.SolarDashboard)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func newAuthRateLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(authRateLimit)
	if err != nil {
		panic(err)
	}
	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
