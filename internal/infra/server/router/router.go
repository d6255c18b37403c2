// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/household-finance/backend/internal/integration/entrypoint/controller"
	"github.com/household-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	userController          *controller.UserController
	categoryController      *controller.CategoryController
	paymentMethodController *controller.PaymentMethodController
	assetController         *controller.AssetController
	transactionController   *controller.TransactionController
	summaryController       *controller.SummaryController
	reportController        *controller.ReportController
	writeRateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	paymentMethodController *controller.PaymentMethodController,
	assetController *controller.AssetController,
	transactionController *controller.TransactionController,
	summaryController *controller.SummaryController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:        healthController,
		userController:          userController,
		categoryController:      categoryController,
		paymentMethodController: paymentMethodController,
		assetController:         assetController,
		transactionController:   transactionController,
		summaryController:       summaryController,
		reportController:        reportController,
		writeRateLimiter:        writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.engine.Use(cors.New(corsConfig))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Write endpoints go
// through the rate limiter.
func (r *Router) setupAPIRoutes() {
	limit := r.writeRateLimiter.Middleware()

	users := r.engine.Group("/users")
	{
		users.GET("", r.userController.List)
		users.POST("", limit, r.userController.Create)
		users.PUT("/:id", limit, r.userController.Update)
		users.DELETE("/:id", limit, r.userController.Deactivate)
	}

	categories := r.engine.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", limit, r.categoryController.Create)
		categories.PUT("/:id", limit, r.categoryController.Update)
		categories.DELETE("/:id", limit, r.categoryController.Deactivate)
	}

	r.engine.GET("/payment-methods", r.paymentMethodController.List)
	r.engine.GET("/assets", r.assetController.List)

	transactions := r.engine.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.GET("/export", r.transactionController.ExportCSV)
		transactions.POST("", limit, r.transactionController.Create)
		transactions.PUT("/:id", limit, r.transactionController.Update)
		transactions.DELETE("/group/:groupId", limit, r.transactionController.DeleteGroup)
		transactions.DELETE("/:id", limit, r.transactionController.Delete)
	}

	r.engine.GET("/summary", r.summaryController.Get)

	dashboard := r.engine.Group("/dashboard")
	{
		dashboard.GET("/overview", r.reportController.Overview)
		dashboard.GET("/trends", r.reportController.Trends)
		dashboard.GET("/evolution", r.reportController.Evolution)
		dashboard.GET("/projection", r.reportController.Projection)
		dashboard.GET("/investments", r.reportController.Investments)
	}

	r.engine.GET("/budgets", r.reportController.Budgets)
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
