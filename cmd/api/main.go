// Package main is the entry point for the Household Finance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/household-finance/backend/config"
	"github.com/household-finance/backend/internal/application/usecase/asset"
	"github.com/household-finance/backend/internal/application/usecase/category"
	"github.com/household-finance/backend/internal/application/usecase/paymentmethod"
	"github.com/household-finance/backend/internal/application/usecase/report"
	"github.com/household-finance/backend/internal/application/usecase/summary"
	"github.com/household-finance/backend/internal/application/usecase/transaction"
	"github.com/household-finance/backend/internal/application/usecase/user"
	"github.com/household-finance/backend/internal/infra/db"
	"github.com/household-finance/backend/internal/infra/server/router"
	"github.com/household-finance/backend/internal/integration/entrypoint/controller"
	"github.com/household-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/household-finance/backend/internal/integration/persistence"
	"github.com/household-finance/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Household Finance API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.PaymentMethodModel{},
		&model.AssetModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis is optional; without it the write rate limiter is disabled.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid Redis URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis unreachable, write rate limiting disabled", "error", err)
			redisClient = nil
		}
	}

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	paymentMethodRepo := persistence.NewPaymentMethodRepository(database.DB())
	assetRepo := persistence.NewAssetRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())

	// Use cases
	createUserUseCase := user.NewCreateUserUseCase(userRepo)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo)
	deactivateUserUseCase := user.NewDeactivateUserUseCase(userRepo)

	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deactivateCategoryUseCase := category.NewDeactivateCategoryUseCase(categoryRepo)

	listPaymentMethodsUseCase := paymentmethod.NewListPaymentMethodsUseCase(paymentMethodRepo)
	listAssetsUseCase := asset.NewListAssetsUseCase(assetRepo)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	deleteGroupUseCase := transaction.NewDeleteInstallmentGroupUseCase(transactionRepo)

	getSummaryUseCase := summary.NewGetSummaryUseCase(transactionRepo)

	overviewUseCase := report.NewGetOverviewUseCase(transactionRepo)
	trendsUseCase := report.NewGetTrendsUseCase(transactionRepo)
	evolutionUseCase := report.NewGetEvolutionUseCase(transactionRepo)
	projectionUseCase := report.NewGetProjectionUseCase(transactionRepo)
	investmentsUseCase := report.NewGetInvestmentsUseCase(transactionRepo)
	budgetsUseCase := report.NewGetBudgetsUseCase(transactionRepo, cfg.Budget.Limits)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	userController := controller.NewUserController(
		createUserUseCase, listUsersUseCase, updateUserUseCase, deactivateUserUseCase)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase, listCategoriesUseCase, updateCategoryUseCase, deactivateCategoryUseCase)
	paymentMethodController := controller.NewPaymentMethodController(listPaymentMethodsUseCase)
	assetController := controller.NewAssetController(listAssetsUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase, listTransactionsUseCase, updateTransactionUseCase,
		deleteTransactionUseCase, deleteGroupUseCase)
	summaryController := controller.NewSummaryController(getSummaryUseCase)
	reportController := controller.NewReportController(
		overviewUseCase, trendsUseCase, evolutionUseCase,
		projectionUseCase, investmentsUseCase, budgetsUseCase)

	writeRateLimiter := middleware.NewRateLimiter(
		redisClient, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)

	r := router.NewRouter(
		healthController,
		userController,
		categoryController,
		paymentMethodController,
		assetController,
		transactionController,
		summaryController,
		reportController,
		writeRateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
