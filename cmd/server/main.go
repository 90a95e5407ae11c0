package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/config"
	"github.com/hornerp/reporting-service/internal/database"
	"github.com/hornerp/reporting-service/internal/export"
	invHandlerPkg "github.com/hornerp/reporting-service/internal/inventory/handler"
	invRepoPkg "github.com/hornerp/reporting-service/internal/inventory/repository"
	invUCPkg "github.com/hornerp/reporting-service/internal/inventory/usecase"
	reportHandlerPkg "github.com/hornerp/reporting-service/internal/report/handler"
	reportRepoPkg "github.com/hornerp/reporting-service/internal/report/repository"
	reportUCPkg "github.com/hornerp/reporting-service/internal/report/usecase"
	salesHandlerPkg "github.com/hornerp/reporting-service/internal/sales/handler"
	salesRepoPkg "github.com/hornerp/reporting-service/internal/sales/repository"
	salesUCPkg "github.com/hornerp/reporting-service/internal/sales/usecase"
	"github.com/hornerp/reporting-service/pkg/logger"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logCfg := cfg.Logger
	if cfg.Server.AppEnv != "dev" {
		logCfg.Encoding = "json"
		logCfg.Level = "info"
	}
	appLogger := logger.New(logCfg)
	defer appLogger.Sync()

	// 3. Connect to the active backend. DATABASE_URL selects the
	// networked store; its absence selects the embedded file. A failed
	// networked handshake is fatal, never a fallback.
	db, err := database.Open(cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("could not open database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("schema migration failed", zap.Error(err))
	}

	// 4. Repositories
	reportRepo := reportRepoPkg.NewSQLRepository(db)
	invRepo := invRepoPkg.NewSQLRepository(db)
	salesRepo := salesRepoPkg.NewSQLRepository(db)

	// 5. UseCases
	reportUC := reportUCPkg.NewReportUseCase(reportRepo, cfg.Report, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, cfg.Report, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, appLogger)

	// 6. Emitters
	excelWriter := export.NewExcelWriter(cfg.Export.Dir)
	pdfWriter := export.NewPDFWriter(cfg.Export.Dir, cfg.Server.ShopName)

	// 7. Handlers
	reportHandler := reportHandlerPkg.NewReportHandler(reportUC, invUC, excelWriter, pdfWriter, appLogger)
	invHandler := invHandlerPkg.NewInventoryHandler(invUC, appLogger)
	salesHandler := salesHandlerPkg.NewSalesHandler(salesUC, appLogger)

	// 8. HTTP server
	app := fiber.New(fiber.Config{AppName: cfg.Server.ShopName})

	api := app.Group("/api")
	api.Get("/dashboard", reportHandler.GetDashboard)
	api.Get("/reports/excel", reportHandler.ExportExcel)
	api.Get("/reports/pdf", reportHandler.ExportPDF)
	api.Get("/inventory", invHandler.GetSnapshot)
	api.Get("/inventory/alerts", invHandler.GetAlerts)
	api.Post("/inventory/products", invHandler.UpsertProduct)
	api.Post("/inventory/adjust", invHandler.AdjustStock)
	api.Get("/stock-logs", invHandler.GetStockLogs)
	api.Post("/sales", salesHandler.RecordSale)

	appLogger.Info("starting HTTP server",
		zap.String("port", cfg.Server.HTTPPort),
		zap.String("backend", db.Backend()))

	go func() {
		if err := app.Listen(cfg.Server.HTTPPort); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
