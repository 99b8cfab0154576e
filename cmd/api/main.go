package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/config"
	"github.com/sangkips/shopledger-api/internal/infrastructure/cache"
	"github.com/sangkips/shopledger-api/internal/infrastructure/database"
	"github.com/sangkips/shopledger-api/internal/infrastructure/repository"
	"github.com/sangkips/shopledger-api/internal/presentation/http/handler"
	"github.com/sangkips/shopledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/shopledger-api/internal/presentation/http/routes"
	"github.com/sangkips/shopledger-api/pkg/oauth"
	"github.com/sangkips/shopledger-api/pkg/printer"
	"github.com/sangkips/shopledger-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db, &cfg.Seed); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	var closers []func() error
	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, sqlDB.Close)
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	txnRepo := repository.NewServiceTransactionRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	var feeRuleCache cache.FeeRuleCache = cache.NoopFeeRuleCache{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisFeeRuleCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("Warning: Redis unavailable at %s, fee rules will not be cached: %v", cfg.Redis.Addr, err)
		} else {
			feeRuleCache = redisCache
			closers = append(closers, redisCache.Close)
		}
		cancel()
	}
	feeRuleRepo := repository.NewCachedFeeRuleRepository(repository.NewFeeRuleRepository(db), feeRuleCache, cfg.Redis.FeeRuleTTL)

	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.Discard{}
	}

	// Services
	clock := service.SystemClock(cfg.App.Location())
	aggregator := service.NewDailyAggregator(ledgerRepo)

	authService := service.NewAuthService(userRepo, shopRepo, jwtManager, googleOAuthService)
	feeRuleService := service.NewFeeRuleService(feeRuleRepo)
	mobileService := service.NewMobileServiceService(txnRepo, feeRuleRepo, clock)
	closingService := service.NewClosingService(ledgerRepo, aggregator, clock)
	saleService := service.NewSaleService(saleRepo, clock)
	purchaseService := service.NewPurchaseService(purchaseRepo, supplierRepo, clock)
	loanService := service.NewLoanService(loanRepo, clock)
	reportService := service.NewReportService(reportRepo, ledgerRepo)
	printerService := service.NewPrinterService(thermalPrinter, ledgerRepo, shopRepo, cfg.Printer.CharWidth)

	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService, googleOAuthService),
		FeeRule:       handler.NewFeeRuleHandler(feeRuleService),
		MobileService: handler.NewMobileServiceHandler(mobileService),
		DailyClosing:  handler.NewDailyClosingHandler(closingService, printerService),
		Sale:          handler.NewSaleHandler(saleService),
		Purchase:      handler.NewPurchaseHandler(purchaseService),
		Loan:          handler.NewLoanHandler(loanService),
		Report:        handler.NewReportHandler(reportService),
		Printer:       handler.NewPrinterHandler(printerService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		ShopRepo:        shopRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	purgeCtx, stopPurge := context.WithCancel(context.Background())
	go middleware.PurgeExpiredIdempotencyKeys(purgeCtx, idempotencyRepo, time.Hour)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s, timezone: %s", cfg.App.Env, cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("Shutting down server...")

	stopPurge()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Printf("Close error: %v", err)
		}
	}

	log.Println("Server stopped")
}
