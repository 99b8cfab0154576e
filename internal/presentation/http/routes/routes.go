package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopledger-api/internal/config"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	domainRepo "github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/internal/presentation/http/handler"
	"github.com/sangkips/shopledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/shopledger-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	FeeRule       *handler.FeeRuleHandler
	MobileService *handler.MobileServiceHandler
	DailyClosing  *handler.DailyClosingHandler
	Sale          *handler.SaleHandler
	Purchase      *handler.PurchaseHandler
	Loan          *handler.LoanHandler
	Report        *handler.ReportHandler
	Printer       *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	ShopRepo        domainRepo.ShopRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	api := router.Group("/api")
	{
		registerAuthRoutes(api, h)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.GET("/profile", h.Auth.GetProfile)
		protected.PUT("/profile/password", h.Auth.ChangePassword)

		window := time.Duration(deps.Cfg.RateLimit.Duration) * time.Second
		rateLimiter := middleware.NewShopRateLimiter(middleware.RateLimiterConfig{
			Requests:        deps.Cfg.RateLimit.Requests,
			Window:          window,
			CleanupInterval: 5 * time.Minute,
			EntryTTL:        10 * time.Minute,
		})

		shop := protected.Group("")
		shop.Use(middleware.ShopMiddleware(deps.ShopRepo))
		shop.Use(rateLimiter.Middleware())

		registerShopRoutes(shop, h, deps)
	}

	return router
}

func registerAuthRoutes(api *gin.RouterGroup, h *Handlers) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerShopRoutes(shop *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(deps.IdempotencyRepo)

	workers := shop.Group("/shop/workers")
	workers.Use(middleware.RequirePermission(enum.PermManageWorkers))
	{
		workers.GET("", h.Auth.ListStaff)
		workers.POST("", h.Auth.AddWorker)
	}

	feeRules := shop.Group("/fee-rules")
	{
		feeRules.GET("", middleware.RequirePermission(enum.PermViewFeeRules), h.FeeRule.List)
		feeRules.PUT("/:serviceType", middleware.RequirePermission(enum.PermManageFeeRules), h.FeeRule.Upsert)
	}

	services := shop.Group("/mobile-services")
	services.Use(middleware.RequirePermission(enum.PermRecordServices))
	{
		services.GET("", h.MobileService.List)
		services.GET("/commission-preview", h.MobileService.PreviewCommission)
		services.POST("", idempotent, h.MobileService.Create)
		services.GET("/:id", h.MobileService.Get)
		services.PATCH("/:id", h.MobileService.Update)
		services.DELETE("/:id", h.MobileService.Delete)
	}

	closing := shop.Group("/daily-closing")
	{
		view := middleware.RequirePermission(enum.PermViewClosing)
		closing.GET("", view, h.DailyClosing.Get)
		closing.GET("/history", view, h.DailyClosing.History)
		closing.POST("/print", view, h.DailyClosing.Print)
		closing.POST("", middleware.RequirePermission(enum.PermSubmitClosing), idempotent, h.DailyClosing.Submit)
	}

	sales := shop.Group("/sales")
	sales.Use(middleware.RequirePermission(enum.PermRecordSales))
	{
		sales.GET("", h.Sale.List)
		sales.POST("", idempotent, h.Sale.Create)
		sales.DELETE("/:id", h.Sale.Delete)
	}

	suppliers := shop.Group("/suppliers")
	suppliers.Use(middleware.RequirePermission(enum.PermManagePurchase))
	{
		suppliers.GET("", h.Purchase.ListSuppliers)
		suppliers.POST("", h.Purchase.CreateSupplier)
	}

	purchases := shop.Group("/purchases")
	purchases.Use(middleware.RequirePermission(enum.PermManagePurchase))
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.POST("/:id/payments", idempotent, h.Purchase.RecordPayment)
	}

	loans := shop.Group("/loans")
	loans.Use(middleware.RequirePermission(enum.PermManageLoans))
	{
		loans.GET("", h.Loan.List)
		loans.POST("", h.Loan.Create)
		loans.GET("/:id", h.Loan.Get)
		loans.DELETE("/:id", h.Loan.Delete)
		loans.POST("/:id/installments/:installmentId/payments", idempotent, h.Loan.PayInstallment)
	}

	reports := shop.Group("/reports")
	reports.Use(middleware.RequirePermission(enum.PermViewReports))
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/export", h.Report.Export)
	}

	shop.GET("/printer/status", middleware.RequirePermission(enum.PermViewClosing), h.Printer.GetStatus)
}
