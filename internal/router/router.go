package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/raghav2811/VendorConnect/internal/config"
	"github.com/raghav2811/VendorConnect/internal/handler"
	"github.com/raghav2811/VendorConnect/internal/middleware"
	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/repository"
	"github.com/raghav2811/VendorConnect/internal/service"
	"github.com/raghav2811/VendorConnect/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	stockRepo := repository.NewStockRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, vendorRepo, cfg)
	orderSvc := service.NewOrderService(orderRepo, menuRepo, vendorRepo)
	stockSvc := service.NewStockService(stockRepo, dispatcher)
	reportSvc := service.NewReportService(orderRepo, stockRepo, menuRepo, vendorRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	vendorsH := handler.NewVendorsHandler(vendorRepo, menuRepo)
	pricesH := handler.NewMenuPricesHandler(menuRepo, rdb)
	ordersH := handler.NewOrdersHandler(orderSvc)
	stockH := handler.NewStockHandler(stockSvc)
	analyticsH := handler.NewAnalyticsHandler(reportSvc)
	reportsH := handler.NewReportsHandler(reportSvc, dispatcher, cfg.PDFStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/register/buyer", authH.RegisterBuyer)
		auth.POST("/register/vendor", authH.RegisterVendor)
	}

	// Public catalog — browsing and price checks require no account
	r.GET("/v1/vendors", vendorsH.List)
	r.GET("/v1/vendors/:id", vendorsH.Get)
	r.GET("/v1/vendors/:id/menu", vendorsH.Menu)
	r.GET("/v1/menu/:id/price", pricesH.GetPrice)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Orders — buyers place, vendors fulfil
		v1.POST("/orders", middleware.RequireRole(model.RoleBuyer), ordersH.Create)
		v1.GET("/orders/mine", middleware.RequireRole(model.RoleBuyer), ordersH.ListMine)
		v1.GET("/orders", middleware.RequireRole(model.RoleVendor, model.RoleStaff), ordersH.ListVendor)
		v1.PUT("/orders/:id/status", middleware.RequireRole(model.RoleVendor, model.RoleStaff, model.RoleAdmin), ordersH.UpdateStatus)

		// Stock — vendor-scoped writes, admin-wide reads
		stock := v1.Group("/stock", middleware.RequireRole(model.RoleVendor, model.RoleStaff, model.RoleAdmin))
		{
			stock.POST("", stockH.CreateItem)
			stock.GET("", stockH.ListItems)
			stock.POST("/transactions", stockH.RecordTransaction)
			stock.GET("/transactions", stockH.ListTransactions)
			stock.GET("/alerts", stockH.Alerts)
		}

		// Analytics — vendors see their own, admins pick any vendor
		analytics := v1.Group("/analytics", middleware.RequireRole(model.RoleVendor, model.RoleStaff, model.RoleAdmin))
		{
			analytics.GET("/vendor", analyticsH.Snapshot)
			analytics.GET("/vendor/trend", analyticsH.Trend)
			analytics.GET("/vendor/top-items", analyticsH.TopItems)
			analytics.GET("/vendor/peak-hours", analyticsH.PeakHours)
			analytics.GET("/vendor/insights", analyticsH.Insights)
		}

		// Reports — platform-wide, admin only
		reports := v1.Group("/reports", middleware.RequireRole(model.RoleAdmin))
		{
			reports.GET("/overview", reportsH.Overview)
			reports.GET("/dashboard", reportsH.Dashboard)
			reports.GET("/monthly-transactions", reportsH.MonthlyTransactions)
			reports.GET("/export/pdf", reportsH.ExportPDF)
			reports.POST("/email", reportsH.EmailReport)
		}

		// User administration
		users := v1.Group("/users", middleware.RequireRole(model.RoleAdmin))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
