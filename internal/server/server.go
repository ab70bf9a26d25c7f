// Package server assembles the HTTP router: middleware order, route groups,
// operational endpoints and the 404/405 fallbacks.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"estatedesk/internal/config"
	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/handlers"
	"estatedesk/internal/logger"
	"estatedesk/internal/metrics"
	"estatedesk/internal/middleware"
	"estatedesk/internal/services"
	"estatedesk/internal/validator"
)

// Services bundles the business services the router dispatches to.
type Services struct {
	Users       services.UserServicer
	Investors   services.InvestorServicer
	Investments services.InvestmentServicer
	Expenses    services.ExpenseServicer
	Properties  services.PropertyServicer
	Agents      services.AgentServicer
	Documents   services.DocumentServicer
	Audit       services.AuditServicer
}

// NewServices builds every service on one database handle.
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	return &Services{
		Users:       services.NewUserService(db),
		Investors:   services.NewInvestorService(db),
		Investments: services.NewInvestmentService(db),
		Expenses:    services.NewExpenseService(db),
		Properties:  services.NewPropertyService(db, cfg.MaintenanceRatePerMeter),
		Agents:      services.NewAgentService(db),
		Documents:   services.NewDocumentService(db, cfg.UploadDir),
		Audit:       services.NewAuditService(db),
	}
}

// NewRouter wires middleware, handlers and fallbacks into a gin engine.
func NewRouter(cfg *config.Config, svc *Services, auth *middleware.Authenticator, limiter *middleware.RateLimiter) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, auth, svc.Audit)
	investorHandler := handlers.NewInvestorHandler(svc.Investors, svc.Audit)
	investmentHandler := handlers.NewInvestmentHandler(svc.Investments, svc.Audit)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses, svc.Audit)
	propertyHandler := handlers.NewPropertyHandler(svc.Properties, svc.Audit)
	agentHandler := handlers.NewAgentHandler(svc.Agents, svc.Audit)
	documentHandler := handlers.NewDocumentHandler(svc.Documents, svc.Audit)

	validator.Register()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	// ClientIP keys the rate limiter, so forwarded headers count only from listed proxies.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Get().Warnf("invalid trusted proxies %v, trusting none: %v", cfg.TrustedProxies, err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.FrontendURL))
	router.Use(limiter.Middleware())

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound,
			fmt.Sprintf("the route %s Not Found", c.Request.URL.String())))
	})
	router.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrMethodNotAllowed,
			fmt.Sprintf("Method %s is not allowed for the requested resource.", c.Request.Method)))
	})

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	authGroup := router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)

	// Protected routes
	protected := router.Group("/")
	protected.Use(auth.Middleware())

	protected.GET("/auth/me", authHandler.Me)

	investors := protected.Group("/investor")
	investors.GET("/list", investorHandler.ListInvestors)
	investors.GET("/recover", investorHandler.ListDeletedInvestors)
	investors.POST("/new", investorHandler.CreateInvestor)
	investors.PATCH("/restore/:id", investorHandler.RestoreInvestor)
	investors.GET("/:id", investorHandler.GetInvestor)
	investors.PATCH("/:id", investorHandler.UpdateInvestor)
	investors.DELETE("/:id", investorHandler.DeleteInvestor)

	investments := protected.Group("/investment")
	investments.GET("/list", investmentHandler.ListInvestments)
	investments.GET("/aggregate", investmentHandler.AggregateInvestments)
	investments.POST("/new", investmentHandler.CreateInvestment)
	investments.PATCH("/redeem/:id", investmentHandler.RedeemInvestment)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	expenses := protected.Group("/expense")
	expenses.GET("/maintenance/:id", expenseHandler.GetMaintenanceExpense)
	expenses.POST("/maintenance/pay", expenseHandler.PayMaintenanceExpense)
	expenses.POST("/custom/pay", expenseHandler.PayCustomExpense)
	expenses.GET("/custom/:id", expenseHandler.GetExpense)
	expenses.PATCH("/custom/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/custom/:id", expenseHandler.DeleteExpense)
	expenses.POST("/new", expenseHandler.CreateExpense)
	expenses.GET("/list", expenseHandler.ListExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByType)

	properties := protected.Group("/property")
	properties.POST("/new", propertyHandler.CreateProperty)
	properties.PATCH("/update/:id", propertyHandler.UpdateProperty)
	properties.PATCH("/buy/:id", propertyHandler.BuyProperty)
	properties.PATCH("/sell/:id", propertyHandler.SellProperty)
	properties.GET("/:id", propertyHandler.GetProperty)

	agents := protected.Group("/agent")
	agents.POST("/new", agentHandler.CreateAgent)
	agents.GET("/investor/:id", agentHandler.GetInvestorAgents)
	agents.PATCH("/link/:id", agentHandler.LinkAgent)
	agents.PATCH("/unlink/:id", agentHandler.UnlinkAgent)
	agents.GET("/:id", agentHandler.GetAgent)

	docs := protected.Group("/doc")
	docs.POST("/upload", middleware.UploadLimits(middleware.MaxUploadSize), documentHandler.UploadDocuments)
	docs.GET("/list", documentHandler.ListDocuments)
	docs.GET("/:id", documentHandler.DownloadDocument)

	protected.GET("/thumbnails/:id", documentHandler.GetThumbnail)

	return router
}
