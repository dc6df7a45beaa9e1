package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/marketingapi/internal/server/http/handlers"
	"github.com/polkiloo/marketingapi/internal/server/http/middleware"
)

const maxRequestBodyBytes = 1 << 20

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketingFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest(maxRequestBodyBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	smsHandler := handlers.NewSmsHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)
	requireAuth := middleware.AuthRequired(facade, logger)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	users := api.Group("/users", requireAuth)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.DELETE("/:id", userHandler.Delete)

	customers := api.Group("/customers")
	customers.POST("", customerHandler.Create)
	customersAuth := customers.Group("", requireAuth)
	customersAuth.GET("", customerHandler.List)
	customersAuth.GET("/:id", customerHandler.Get)
	customersAuth.GET("/by_email/:email", customerHandler.GetByEmail)
	customersAuth.DELETE("/:id", customerHandler.Delete)
	customersAuth.DELETE("/by_email/:email", customerHandler.DeleteByEmail)

	sms := api.Group("/sms", requireAuth)
	sms.POST("/send", smsHandler.Send)
	sms.POST("/bulk", smsHandler.Bulk)

	return engine
}
