package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/fairwork/contracts-backend/internal/handlers"
  "github.com/fairwork/contracts-backend/internal/middleware"
)

type RouterConfig struct {
  ProfileMiddleware   *middleware.ProfileMiddleware
  ContractHandler     *handlers.ContractHandler
  JobHandler          *handlers.JobHandler
  BalanceHandler      *handlers.BalanceHandler
  AdminHandler        *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(otelgin.Middleware("contracts-backend"))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "profile_id"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.ProfileMiddleware.RequireProfile())
  // Contracts
  protected.GET("/contracts/:id", cfg.ContractHandler.GetByID)
  protected.GET("/contracts", cfg.ContractHandler.ListActive)
  // Jobs
  protected.GET("/jobs/unpaid", cfg.JobHandler.ListUnpaid)
  protected.POST("/jobs/:job_id/pay", cfg.JobHandler.Pay)
  // Balances
  protected.POST("/balances/deposit/:userId/amount/:depositValue", cfg.BalanceHandler.Deposit)
  // Admin
  protected.GET("/admin/best-profession", cfg.AdminHandler.BestProfession)
  protected.GET("/admin/best-clients", cfg.AdminHandler.BestClients)

  return router
}
