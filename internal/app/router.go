package app

import (
	"github.com/gin-gonic/gin"
	"github.com/fairwork/contracts-backend/internal/server"
)

func wireRouter(handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ProfileMiddleware:	middleware.Profile,
		ContractHandler:		handlers.Contract,
		JobHandler:					handlers.Job,
		BalanceHandler:			handlers.Balance,
		AdminHandler:				handlers.Admin,
	})
}
