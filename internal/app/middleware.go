package app

import (
	"github.com/fairwork/contracts-backend/internal/logger"
	"github.com/fairwork/contracts-backend/internal/middleware"
)

type Middleware struct {
	Profile		*middleware.ProfileMiddleware
}

func wireMiddleware(log *logger.Logger, reposet Repos) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Profile:	middleware.NewProfileMiddleware(log, reposet.Profile),
	}
}
