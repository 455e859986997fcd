package app

import (
	"github.com/fairwork/contracts-backend/internal/handlers"
	"github.com/fairwork/contracts-backend/internal/logger"
)

type Handlers struct {
	Contract	*handlers.ContractHandler
	Job				*handlers.JobHandler
	Balance		*handlers.BalanceHandler
	Admin			*handlers.AdminHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Contract:	handlers.NewContractHandler(services.Contract),
		Job:			handlers.NewJobHandler(services.Job),
		Balance:	handlers.NewBalanceHandler(services.Balance),
		Admin:		handlers.NewAdminHandler(services.Report),
	}
}









