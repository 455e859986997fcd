package app

import (
	"gorm.io/gorm"
	"github.com/fairwork/contracts-backend/internal/logger"
	"github.com/fairwork/contracts-backend/internal/services"
)

type Services struct {
	Contract	services.ContractService
	Job				services.JobService
	Balance		services.BalanceService
	Report		services.ReportService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Contract:	services.NewContractService(db, log, reposet.Contract),
		Job:			services.NewJobService(db, log, reposet.Job, reposet.Profile),
		Balance:	services.NewBalanceService(db, log, reposet.Job, reposet.Profile, cfg.DepositCapRatio),
		Report:		services.NewReportService(db, log, reposet.Report),
	}
}
