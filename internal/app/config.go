package app

import (
	"github.com/fairwork/contracts-backend/internal/logger"
	"github.com/fairwork/contracts-backend/internal/utils"
)

type Config struct {
	Port            string
	DBDriver        string
	DepositCapRatio float64
	Environment     string
	Version         string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	dbDriver := utils.GetEnv("DB_DRIVER", "postgres", log)
	depositCapRatio := utils.GetEnvAsFloat("DEPOSIT_CAP_RATIO", 0.25, log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	version := utils.GetEnv("SERVICE_VERSION", "dev", log)
	return Config{
		Port:            port,
		DBDriver:        dbDriver,
		DepositCapRatio: depositCapRatio,
		Environment:     environment,
		Version:         version,
	}
}
