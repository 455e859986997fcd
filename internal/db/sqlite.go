package db

import (
  "fmt"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/types"
  "github.com/fairwork/contracts-backend/internal/utils"
)

// SQLiteService is the local/dev counterpart of PostgresService, selected
// with DB_DRIVER=sqlite.
type SQLiteService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSQLiteService(log *logger.Logger) (*SQLiteService, error) {
  serviceLog := log.With("service", "SQLiteService")

  sqlitePath := utils.GetEnv("SQLITE_PATH", "contracts.db", log)

  log.Info("Opening SQLite database...", "path", sqlitePath)
  gdb, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
  if err != nil {
    log.Error("Failed to open SQLite database", "error", err)
    return nil, fmt.Errorf("Failed to open SQLite database: %w", err)
  }

  return &SQLiteService{db: gdb, log: serviceLog}, nil
}

func (s *SQLiteService) AutoMigrateAll() error {
  s.log.Info("Auto migrating sqlite tables...")
  err := s.db.AutoMigrate(
    &types.Profile{},
    &types.Contract{},
    &types.Job{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for sqlite tables", "error", err)
    return err
  }
  return nil
}

func (s *SQLiteService) DB() *gorm.DB {
  return s.db
}
