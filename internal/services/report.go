package services

import (
  "context"
  "time"
  "gorm.io/gorm"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/repos"
)

const defaultBestClientsLimit = 2

type ReportService interface {
  BestProfession(ctx context.Context, start, end time.Time) (*repos.ProfessionTotal, error)
  BestClients(ctx context.Context, start, end time.Time, limit int) ([]*repos.ClientTotal, error)
}

type reportService struct {
  db          *gorm.DB
  log         *logger.Logger
  reportRepo  repos.ReportRepo
}

func NewReportService(db *gorm.DB, log *logger.Logger, reportRepo repos.ReportRepo) ReportService {
  serviceLog := log.With("service", "ReportService")
  return &reportService{
    db:         db,
    log:        serviceLog,
    reportRepo: reportRepo,
  }
}

func (rs *reportService) BestProfession(ctx context.Context, start, end time.Time) (*repos.ProfessionTotal, error) {
  best, err := rs.reportRepo.BestProfession(ctx, nil, start, end)
  if err != nil {
    return nil, err
  }
  if best == nil {
    return nil, ErrNoDataInPeriod
  }
  return best, nil
}

func (rs *reportService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]*repos.ClientTotal, error) {
  if limit <= 0 {
    limit = defaultBestClientsLimit
  }
  clients, err := rs.reportRepo.BestClients(ctx, nil, start, end, limit)
  if err != nil {
    return nil, err
  }
  if clients == nil {
    clients = []*repos.ClientTotal{}
  }
  return clients, nil
}









