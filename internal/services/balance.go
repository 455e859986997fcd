package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/repos"
)

type BalanceService interface {
  Deposit(ctx context.Context, callerID, targetID uuid.UUID, amount float64) error
}

type balanceService struct {
  db           *gorm.DB
  log          *logger.Logger
  jobRepo      repos.JobRepo
  profileRepo  repos.ProfileRepo
  capRatio     float64
}

func NewBalanceService(db *gorm.DB, log *logger.Logger, jobRepo repos.JobRepo, profileRepo repos.ProfileRepo, capRatio float64) BalanceService {
  serviceLog := log.With("service", "BalanceService")
  return &balanceService{
    db:          db,
    log:         serviceLog,
    jobRepo:     jobRepo,
    profileRepo: profileRepo,
    capRatio:    capRatio,
  }
}

// Deposit credits the caller's own balance, bounded by capRatio times the
// total price of their unpaid jobs. The unpaid rows are locked while the cap
// is checked so a concurrent settlement cannot shrink the cap after the
// check passed. With no unpaid jobs the cap is zero and every positive
// deposit is rejected; that mirrors the source behavior and is flagged for
// product clarification rather than changed here.
func (bs *balanceService) Deposit(ctx context.Context, callerID, targetID uuid.UUID, amount float64) error {
  if targetID != callerID {
    return ErrForbidden
  }
  return bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    jobs, err := bs.jobRepo.ListUnpaidLocked(ctx, tx, targetID)
    if err != nil {
      return fmt.Errorf("Failed to fetch unpaid jobs: %w", err)
    }

    amountOfJobsToPay := 0.0
    for _, job := range jobs {
      amountOfJobsToPay += job.Price
    }
    limitAmountToPay := amountOfJobsToPay * bs.capRatio

    if amount > limitAmountToPay {
      return ErrDepositLimitExceeded
    }

    if err := bs.profileRepo.AddToBalance(ctx, tx, targetID, amount); err != nil {
      return fmt.Errorf("Failed to credit balance: %w", err)
    }

    bs.log.Info("Deposit concluded", "profile_id", targetID, "amount", amount, "limit", limitAmountToPay)
    return nil
  })
}









