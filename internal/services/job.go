package services

import (
  "context"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/repos"
  "github.com/fairwork/contracts-backend/internal/types"
)

type JobService interface {
  ListUnpaid(ctx context.Context, callerID uuid.UUID) ([]*types.Job, error)
  Pay(ctx context.Context, callerID, jobID uuid.UUID) error
}

type jobService struct {
  db           *gorm.DB
  log          *logger.Logger
  jobRepo      repos.JobRepo
  profileRepo  repos.ProfileRepo
}

func NewJobService(db *gorm.DB, log *logger.Logger, jobRepo repos.JobRepo, profileRepo repos.ProfileRepo) JobService {
  serviceLog := log.With("service", "JobService")
  return &jobService{
    db:          db,
    log:         serviceLog,
    jobRepo:     jobRepo,
    profileRepo: profileRepo,
  }
}

func (js *jobService) ListUnpaid(ctx context.Context, callerID uuid.UUID) ([]*types.Job, error) {
  jobs, err := js.jobRepo.ListUnpaidActive(ctx, nil, callerID)
  if err != nil {
    return nil, err
  }
  if jobs == nil {
    jobs = []*types.Job{}
  }
  return jobs, nil
}

// Pay settles a job: the client's balance is debited by the job price, the
// contractor's credited by the same amount, and the job marked paid, all in
// one transaction. Only the client on the owning contract can trigger it.
// The job row is locked first, then both profile rows, and every decision is
// made from the locked state, so two submissions for the same job resolve to
// exactly one settlement.
func (js *jobService) Pay(ctx context.Context, callerID, jobID uuid.UUID) error {
  return js.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    job, err := js.jobRepo.GetUnpaidForClientLocked(ctx, tx, jobID, callerID)
    if err != nil {
      return fmt.Errorf("Failed to fetch job for payment: %w", err)
    }
    if job == nil {
      return ErrNotFound
    }
    if job.Contract == nil {
      return fmt.Errorf("Job %s has no contract loaded", job.ID)
    }
    amountToPay := job.Price

    client, err := js.profileRepo.GetByIDLocked(ctx, tx, job.Contract.ClientID)
    if err != nil {
      return fmt.Errorf("Failed to fetch client profile: %w", err)
    }
    if client == nil {
      return fmt.Errorf("Client profile %s not found for job %s", job.Contract.ClientID, job.ID)
    }
    if client.Balance < amountToPay {
      return ErrInsufficientBalance
    }

    contractor, err := js.profileRepo.GetByIDLocked(ctx, tx, job.Contract.ContractorID)
    if err != nil {
      return fmt.Errorf("Failed to fetch contractor profile: %w", err)
    }
    if contractor == nil {
      return fmt.Errorf("Contractor profile %s not found for job %s", job.Contract.ContractorID, job.ID)
    }

    if err := js.profileRepo.AddToBalance(ctx, tx, client.ID, -amountToPay); err != nil {
      return fmt.Errorf("Failed to debit client balance: %w", err)
    }
    if err := js.profileRepo.AddToBalance(ctx, tx, contractor.ID, amountToPay); err != nil {
      return fmt.Errorf("Failed to credit contractor balance: %w", err)
    }
    if err := js.jobRepo.MarkPaid(ctx, tx, job.ID, time.Now()); err != nil {
      return fmt.Errorf("Failed to mark job as paid: %w", err)
    }

    js.log.Info("Job paid", "job_id", job.ID, "client_id", client.ID, "contractor_id", contractor.ID, "amount", amountToPay)
    return nil
  })
}









