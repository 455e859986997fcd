package repos

import (
  "context"
  "errors"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/types"
)

type JobRepo interface {
  ListUnpaidActive(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Job, error)
  ListUnpaidLocked(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Job, error)
  GetUnpaidForClientLocked(ctx context.Context, tx *gorm.DB, jobID, clientID uuid.UUID) (*types.Job, error)
  MarkPaid(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, paidAt time.Time) error
  Create(ctx context.Context, tx *gorm.DB, jobs []*types.Job) ([]*types.Job, error)
}

type jobRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewJobRepo(db *gorm.DB, baseLog *logger.Logger) JobRepo {
  return &jobRepo{
    db:  db,
    log: baseLog.With("repo", "JobRepo"),
  }
}

// ListUnpaidActive returns the unpaid jobs visible to a profile: the profile
// is a party to the owning contract and the contract is not terminated.
func (r *jobRepo) ListUnpaidActive(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Job, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Job
  if profileID == uuid.Nil {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Select("job.*").
    Joins("JOIN contract ON contract.id = job.contract_id").
    Where("job.paid = ? AND contract.status <> ? AND (contract.client_id = ? OR contract.contractor_id = ?)",
      false, types.ContractStatusTerminated, profileID, profileID).
    Preload("Contract").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// ListUnpaidLocked locks and returns every unpaid job the profile is a party
// to, regardless of contract status. This is the snapshot the deposit cap is
// computed from, so the rows stay locked until the surrounding transaction
// finishes.
func (r *jobRepo) ListUnpaidLocked(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Job, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Job
  if profileID == uuid.Nil {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Select("job.*").
    Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "job"}}).
    Joins("JOIN contract ON contract.id = job.contract_id").
    Where("job.paid = ? AND (contract.client_id = ? OR contract.contractor_id = ?)",
      false, profileID, profileID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// GetUnpaidForClientLocked locks and returns the job only when it is still
// unpaid and the given profile is the client on its contract. Any other
// caller sees no row, which keeps "not yours" and "already paid"
// indistinguishable.
func (r *jobRepo) GetUnpaidForClientLocked(ctx context.Context, tx *gorm.DB, jobID, clientID uuid.UUID) (*types.Job, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if jobID == uuid.Nil || clientID == uuid.Nil {
    return nil, nil
  }
  var job types.Job
  err := transaction.WithContext(ctx).
    Select("job.*").
    Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "job"}}).
    Joins("JOIN contract ON contract.id = job.contract_id").
    Where("job.id = ? AND job.paid = ? AND contract.client_id = ?", jobID, false, clientID).
    Preload("Contract").
    First(&job).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &job, nil
}

// MarkPaid flips the one-way paid flag. The paid = false guard makes the
// transition single-shot even if two transactions race to this statement.
func (r *jobRepo) MarkPaid(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, paidAt time.Time) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if jobID == uuid.Nil {
    return nil
  }
  res := transaction.WithContext(ctx).
    Model(&types.Job{}).
    Where("id = ? AND paid = ?", jobID, false).
    Updates(map[string]interface{}{
      "paid":         true,
      "payment_date": paidAt,
      "updated_at":   paidAt,
    })
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected == 0 {
    return gorm.ErrRecordNotFound
  }
  return nil
}

func (r *jobRepo) Create(ctx context.Context, tx *gorm.DB, jobs []*types.Job) ([]*types.Job, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(jobs) == 0 {
    return []*types.Job{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&jobs).Error; err != nil {
    return nil, err
  }
  return jobs, nil
}









