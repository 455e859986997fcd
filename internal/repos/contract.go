package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/types"
)

// ContractRepo scopes every lookup to the requesting profile. A contract the
// caller is not a party to is indistinguishable from one that does not
// exist.
type ContractRepo interface {
  GetForProfile(ctx context.Context, tx *gorm.DB, contractID, profileID uuid.UUID) (*types.Contract, error)
  ListActiveForProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Contract, error)
  Create(ctx context.Context, tx *gorm.DB, contracts []*types.Contract) ([]*types.Contract, error)
}

type contractRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewContractRepo(db *gorm.DB, baseLog *logger.Logger) ContractRepo {
  return &contractRepo{
    db:  db,
    log: baseLog.With("repo", "ContractRepo"),
  }
}

func (r *contractRepo) GetForProfile(ctx context.Context, tx *gorm.DB, contractID, profileID uuid.UUID) (*types.Contract, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if contractID == uuid.Nil || profileID == uuid.Nil {
    return nil, nil
  }
  var contract types.Contract
  err := transaction.WithContext(ctx).
    Where("id = ? AND (client_id = ? OR contractor_id = ?)", contractID, profileID, profileID).
    First(&contract).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &contract, nil
}

func (r *contractRepo) ListActiveForProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Contract, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Contract
  if profileID == uuid.Nil {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("status <> ? AND (client_id = ? OR contractor_id = ?)", types.ContractStatusTerminated, profileID, profileID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *contractRepo) Create(ctx context.Context, tx *gorm.DB, contracts []*types.Contract) ([]*types.Contract, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(contracts) == 0 {
    return []*types.Contract{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&contracts).Error; err != nil {
    return nil, err
  }
  return contracts, nil
}









