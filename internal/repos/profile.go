package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/types"
)

type ProfileRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error)
  GetByIDLocked(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error)
  AddToBalance(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, delta float64) error
  Create(ctx context.Context, tx *gorm.DB, profiles []*types.Profile) ([]*types.Profile, error)
}

type profileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
  return &profileRepo{
    db:  db,
    log: baseLog.With("repo", "ProfileRepo"),
  }
}

func (r *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if profileID == uuid.Nil {
    return nil, nil
  }
  var profile types.Profile
  err := transaction.WithContext(ctx).
    Where("id = ?", profileID).
    First(&profile).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &profile, nil
}

func (r *profileRepo) GetByIDLocked(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if profileID == uuid.Nil {
    return nil, nil
  }
  var profile types.Profile
  err := transaction.WithContext(ctx).
    Clauses(clause.Locking{Strength: "UPDATE"}).
    Where("id = ?", profileID).
    First(&profile).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &profile, nil
}

func (r *profileRepo) AddToBalance(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, delta float64) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if profileID == uuid.Nil {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Profile{}).
    Where("id = ?", profileID).
    Update("balance", gorm.Expr("balance + ?", delta)).Error
}

func (r *profileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.Profile) ([]*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(profiles) == 0 {
    return []*types.Profile{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&profiles).Error; err != nil {
    return nil, err
  }
  return profiles, nil
}









