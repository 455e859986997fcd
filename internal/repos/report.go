package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/types"
)

type ProfessionTotal struct {
  Profession  string    `gorm:"column:profession" json:"profession"`
  Earned      float64   `gorm:"column:earned" json:"earned"`
}

type ClientTotal struct {
  ID          uuid.UUID `gorm:"column:id" json:"id"`
  FullName    string    `gorm:"column:full_name" json:"fullName"`
  Paid        float64   `gorm:"column:paid" json:"paid"`
}

// ReportRepo serves the read-only admin aggregations over paid jobs.
type ReportRepo interface {
  BestProfession(ctx context.Context, tx *gorm.DB, start, end time.Time) (*ProfessionTotal, error)
  BestClients(ctx context.Context, tx *gorm.DB, start, end time.Time, limit int) ([]*ClientTotal, error)
}

type reportRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
  return &reportRepo{
    db:  db,
    log: baseLog.With("repo", "ReportRepo"),
  }
}

// BestProfession returns the profession with the highest summed price over
// jobs paid within [start, end], or nil when no job qualifies. Ties resolve
// to the lexicographically smallest profession.
func (r *reportRepo) BestProfession(ctx context.Context, tx *gorm.DB, start, end time.Time) (*ProfessionTotal, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var rows []*ProfessionTotal
  err := transaction.WithContext(ctx).
    Model(&types.Job{}).
    Select("profile.profession AS profession, SUM(job.price) AS earned").
    Joins("JOIN contract ON contract.id = job.contract_id").
    Joins("JOIN profile ON profile.id = contract.contractor_id").
    Where("job.paid = ? AND job.payment_date BETWEEN ? AND ?", true, start, end).
    Group("profile.profession").
    Order("earned DESC, profile.profession ASC").
    Limit(1).
    Scan(&rows).Error
  if err != nil {
    return nil, err
  }
  if len(rows) == 0 {
    return nil, nil
  }
  return rows[0], nil
}

// BestClients ranks clients by summed price over jobs paid within
// [start, end]. Ties resolve by client id ascending.
func (r *reportRepo) BestClients(ctx context.Context, tx *gorm.DB, start, end time.Time, limit int) ([]*ClientTotal, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  rows := []*ClientTotal{}
  if limit <= 0 {
    return rows, nil
  }
  err := transaction.WithContext(ctx).
    Model(&types.Job{}).
    Select("contract.client_id AS id, (profile.first_name || ' ' || profile.last_name) AS full_name, SUM(job.price) AS paid").
    Joins("JOIN contract ON contract.id = job.contract_id").
    Joins("JOIN profile ON profile.id = contract.client_id").
    Where("job.paid = ? AND job.payment_date BETWEEN ? AND ?", true, start, end).
    Group("contract.client_id, profile.first_name, profile.last_name").
    Order("SUM(job.price) DESC, contract.client_id ASC").
    Limit(limit).
    Scan(&rows).Error
  if err != nil {
    return nil, err
  }
  return rows, nil
}









