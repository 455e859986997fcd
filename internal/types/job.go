package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// Job is a unit of billable work under a contract. Paid flips to true at
// most once; PaymentDate is set iff Paid is true.
type Job struct {
  ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  ContractID    uuid.UUID   `gorm:"type:uuid;not null;index;column:contract_id" json:"contract_id"`
  Contract      *Contract   `gorm:"foreignKey:ContractID;references:ID" json:"contract,omitempty"`
  Description   string      `gorm:"not null;column:description" json:"description"`
  Price         float64     `gorm:"type:decimal(12,2);not null;column:price" json:"price"`
  Paid          bool        `gorm:"not null;default:false;index;column:paid" json:"paid"`
  PaymentDate   *time.Time  `gorm:"column:payment_date" json:"payment_date,omitempty"`
  CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

func (Job) TableName() string {
  return "job"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
  if j.ID == uuid.Nil {
    j.ID = uuid.New()
  }
  return nil
}
