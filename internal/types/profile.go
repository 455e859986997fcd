package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

const (
  ProfileTypeClient     = "client"
  ProfileTypeContractor = "contractor"
)

type Profile struct {
  ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  FirstName   string      `gorm:"not null;column:first_name" json:"first_name"`
  LastName    string      `gorm:"not null;column:last_name" json:"last_name"`
  Profession  string      `gorm:"not null;column:profession" json:"profession"`
  Balance     float64     `gorm:"type:decimal(12,2);not null;default:0;column:balance" json:"balance"`
  Type        string      `gorm:"not null;column:type" json:"type"`
  CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string {
  return "profile"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
  if p.ID == uuid.Nil {
    p.ID = uuid.New()
  }
  return nil
}

func (p *Profile) FullName() string {
  return p.FirstName + " " + p.LastName
}
