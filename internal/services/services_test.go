package services

import (
  "fmt"
  "strings"
  "testing"
  "time"

  "github.com/google/uuid"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/types"
)

func openTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
  gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
  if err != nil {
    t.Fatalf("open sqlite: %v", err)
  }
  sqlDB, err := gdb.DB()
  if err != nil {
    t.Fatalf("sql db: %v", err)
  }
  sqlDB.SetMaxOpenConns(1)
  if err := gdb.AutoMigrate(&types.Profile{}, &types.Contract{}, &types.Job{}); err != nil {
    t.Fatalf("automigrate: %v", err)
  }
  return gdb
}

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger: %v", err)
  }
  return log
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
  t.Helper()
  if err := db.Create(value).Error; err != nil {
    t.Fatalf("create %T: %v", value, err)
  }
}

func newProfile(profileType, profession string, balance float64) *types.Profile {
  return &types.Profile{
    ID:         uuid.New(),
    FirstName:  "Test",
    LastName:   profileType,
    Profession: profession,
    Balance:    balance,
    Type:       profileType,
  }
}

func newContract(client, contractor *types.Profile, status string) *types.Contract {
  return &types.Contract{
    ID:           uuid.New(),
    Terms:        "terms",
    Status:       status,
    ClientID:     client.ID,
    ContractorID: contractor.ID,
  }
}

func newJob(c *types.Contract, price float64, paid bool, paidAt *time.Time) *types.Job {
  return &types.Job{
    ID:          uuid.New(),
    ContractID:  c.ID,
    Description: "work",
    Price:       price,
    Paid:        paid,
    PaymentDate: paidAt,
  }
}

func reloadProfile(t *testing.T, db *gorm.DB, id uuid.UUID) *types.Profile {
  t.Helper()
  var p types.Profile
  if err := db.First(&p, "id = ?", id).Error; err != nil {
    t.Fatalf("reload profile: %v", err)
  }
  return &p
}

func reloadJob(t *testing.T, db *gorm.DB, id uuid.UUID) *types.Job {
  t.Helper()
  var j types.Job
  if err := db.First(&j, "id = ?", id).Error; err != nil {
    t.Fatalf("reload job: %v", err)
  }
  return &j
}
