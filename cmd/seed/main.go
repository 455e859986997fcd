package main

import (
  "context"
  "fmt"
  "os"
  "time"
  "github.com/fairwork/contracts-backend/internal/app"
  "github.com/fairwork/contracts-backend/internal/types"
)

// Seeds the database with a small sample dataset for local development.
func main() {
  a, err := app.New()
  if err != nil {
    fmt.Printf("Failed to init app: %v\n", err)
    os.Exit(1)
  }
  defer a.Close()

  if err := seed(a); err != nil {
    a.Log.Error("Seeding failed", "error", err)
    os.Exit(1)
  }
  a.Log.Info("Seeding concluded")
}

func seed(a *app.App) error {
  ctx := context.Background()

  harry := clientProfile("Harry", "Potter", "wizard", 1150)
  mrRobot := clientProfile("Mr", "Robot", "hacker", 231.11)
  john := clientProfile("John", "Snow", "knows nothing", 451.3)
  ash := clientProfile("Ash", "Kethcum", "Pokemon master", 1.3)
  linus := contractorProfile("Linus", "Torvalds", "programmer", 1214)
  alan := contractorProfile("Alan", "Turing", "programmer", 22)
  carol := contractorProfile("Carol", "Shelby", "racer", 314)

  profiles := []*types.Profile{harry, mrRobot, john, ash, linus, alan, carol}
  if _, err := a.Repos.Profile.Create(ctx, nil, profiles); err != nil {
    return fmt.Errorf("Failed to seed profiles: %w", err)
  }

  contracts := []*types.Contract{
    contract(harry, alan, types.ContractStatusTerminated),
    contract(harry, linus, types.ContractStatusInProgress),
    contract(mrRobot, linus, types.ContractStatusInProgress),
    contract(john, carol, types.ContractStatusInProgress),
    contract(ash, linus, types.ContractStatusNew),
  }
  if _, err := a.Repos.Contract.Create(ctx, nil, contracts); err != nil {
    return fmt.Errorf("Failed to seed contracts: %w", err)
  }

  paidAt := time.Date(2020, 8, 14, 23, 11, 26, 0, time.UTC)
  jobs := []*types.Job{
    unpaidJob(contracts[0], 200),
    unpaidJob(contracts[1], 201),
    unpaidJob(contracts[2], 202),
    unpaidJob(contracts[3], 200),
    paidJob(contracts[1], 21, paidAt),
    paidJob(contracts[2], 121, paidAt.Add(24*time.Hour)),
    paidJob(contracts[3], 121, paidAt.Add(48*time.Hour)),
  }
  if _, err := a.Repos.Job.Create(ctx, nil, jobs); err != nil {
    return fmt.Errorf("Failed to seed jobs: %w", err)
  }
  return nil
}

func clientProfile(first, last, profession string, balance float64) *types.Profile {
  return &types.Profile{
    FirstName:  first,
    LastName:   last,
    Profession: profession,
    Balance:    balance,
    Type:       types.ProfileTypeClient,
  }
}

func contractorProfile(first, last, profession string, balance float64) *types.Profile {
  return &types.Profile{
    FirstName:  first,
    LastName:   last,
    Profession: profession,
    Balance:    balance,
    Type:       types.ProfileTypeContractor,
  }
}

func contract(client, contractor *types.Profile, status string) *types.Contract {
  return &types.Contract{
    Terms:        "bla bla bla",
    Status:       status,
    ClientID:     client.ID,
    ContractorID: contractor.ID,
  }
}

func unpaidJob(c *types.Contract, price float64) *types.Job {
  return &types.Job{
    ContractID:  c.ID,
    Description: "work",
    Price:       price,
  }
}

func paidJob(c *types.Contract, price float64, at time.Time) *types.Job {
  return &types.Job{
    ContractID:  c.ID,
    Description: "work",
    Price:       price,
    Paid:        true,
    PaymentDate: &at,
  }
}
