package services

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/repos"
  "github.com/fairwork/contracts-backend/internal/types"
)

type ContractService interface {
  GetByID(ctx context.Context, callerID, contractID uuid.UUID) (*types.Contract, error)
  ListActive(ctx context.Context, callerID uuid.UUID) ([]*types.Contract, error)
}

type contractService struct {
  db            *gorm.DB
  log           *logger.Logger
  contractRepo  repos.ContractRepo
}

func NewContractService(db *gorm.DB, log *logger.Logger, contractRepo repos.ContractRepo) ContractService {
  serviceLog := log.With("service", "ContractService")
  return &contractService{
    db:           db,
    log:          serviceLog,
    contractRepo: contractRepo,
  }
}

func (cs *contractService) GetByID(ctx context.Context, callerID, contractID uuid.UUID) (*types.Contract, error) {
  contract, err := cs.contractRepo.GetForProfile(ctx, nil, contractID, callerID)
  if err != nil {
    return nil, err
  }
  if contract == nil {
    return nil, ErrContractNotFound
  }
  return contract, nil
}

func (cs *contractService) ListActive(ctx context.Context, callerID uuid.UUID) ([]*types.Contract, error) {
  contracts, err := cs.contractRepo.ListActiveForProfile(ctx, nil, callerID)
  if err != nil {
    return nil, err
  }
  if contracts == nil {
    contracts = []*types.Contract{}
  }
  return contracts, nil
}









