package services

import (
  "errors"
)

// Business-rule failures. Handlers translate these to HTTP statuses;
// anything else is a system fault and surfaces as a 500.
var (
  ErrNotFound             = errors.New("The job was not found or has already been paid")
  ErrContractNotFound     = errors.New("Any contract was found for the provided 'id'")
  ErrInsufficientBalance  = errors.New("Client has not enough balance for the transaction")
  ErrForbidden            = errors.New("Deposits for other users are not possible")
  ErrDepositLimitExceeded = errors.New("It is not possible to deposit more than 25% of the amount to pay")
  ErrNoDataInPeriod       = errors.New("Any data was found for the provided period")
)
