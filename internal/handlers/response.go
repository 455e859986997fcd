package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/fairwork/contracts-backend/internal/services"
)

// All error bodies share the {"error": "<message>"} shape.
func RespondError(c *gin.Context, status int, msg string) {
  c.JSON(status, gin.H{"error": msg})
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the business error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a system fault: the transaction has
// already been rolled back, so it surfaces as a generic 500.
func RespondServiceError(c *gin.Context, err error) {
  switch {
  case errors.Is(err, services.ErrNotFound),
    errors.Is(err, services.ErrContractNotFound),
    errors.Is(err, services.ErrNoDataInPeriod):
    RespondError(c, http.StatusNotFound, err.Error())
  case errors.Is(err, services.ErrForbidden),
    errors.Is(err, services.ErrInsufficientBalance),
    errors.Is(err, services.ErrDepositLimitExceeded):
    RespondError(c, http.StatusBadRequest, err.Error())
  default:
    RespondError(c, http.StatusInternalServerError, "internal server error")
  }
}









