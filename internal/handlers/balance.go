package handlers

import (
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/fairwork/contracts-backend/internal/requestdata"
  "github.com/fairwork/contracts-backend/internal/services"
)

type BalanceHandler struct {
  balanceService    services.BalanceService
}

func NewBalanceHandler(balanceService services.BalanceService) *BalanceHandler {
  return &BalanceHandler{balanceService: balanceService}
}

func (bh *BalanceHandler) Deposit(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    RespondError(c, http.StatusUnauthorized, "missing profile")
    return
  }
  targetID, err := uuid.Parse(c.Param("userId"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "Invalid user id")
    return
  }
  amount, err := strconv.ParseFloat(c.Param("depositValue"), 64)
  if err != nil || amount <= 0 {
    RespondError(c, http.StatusBadRequest, "Invalid deposit amount")
    return
  }
  if err := bh.balanceService.Deposit(c.Request.Context(), rd.ProfileID, targetID, amount); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "Deposit concluded"})
}
