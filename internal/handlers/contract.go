package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/fairwork/contracts-backend/internal/requestdata"
  "github.com/fairwork/contracts-backend/internal/services"
)

type ContractHandler struct {
  contractService   services.ContractService
}

func NewContractHandler(contractService services.ContractService) *ContractHandler {
  return &ContractHandler{contractService: contractService}
}

func (ch *ContractHandler) GetByID(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    RespondError(c, http.StatusUnauthorized, "missing profile")
    return
  }
  contractID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    // A malformed id cannot name an existing contract.
    RespondError(c, http.StatusNotFound, services.ErrContractNotFound.Error())
    return
  }
  contract, err := ch.contractService.GetByID(c.Request.Context(), rd.ProfileID, contractID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, contract)
}

func (ch *ContractHandler) ListActive(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    RespondError(c, http.StatusUnauthorized, "missing profile")
    return
  }
  contracts, err := ch.contractService.ListActive(c.Request.Context(), rd.ProfileID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, contracts)
}
