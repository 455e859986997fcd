package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/fairwork/contracts-backend/internal/requestdata"
  "github.com/fairwork/contracts-backend/internal/services"
)

type JobHandler struct {
  jobService    services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
  return &JobHandler{jobService: jobService}
}

func (jh *JobHandler) ListUnpaid(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    RespondError(c, http.StatusUnauthorized, "missing profile")
    return
  }
  jobs, err := jh.jobService.ListUnpaid(c.Request.Context(), rd.ProfileID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, jobs)
}

func (jh *JobHandler) Pay(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    RespondError(c, http.StatusUnauthorized, "missing profile")
    return
  }
  jobID, err := uuid.Parse(c.Param("job_id"))
  if err != nil {
    RespondError(c, http.StatusNotFound, services.ErrNotFound.Error())
    return
  }
  if err := jh.jobService.Pay(c.Request.Context(), rd.ProfileID, jobID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "Payment concluded"})
}









