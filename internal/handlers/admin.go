package handlers

import (
  "net/http"
  "strconv"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/fairwork/contracts-backend/internal/services"
)

type AdminHandler struct {
  reportService   services.ReportService
}

func NewAdminHandler(reportService services.ReportService) *AdminHandler {
  return &AdminHandler{reportService: reportService}
}

func (ah *AdminHandler) BestProfession(c *gin.Context) {
  start, end, ok := parsePeriod(c)
  if !ok {
    return
  }
  best, err := ah.reportService.BestProfession(c.Request.Context(), start, end)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"bestProfession": best.Profession})
}

func (ah *AdminHandler) BestClients(c *gin.Context) {
  start, end, ok := parsePeriod(c)
  if !ok {
    return
  }
  limit := 0
  if limitStr := c.Query("limit"); limitStr != "" {
    parsed, err := strconv.Atoi(limitStr)
    if err != nil || parsed <= 0 {
      RespondError(c, http.StatusBadRequest, "Invalid 'limit' parameter")
      return
    }
    limit = parsed
  }
  clients, err := ah.reportService.BestClients(c.Request.Context(), start, end, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, clients)
}

func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
  start, ok := parseTimeParam(c, "start")
  if !ok {
    return time.Time{}, time.Time{}, false
  }
  end, ok := parseTimeParam(c, "end")
  if !ok {
    return time.Time{}, time.Time{}, false
  }
  return start, end, true
}

func parseTimeParam(c *gin.Context, name string) (time.Time, bool) {
  raw := c.Query(name)
  if raw == "" {
    RespondError(c, http.StatusBadRequest, "Missing '"+name+"' parameter")
    return time.Time{}, false
  }
  if t, err := time.Parse(time.RFC3339, raw); err == nil {
    return t, true
  }
  if t, err := time.Parse("2006-01-02", raw); err == nil {
    return t, true
  }
  RespondError(c, http.StatusBadRequest, "Invalid '"+name+"' parameter")
  return time.Time{}, false
}
