package middleware

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/repos"
  "github.com/fairwork/contracts-backend/internal/requestdata"
)

// ProfileMiddleware resolves the upstream identity contract: the profile_id
// header names an existing Profile or the request is rejected before any
// handler runs.
type ProfileMiddleware struct {
  log           *logger.Logger
  profileRepo   repos.ProfileRepo
}

func NewProfileMiddleware(log *logger.Logger, profileRepo repos.ProfileRepo) *ProfileMiddleware {
  middlewareLogger := log.With("Middleware", "ProfileMiddleware")
  return &ProfileMiddleware{log: middlewareLogger, profileRepo: profileRepo}
}

func (pm *ProfileMiddleware) RequireProfile() gin.HandlerFunc {
  return func(c *gin.Context) {
    raw := c.GetHeader("profile_id")
    if raw == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing profile_id header"})
      return
    }
    profileID, err := uuid.Parse(raw)
    if err != nil {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid profile_id header"})
      return
    }
    profile, err := pm.profileRepo.GetByID(c.Request.Context(), nil, profileID)
    if err != nil {
      pm.log.Error("Failed to resolve profile", "profile_id", profileID, "error", err)
      c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
      return
    }
    if profile == nil {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
      return
    }
    ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
      ProfileID: profile.ID,
      Profile:   profile,
    })
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}
