package handlers

import (
	"context"
	"net/http"
	"time"

	"shipdesk-be/internal/models"
	"shipdesk-be/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	profileRepo *repository.ProfileRepository
}

func NewSettingsHandler(profileRepo *repository.ProfileRepository) *SettingsHandler {
	return &SettingsHandler{profileRepo: profileRepo}
}

// GetProfile returns the saved user profile
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, err := h.profileRepo.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load profile",
		})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "profile_not_found",
			Message: "No profile saved yet",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveProfile upserts the user profile
func (h *SettingsHandler) SaveProfile(c *gin.Context) {
	var req models.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	profile := &models.UserProfile{
		Email:       req.Email,
		ShipNumbers: req.ShipNumbers,
		Name:        req.Name,
		Department:  req.Department,
		Area:        req.Area,
		Equipment:   req.Equipment,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.profileRepo.Save(ctx, profile); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to save profile",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
