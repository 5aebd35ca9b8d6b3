package handlers

import (
	"context"
	"net/http"
	"time"

	"shipdesk-be/internal/engine"
	"shipdesk-be/internal/models"
	"shipdesk-be/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmailHandler struct {
	emailRepo   *repository.EmailRepository
	profileRepo *repository.ProfileRepository
}

func NewEmailHandler(emailRepo *repository.EmailRepository, profileRepo *repository.ProfileRepository) *EmailHandler {
	return &EmailHandler{
		emailRepo:   emailRepo,
		profileRepo: profileRepo,
	}
}

// emailCriteria maps list query params onto engine criteria. The profile
// is only loaded when a personalization toggle is on.
func (h *EmailHandler) emailCriteria(ctx context.Context, c *gin.Context) engine.Criteria {
	criteria := engine.Criteria{
		Sender:   c.Query("sender"),
		Subject:  c.Query("subject"),
		Body:     c.Query("body"),
		Operator: engine.ParseOperator(c.DefaultQuery("operator", "and")),
		DateRange: engine.DateRange{
			Start: c.Query("startDate"),
			End:   c.Query("endDate"),
		},
		Personal: engine.Personalization{
			ByMyEmail: c.Query("myEmail") == "true",
			ByMyShips: c.Query("myShips") == "true",
		},
	}

	if criteria.Personal.ByMyEmail || criteria.Personal.ByMyShips {
		profile, err := h.profileRepo.Get(ctx)
		if err == nil {
			criteria.Profile = profile
		}
		// A load failure just leaves personalization inactive.
	}

	return criteria
}

// GetEmails returns emails filtered by classification and the active
// facet criteria from the query string.
func (h *EmailHandler) GetEmails(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emails, err := h.emailRepo.List(ctx, c.Query("classification"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load emails",
		})
		return
	}

	filtered := engine.FilterEmails(emails, h.emailCriteria(ctx, c))

	c.JSON(http.StatusOK, gin.H{
		"emails": filtered,
		"total":  len(filtered),
	})
}

// GetEmailDetail returns a single email by ID
func (h *EmailHandler) GetEmailDetail(c *gin.Context) {
	emailID := c.Param("emailId")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email, err := h.emailRepo.GetByID(ctx, emailID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "email_not_found",
				Message: "Email not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load email",
		})
		return
	}

	c.JSON(http.StatusOK, email)
}

// GetClassificationStats returns per-label email counts for the tab bar
func (h *EmailHandler) GetClassificationStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := h.emailRepo.ClassificationStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load classification stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
