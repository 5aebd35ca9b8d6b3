package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shipdesk-be/internal/engine"
	"shipdesk-be/internal/models"
	"shipdesk-be/internal/repository"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventRepo   *repository.EventRepository
	profileRepo *repository.ProfileRepository
	classifier  *engine.Classifier
}

func NewEventHandler(eventRepo *repository.EventRepository, profileRepo *repository.ProfileRepository, classifier *engine.Classifier) *EventHandler {
	return &EventHandler{
		eventRepo:   eventRepo,
		profileRepo: profileRepo,
		classifier:  classifier,
	}
}

func splitCSVParam(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *EventHandler) eventCriteria(ctx context.Context, c *gin.Context) engine.Criteria {
	criteria := engine.Criteria{
		Categories: splitCSVParam(c.Query("categories")),
		Ships:      splitCSVParam(c.Query("ships")),
		Operator:   engine.ParseOperator(c.DefaultQuery("operator", "and")),
		DateRange: engine.DateRange{
			Start: c.Query("startDate"),
			End:   c.Query("endDate"),
		},
		Personal: engine.Personalization{
			ByMyShips: c.Query("myShips") == "true",
		},
	}

	if criteria.Personal.ByMyShips {
		profile, err := h.profileRepo.Get(ctx)
		if err == nil {
			criteria.Profile = profile
		}
	}

	return criteria
}

func (h *EventHandler) loadFiltered(ctx context.Context, c *gin.Context) ([]models.CalendarEvent, error) {
	events, err := h.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return engine.FilterEvents(events, h.eventCriteria(ctx, c), h.classifier), nil
}

// GetEvents godoc
// @Summary List calendar events
// @Description List events filtered by category keywords, hull numbers, date range and the my-ships toggle
// @Tags events
// @Produce json
// @Param categories query string false "Comma-separated category keywords"
// @Param ships query string false "Comma-separated hull numbers (exact match)"
// @Param myShips query bool false "Only events matching the profile's hull numbers"
// @Param operator query string false "and|or"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /events [get]
func (h *EventHandler) GetEvents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filtered, err := h.loadFiltered(ctx, c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load events",
		})
		return
	}

	// Attach the derived category so the client does not duplicate the
	// keyword table. Categories are never stored.
	type eventView struct {
		models.CalendarEvent
		Category engine.Category `json:"category"`
	}
	views := make([]eventView, len(filtered))
	for i, ev := range filtered {
		views[i] = eventView{CalendarEvent: ev, Category: h.classifier.Classify(ev.Title)}
	}

	c.JSON(http.StatusOK, gin.H{
		"events": views,
		"total":  len(views),
	})
}

// CreateEvent adds a manually entered event
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	event := &models.CalendarEvent{
		ID:          uuid.NewString(),
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Description: req.Description,
		ShipNumber:  req.ShipNumber,
		EmailID:     req.EmailID,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.eventRepo.Insert(ctx, event); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to save event",
		})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetShips enumerates the distinct hull numbers found across all events
func (h *EventHandler) GetShips(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ships, err := h.eventRepo.DistinctShips(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load ship numbers",
		})
		return
	}
	if ships == nil {
		ships = []string{}
	}

	c.JSON(http.StatusOK, ships)
}

// GetCategories returns the fixed category table for the legend
func (h *EventHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.classifier.Categories())
}

// GetCalendar godoc
// @Summary Day-bucketed calendar view
// @Description Buckets the filtered events by local calendar day. With a date param, returns just that day's bucket.
// @Tags events
// @Produce json
// @Param date query string false "Day key (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /events/calendar [get]
func (h *EventHandler) GetCalendar(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filtered, err := h.loadFiltered(ctx, c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load events",
		})
		return
	}

	index := engine.BuildBucketIndex(filtered)

	if day := c.Query("date"); day != "" {
		c.JSON(http.StatusOK, gin.H{
			"date":   day,
			"events": index.Lookup(day),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"buckets": index})
}

// ExportICS serves the filtered events as an iCalendar file
func (h *EventHandler) ExportICS(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filtered, err := h.loadFiltered(ctx, c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load events",
		})
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//shipdesk//calendar//KO")

	for _, ev := range filtered {
		start, ok := engine.ParseLooseDate(ev.StartDate)
		if !ok {
			// Same policy as the bucket index: a bad date drops the
			// event from calendar output, never fails the export.
			continue
		}

		vevent := cal.AddEvent(ev.ID)
		vevent.SetSummary(ev.Title)
		vevent.SetStartAt(start)
		if end, ok := engine.ParseLooseDate(ev.EndDate); ok {
			vevent.SetEndAt(end)
		}
		if ev.Location != "" {
			vevent.SetLocation(ev.Location)
		}
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
		vevent.SetProperty(ics.ComponentPropertyCategories, h.classifier.Classify(ev.Title).Label)
	}

	c.Header("Content-Disposition", `attachment; filename="shipdesk-events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}

// ClearEvents wipes the event collection (maintenance)
func (h *EventHandler) ClearEvents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, err := h.eventRepo.Clear(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to clear events",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
}
