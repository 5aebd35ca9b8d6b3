package handlers

import (
	"net/http"
	"strings"

	"shipdesk-be/internal/engine"
	"shipdesk-be/internal/models"
	"shipdesk-be/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sahilm/fuzzy"
)

// SearchHandler handles filtered search and suggestions
type SearchHandler struct {
	emailRepo *repository.EmailRepository
	eventRepo *repository.EventRepository
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(emailRepo *repository.EmailRepository, eventRepo *repository.EventRepository) *SearchHandler {
	return &SearchHandler{
		emailRepo: emailRepo,
		eventRepo: eventRepo,
	}
}

// ========== Request/Response Types ==========

// SearchFilters is the detailed-search facet block of a search request
type SearchFilters struct {
	Sender    string `json:"sender"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Operator  string `json:"operator"` // "and" | "or"
}

// SearchRequest is the payload for filtered search
type SearchRequest struct {
	Query   string        `json:"query"`
	TopK    int           `json:"topK"`
	Filters SearchFilters `json:"filters"`
}

// SearchResult represents a single search result with score
type SearchResult struct {
	Email models.Email `json:"email"`
	Score int          `json:"score"`
}

// SearchResponse is the response for filtered search
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Query   string         `json:"query"`
	Total   int            `json:"total"`
}

// Suggestion represents a single search suggestion
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"` // "sender" | "ship"
}

// SuggestionsResponse is the response for search suggestions
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// emailSource adapts emails to fuzzy matching over subject+sender.
type emailSource []models.Email

func (s emailSource) String(i int) string {
	return s[i].Subject + " " + s[i].Sender
}

func (s emailSource) Len() int { return len(s) }

// ========== Handlers ==========

// Search godoc
// @Summary Filtered email search
// @Description Applies the detailed-search facets under one AND/OR operator, then ranks by fuzzy relevance to the query
// @Tags search
// @Accept json
// @Produce json
// @Param payload body SearchRequest true "Search query and facets"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	query := strings.TrimSpace(req.Query)
	hasFilters := strings.TrimSpace(req.Filters.Sender) != "" ||
		strings.TrimSpace(req.Filters.Subject) != "" ||
		strings.TrimSpace(req.Filters.Body) != "" ||
		strings.TrimSpace(req.Filters.StartDate) != "" ||
		strings.TrimSpace(req.Filters.EndDate) != ""
	if query == "" && !hasFilters {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "empty_search", Message: "Provide a query or at least one filter"})
		return
	}

	topK := req.TopK
	if topK <= 0 {
		topK = 10
	}
	if topK > 50 {
		topK = 50
	}

	ctx := c.Request.Context()

	emails, err := h.emailRepo.List(ctx, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: "Failed to fetch emails: " + err.Error()})
		return
	}

	criteria := engine.Criteria{
		Sender:   req.Filters.Sender,
		Subject:  req.Filters.Subject,
		Body:     req.Filters.Body,
		Operator: engine.ParseOperator(req.Filters.Operator),
		DateRange: engine.DateRange{
			Start: req.Filters.StartDate,
			End:   req.Filters.EndDate,
		},
	}
	filtered := engine.FilterEmails(emails, criteria)

	var results []SearchResult
	if query == "" {
		// Facets only: keep store order, no relevance score.
		for _, e := range filtered {
			results = append(results, SearchResult{Email: e})
		}
	} else {
		matches := fuzzy.FindFrom(query, emailSource(filtered))
		for _, m := range matches {
			results = append(results, SearchResult{Email: filtered[m.Index], Score: m.Score})
		}
	}

	if len(results) > topK {
		results = results[:topK]
	}
	if results == nil {
		results = []SearchResult{}
	}

	c.JSON(http.StatusOK, SearchResponse{
		Results: results,
		Query:   req.Query,
		Total:   len(results),
	})
}

// GetSuggestions godoc
// @Summary Get search suggestions
// @Description Fuzzy auto-complete over known senders and hull numbers
// @Tags search
// @Produce json
// @Param q query string true "Search query prefix"
// @Success 200 {object} SuggestionsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /search/suggestions [get]
func (h *SearchHandler) GetSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: []Suggestion{}})
		return
	}

	ctx := c.Request.Context()

	var suggestions []Suggestion

	// Sender suggestions (limit 3)
	if emails, err := h.emailRepo.List(ctx, ""); err == nil {
		seen := make(map[string]bool)
		var senders []string
		for _, e := range emails {
			if e.Sender != "" && !seen[e.Sender] {
				seen[e.Sender] = true
				senders = append(senders, e.Sender)
			}
		}
		matches := fuzzy.Find(query, senders)
		for i, m := range matches {
			if i == 3 {
				break
			}
			suggestions = append(suggestions, Suggestion{Text: m.Str, Type: "sender"})
		}
	}

	// Hull number suggestions (limit 2)
	if ships, err := h.eventRepo.DistinctShips(ctx); err == nil {
		matches := fuzzy.Find(query, ships)
		for i, m := range matches {
			if i == 2 {
				break
			}
			suggestions = append(suggestions, Suggestion{Text: m.Str, Type: "ship"})
		}
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}

	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}
