package models

// CalendarEvent is an event extracted from an email (or created by hand).
// StartDate/EndDate are stored as text because the extraction upstream
// does not guarantee a parseable format; consumers parse leniently.
type CalendarEvent struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	StartDate   string `json:"startDate" bson:"startDate"`
	EndDate     string `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ShipNumber  string `json:"shipNumber,omitempty" bson:"shipNumber,omitempty"` // comma-separated hull numbers
	EmailID     string `json:"emailId,omitempty" bson:"emailId,omitempty"`       // originating email, lookup only
}

// CreateEventRequest is the payload for manual event creation
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ShipNumber  string `json:"shipNumber"`
	EmailID     string `json:"emailId"`
}
