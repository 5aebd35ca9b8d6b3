package models

import "time"

// UserProfile is the singleton personalization context: the user's own
// address and the hull numbers they are responsible for. ShipNumbers is a
// comma-separated list, matching how it is entered in the settings page.
type UserProfile struct {
	Email       string    `json:"email" bson:"email"`
	ShipNumbers string    `json:"shipNumbers" bson:"shipNumbers"`
	Name        string    `json:"name,omitempty" bson:"name,omitempty"`
	Department  string    `json:"department,omitempty" bson:"department,omitempty"`
	Area        string    `json:"area,omitempty" bson:"area,omitempty"`
	Equipment   string    `json:"equipment,omitempty" bson:"equipment,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SaveProfileRequest is the payload for updating the profile
type SaveProfileRequest struct {
	Email       string `json:"email" binding:"required,email"`
	ShipNumbers string `json:"shipNumbers"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Area        string `json:"area"`
	Equipment   string `json:"equipment"`
}
