package models

// Classification labels assigned by the upstream importer. The engine
// treats these as opaque data; it never computes them.
const (
	ClassificationTask         = "task"
	ClassificationMeeting      = "meeting"
	ClassificationApproval     = "approval"
	ClassificationNotice       = "notice"
	ClassificationUnclassified = "unclassified"
)

type Email struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	Subject        string       `json:"subject" bson:"subject"`
	Sender         string       `json:"sender" bson:"sender"`
	Recipient      string       `json:"recipient,omitempty" bson:"recipient,omitempty"`
	Date           string       `json:"date" bson:"date"` // loosely formatted, as imported
	Body           string       `json:"body" bson:"body"`
	Classification string       `json:"classification" bson:"classification"`
	Attachments    []Attachment `json:"attachments,omitempty" bson:"attachments,omitempty"`
}

type Attachment struct {
	OriginalName string `json:"originalName" bson:"originalName"`
	RelPath      string `json:"relPath" bson:"relPath"`
	Size         int64  `json:"size" bson:"size"`
}

// ClassificationStats - count of emails per classification label
type ClassificationStats struct {
	Total        int `json:"total"`
	Task         int `json:"task"`
	Meeting      int `json:"meeting"`
	Approval     int `json:"approval"`
	Notice       int `json:"notice"`
	Unclassified int `json:"unclassified"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
