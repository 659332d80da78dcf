package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintSubmitted EventType = "complaint_submitted"
	EventComplaintAssigned  EventType = "complaint_assigned"
	EventComplaintResponded EventType = "complaint_responded"
)

// Event represents a domain event emitted by services. ActorID is nil for
// anonymous actors (public complaint submission).
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID int64       `json:"complaint_id"`
	ActorID     *int64      `json:"actor_id,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintSubmittedPayload payload.
type ComplaintSubmittedPayload struct {
	TrackingID    string `json:"tracking_id"`
	HasAttachment bool   `json:"has_attachment"`
}

// ComplaintAssignedPayload payload.
type ComplaintAssignedPayload struct {
	AssigneeUserID int64     `json:"assignee_user_id"`
	CategoryID     *int64    `json:"category_id,omitempty"`
	DueDate        time.Time `json:"due_date"`
	Sensitive      bool      `json:"sensitive"`
}

// ComplaintRespondedPayload payload.
type ComplaintRespondedPayload struct {
	ResponderUserID int64 `json:"responder_user_id"`
}
