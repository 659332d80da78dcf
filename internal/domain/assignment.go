package domain

import "time"

// AssignmentStatus enumerates workflow states for an assignment.
type AssignmentStatus string

const (
	AssignmentStatusOpen     AssignmentStatus = "open"
	AssignmentStatusResolved AssignmentStatus = "resolved"
)

// Assignment binds a complaint to exactly one handling staff member,
// carrying the workflow metadata (category, due date, status).
type Assignment struct {
	ID           int64
	ComplaintID  int64
	UserID       int64
	ProjectID    *int64
	ChannelID    *int64
	CategoryID   *int64
	ReferralDate time.Time
	DueDate      time.Time
	FollowUp     *string
	Status       AssignmentStatus
	Sensitive    bool
}

// Response records a staff member's answer to an assigned complaint.
// At most one response exists per (complaint, user) pair.
type Response struct {
	ID           int64
	ComplaintID  int64
	UserID       int64
	ResponseText string
	CreatedAt    time.Time
}

// AssignedComplaint is the staff-dashboard projection: a complaint joined
// with the actor's assignment and, if present, their response.
type AssignedComplaint struct {
	ComplaintID  int64
	CreatedAt    time.Time
	Governorate  *string
	District     *string
	SubDistrict  *string
	Community    *string
	VillageCamp  string
	ProjectShort *string
	ProjectDonor *string
	Category     *string
	Sensitive    bool
	ReferralDate time.Time
	DueDate      time.Time
	FollowUp     *string
	Status       AssignmentStatus
	Activity     string
	Complaint    string
	ResponseText *string
	ResponseDate *time.Time
}
