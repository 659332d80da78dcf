package domain

import "time"

// Complaint is a citizen submission. Rows are immutable after creation;
// workflow state lives on the joined Assignment and Response rows.
type Complaint struct {
	ID                  int64
	TrackingID          string
	Name                string
	GenderID            *int64
	Age                 *int
	Phone               string
	Email               string
	GovernorateID       *int64
	DistrictID          *int64
	SubDistrictID       *int64
	CommunityID         *int64
	VillageCampFacility string
	Activity            string
	Complaint           string
	ChannelID           *int64
	ProjectID           *int64
	CreatedAt           time.Time
}

// Attachment references a stored upload belonging to a complaint.
type Attachment struct {
	ID          int64
	ComplaintID int64
	FilePath    string
}

// ComplaintRecord is the denormalized admin projection of a complaint with
// its lookup names, assignment and response resolved.
type ComplaintRecord struct {
	ID               int64
	CreatedAt        time.Time
	TrackingID       string
	Name             string
	Gender           *string
	Age              *int
	Phone            string
	Email            string
	Governorate      *string
	District         *string
	SubDistrict      *string
	Community        *string
	VillageCamp      string
	ProjectShortName *string
	ProjectDonor     *string
	ProjectCode      *string
	ProjectSector    *string
	Category         *string
	FollowUp         *string
	Status           *string
	Sensitive        *bool
	AttachmentPath   *string
	AssignedTo       *string
	Channel          *string
	Activity         string
	Complaint        string
	ResponseText     *string
	ResponseDate     *time.Time
	ReferralDate     *time.Time
}

// PublicStatus is the reduced projection returned for anonymous tracking.
// It carries no internal identifiers and no other submitter's data.
type PublicStatus struct {
	TrackingID   string
	Name         string
	Phone        string
	CreatedAt    time.Time
	Status       *string
	FollowUp     *string
	Sensitive    *bool
	AssignedTo   *string
	ResponseText *string
	ResponseDate *time.Time
}
