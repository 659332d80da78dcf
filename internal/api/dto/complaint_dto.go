package dto

import "time"

// SubmitComplaintRequest is the public intake form. Reference ids arrive as
// form fields; empty means unset.
type SubmitComplaintRequest struct {
	Name                string `json:"name" form:"name"`
	GenderID            *int64 `json:"gender_id" form:"gender_id"`
	Age                 *int   `json:"age" form:"age"`
	Phone               string `json:"phone" form:"phone"`
	Email               string `json:"email" form:"email"`
	GovernorateID       *int64 `json:"governorate_id" form:"governorate_id"`
	DistrictID          *int64 `json:"district_id" form:"district_id"`
	SubDistrictID       *int64 `json:"sub_district_id" form:"sub_district_id"`
	CommunityID         *int64 `json:"community_id" form:"community_id"`
	VillageCampFacility string `json:"village_camp_facility" form:"village_camp_facility"`
	Activity            string `json:"activity" form:"activity"`
	Complaint           string `json:"complaint" form:"complaint"`
	ChannelID           *int64 `json:"channel_id" form:"channel_id"`
	ProjectID           *int64 `json:"project_id" form:"project_id"`
}

// SubmitComplaintResponse returns the public tracking token.
type SubmitComplaintResponse struct {
	TrackingID string `json:"tracking_id"`
}

// TrackResponse is the anonymous-safe status projection.
type TrackResponse struct {
	TrackingID   string     `json:"tracking_id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	CreatedAt    time.Time  `json:"created_at"`
	Status       *string    `json:"status"`
	FollowUp     *string    `json:"follow_up"`
	Sensitive    *bool      `json:"sensitive"`
	AssignedTo   *string    `json:"assigned_to"`
	ResponseText *string    `json:"response_text"`
	ResponseDate *time.Time `json:"response_date"`
}

// AssignRequest is the assignment form.
type AssignRequest struct {
	UserID     int64  `json:"user_id" form:"user_id"`
	ProjectID  *int64 `json:"project_id" form:"project_id"`
	ChannelID  *int64 `json:"channel_id" form:"channel_id"`
	CategoryID *int64 `json:"category_id" form:"category_id"`
	FollowUp   string `json:"follow_up" form:"follow_up"`
	Status     string `json:"status" form:"status"`
	Sensitive  bool   `json:"sensitive" form:"sensitive"`
}

// AssignmentResponse summarizes a created assignment.
type AssignmentResponse struct {
	ComplaintID  int64     `json:"complaint_id"`
	UserID       int64     `json:"user_id"`
	ReferralDate time.Time `json:"referral_date"`
	DueDate      time.Time `json:"due_date"`
	Status       string    `json:"status"`
	Sensitive    bool      `json:"sensitive"`
}

// ComplaintRecordResponse is the joined admin projection of a complaint.
type ComplaintRecordResponse struct {
	ID               int64      `json:"id"`
	CreatedAt        time.Time  `json:"created_at"`
	TrackingID       string     `json:"tracking_id"`
	Name             string     `json:"name"`
	Gender           *string    `json:"gender"`
	Age              *int       `json:"age"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Governorate      *string    `json:"governorate"`
	District         *string    `json:"district"`
	SubDistrict      *string    `json:"sub_district"`
	Community        *string    `json:"community"`
	VillageCamp      string     `json:"village_camp_facility"`
	ProjectShortName *string    `json:"project_short_name"`
	ProjectDonor     *string    `json:"project_donor"`
	ProjectCode      *string    `json:"project_code"`
	ProjectSector    *string    `json:"project_sector"`
	Category         *string    `json:"category"`
	FollowUp         *string    `json:"follow_up"`
	Status           *string    `json:"status"`
	Sensitive        *bool      `json:"sensitive"`
	Attachment       *string    `json:"attachment"`
	AssignedTo       *string    `json:"assigned_to"`
	Channel          *string    `json:"channel"`
	Activity         string     `json:"activity"`
	Complaint        string     `json:"complaint"`
	ResponseText     *string    `json:"response_text"`
	ResponseDate     *time.Time `json:"response_date"`
	ReferralDate     *time.Time `json:"referral_date"`
}

// AssignedComplaintResponse is one staff-dashboard row.
type AssignedComplaintResponse struct {
	ComplaintID  int64      `json:"complaint_id"`
	CreatedAt    time.Time  `json:"created_at"`
	Governorate  *string    `json:"governorate"`
	District     *string    `json:"district"`
	SubDistrict  *string    `json:"sub_district"`
	Community    *string    `json:"community"`
	VillageCamp  string     `json:"village_camp_facility"`
	ProjectShort *string    `json:"project_short_name"`
	ProjectDonor *string    `json:"project_donor"`
	Category     *string    `json:"category"`
	Sensitive    bool       `json:"sensitive"`
	ReferralDate time.Time  `json:"referral_date"`
	DueDate      time.Time  `json:"due_date"`
	FollowUp     *string    `json:"follow_up"`
	Status       string     `json:"status"`
	Activity     string     `json:"activity"`
	Complaint    string     `json:"complaint"`
	ResponseText *string    `json:"response_text"`
	ResponseDate *time.Time `json:"response_date"`
}

// RespondRequest is the staff response form.
type RespondRequest struct {
	ComplaintID  int64  `json:"complaint_id" form:"complaint_id"`
	ResponseText string `json:"response_text" form:"response_text"`
}

// LookupItem is a generic id+name pair for cascading selects.
type LookupItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProjectItem carries programme metadata for project selects. The metadata
// fields mirror the nullable columns.
type ProjectItem struct {
	ID        int64   `json:"id"`
	ShortName string  `json:"short_name"`
	Donor     *string `json:"donor"`
	Code      *string `json:"code"`
	Sector    *string `json:"sector"`
	Title     *string `json:"title,omitempty"`
}

// CategoryItem carries the SLA window alongside the name.
type CategoryItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	WorkingDaysLimit *int   `json:"working_days_limit"`
}
