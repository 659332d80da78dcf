package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cfm-kit/complaint-service/internal/domain"
)

// AssignmentRepository encapsulates assignment persistence.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) error
	GetByComplaint(ctx context.Context, complaintID int64) (*domain.Assignment, error)
	GetByComplaintAndUser(ctx context.Context, complaintID, userID int64) (*domain.Assignment, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.AssignedComplaint, error)
	GetDetailForUser(ctx context.Context, complaintID, userID int64) (*domain.ComplaintRecord, error)
}

type assignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository instantiates repository.
func NewAssignmentRepository(pool *pgxpool.Pool) AssignmentRepository {
	return &assignmentRepository{pool: pool}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	const query = `
        INSERT INTO assignments (complaint_id, user_id, project_id, channel_id, category_id,
                                 referral_date, due_date, follow_up, status, sensitive)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		assignment.ComplaintID,
		assignment.UserID,
		assignment.ProjectID,
		assignment.ChannelID,
		assignment.CategoryID,
		assignment.ReferralDate,
		assignment.DueDate,
		assignment.FollowUp,
		assignment.Status,
		assignment.Sensitive,
	).Scan(&assignment.ID)
}

func (r *assignmentRepository) GetByComplaint(ctx context.Context, complaintID int64) (*domain.Assignment, error) {
	const query = `
        SELECT id, complaint_id, user_id, project_id, channel_id, category_id,
               referral_date, due_date, follow_up, status, sensitive
        FROM assignments WHERE complaint_id=$1`
	return r.fetchSingle(ctx, query, complaintID)
}

func (r *assignmentRepository) GetByComplaintAndUser(ctx context.Context, complaintID, userID int64) (*domain.Assignment, error) {
	const query = `
        SELECT id, complaint_id, user_id, project_id, channel_id, category_id,
               referral_date, due_date, follow_up, status, sensitive
        FROM assignments WHERE complaint_id=$1 AND user_id=$2`
	return r.fetchSingle(ctx, query, complaintID, userID)
}

func (r *assignmentRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Assignment, error) {
	var a domain.Assignment
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&a.ID,
		&a.ComplaintID,
		&a.UserID,
		&a.ProjectID,
		&a.ChannelID,
		&a.CategoryID,
		&a.ReferralDate,
		&a.DueDate,
		&a.FollowUp,
		&a.Status,
		&a.Sensitive,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListForUser returns the staff-dashboard projection: every complaint
// assigned to the user, with the user's own response joined when present.
func (r *assignmentRepository) ListForUser(ctx context.Context, userID int64) ([]domain.AssignedComplaint, error) {
	const query = `
        SELECT c.id, c.created_at,
               governorates.name AS governorate,
               districts.name AS district,
               sub_districts.name AS sub_district,
               communities.name AS community,
               c.village_camp_facility,
               p.short_name, p.donor,
               categories.name AS category,
               a.sensitive, a.referral_date, a.due_date, a.follow_up, a.status,
               c.activity, c.complaint,
               res.response_text, res.created_at AS response_date
        FROM complaints c
        INNER JOIN assignments a ON a.complaint_id = c.id
        LEFT JOIN projects p ON a.project_id = p.id
        LEFT JOIN governorates ON c.governorate_id = governorates.id
        LEFT JOIN districts ON c.district_id = districts.id
        LEFT JOIN sub_districts ON c.sub_district_id = sub_districts.id
        LEFT JOIN communities ON c.community_id = communities.id
        LEFT JOIN categories ON a.category_id = categories.id
        LEFT JOIN responses res ON res.complaint_id = c.id AND res.user_id = $1
        WHERE a.user_id = $1
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AssignedComplaint
	for rows.Next() {
		var ac domain.AssignedComplaint
		if err := rows.Scan(
			&ac.ComplaintID,
			&ac.CreatedAt,
			&ac.Governorate,
			&ac.District,
			&ac.SubDistrict,
			&ac.Community,
			&ac.VillageCamp,
			&ac.ProjectShort,
			&ac.ProjectDonor,
			&ac.Category,
			&ac.Sensitive,
			&ac.ReferralDate,
			&ac.DueDate,
			&ac.FollowUp,
			&ac.Status,
			&ac.Activity,
			&ac.Complaint,
			&ac.ResponseText,
			&ac.ResponseDate,
		); err != nil {
			return nil, err
		}
		result = append(result, ac)
	}
	return result, rows.Err()
}

// GetDetailForUser returns the full record for a complaint only when it is
// assigned to the given user; pgx.ErrNoRows otherwise.
func (r *assignmentRepository) GetDetailForUser(ctx context.Context, complaintID, userID int64) (*domain.ComplaintRecord, error) {
	if _, err := r.GetByComplaintAndUser(ctx, complaintID, userID); err != nil {
		return nil, err
	}

	const query = `
        SELECT c.id, c.created_at, c.tracking_id, c.name,
               a.status, a.follow_up, a.sensitive,
               p.short_name AS project_short_name, c.activity, c.complaint,
               res.response_text, res.created_at AS response_date
        FROM complaints c
        INNER JOIN assignments a ON a.complaint_id = c.id
        LEFT JOIN projects p ON a.project_id = p.id
        LEFT JOIN responses res ON res.complaint_id = c.id AND res.user_id = $2
        WHERE c.id = $1 AND a.user_id = $2`

	var rec domain.ComplaintRecord
	if err := r.pool.QueryRow(ctx, query, complaintID, userID).Scan(
		&rec.ID,
		&rec.CreatedAt,
		&rec.TrackingID,
		&rec.Name,
		&rec.Status,
		&rec.FollowUp,
		&rec.Sensitive,
		&rec.ProjectShortName,
		&rec.Activity,
		&rec.Complaint,
		&rec.ResponseText,
		&rec.ResponseDate,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}
