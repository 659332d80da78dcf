package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cfm-kit/complaint-service/internal/domain"
)

// ComplaintFilter captures admin search parameters over the joined listing.
type ComplaintFilter struct {
	Status        *string
	GovernorateID *int64
	Sensitive     *bool
	SearchTerm    *string
	Limit         int
	Offset        int
}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	CreateWithAttachment(ctx context.Context, complaint *domain.Complaint, attachment *domain.Attachment) error
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	GetRecord(ctx context.Context, id int64) (*domain.ComplaintRecord, error)
	ListRecords(ctx context.Context, filter ComplaintFilter) ([]domain.ComplaintRecord, error)
	GetPublicStatus(ctx context.Context, trackingID string) (*domain.PublicStatus, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

// CreateWithAttachment writes the complaint row and, when present, its
// attachment row inside one transaction; either both commit or neither is
// visible.
func (r *complaintRepository) CreateWithAttachment(ctx context.Context, complaint *domain.Complaint, attachment *domain.Attachment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertComplaint = `
        INSERT INTO complaints (
            tracking_id, name, gender_id, age, phone, email,
            governorate_id, district_id, sub_district_id, community_id,
            village_camp_facility, activity, complaint, channel_id, project_id
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at`

	if err := tx.QueryRow(ctx, insertComplaint,
		complaint.TrackingID,
		complaint.Name,
		complaint.GenderID,
		complaint.Age,
		complaint.Phone,
		complaint.Email,
		complaint.GovernorateID,
		complaint.DistrictID,
		complaint.SubDistrictID,
		complaint.CommunityID,
		complaint.VillageCampFacility,
		complaint.Activity,
		complaint.Complaint,
		complaint.ChannelID,
		complaint.ProjectID,
	).Scan(&complaint.ID, &complaint.CreatedAt); err != nil {
		return err
	}

	if attachment != nil {
		attachment.ComplaintID = complaint.ID
		const insertAttachment = `
            INSERT INTO attachments (complaint_id, file_path)
            VALUES ($1, $2)
            RETURNING id`
		if err := tx.QueryRow(ctx, insertAttachment, attachment.ComplaintID, attachment.FilePath).Scan(&attachment.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	const query = `
        SELECT id, tracking_id, name, gender_id, age, phone, email,
               governorate_id, district_id, sub_district_id, community_id,
               village_camp_facility, activity, complaint, channel_id, project_id, created_at
        FROM complaints WHERE id=$1`

	var c domain.Complaint
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.TrackingID,
		&c.Name,
		&c.GenderID,
		&c.Age,
		&c.Phone,
		&c.Email,
		&c.GovernorateID,
		&c.DistrictID,
		&c.SubDistrictID,
		&c.CommunityID,
		&c.VillageCampFacility,
		&c.Activity,
		&c.Complaint,
		&c.ChannelID,
		&c.ProjectID,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func recordBuilder() sq.SelectBuilder {
	return sq.Select(
		"c.id",
		"c.created_at",
		"c.tracking_id",
		"c.name",
		"genders.name AS gender",
		"c.age",
		"c.phone",
		"c.email",
		"governorates.name AS governorate",
		"districts.name AS district",
		"sub_districts.name AS sub_district",
		"communities.name AS community",
		"c.village_camp_facility",
		"p.short_name AS project_short_name",
		"p.donor AS project_donor",
		"p.code AS project_code",
		"p.sector AS project_sector",
		"categories.name AS category",
		"a.follow_up",
		"a.status",
		"a.sensitive",
		"attachments.file_path AS attachment",
		"assigned_user.username AS assigned_to",
		"channels.name AS channel",
		"c.activity",
		"c.complaint",
		"r.response_text",
		"r.created_at AS response_date",
		"a.referral_date",
	).
		From("complaints c").
		LeftJoin("responses r ON c.id = r.complaint_id").
		LeftJoin("attachments ON c.id = attachments.complaint_id").
		LeftJoin("governorates ON c.governorate_id = governorates.id").
		LeftJoin("districts ON c.district_id = districts.id").
		LeftJoin("sub_districts ON c.sub_district_id = sub_districts.id").
		LeftJoin("communities ON c.community_id = communities.id").
		LeftJoin("genders ON c.gender_id = genders.id").
		LeftJoin("assignments a ON a.complaint_id = c.id").
		LeftJoin("projects p ON a.project_id = p.id").
		LeftJoin("channels ON c.channel_id = channels.id").
		LeftJoin("categories ON a.category_id = categories.id").
		LeftJoin("users assigned_user ON assigned_user.id = a.user_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *complaintRepository) GetRecord(ctx context.Context, id int64) (*domain.ComplaintRecord, error) {
	query, args, err := recordBuilder().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	records, err := r.queryRecords(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &records[0], nil
}

func (r *complaintRepository) ListRecords(ctx context.Context, filter ComplaintFilter) ([]domain.ComplaintRecord, error) {
	builder := recordBuilder().OrderBy("c.created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"a.status": *filter.Status})
	}
	if filter.GovernorateID != nil {
		builder = builder.Where(sq.Eq{"c.governorate_id": *filter.GovernorateID})
	}
	if filter.Sensitive != nil {
		builder = builder.Where(sq.Eq{"a.sensitive": *filter.Sensitive})
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		builder = builder.Where(sq.Or{
			sq.Like{"LOWER(c.name)": search},
			sq.Like{"LOWER(c.complaint)": search},
			sq.Like{"LOWER(c.tracking_id)": search},
		})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryRecords(ctx, query, args)
}

func (r *complaintRepository) queryRecords(ctx context.Context, query string, args []any) ([]domain.ComplaintRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ComplaintRecord
	for rows.Next() {
		var rec domain.ComplaintRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.CreatedAt,
			&rec.TrackingID,
			&rec.Name,
			&rec.Gender,
			&rec.Age,
			&rec.Phone,
			&rec.Email,
			&rec.Governorate,
			&rec.District,
			&rec.SubDistrict,
			&rec.Community,
			&rec.VillageCamp,
			&rec.ProjectShortName,
			&rec.ProjectDonor,
			&rec.ProjectCode,
			&rec.ProjectSector,
			&rec.Category,
			&rec.FollowUp,
			&rec.Status,
			&rec.Sensitive,
			&rec.AttachmentPath,
			&rec.AssignedTo,
			&rec.Channel,
			&rec.Activity,
			&rec.Complaint,
			&rec.ResponseText,
			&rec.ResponseDate,
			&rec.ReferralDate,
		); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// GetPublicStatus resolves a tracking token to the anonymous-safe
// projection. Internal row ids are deliberately not selected.
func (r *complaintRepository) GetPublicStatus(ctx context.Context, trackingID string) (*domain.PublicStatus, error) {
	const query = `
        SELECT c.tracking_id, c.name, c.phone, c.created_at,
               a.status, a.follow_up, a.sensitive, u.username AS assigned_to,
               r.response_text, r.created_at AS response_date
        FROM complaints c
        LEFT JOIN assignments a ON c.id = a.complaint_id
        LEFT JOIN users u ON a.user_id = u.id
        LEFT JOIN responses r ON c.id = r.complaint_id
        WHERE c.tracking_id = $1`

	var status domain.PublicStatus
	if err := r.pool.QueryRow(ctx, query, trackingID).Scan(
		&status.TrackingID,
		&status.Name,
		&status.Phone,
		&status.CreatedAt,
		&status.Status,
		&status.FollowUp,
		&status.Sensitive,
		&status.AssignedTo,
		&status.ResponseText,
		&status.ResponseDate,
	); err != nil {
		return nil, err
	}
	return &status, nil
}
