package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cfm-kit/complaint-service/internal/domain"
)

// ResponseRepository encapsulates response persistence.
type ResponseRepository interface {
	CreateAndResolve(ctx context.Context, response *domain.Response) error
	GetByComplaintAndUser(ctx context.Context, complaintID, userID int64) (*domain.Response, error)
}

type responseRepository struct {
	pool *pgxpool.Pool
}

// NewResponseRepository instantiates repository.
func NewResponseRepository(pool *pgxpool.Pool) ResponseRepository {
	return &responseRepository{pool: pool}
}

// CreateAndResolve inserts the response and flips the matching assignment to
// resolved in one transaction, so the two writes commit or roll back
// together.
func (r *responseRepository) CreateAndResolve(ctx context.Context, response *domain.Response) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insert = `
        INSERT INTO responses (complaint_id, user_id, response_text)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insert,
		response.ComplaintID,
		response.UserID,
		response.ResponseText,
	).Scan(&response.ID, &response.CreatedAt); err != nil {
		return err
	}

	const resolve = `
        UPDATE assignments SET status=$1
        WHERE complaint_id=$2 AND user_id=$3`
	if _, err := tx.Exec(ctx, resolve, domain.AssignmentStatusResolved, response.ComplaintID, response.UserID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *responseRepository) GetByComplaintAndUser(ctx context.Context, complaintID, userID int64) (*domain.Response, error) {
	const query = `
        SELECT id, complaint_id, user_id, response_text, created_at
        FROM responses WHERE complaint_id=$1 AND user_id=$2`

	var resp domain.Response
	if err := r.pool.QueryRow(ctx, query, complaintID, userID).Scan(
		&resp.ID,
		&resp.ComplaintID,
		&resp.UserID,
		&resp.ResponseText,
		&resp.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &resp, nil
}
