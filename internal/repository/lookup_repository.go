package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cfm-kit/complaint-service/internal/domain"
)

// LookupRepository serves the reference tables backing the intake and
// assignment forms, including the governorate -> district -> sub-district ->
// community cascade.
type LookupRepository interface {
	Genders(ctx context.Context) ([]domain.Lookup, error)
	Channels(ctx context.Context) ([]domain.Lookup, error)
	Governorates(ctx context.Context) ([]domain.Lookup, error)
	DistrictsByGovernorate(ctx context.Context, governorateID int64) ([]domain.Lookup, error)
	SubDistrictsByDistrict(ctx context.Context, districtID int64) ([]domain.Lookup, error)
	CommunitiesBySubDistrict(ctx context.Context, subDistrictID int64) ([]domain.Lookup, error)
	Projects(ctx context.Context) ([]domain.Project, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
}

type lookupRepository struct {
	pool *pgxpool.Pool
}

// NewLookupRepository instantiates repository.
func NewLookupRepository(pool *pgxpool.Pool) LookupRepository {
	return &lookupRepository{pool: pool}
}

func (r *lookupRepository) Genders(ctx context.Context) ([]domain.Lookup, error) {
	return r.lookups(ctx, `SELECT id, name FROM genders ORDER BY id`)
}

func (r *lookupRepository) Channels(ctx context.Context) ([]domain.Lookup, error) {
	return r.lookups(ctx, `SELECT id, name FROM channels ORDER BY id`)
}

func (r *lookupRepository) Governorates(ctx context.Context) ([]domain.Lookup, error) {
	return r.lookups(ctx, `SELECT id, name FROM governorates ORDER BY name`)
}

func (r *lookupRepository) DistrictsByGovernorate(ctx context.Context, governorateID int64) ([]domain.Lookup, error) {
	return r.lookups(ctx, `SELECT id, name FROM districts WHERE governorate_id=$1 ORDER BY name`, governorateID)
}

func (r *lookupRepository) SubDistrictsByDistrict(ctx context.Context, districtID int64) ([]domain.Lookup, error) {
	return r.lookups(ctx, `SELECT id, name FROM sub_districts WHERE district_id=$1 ORDER BY name`, districtID)
}

func (r *lookupRepository) CommunitiesBySubDistrict(ctx context.Context, subDistrictID int64) ([]domain.Lookup, error) {
	return r.lookups(ctx, `SELECT id, name FROM communities WHERE sub_district_id=$1 ORDER BY name`, subDistrictID)
}

func (r *lookupRepository) lookups(ctx context.Context, query string, args ...any) ([]domain.Lookup, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Lookup
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *lookupRepository) Projects(ctx context.Context) ([]domain.Project, error) {
	const query = `SELECT id, short_name, donor, code, sector, title FROM projects ORDER BY short_name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.ShortName, &p.Donor, &p.Code, &p.Sector, &p.Title); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *lookupRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	const query = `SELECT id, name, working_days_limit FROM categories ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.WorkingDaysLimit); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *lookupRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	const query = `SELECT id, name, working_days_limit FROM categories WHERE id=$1`
	var c domain.Category
	if err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.WorkingDaysLimit); err != nil {
		return nil, err
	}
	return &c, nil
}
