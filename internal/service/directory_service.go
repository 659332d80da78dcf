package service

import (
	"context"

	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/repository"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// DirectoryService serves the cascading location lookups and the intake
// form's reference sets. Every call re-queries the store; nothing is cached.
type DirectoryService struct {
	lookups repository.LookupRepository
}

// NewDirectoryService creates the service.
func NewDirectoryService(lookups repository.LookupRepository) *DirectoryService {
	return &DirectoryService{lookups: lookups}
}

// Districts returns the districts of a governorate.
func (s *DirectoryService) Districts(ctx context.Context, governorateID int64) ([]domain.Lookup, error) {
	list, err := s.lookups.DistrictsByGovernorate(ctx, governorateID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// SubDistricts returns the sub-districts of a district.
func (s *DirectoryService) SubDistricts(ctx context.Context, districtID int64) ([]domain.Lookup, error) {
	list, err := s.lookups.SubDistrictsByDistrict(ctx, districtID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Communities returns the communities of a sub-district.
func (s *DirectoryService) Communities(ctx context.Context, subDistrictID int64) ([]domain.Lookup, error) {
	list, err := s.lookups.CommunitiesBySubDistrict(ctx, subDistrictID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// FormLookups bundles the reference sets the intake form needs up front.
type FormLookups struct {
	Genders      []domain.Lookup
	Channels     []domain.Lookup
	Projects     []domain.Project
	Governorates []domain.Lookup
}

// IntakeFormLookups loads the top-level reference sets for the intake form.
func (s *DirectoryService) IntakeFormLookups(ctx context.Context) (*FormLookups, error) {
	genders, err := s.lookups.Genders(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	channels, err := s.lookups.Channels(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	projects, err := s.lookups.Projects(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	governorates, err := s.lookups.Governorates(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	return &FormLookups{
		Genders:      genders,
		Channels:     channels,
		Projects:     projects,
		Governorates: governorates,
	}, nil
}
