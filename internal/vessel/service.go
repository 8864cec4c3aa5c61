package vessel

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create vessel (MANAGER)
// --------------------------------------------------
func (s *Service) CreateVessel(
	ctx context.Context,
	companyID string,
	name string,
	crewCount int,
) (*Vessel, error) {

	if companyID == "" || name == "" {
		return nil, errors.New("missing required fields")
	}
	if crewCount < 0 {
		return nil, errors.New("crew count cannot be negative")
	}

	v := &Vessel{
		CompanyID: companyID,
		Name:      name,
		CrewCount: crewCount,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// --------------------------------------------------
// List vessels for a company
// --------------------------------------------------
func (s *Service) ListCompanyVessels(
	ctx context.Context,
	companyID string,
) ([]*Vessel, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// --------------------------------------------------
// Update crew roster count
// --------------------------------------------------
func (s *Service) SetCrewCount(
	ctx context.Context,
	vesselID string,
	companyID string,
	crewCount int,
) error {

	if crewCount < 0 {
		return errors.New("crew count cannot be negative")
	}

	ok, err := s.repo.IsManagedBy(ctx, vesselID, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("unauthorized")
	}

	return s.repo.UpdateCrewCount(ctx, vesselID, crewCount)
}
