package vessel

import "context"

// Repository defines all database operations for vessels
type Repository interface {
	Create(ctx context.Context, v *Vessel) error
	ListByCompany(ctx context.Context, companyID string) ([]*Vessel, error)
	GetByID(ctx context.Context, vesselID string) (*Vessel, error)

	// Crew roster count consumed by procurement aggregation
	GetCrewCount(ctx context.Context, vesselID string) (int, error)
	UpdateCrewCount(ctx context.Context, vesselID string, crewCount int) error

	// Tenant check: does the vessel belong to this company?
	IsManagedBy(ctx context.Context, vesselID string, companyID string) (bool, error)
}
