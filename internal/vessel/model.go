package vessel

import "time"

// Vessel is the tenant-scoping unit: crew, menu plans,
// and procurement all hang off a vessel.
type Vessel struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CrewCount int       `json:"crew_count"`
	CreatedAt time.Time `json:"created_at"`
}
