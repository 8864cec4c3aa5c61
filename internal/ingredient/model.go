package ingredient

// Storage types an ingredient can require on board.
const (
	StorageChilled = "chilled"
	StorageFrozen  = "frozen"
	StorageDry     = "dry"
	StorageOther   = "other"
)

// Ingredient is static catalog reference data.
type Ingredient struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`         // kg | l | pcs | ...
	StorageType  string   `json:"storage_type"` // chilled | frozen | dry | other
	RefUnitPrice *float64 `json:"ref_unit_price,omitempty"`
}

func ValidStorageType(s string) bool {
	switch s {
	case StorageChilled, StorageFrozen, StorageDry, StorageOther:
		return true
	}
	return false
}
