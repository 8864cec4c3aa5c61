package auth

// Roles a user account can hold. Capability mapping lives in the
// middleware package; everything else compares against these.
const (
	RoleCrew    = "CREW"
	RoleChef    = "CHEF"
	RoleManager = "MANAGER"
	RoleAdmin   = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      string // one of the Role* constants
	CompanyID string
}

// Company returns the tenant this user acts for. A manager who
// registered without a company owns their own tenant, so the user ID
// doubles as the company ID.
func (u *User) Company() string {
	if u.CompanyID != "" {
		return u.CompanyID
	}
	return u.ID
}
