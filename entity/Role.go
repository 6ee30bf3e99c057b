package entity

// Role is the closed set of roles a user can hold. Kept as a typed string so
// GORM stores it as TEXT while callers can only reference the constants below.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

// CountryAll is the sentinel country stored on the seeded admin account.
// It is never compared against; the admin bypass lives in services.CanAccessCountry.
const CountryAll = "ALL"
