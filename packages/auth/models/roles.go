package models

// Application-level roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// GetDefaultRoles returns the roles assigned to a new user.
func GetDefaultRoles() Roles {
	return Roles{RoleUser}
}
