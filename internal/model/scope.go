package model

const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
	RoleViewer  = "viewer"
)

// Scope carries the authenticated caller identity through use cases.
type Scope struct {
	UserID   string
	Username string
	Role     string
	JTI      string
}

// IsAdmin reports whether the scope belongs to an admin user.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanMutate reports whether the scope may perform write operations.
func (s Scope) CanMutate() bool {
	return s.Role == RoleAdmin || s.Role == RoleAnalyst
}
