package domain

// Identity is the caller resolved from a session token.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
