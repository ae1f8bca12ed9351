package domain

import "time"

// UserRole is the coarse role assigned to a user at signup.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SuperAdmin"
	RoleAdmin      UserRole = "Admin"
	RoleAccountant UserRole = "Accountant"
	RoleStaff      UserRole = "Staff"
	RoleViewer     UserRole = "Viewer"
)

// User represents an authenticated account. BusinessID is set once the user
// creates their first business and scopes all tenant data afterwards.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Mobile       *string   `json:"mobile,omitempty"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	BusinessID   *string   `json:"business_id,omitempty"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
