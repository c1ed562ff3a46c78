package db_models

import "time"

// Roles an account can hold. Positions are stored free-form in the
// remote table and are lowercased before any comparison.
const (
	RoleMember = "member"
	RoleChoir  = "choir"
	RoleSoccom = "soccom"
	RoleAdmin  = "admin"
)

// Account is the canonical in-memory shape of a user row, regardless of
// which casing of the remote table answered. ProfileURL is required
// before an account may be created or updated through the admin flow.
type Account struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Email      string     `json:"email"`
	ProfileURL string     `json:"profile_url"`
	Phone      string     `json:"phone,omitempty"`
	Department string     `json:"department,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
