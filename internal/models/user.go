package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the tagged variant of a user's role. It is stored as its string
// form in the database; ParseRole converts back when scanning.
type Role int

const (
	RoleTenant Role = iota
	RoleConcierge
	RoleAccountant
	RoleManager
	RoleSuperAdmin
)

func (r Role) String() string {
	switch r {
	case RoleSuperAdmin:
		return "SUPER_ADMIN"
	case RoleManager:
		return "MANAGER"
	case RoleAccountant:
		return "ACCOUNTANT"
	case RoleConcierge:
		return "CONCIERGE"
	case RoleTenant:
		return "TENANT"
	default:
		return "unknown"
	}
}

// ParseRole converts the stored/claimed string form to the enum.
func ParseRole(s string) (Role, error) {
	switch s {
	case "SUPER_ADMIN":
		return RoleSuperAdmin, nil
	case "MANAGER":
		return RoleManager, nil
	case "ACCOUNTANT":
		return RoleAccountant, nil
	case "CONCIERGE":
		return RoleConcierge, nil
	case "TENANT":
		return RoleTenant, nil
	default:
		return -1, fmt.Errorf("invalid role: %q", s)
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Role) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
