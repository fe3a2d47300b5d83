package users

import (
	"encoding/json"
	"fmt"

	"flightly/internal/shared/identifier"
)

// ID is a user identifier. The prefix encodes the role the account was
// created with: "PAS-", "BM-", or "ADM-".
type ID string

// Role distinguishes the three account types.
type Role string

const (
	RolePassenger      Role = "Passenger"
	RoleBookingManager Role = "BookingManager"
	RoleAdmin          Role = "Admin"
)

// Valid reports whether the role is one of the known account types.
func (r Role) Valid() bool {
	switch r {
	case RolePassenger, RoleBookingManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IDPrefix returns the entity ID prefix for accounts of this role.
func (r Role) IDPrefix() string {
	switch r {
	case RolePassenger:
		return "PAS-"
	case RoleBookingManager:
		return "BM-"
	case RoleAdmin:
		return "ADM-"
	default:
		return ""
	}
}

// User is a single account. The former class hierarchy (passenger, booking
// manager, admin) collapses into one struct tagged by Role; LoyaltyPoints
// is meaningful only for passengers.
type User struct {
	ID            ID
	Username      string
	Password      string // bcrypt hash
	Role          Role
	LoyaltyPoints float64
}

// Validate checks the structural invariants of the account.
func (u *User) Validate() error {
	if !u.Role.Valid() {
		return fmt.Errorf("invalid user role %q", u.Role)
	}
	if err := identifier.Validate(string(u.ID), u.Role.IDPrefix()); err != nil {
		return err
	}
	if u.Username == "" || u.Password == "" {
		return fmt.Errorf("user %s: username and password cannot be empty", u.ID)
	}
	if u.LoyaltyPoints < 0 {
		return fmt.Errorf("user %s: loyalty points cannot be negative", u.ID)
	}
	return nil
}

type userJSON struct {
	ID            ID       `json:"id"`
	Username      string   `json:"username"`
	Password      string   `json:"password"`
	Role          Role     `json:"role"`
	LoyaltyPoints *float64 `json:"loyaltyPoints,omitempty"`
}

// MarshalJSON writes the stored representation. Only passenger accounts
// carry the loyaltyPoints field.
func (u User) MarshalJSON() ([]byte, error) {
	out := userJSON{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		Role:     u.Role,
	}
	if u.Role == RolePassenger {
		points := u.LoyaltyPoints
		out.LoyaltyPoints = &points
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the stored representation and validates it. A
// passenger record without loyaltyPoints is rejected.
func (u *User) UnmarshalJSON(data []byte) error {
	var in userJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	u.ID = in.ID
	u.Username = in.Username
	u.Password = in.Password
	u.Role = in.Role
	if in.Role == RolePassenger {
		if in.LoyaltyPoints == nil {
			return fmt.Errorf("user %s: passenger record is missing loyaltyPoints", in.ID)
		}
		u.LoyaltyPoints = *in.LoyaltyPoints
	}
	return u.Validate()
}
