package crew

import (
	"encoding/json"
	"fmt"

	"flightly/internal/shared/identifier"
)

// ID is a crew member identifier, prefixed "CM-".
type ID string

const IDPrefix = "CM-"

// Role is a crew member's duty.
type Role string

const (
	RolePilot           Role = "Pilot"
	RoleFlightAttendant Role = "Flight Attendant"
)

// Valid reports whether the role is a known crew duty.
func (r Role) Valid() bool {
	return r == RolePilot || r == RoleFlightAttendant
}

// Member is one crew member.
type Member struct {
	ID   ID
	Name string
	Role Role
}

// New validates and returns a crew member with a fresh ID.
func New(name string, role Role) (*Member, error) {
	m := &Member{
		ID:   ID(identifier.New(IDPrefix)),
		Name: name,
		Role: role,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the crew member invariants.
func (m *Member) Validate() error {
	if err := identifier.Validate(string(m.ID), IDPrefix); err != nil {
		return err
	}
	if m.Name == "" {
		return fmt.Errorf("crew member name cannot be empty")
	}
	if !m.Role.Valid() {
		return fmt.Errorf("invalid crew member role %q", m.Role)
	}
	return nil
}

type memberJSON struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func (m Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(memberJSON{ID: m.ID, Name: m.Name, Role: m.Role})
}

func (m *Member) UnmarshalJSON(data []byte) error {
	var in memberJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	m.ID = in.ID
	m.Name = in.Name
	m.Role = in.Role
	return m.Validate()
}
