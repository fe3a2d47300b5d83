package crew

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	m, err := New("Dana Reeves", RolePilot)
	require.NoError(t, err)
	assert.Equal(t, "CM-", string(m.ID[:3]))

	_, err = New("", RolePilot)
	assert.Error(t, err, "empty name")

	_, err = New("Dana Reeves", Role("Navigator"))
	assert.Error(t, err, "unknown role")
}

func TestMemberUnmarshalValidatesRole(t *testing.T) {
	var m Member
	require.NoError(t, json.Unmarshal([]byte(`{"id":"CM-AB12CD34","name":"Sam Ortiz","role":"Flight Attendant"}`), &m))
	assert.Equal(t, RoleFlightAttendant, m.Role)

	assert.Error(t, json.Unmarshal([]byte(`{"id":"CM-AB12CD34","name":"Sam Ortiz","role":"Navigator"}`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{"id":"XX-AB12CD34","name":"Sam Ortiz","role":"Pilot"}`), &m))
}
