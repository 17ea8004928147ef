package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleGuest, RoleReceptionist, RoleHousekeeping, RoleAdmin} {
		assert.Truef(t, r.Valid(), "%s", r)
	}
	assert.False(t, Role("Manager").Valid())
	assert.False(t, Role("").Valid())
}

func TestIsStaff(t *testing.T) {
	assert.True(t, RoleReceptionist.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleGuest.IsStaff())
	assert.False(t, RoleHousekeeping.IsStaff())
}

func TestCanAccessOwned(t *testing.T) {
	const ownerID = "owner-1"

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"owner", Actor{ID: ownerID, Role: RoleGuest}, true},
		{"other guest", Actor{ID: "other", Role: RoleGuest}, false},
		{"receptionist", Actor{ID: "other", Role: RoleReceptionist}, true},
		{"admin", Actor{ID: "other", Role: RoleAdmin}, true},
		{"housekeeping", Actor{ID: "other", Role: RoleHousekeeping}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.actor.CanAccessOwned(ownerID))
		})
	}
}

func TestCanViewInvoice(t *testing.T) {
	const ownerID = "owner-1"

	assert.True(t, Actor{ID: ownerID, Role: RoleGuest}.CanViewInvoice(ownerID))
	assert.False(t, Actor{ID: "other", Role: RoleGuest}.CanViewInvoice(ownerID))
	// Every non-guest role may inspect invoices.
	assert.True(t, Actor{ID: "other", Role: RoleReceptionist}.CanViewInvoice(ownerID))
	assert.True(t, Actor{ID: "other", Role: RoleHousekeeping}.CanViewInvoice(ownerID))
	assert.True(t, Actor{ID: "other", Role: RoleAdmin}.CanViewInvoice(ownerID))
}
