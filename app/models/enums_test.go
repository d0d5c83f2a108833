package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisasterStatusValid(t *testing.T) {
	assert.True(t, DisasterOpen.Valid())
	assert.True(t, DisasterOngoing.Valid())
	assert.True(t, DisasterClosed.Valid())
	assert.False(t, DisasterStatus("").Valid())
	assert.False(t, DisasterStatus("open").Valid(), "statuses are case sensitive")
	assert.False(t, DisasterStatus("Resolved").Valid())
}

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{TaskPending, TaskInProgress, TaskComplete, TaskCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, TaskStatus("Done").Valid())
	assert.False(t, TaskStatus("In Progress").Valid(), "the hyphen is part of the value")
}

func TestDonationTypeValid(t *testing.T) {
	assert.True(t, DonationCash.Valid())
	assert.True(t, DonationInKind.Valid())
	assert.False(t, DonationType("cash").Valid())
	assert.False(t, DonationType("Goods").Valid())
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleVolunteer, RoleDonor, RolePublic} {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestRegistrationRoles(t *testing.T) {
	assert.Equal(t, []Role{RoleVolunteer, RoleDonor}, RegistrationRoles)
	assert.NotContains(t, RegistrationRoles, RoleAdmin)
	assert.NotContains(t, RegistrationRoles, RoleManager)
}
