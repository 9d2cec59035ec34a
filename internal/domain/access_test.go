package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleAdmin.Can(PermRoomDelete))
	assert.True(t, RoleAdmin.Can(PermRoomUpdate))
	assert.True(t, RoleAdmin.Can(PermReservationManage))

	assert.False(t, RoleOperator.Can(PermRoomDelete))
	assert.False(t, RoleOperator.Can(PermRoomUpdate))
	assert.True(t, RoleOperator.Can(PermRoomToggleActive))
	assert.True(t, RoleOperator.Can(PermReservationManage))

	assert.True(t, RoleClient.Can(PermReservationCreate))
	assert.True(t, RoleClient.Can(PermReservationCancelOwn))
	assert.False(t, RoleClient.Can(PermReservationReadAll))
	assert.False(t, RoleClient.Can(PermReservationManage))
	assert.False(t, RoleClient.Can(PermRoomToggleActive))

	assert.False(t, Role("GUEST").Can(PermReservationCreate))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole(" admin "))
	assert.Equal(t, RoleOperator, ParseRole("OPERATOR"))
	assert.True(t, ParseRole("operator").IsStaff())
	assert.False(t, ParseRole("client").IsStaff())
}

func TestPrincipal_Can(t *testing.T) {
	p := Principal{ID: "u1", Email: "a@b.c", Role: RoleClient}
	assert.True(t, p.Can(PermReservationPayOwn))
	assert.False(t, p.Can(PermRoomCreate))
}
