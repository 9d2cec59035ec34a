package domain

import "strings"

// Role of an authenticated user
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
	RoleClient   Role = "CLIENT"
)

// Permission is an operation a role may perform
type Permission string

const (
	PermRoomCreate       Permission = "room:create"
	PermRoomUpdate       Permission = "room:update"        // any field
	PermRoomToggleActive Permission = "room:toggle_active" // isActive only
	PermRoomDelete       Permission = "room:delete"

	PermReservationCreate    Permission = "reservation:create"
	PermReservationReadOwn   Permission = "reservation:read_own"
	PermReservationReadAll   Permission = "reservation:read_all"
	PermReservationCancelOwn Permission = "reservation:cancel_own"
	PermReservationPayOwn    Permission = "reservation:pay_own"
	PermReservationManage    Permission = "reservation:manage" // any status transition on any reservation
)

// rolePermissions is the single role → capability table consulted by every
// usecase and service.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: set(
		PermRoomCreate, PermRoomUpdate, PermRoomToggleActive, PermRoomDelete,
		PermReservationCreate, PermReservationReadOwn, PermReservationReadAll,
		PermReservationCancelOwn, PermReservationPayOwn, PermReservationManage,
	),
	RoleOperator: set(
		PermRoomToggleActive,
		PermReservationCreate, PermReservationReadOwn, PermReservationReadAll,
		PermReservationCancelOwn, PermReservationPayOwn, PermReservationManage,
	),
	RoleClient: set(
		PermReservationCreate, PermReservationReadOwn,
		PermReservationCancelOwn, PermReservationPayOwn,
	),
}

func set(perms ...Permission) map[Permission]struct{} {
	out := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		out[p] = struct{}{}
	}
	return out
}

// ParseRole normalizes a role string; unknown roles are returned as-is and
// have no permissions
func ParseRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

// Can returns true if the role grants the permission
func (r Role) Can(p Permission) bool {
	_, ok := rolePermissions[r][p]
	return ok
}

// IsStaff returns true for administrators and operators
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleOperator
}

// Principal is the authenticated caller resolved from a bearer token
type Principal struct {
	ID    string
	Email string
	Role  Role
}

// Can returns true if the principal's role grants the permission
func (p Principal) Can(perm Permission) bool {
	return p.Role.Can(perm)
}
