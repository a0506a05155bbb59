package domain

import "strings"

// RoleClass is the canonical role category a raw identity role string
// normalizes to. All routing and queue logic switches on this enum; raw
// strings never leave the identity boundary.
type RoleClass string

const (
	RoleRequester   RoleClass = "requester"
	RoleHOD         RoleClass = "hod"
	RoleHallManager RoleClass = "hall_manager"
	RoleAdmin       RoleClass = "admin"
)

// NormalizeRole maps a free-form role string to a RoleClass. Matching is
// case-insensitive and accepts the spellings found in legacy identity data.
// Anything unrecognized is a plain requester.
func NormalizeRole(raw string) RoleClass {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "hod", "head of department", "head":
		return RoleHOD
	case "hall manager", "hall_manager", "hall-manager":
		return RoleHallManager
	case "admin", "superadmin", "super-admin":
		return RoleAdmin
	default:
		return RoleRequester
	}
}
