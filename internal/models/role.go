package models

import "fmt"

// Role is the closed set of principal kinds. Keeping it a distinct type (and
// routing every role comparison through it) replaces the free-form role
// strings that tend to creep into token handling.
type Role string

const (
	RoleCEO       Role = "ceo"
	RoleHR        Role = "hr"
	RoleCandidate Role = "candidate"
)

// Roles lists every known role. Lookup tables keyed by role are validated
// against this slice so a new role cannot be added without a resolver.
var Roles = []Role{RoleCEO, RoleHR, RoleCandidate}

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleCEO:
		return RoleCEO, nil
	case RoleHR:
		return RoleHR, nil
	case RoleCandidate:
		return RoleCandidate, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}
