package models

import "strings"

// Role is the canonical (uppercase) role of an authenticated user.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleResident Role = "RESIDENT"
	RoleSecurity Role = "SECURITY"
)

// AccountStatus is the activation state of a user account. It is meaningful
// only for RESIDENT principals; other roles are always treated as active.
type AccountStatus string

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusPending  AccountStatus = "PENDING"
	StatusRejected AccountStatus = "REJECTED"
)

// Principal is the authenticated identity held by the session store. It is
// created from a login or /auth/me response and destroyed on logout or when
// the server rejects the session token.
type Principal struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Role   Role          `json:"role"`
	Status AccountStatus `json:"status"`
	FlatID string        `json:"flatId,omitempty"`
}

// Normalized returns a copy of p with Role and Status folded to their
// canonical uppercase form. The backend is not consistent about case, so
// normalization happens exactly once, at principal construction; downstream
// comparisons are exact-match.
func (p Principal) Normalized() Principal {
	p.Role = Role(strings.ToUpper(strings.TrimSpace(string(p.Role))))
	p.Status = AccountStatus(strings.ToUpper(strings.TrimSpace(string(p.Status))))
	return p
}

// ActiveResident reports whether p is a resident whose account has been
// approved. Residents with any other status may only reach the common
// dashboard and account pages.
func (p Principal) ActiveResident() bool {
	return p.Role == RoleResident && p.Status == StatusActive
}
