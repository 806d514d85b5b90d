package models

import "time"

// AccessRequestStatus is the review state of a flat-access request.
type AccessRequestStatus string

const (
	AccessPending  AccessRequestStatus = "PENDING"
	AccessApproved AccessRequestStatus = "APPROVED"
	AccessRejected AccessRequestStatus = "REJECTED"
)

// AccessRequest is a resident's request to be assigned to a flat, reviewed
// by the admin. Approval flips the resident account to ACTIVE.
type AccessRequest struct {
	ID        string              `json:"id"`
	FlatID    string              `json:"flatId"`
	UserID    string              `json:"userId"`
	UserName  string              `json:"userName,omitempty"`
	Status    AccessRequestStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

func (a AccessRequest) GetID() string { return a.ID }

// NewAccessRequest is the body of POST /flat-requests.
type NewAccessRequest struct {
	FlatID string `json:"flatId"`
}
