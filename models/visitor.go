package models

import "time"

// VisitorStatus tells whether a visitor is currently inside the premises.
type VisitorStatus string

const (
	VisitorIn  VisitorStatus = "IN"
	VisitorOut VisitorStatus = "OUT"
)

// Visitor is a gate entry logged by security. ExitAt is nil while the
// visitor is still inside; when present it is never before EntryAt.
type Visitor struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Phone   string        `json:"phone"`
	FlatID  string        `json:"flatId"`
	Purpose string        `json:"purpose,omitempty"`
	Status  VisitorStatus `json:"status"`
	EntryAt time.Time     `json:"entryAt"`
	ExitAt  *time.Time    `json:"exitAt,omitempty"`
}

func (v Visitor) GetID() string { return v.ID }

// NewVisitor is the body of POST /visitor/entry.
type NewVisitor struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	FlatID  string `json:"flatId"`
	Purpose string `json:"purpose,omitempty"`
}
