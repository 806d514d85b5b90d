package models

import "time"

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "OPEN"
	ComplaintResolved ComplaintStatus = "RESOLVED"
	ComplaintRejected ComplaintStatus = "REJECTED"
)

// Complaint is an issue raised by a resident against their flat.
type Complaint struct {
	ID          string          `json:"id"`
	FlatID      string          `json:"flatId"`
	UserID      string          `json:"userId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (c Complaint) GetID() string { return c.ID }

// NewComplaint is the body of POST /complaints.
type NewComplaint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
