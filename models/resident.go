package models

import "time"

// Resident is a registered resident account as listed by the admin screens.
// Status mirrors the account activation state of the matching principal.
type Resident struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	FlatID    string        `json:"flatId,omitempty"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (r Resident) GetID() string { return r.ID }
