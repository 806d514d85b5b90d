package models

import "time"

// Flat is a housing unit managed by the society. A flat has at most one
// current occupant; OccupantID is empty while the flat is vacant.
type Flat struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Wing         string    `json:"wing"`
	Floor        int       `json:"floor"`
	OccupantID   string    `json:"occupantId,omitempty"`
	OccupantName string    `json:"occupantName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (f Flat) GetID() string { return f.ID }

// NewFlat is the body of POST /flat.
type NewFlat struct {
	Number string `json:"number"`
	Wing   string `json:"wing"`
	Floor  int    `json:"floor"`
}
