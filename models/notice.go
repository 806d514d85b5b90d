package models

import "time"

// Notice is an announcement published by the admin and visible to all roles.
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	PostedBy  string    `json:"postedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n Notice) GetID() string { return n.ID }

// NewNotice is the body of POST /notice.
type NewNotice struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
