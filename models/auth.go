package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup. Registration does not
// establish a session; the new account waits for admin approval.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	FlatID   string `json:"flatId,omitempty"`
}

// AuthPayload is the data payload returned by the login endpoint: the bearer
// credential plus the principal it belongs to.
type AuthPayload struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}
