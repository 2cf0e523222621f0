package domain

// User is an account known to the auth service.
// The password hash never leaves the user directory.
type User struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Session is returned by sign-in and sign-up.
type Session struct {
	// Token is an opaque bearer token
	Token string `json:"token"`

	// User is the signed-in account
	User User `json:"user"`
}
