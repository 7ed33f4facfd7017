package model

// UserProfile is a user as read from the identity store. It is an immutable value.
type UserProfile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}
