package models

import "time"

// User is a principal: an account that can authenticate and call protected
// operations.
//
// PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	// UserID is the server-assigned identifier (UUIDv7 string).
	UserID string `json:"_id"`

	// Username is unique across all users. Stored trimmed.
	Username string `json:"username"`

	// Email is unique across all users. Stored lower-cased, which makes the
	// uniqueness check case-insensitive.
	Email string `json:"email"`

	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SignupRequest is the payload of the signup operation.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the payload of the login operation. Identifier matches
// either the username or the email of a user.
type Credentials struct {
	Identifier string `json:"usernameOrEmail"`
	Password   string `json:"password"`
}

// AuthPayload is returned by a successful login.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
