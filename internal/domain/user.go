package domain

import "errors"

// User validation errors
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
)

// User represents an author identified by a unique username.
// Users are seeded externally and read-only through this API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	return nil
}
