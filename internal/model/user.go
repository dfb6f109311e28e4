package model

// User is a registered account, currently only the seeded moderator.
//
// Usernames are unique — the repository enforces this at creation.
//
// Password holds a bcrypt hash, never the plaintext. The json:"-" tag
// means it cannot leak through an API response, even accidentally:
// encoding/json skips the field entirely.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
}
