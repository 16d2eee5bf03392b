package domain

import "strings"

// User represents an authenticated author account in the system.
type User struct {
	Record
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash,omitempty"` // Stored hashed, filter from API responses
	DisplayName  string `json:"display_name,omitempty"`
	AvatarColor  string `json:"avatar_color,omitempty"` // Hex color assigned at registration
}

// Name returns the best available name to display for the user.
// Prefers DisplayName, falls back to the username.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// NormalizeUsername lowercases and trims a username for uniqueness checks.
// Two usernames that normalize to the same string are considered the same account.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
