package users

// User is the persisted account record.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never serialize
	IsAdmin      bool   `json:"is_admin"`
	IsActive     bool   `json:"is_active"`
}

// Identity is the read-only snapshot of a User that the session layer carries
// around. It is what gets serialized into the refresh-token store.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	IsActive bool   `json:"is_active"`
}

// Identity returns the snapshot of the user without the password digest.
func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		IsActive: u.IsActive,
	}
}
