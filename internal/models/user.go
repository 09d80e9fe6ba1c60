package models

// User is the persisted credential record. Password is stored as given.
type User struct {
	ID        string    `json:"id"` // "user{N}"
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt Timestamp `json:"createdAt"`
}

// UserProfile is a User without its password; the only shape that leaves the server.
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"createdAt"`
}

func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
