package domain

import "time"

type User struct {
	Id        UserId    `json:"id"`
	Username  Username  `json:"username"`
	PassHash  string    `json:"-"`
	Admin     bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Credentials struct {
	Username Username
	Password Password
}

// SameAs reports whether u and other are the same identity.
func (u *User) SameAs(other User) bool {
	return u != nil && u.Id == other.Id
}
