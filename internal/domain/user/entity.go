package user

import "strings"

type User struct {
	ID          int64
	Name        string
	Email       string
	Preferences *Preferences
}

// NewUser builds an unsaved user; the store assigns ID.
func NewUser(name string, email Email, prefs *Preferences) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		Name:        name,
		Email:       email.Value(),
		Preferences: prefs,
	}, nil
}

// SameEmail compares addresses the way uniqueness is enforced.
func (u *User) SameEmail(email string) bool {
	return strings.EqualFold(u.Email, email)
}
