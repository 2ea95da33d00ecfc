//go:build unit || e2e

package builder

import (
	"travelmate/internal/domain/user"
	reqdto "travelmate/internal/handler/dto/request"
)

type UserBuilder struct {
	ID          int64
	Name        string
	Email       string
	Preferences *user.Preferences
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    1,
		Name:  "Jane Roe",
		Email: "jane@example.com",
		Preferences: &user.Preferences{
			Budget:        "$1,000 - $2,500",
			Style:         []string{"Adventure", "Cultural"},
			Destinations:  []string{"Japan"},
			Accommodation: "Hotel",
			Alerts:        []string{"Price drops"},
		},
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.User {
	return &user.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Preferences: u.Preferences,
	}
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:        u.Name,
		Email:       u.Email,
		Preferences: u.preferencesDTO(),
	}
}

func (u *UserBuilder) BuildUpdatePreferencesDTO() reqdto.UpdatePreferencesRequest {
	return reqdto.UpdatePreferencesRequest{Preferences: u.preferencesDTO()}
}

func (u *UserBuilder) preferencesDTO() *reqdto.PreferencesRequest {
	if u.Preferences == nil {
		return nil
	}
	return &reqdto.PreferencesRequest{
		Budget:        u.Preferences.Budget,
		Style:         u.Preferences.Style,
		Destinations:  u.Preferences.Destinations,
		Accommodation: u.Preferences.Accommodation,
		Alerts:        u.Preferences.Alerts,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithBudget(budget string) *UserBuilder {
	if u.Preferences == nil {
		u.Preferences = &user.Preferences{}
	}
	u.Preferences.Budget = budget
	return u
}

func (u *UserBuilder) WithoutPreferences() *UserBuilder {
	u.Preferences = nil
	return u
}
