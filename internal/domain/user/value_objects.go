package user

import (
	"regexp"
	"strings"

	"travelmate/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.Mark(errs.New("invalid email format"), errs.ErrDomainValidation)
	ErrEmptyName    = errs.Mark(errs.New("name cannot be empty"), errs.ErrDomainValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
