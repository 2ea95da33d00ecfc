package trip

import (
	"math"
	"strconv"
	"strings"

	"travelmate/internal/pkg/errs"
)

var (
	ErrInvalidStatus    = errs.Mark(errs.New("status must be one of upcoming, completed, saved"), errs.ErrDomainValidation)
	ErrEmptyName        = errs.Mark(errs.New("trip name cannot be empty"), errs.ErrDomainValidation)
	ErrEmptyDestination = errs.Mark(errs.New("trip destination cannot be empty"), errs.ErrDomainValidation)
	ErrInvalidUserID    = errs.Mark(errs.New("user id must be positive"), errs.ErrDomainValidation)
	ErrNullField        = errs.Mark(errs.New("field cannot be null"), errs.ErrDomainValidation)
	ErrInvalidPrice     = errs.Mark(errs.New("total price must be a non-negative number"), errs.ErrDomainValidation)
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusSaved     Status = "saved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusCompleted, StatusSaved:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Details lists the catalog ids a trip is built from.
type Details struct {
	Flights    []int64
	Hotels     []int64
	Activities []int64
}

// checkPrice accepts a decimal string such as "1299.00".
func checkPrice(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsInf(v, 0) {
		return ErrInvalidPrice
	}
	return nil
}
