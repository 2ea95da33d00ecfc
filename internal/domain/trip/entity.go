package trip

import (
	"strings"
	"time"
)

type Trip struct {
	ID          int64
	UserID      int64
	Name        string
	Destination string
	StartDate   *string
	EndDate     *string
	Status      Status
	TotalPrice  *string
	Details     *Details
	CreatedAt   time.Time
}

type NewTripParams struct {
	UserID      int64
	Name        string
	Destination string
	StartDate   *string
	EndDate     *string
	Status      string
	TotalPrice  *string
	Details     *Details
}

// NewTrip builds an unsaved trip. ID and CreatedAt are stamped by the store.
func NewTrip(p NewTripParams) (*Trip, error) {
	if p.UserID <= 0 {
		return nil, ErrInvalidUserID
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	destination := strings.TrimSpace(p.Destination)
	if destination == "" {
		return nil, ErrEmptyDestination
	}
	status, err := NewStatus(p.Status)
	if err != nil {
		return nil, err
	}
	if p.TotalPrice != nil {
		if err := checkPrice(*p.TotalPrice); err != nil {
			return nil, err
		}
	}

	return &Trip{
		UserID:      p.UserID,
		Name:        name,
		Destination: destination,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      status,
		TotalPrice:  p.TotalPrice,
		Details:     p.Details,
	}, nil
}

func (t *Trip) BelongsTo(userID int64) bool {
	return t.UserID == userID
}
