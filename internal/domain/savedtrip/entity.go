package savedtrip

import (
	"strings"
	"time"

	"travelmate/internal/pkg/errs"
)

var ErrInvalidUserID = errs.Mark(errs.New("user id must be positive"), errs.ErrDomainValidation)

// SavedTrip bookmarks a trip, or a loose combination of catalog items, for a
// user. None of the references are checked against the catalog.
type SavedTrip struct {
	ID          int64
	UserID      int64
	TripID      *int64
	FlightID    *int64
	HotelID     *int64
	ActivityIDs []int64
	CustomName  *string
	Notes       *string
	CreatedAt   time.Time
}

type NewSavedTripParams struct {
	UserID      int64
	TripID      *int64
	FlightID    *int64
	HotelID     *int64
	ActivityIDs []int64
	CustomName  *string
	Notes       *string
}

func NewSavedTrip(p NewSavedTripParams) (*SavedTrip, error) {
	if p.UserID <= 0 {
		return nil, ErrInvalidUserID
	}
	return &SavedTrip{
		UserID:      p.UserID,
		TripID:      p.TripID,
		FlightID:    p.FlightID,
		HotelID:     p.HotelID,
		ActivityIDs: p.ActivityIDs,
		CustomName:  trimmedOrNil(p.CustomName),
		Notes:       p.Notes,
	}, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
