package response

import (
	"time"

	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/domain/trip"
)

type TripDetailsResponse struct {
	Flights    []int64 `json:"flights"`
	Hotels     []int64 `json:"hotels"`
	Activities []int64 `json:"activities"`
}

type TripResponse struct {
	ID          int64                `json:"id"`
	UserID      int64                `json:"userId"`
	Name        string               `json:"name"`
	Destination string               `json:"destination"`
	StartDate   *string              `json:"startDate"`
	EndDate     *string              `json:"endDate"`
	Status      string               `json:"status"`
	TotalPrice  *string              `json:"totalPrice"`
	Details     *TripDetailsResponse `json:"details"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func FromTrip(t *trip.Trip) TripResponse {
	resp := TripResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Status:      t.Status.String(),
		TotalPrice:  t.TotalPrice,
		CreatedAt:   t.CreatedAt,
	}
	if d := t.Details; d != nil {
		resp.Details = &TripDetailsResponse{
			Flights:    orEmpty(d.Flights),
			Hotels:     orEmpty(d.Hotels),
			Activities: orEmpty(d.Activities),
		}
	}
	return resp
}

func FromTrips(ts []trip.Trip) []TripResponse {
	return mapSlice(ts, FromTrip)
}

type SavedTripResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	TripID      *int64    `json:"tripId"`
	FlightID    *int64    `json:"flightId"`
	HotelID     *int64    `json:"hotelId"`
	ActivityIDs []int64   `json:"activityIds"`
	CustomName  *string   `json:"customName"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromSavedTrip(s *savedtrip.SavedTrip) SavedTripResponse {
	return SavedTripResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		TripID:      s.TripID,
		FlightID:    s.FlightID,
		HotelID:     s.HotelID,
		ActivityIDs: orEmpty(s.ActivityIDs),
		CustomName:  s.CustomName,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
	}
}

func FromSavedTrips(ss []savedtrip.SavedTrip) []SavedTripResponse {
	return mapSlice(ss, FromSavedTrip)
}
