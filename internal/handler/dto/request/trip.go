package request

import (
	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/domain/trip"
	"travelmate/internal/pkg/patch"
)

type TripDetailsRequest struct {
	Flights    []int64 `json:"flights"`
	Hotels     []int64 `json:"hotels"`
	Activities []int64 `json:"activities"`
}

func (r TripDetailsRequest) ToDomain() trip.Details {
	return trip.Details{
		Flights:    r.Flights,
		Hotels:     r.Hotels,
		Activities: r.Activities,
	}
}

type CreateTripRequest struct {
	UserID      int64               `json:"userId" binding:"required,min=1"`
	Name        string              `json:"name" binding:"required"`
	Destination string              `json:"destination" binding:"required"`
	StartDate   *string             `json:"startDate"`
	EndDate     *string             `json:"endDate"`
	Status      string              `json:"status" binding:"required,tripstatus"`
	TotalPrice  *string             `json:"totalPrice" binding:"omitempty,numeric"`
	Details     *TripDetailsRequest `json:"details"`
}

func (r *CreateTripRequest) ToDomain() trip.NewTripParams {
	p := trip.NewTripParams{
		UserID:      r.UserID,
		Name:        r.Name,
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
		TotalPrice:  r.TotalPrice,
	}
	if r.Details != nil {
		d := r.Details.ToDomain()
		p.Details = &d
	}
	return p
}

// UpdateTripRequest distinguishes an omitted key (leave alone) from an
// explicit null (clear). Field rules are enforced by trip.Patch.Validate.
type UpdateTripRequest struct {
	UserID      patch.Field[int64]              `json:"userId"`
	Name        patch.Field[string]             `json:"name"`
	Destination patch.Field[string]             `json:"destination"`
	StartDate   patch.Field[string]             `json:"startDate"`
	EndDate     patch.Field[string]             `json:"endDate"`
	Status      patch.Field[string]             `json:"status"`
	TotalPrice  patch.Field[string]             `json:"totalPrice"`
	Details     patch.Field[TripDetailsRequest] `json:"details"`
}

func (r *UpdateTripRequest) ToDomain() trip.Patch {
	return trip.Patch{
		UserID:      r.UserID,
		Name:        r.Name,
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
		TotalPrice:  r.TotalPrice,
		Details:     patch.Map(r.Details, TripDetailsRequest.ToDomain),
	}
}

type CreateSavedTripRequest struct {
	UserID      int64   `json:"userId" binding:"required,min=1"`
	TripID      *int64  `json:"tripId" binding:"omitempty,min=1"`
	FlightID    *int64  `json:"flightId" binding:"omitempty,min=1"`
	HotelID     *int64  `json:"hotelId" binding:"omitempty,min=1"`
	ActivityIDs []int64 `json:"activityIds"`
	CustomName  *string `json:"customName"`
	Notes       *string `json:"notes"`
}

func (r *CreateSavedTripRequest) ToDomain() savedtrip.NewSavedTripParams {
	return savedtrip.NewSavedTripParams{
		UserID:      r.UserID,
		TripID:      r.TripID,
		FlightID:    r.FlightID,
		HotelID:     r.HotelID,
		ActivityIDs: r.ActivityIDs,
		CustomName:  r.CustomName,
		Notes:       r.Notes,
	}
}
