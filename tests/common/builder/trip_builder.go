//go:build unit || e2e

package builder

import (
	"time"

	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/domain/trip"
	reqdto "travelmate/internal/handler/dto/request"
	"travelmate/internal/pkg/ptr"
)

type TripBuilder struct {
	ID          int64
	UserID      int64
	Name        string
	Destination string
	StartDate   *string
	EndDate     *string
	Status      trip.Status
	TotalPrice  *string
	Details     *trip.Details
	CreatedAt   time.Time
}

func NewTripBuilder() *TripBuilder {
	return &TripBuilder{
		ID:          1,
		UserID:      1,
		Name:        "Kyoto in Autumn",
		Destination: "Kyoto, Japan",
		StartDate:   ptr.To("2024-11-20"),
		EndDate:     ptr.To("2024-11-27"),
		Status:      trip.StatusUpcoming,
		TotalPrice:  ptr.To("1890.00"),
		Details: &trip.Details{
			Flights:    []int64{2},
			Hotels:     []int64{2},
			Activities: []int64{2},
		},
		CreatedAt: time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *TripBuilder) With(mutate func(*TripBuilder)) *TripBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TripBuilder) BuildDomain() *trip.Trip {
	return &trip.Trip{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Destination: b.Destination,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      b.Status,
		TotalPrice:  b.TotalPrice,
		Details:     b.Details,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *TripBuilder) BuildCreateRequestDTO() reqdto.CreateTripRequest {
	req := reqdto.CreateTripRequest{
		UserID:      b.UserID,
		Name:        b.Name,
		Destination: b.Destination,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      b.Status.String(),
		TotalPrice:  b.TotalPrice,
	}
	if b.Details != nil {
		req.Details = &reqdto.TripDetailsRequest{
			Flights:    b.Details.Flights,
			Hotels:     b.Details.Hotels,
			Activities: b.Details.Activities,
		}
	}
	return req
}

// Fluent builder methods
func (b *TripBuilder) WithID(id int64) *TripBuilder {
	b.ID = id
	return b
}

func (b *TripBuilder) WithUserID(userID int64) *TripBuilder {
	b.UserID = userID
	return b
}

func (b *TripBuilder) WithStatus(status trip.Status) *TripBuilder {
	b.Status = status
	return b
}

func (b *TripBuilder) WithoutDetails() *TripBuilder {
	b.Details = nil
	return b
}

type SavedTripBuilder struct {
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

func NewSavedTripBuilder() *SavedTripBuilder {
	return &SavedTripBuilder{
		ID:          1,
		UserID:      1,
		FlightID:    ptr.To[int64](1),
		HotelID:     ptr.To[int64](1),
		ActivityIDs: []int64{1},
		CustomName:  ptr.To("Rome long weekend"),
		CreatedAt:   time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *SavedTripBuilder) BuildDomain() *savedtrip.SavedTrip {
	return &savedtrip.SavedTrip{
		ID:          b.ID,
		UserID:      b.UserID,
		TripID:      b.TripID,
		FlightID:    b.FlightID,
		HotelID:     b.HotelID,
		ActivityIDs: b.ActivityIDs,
		CustomName:  b.CustomName,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *SavedTripBuilder) BuildCreateRequestDTO() reqdto.CreateSavedTripRequest {
	return reqdto.CreateSavedTripRequest{
		UserID:      b.UserID,
		TripID:      b.TripID,
		FlightID:    b.FlightID,
		HotelID:     b.HotelID,
		ActivityIDs: b.ActivityIDs,
		CustomName:  b.CustomName,
		Notes:       b.Notes,
	}
}
