package request

import (
	"travelmate/internal/domain/catalog"
	"travelmate/internal/pkg/patch"
)

type FlightSearchRequest struct {
	From          string  `json:"from" binding:"required"`
	To            string  `json:"to" binding:"required"`
	DepartureDate string  `json:"departureDate" binding:"required"`
	ReturnDate    *string `json:"returnDate"`
	Passengers    *int    `json:"passengers" binding:"omitempty,min=1"`
	Class         string  `json:"class" binding:"omitempty,cabinclass"`
}

func (r *FlightSearchRequest) ToDomain() catalog.FlightSearch {
	class, _ := catalog.NewCabinClass(r.Class)
	return catalog.FlightSearch{
		From:          r.From,
		To:            r.To,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Passengers:    patch.Coalesce(r.Passengers, 1),
		Class:         class,
	}
}

type HotelSearchRequest struct {
	Destination string `json:"destination" binding:"required"`
	CheckIn     string `json:"checkIn" binding:"required"`
	CheckOut    string `json:"checkOut" binding:"required"`
	Guests      *int   `json:"guests" binding:"omitempty,min=1"`
	Rooms       *int   `json:"rooms" binding:"omitempty,min=1"`
}

func (r *HotelSearchRequest) ToDomain() catalog.HotelSearch {
	return catalog.HotelSearch{
		Destination: r.Destination,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Guests:      patch.Coalesce(r.Guests, 1),
		Rooms:       patch.Coalesce(r.Rooms, 1),
	}
}

type PriceRangeRequest struct {
	Min *float64 `json:"min" binding:"omitempty,min=0"`
	Max *float64 `json:"max" binding:"omitempty,min=0"`
}

type ActivitySearchRequest struct {
	Destination string             `json:"destination" binding:"required"`
	Type        string             `json:"type"`
	PriceRange  *PriceRangeRequest `json:"priceRange"`
}

func (r *ActivitySearchRequest) ToDomain() catalog.ActivitySearch {
	s := catalog.ActivitySearch{
		Destination: r.Destination,
		Type:        r.Type,
	}
	if r.PriceRange != nil {
		s.PriceRange = &catalog.PriceRange{Min: r.PriceRange.Min, Max: r.PriceRange.Max}
	}
	return s
}
