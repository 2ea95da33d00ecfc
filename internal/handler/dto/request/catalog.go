package request

import (
	"time"

	"travelmate/internal/domain/catalog"
)

// Inventory requests. Prices are decimal strings, as on the read side.

type CreateFlightRequest struct {
	FromCity      string  `json:"fromCity" binding:"required"`
	ToCity        string  `json:"toCity" binding:"required"`
	DepartureDate string  `json:"departureDate" binding:"required"`
	ReturnDate    *string `json:"returnDate"`
	Price         string  `json:"price" binding:"required,numeric"`
	OriginalPrice *string `json:"originalPrice" binding:"omitempty,numeric"`
	Airline       string  `json:"airline" binding:"required"`
	Passengers    *int    `json:"passengers" binding:"omitempty,min=1"`
	Class         string  `json:"class" binding:"omitempty,cabinclass"`
	Discount      int     `json:"discount" binding:"min=0,max=100"`
}

func (r *CreateFlightRequest) ToDomain() catalog.Flight {
	f := catalog.Flight{
		FromCity:      r.FromCity,
		ToCity:        r.ToCity,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Airline:       r.Airline,
		Class:         catalog.CabinClass(r.Class),
		Discount:      r.Discount,
	}
	if r.Passengers != nil {
		f.Passengers = *r.Passengers
	}
	return f
}

type CreateHotelRequest struct {
	Name      string   `json:"name" binding:"required"`
	Location  string   `json:"location" binding:"required"`
	CheckIn   string   `json:"checkIn" binding:"required"`
	CheckOut  string   `json:"checkOut" binding:"required"`
	Price     string   `json:"price" binding:"required,numeric"`
	Rating    string   `json:"rating" binding:"required,numeric"`
	Amenities []string `json:"amenities"`
	ImageURL  *string  `json:"imageUrl" binding:"omitempty,url"`
	Guests    *int     `json:"guests" binding:"omitempty,min=1"`
	Rooms     *int     `json:"rooms" binding:"omitempty,min=1"`
}

func (r *CreateHotelRequest) ToDomain() catalog.Hotel {
	h := catalog.Hotel{
		Name:      r.Name,
		Location:  r.Location,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Price:     r.Price,
		Rating:    r.Rating,
		Amenities: r.Amenities,
		ImageURL:  r.ImageURL,
	}
	if r.Guests != nil {
		h.Guests = *r.Guests
	}
	if r.Rooms != nil {
		h.Rooms = *r.Rooms
	}
	return h
}

type CreateActivityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Price       string  `json:"price" binding:"required,numeric"`
	Duration    string  `json:"duration" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Rating      string  `json:"rating" binding:"required,numeric"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url"`
}

func (r *CreateActivityRequest) ToDomain() catalog.Activity {
	return catalog.Activity{
		Name:        r.Name,
		Location:    r.Location,
		Price:       r.Price,
		Duration:    r.Duration,
		Type:        r.Type,
		Rating:      r.Rating,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

type CreateDealRequest struct {
	Type          string     `json:"type" binding:"required,dealtype"`
	Title         string     `json:"title" binding:"required"`
	Description   *string    `json:"description"`
	OriginalPrice string     `json:"originalPrice" binding:"required,numeric"`
	CurrentPrice  string     `json:"currentPrice" binding:"required,numeric"`
	Discount      int        `json:"discount" binding:"min=0,max=100"`
	Badge         *string    `json:"badge"`
	ImageURL      *string    `json:"imageUrl" binding:"omitempty,url"`
	ValidUntil    *time.Time `json:"validUntil"`
}

func (r *CreateDealRequest) ToDomain() catalog.Deal {
	return catalog.Deal{
		Type:          catalog.DealType(r.Type),
		Title:         r.Title,
		Description:   r.Description,
		OriginalPrice: r.OriginalPrice,
		CurrentPrice:  r.CurrentPrice,
		Discount:      r.Discount,
		Badge:         r.Badge,
		ImageURL:      r.ImageURL,
		ValidUntil:    r.ValidUntil,
	}
}
