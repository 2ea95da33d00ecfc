package response

import (
	"time"

	"travelmate/internal/domain/catalog"
)

type FlightResponse struct {
	ID            int64   `json:"id"`
	FromCity      string  `json:"fromCity"`
	ToCity        string  `json:"toCity"`
	DepartureDate string  `json:"departureDate"`
	ReturnDate    *string `json:"returnDate"`
	Price         string  `json:"price"`
	OriginalPrice *string `json:"originalPrice"`
	Airline       string  `json:"airline"`
	Passengers    int     `json:"passengers"`
	Class         string  `json:"class"`
	Discount      int     `json:"discount"`
}

func FromFlight(f *catalog.Flight) FlightResponse {
	return FlightResponse{
		ID:            f.ID,
		FromCity:      f.FromCity,
		ToCity:        f.ToCity,
		DepartureDate: f.DepartureDate,
		ReturnDate:    f.ReturnDate,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Airline:       f.Airline,
		Passengers:    f.Passengers,
		Class:         string(f.Class),
		Discount:      f.Discount,
	}
}

func FromFlights(fs []catalog.Flight) []FlightResponse {
	return mapSlice(fs, FromFlight)
}

type HotelResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	CheckIn   string   `json:"checkIn"`
	CheckOut  string   `json:"checkOut"`
	Price     string   `json:"price"`
	Rating    string   `json:"rating"`
	Amenities []string `json:"amenities"`
	ImageURL  *string  `json:"imageUrl"`
	Guests    int      `json:"guests"`
	Rooms     int      `json:"rooms"`
}

func FromHotel(h *catalog.Hotel) HotelResponse {
	return HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Location:  h.Location,
		CheckIn:   h.CheckIn,
		CheckOut:  h.CheckOut,
		Price:     h.Price,
		Rating:    h.Rating,
		Amenities: orEmpty(h.Amenities),
		ImageURL:  h.ImageURL,
		Guests:    h.Guests,
		Rooms:     h.Rooms,
	}
}

func FromHotels(hs []catalog.Hotel) []HotelResponse {
	return mapSlice(hs, FromHotel)
}

type ActivityResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Price       string  `json:"price"`
	Duration    string  `json:"duration"`
	Type        string  `json:"type"`
	Rating      string  `json:"rating"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func FromActivity(a *catalog.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Location:    a.Location,
		Price:       a.Price,
		Duration:    a.Duration,
		Type:        a.Type,
		Rating:      a.Rating,
		Description: a.Description,
		ImageURL:    a.ImageURL,
	}
}

func FromActivities(as []catalog.Activity) []ActivityResponse {
	return mapSlice(as, FromActivity)
}

type DealResponse struct {
	ID            int64      `json:"id"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	OriginalPrice string     `json:"originalPrice"`
	CurrentPrice  string     `json:"currentPrice"`
	Discount      int        `json:"discount"`
	Badge         *string    `json:"badge"`
	ImageURL      *string    `json:"imageUrl"`
	ValidUntil    *time.Time `json:"validUntil"`
}

func FromDeal(d *catalog.Deal) DealResponse {
	return DealResponse{
		ID:            d.ID,
		Type:          string(d.Type),
		Title:         d.Title,
		Description:   d.Description,
		OriginalPrice: d.OriginalPrice,
		CurrentPrice:  d.CurrentPrice,
		Discount:      d.Discount,
		Badge:         d.Badge,
		ImageURL:      d.ImageURL,
		ValidUntil:    d.ValidUntil,
	}
}

func FromDeals(ds []catalog.Deal) []DealResponse {
	return mapSlice(ds, FromDeal)
}
