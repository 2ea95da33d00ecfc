//go:build unit || e2e

package builder

import (
	"time"

	"travelmate/internal/domain/catalog"
	reqdto "travelmate/internal/handler/dto/request"
	"travelmate/internal/pkg/ptr"
)

// Catalog fixtures for handler tests.

func NewFlight() *catalog.Flight {
	return &catalog.Flight{
		ID:            1,
		FromCity:      "New York",
		ToCity:        "Rome",
		DepartureDate: "2024-12-15",
		ReturnDate:    ptr.To("2024-12-22"),
		Price:         "650.00",
		OriginalPrice: ptr.To("850.00"),
		Airline:       "Alitalia",
		Passengers:    1,
		Class:         catalog.CabinEconomy,
		Discount:      24,
	}
}

func NewHotel() *catalog.Hotel {
	return &catalog.Hotel{
		ID:        1,
		Name:      "Grand Hotel Rome",
		Location:  "Rome, Italy",
		CheckIn:   "2024-12-15",
		CheckOut:  "2024-12-22",
		Price:     "180.00",
		Rating:    "4.5",
		Amenities: []string{"WiFi", "Breakfast"},
		Guests:    2,
		Rooms:     1,
	}
}

func NewActivity() *catalog.Activity {
	return &catalog.Activity{
		ID:          1,
		Name:        "Rome Cultural Tour",
		Location:    "Rome, Italy",
		Price:       "89.00",
		Duration:    "4 hours",
		Type:        "Cultural",
		Rating:      "4.8",
		Description: ptr.To("Colosseum and Forum with a local guide"),
	}
}

func NewDeal() *catalog.Deal {
	return &catalog.Deal{
		ID:            1,
		Type:          catalog.DealFlights,
		Title:         "Europe Flash Sale",
		OriginalPrice: "850.00",
		CurrentPrice:  "599.00",
		Discount:      30,
		Badge:         ptr.To("30% OFF"),
		ValidUntil:    ptr.To(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
	}
}

func FlightCreateRequestDTO() reqdto.CreateFlightRequest {
	f := NewFlight()
	return reqdto.CreateFlightRequest{
		FromCity:      f.FromCity,
		ToCity:        f.ToCity,
		DepartureDate: f.DepartureDate,
		ReturnDate:    f.ReturnDate,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Airline:       f.Airline,
		Passengers:    ptr.To(f.Passengers),
		Class:         string(f.Class),
		Discount:      f.Discount,
	}
}

func HotelCreateRequestDTO() reqdto.CreateHotelRequest {
	h := NewHotel()
	return reqdto.CreateHotelRequest{
		Name:      h.Name,
		Location:  h.Location,
		CheckIn:   h.CheckIn,
		CheckOut:  h.CheckOut,
		Price:     h.Price,
		Rating:    h.Rating,
		Amenities: h.Amenities,
		Guests:    ptr.To(h.Guests),
		Rooms:     ptr.To(h.Rooms),
	}
}

func ActivityCreateRequestDTO() reqdto.CreateActivityRequest {
	a := NewActivity()
	return reqdto.CreateActivityRequest{
		Name:        a.Name,
		Location:    a.Location,
		Price:       a.Price,
		Duration:    a.Duration,
		Type:        a.Type,
		Rating:      a.Rating,
		Description: a.Description,
	}
}

func DealCreateRequestDTO() reqdto.CreateDealRequest {
	d := NewDeal()
	return reqdto.CreateDealRequest{
		Type:          string(d.Type),
		Title:         d.Title,
		OriginalPrice: d.OriginalPrice,
		CurrentPrice:  d.CurrentPrice,
		Discount:      d.Discount,
		Badge:         d.Badge,
		ValidUntil:    d.ValidUntil,
	}
}
