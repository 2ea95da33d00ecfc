package memstore

import (
	"time"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/domain/trip"
	"travelmate/internal/domain/user"
	"travelmate/internal/pkg/ptr"
)

const (
	imgHotelRoom = "https://images.unsplash.com/photo-1611892440504-42a792e24d32"
	imgRome      = "https://images.unsplash.com/photo-1552832230-c0197dd311b5"
	imgFuji      = "https://images.unsplash.com/photo-1578662996442-48f60103fc96"
	imgPlane     = "https://images.unsplash.com/photo-1436491865332-7a61a109cc05"
	imgMaldives  = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4"
)

// Seed loads the sample catalog. On an empty store every record gets the
// same id it has here (users 1, flights 1-2, ..., trips 1-3).
func Seed(s *Store) {
	s.Users.Create(user.User{
		Name:  "John Doe",
		Email: "john@example.com",
		Preferences: &user.Preferences{
			Budget:        "$1,000 - $2,500",
			Style:         []string{"Adventure & Outdoor", "Beach & Relaxation"},
			Destinations:  []string{"Europe", "Asia"},
			Accommodation: "Mid-range (3★ Hotels, B&Bs)",
		},
	})

	for _, f := range []catalog.Flight{
		{
			FromCity: "New York", ToCity: "Paris",
			DepartureDate: "2024-12-15", ReturnDate: ptr.To("2024-12-22"),
			Price: "599.00", OriginalPrice: ptr.To("899.00"),
			Airline: "Delta Airlines", Passengers: 1, Class: catalog.CabinEconomy, Discount: 30,
		},
		{
			FromCity: "Los Angeles", ToCity: "Tokyo",
			DepartureDate: "2024-12-20", ReturnDate: ptr.To("2024-12-27"),
			Price: "799.00", OriginalPrice: ptr.To("1099.00"),
			Airline: "JAL", Passengers: 1, Class: catalog.CabinEconomy, Discount: 25,
		},
	} {
		s.Flights.Create(f)
	}

	for _, h := range []catalog.Hotel{
		{
			Name: "Grand Hotel Rome", Location: "Rome, Italy",
			CheckIn: "2024-12-15", CheckOut: "2024-12-22",
			Price: "199.00", Rating: "5.0",
			Amenities: []string{"WiFi", "Pool", "Spa", "Restaurant"},
			ImageURL:  ptr.To(imgHotelRoom), Guests: 2, Rooms: 1,
		},
		{
			Name: "Tokyo Palace Hotel", Location: "Tokyo, Japan",
			CheckIn: "2024-12-20", CheckOut: "2024-12-27",
			Price: "159.00", Rating: "4.8",
			Amenities: []string{"WiFi", "Gym", "Restaurant", "Concierge"},
			ImageURL:  ptr.To(imgHotelRoom), Guests: 2, Rooms: 1,
		},
	} {
		s.Hotels.Create(h)
	}

	for _, a := range []catalog.Activity{
		{
			Name: "Historic Rome Walking Tour", Location: "Rome, Italy",
			Price: "89.00", Duration: "Full day", Type: "Cultural", Rating: "4.9",
			Description: ptr.To("Explore ancient Rome with an expert guide"),
			ImageURL:    ptr.To(imgRome),
		},
		{
			Name: "Mount Fuji Day Trip", Location: "Tokyo, Japan",
			Price: "120.00", Duration: "Full day", Type: "Adventure", Rating: "4.7",
			Description: ptr.To("Experience Japan's iconic mountain"),
			ImageURL:    ptr.To(imgFuji),
		},
	} {
		s.Activities.Create(a)
	}

	for _, d := range []catalog.Deal{
		{
			Type: catalog.DealFlights, Title: "NYC → Paris",
			Description:   ptr.To("Round trip • Delta Airlines"),
			OriginalPrice: "899.00", CurrentPrice: "599.00", Discount: 30,
			Badge: ptr.To("30% OFF"), ImageURL: ptr.To(imgPlane),
			ValidUntil: ptr.To(day(2024, time.December, 31)),
		},
		{
			Type: catalog.DealHotels, Title: "Grand Hotel Rome",
			Description:   ptr.To("5★ • City Center"),
			OriginalPrice: "299.00", CurrentPrice: "199.00", Discount: 33,
			Badge: ptr.To("LIMITED"), ImageURL: ptr.To(imgHotelRoom),
			ValidUntil: ptr.To(day(2024, time.December, 25)),
		},
		{
			Type: catalog.DealActivities, Title: "Historic City Tour",
			Description:   ptr.To("Full day • Guide included"),
			OriginalPrice: "129.00", CurrentPrice: "89.00", Discount: 31,
			Badge: ptr.To("POPULAR"), ImageURL: ptr.To(imgRome),
			ValidUntil: ptr.To(day(2024, time.December, 30)),
		},
		{
			Type: catalog.DealPackages, Title: "Maldives Package",
			Description:   ptr.To("7 days • All inclusive"),
			OriginalPrice: "3299.00", CurrentPrice: "2299.00", Discount: 30,
			Badge: ptr.To("FLASH SALE"), ImageURL: ptr.To(imgMaldives),
			ValidUntil: ptr.To(day(2024, time.December, 20)),
		},
	} {
		s.Deals.Create(d)
	}

	for _, t := range []trip.Trip{
		{
			UserID: 1, Name: "Swiss Alps Adventure", Destination: "Zurich, Switzerland",
			StartDate: ptr.To("2024-12-15"), EndDate: ptr.To("2024-12-22"),
			Status: trip.StatusUpcoming, TotalPrice: ptr.To("1299.00"),
			Details: &trip.Details{Flights: []int64{1}, Hotels: []int64{1}, Activities: []int64{1}},
		},
		{
			UserID: 1, Name: "Thailand Explorer", Destination: "Bangkok, Chiang Mai",
			StartDate: ptr.To("2024-09-05"), EndDate: ptr.To("2024-09-18"),
			Status: trip.StatusCompleted, TotalPrice: ptr.To("1599.00"),
			Details: &trip.Details{Flights: []int64{2}, Hotels: []int64{2}, Activities: []int64{2}},
		},
		{
			UserID: 1, Name: "Greek Islands Getaway", Destination: "Santorini, Mykonos",
			Status: trip.StatusSaved, TotalPrice: ptr.To("1799.00"),
			Details: &trip.Details{Flights: []int64{}, Hotels: []int64{}, Activities: []int64{}},
		},
	} {
		s.Trips.Create(t)
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
