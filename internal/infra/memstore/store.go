// Package memstore is the process-local entity store. Each entity type has
// its own table and id counter; nothing is persisted across restarts.
package memstore

import (
	"travelmate/internal/domain/catalog"
	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/domain/trip"
	"travelmate/internal/domain/user"
	"travelmate/internal/pkg/clock"
)

type Store struct {
	Users      *Table[user.User]
	Trips      *Table[trip.Trip]
	Flights    *Table[catalog.Flight]
	Hotels     *Table[catalog.Hotel]
	Activities *Table[catalog.Activity]
	Deals      *Table[catalog.Deal]
	SavedTrips *Table[savedtrip.SavedTrip]
}

// New returns an empty store. Trips and saved trips get CreatedAt from clk.
func New(clk clock.Clock) *Store {
	return &Store{
		Users: NewTable(func(u *user.User, id int64) { u.ID = id }),
		Trips: NewTable(func(t *trip.Trip, id int64) { t.ID = id }).
			OnCreate(func(t *trip.Trip) { t.CreatedAt = clk.Now() }),
		Flights:    NewTable(func(f *catalog.Flight, id int64) { f.ID = id }),
		Hotels:     NewTable(func(h *catalog.Hotel, id int64) { h.ID = id }),
		Activities: NewTable(func(a *catalog.Activity, id int64) { a.ID = id }),
		Deals:      NewTable(func(d *catalog.Deal, id int64) { d.ID = id }),
		SavedTrips: NewTable(func(s *savedtrip.SavedTrip, id int64) { s.ID = id }).
			OnCreate(func(s *savedtrip.SavedTrip) { s.CreatedAt = clk.Now() }),
	}
}

// Reset empties every table and restarts all id counters.
func (s *Store) Reset() {
	s.Users.reset()
	s.Trips.reset()
	s.Flights.reset()
	s.Hotels.reset()
	s.Activities.reset()
	s.Deals.reset()
	s.SavedTrips.reset()
}
