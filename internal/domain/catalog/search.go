package catalog

// MatchMode decides how the origin and destination terms of a flight search
// combine.
type MatchMode string

const (
	// MatchAny keeps a flight when either city matches. This is the
	// long-standing behavior of the search endpoint.
	MatchAny MatchMode = "any"
	// MatchAll requires both the origin and the destination to match.
	MatchAll MatchMode = "all"
)

// FlightSearch carries the search form. Only the city terms take part in
// matching; dates, passengers and class are accepted but not filtered on.
type FlightSearch struct {
	From          string
	To            string
	DepartureDate string
	ReturnDate    *string
	Passengers    int
	Class         CabinClass
	Mode          MatchMode
}

func (s FlightSearch) Matches(f Flight) bool {
	from := containsFold(f.FromCity, s.From)
	to := containsFold(f.ToCity, s.To)
	if s.Mode == MatchAll {
		return from && to
	}
	return from || to
}

type HotelSearch struct {
	Destination string
	CheckIn     string
	CheckOut    string
	Guests      int
	Rooms       int
}

func (s HotelSearch) Matches(h Hotel) bool {
	return containsFold(h.Location, s.Destination)
}

type PriceRange struct {
	Min *float64
	Max *float64
}

func (r *PriceRange) contains(price string) bool {
	if r == nil || (r.Min == nil && r.Max == nil) {
		return true
	}
	v, err := ParsePrice(price)
	if err != nil {
		return false
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

type ActivitySearch struct {
	Destination string
	Type        string
	PriceRange  *PriceRange
}

func (s ActivitySearch) Matches(a Activity) bool {
	if !containsFold(a.Location, s.Destination) {
		return false
	}
	if s.Type != "" && !containsFold(a.Type, s.Type) {
		return false
	}
	return s.PriceRange.contains(a.Price)
}

// DealFilter selects deals by exact type. An empty type or "all" keeps
// every deal.
type DealFilter struct {
	Type string
}

func (f DealFilter) Matches(d Deal) bool {
	if f.Type == "" || f.Type == DealTypeAll {
		return true
	}
	return string(d.Type) == f.Type
}
