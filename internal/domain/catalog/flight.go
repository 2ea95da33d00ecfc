package catalog

type Flight struct {
	ID            int64
	FromCity      string
	ToCity        string
	DepartureDate string
	ReturnDate    *string
	Price         string
	OriginalPrice *string
	Airline       string
	Passengers    int
	Class         CabinClass
	Discount      int
}

// NewFlight validates a catalog entry. Passengers defaults to 1 and Class to
// economy when left empty.
func NewFlight(f Flight) (*Flight, error) {
	if err := requireText(f.FromCity, f.ToCity, f.DepartureDate, f.Airline); err != nil {
		return nil, err
	}
	if err := requirePrices(f.Price); err != nil {
		return nil, err
	}
	if f.OriginalPrice != nil {
		if err := requirePrices(*f.OriginalPrice); err != nil {
			return nil, err
		}
	}
	class, err := NewCabinClass(string(f.Class))
	if err != nil {
		return nil, err
	}
	if f.Passengers == 0 {
		f.Passengers = 1
	}
	if f.Passengers < 0 {
		return nil, ErrInvalidCount
	}
	f.ID = 0
	f.Class = class
	return &f, nil
}
