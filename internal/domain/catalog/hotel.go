package catalog

type Hotel struct {
	ID        int64
	Name      string
	Location  string
	CheckIn   string
	CheckOut  string
	Price     string
	Rating    string
	Amenities []string
	ImageURL  *string
	Guests    int
	Rooms     int
}

func NewHotel(h Hotel) (*Hotel, error) {
	if err := requireText(h.Name, h.Location, h.CheckIn, h.CheckOut); err != nil {
		return nil, err
	}
	if err := requirePrices(h.Price, h.Rating); err != nil {
		return nil, err
	}
	if h.Guests == 0 {
		h.Guests = 1
	}
	if h.Rooms == 0 {
		h.Rooms = 1
	}
	if h.Guests < 0 || h.Rooms < 0 {
		return nil, ErrInvalidCount
	}
	h.ID = 0
	return &h, nil
}
