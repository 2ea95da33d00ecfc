package catalog

type Activity struct {
	ID          int64
	Name        string
	Location    string
	Price       string
	Duration    string
	Type        string
	Rating      string
	Description *string
	ImageURL    *string
}

func NewActivity(a Activity) (*Activity, error) {
	if err := requireText(a.Name, a.Location, a.Duration, a.Type); err != nil {
		return nil, err
	}
	if err := requirePrices(a.Price, a.Rating); err != nil {
		return nil, err
	}
	a.ID = 0
	return &a, nil
}
