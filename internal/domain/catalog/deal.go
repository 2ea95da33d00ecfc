package catalog

import "time"

type Deal struct {
	ID            int64
	Type          DealType
	Title         string
	Description   *string
	OriginalPrice string
	CurrentPrice  string
	Discount      int
	// Badge is a display label such as "LIMITED" or "30% OFF".
	Badge      *string
	ImageURL   *string
	ValidUntil *time.Time
}

func NewDeal(d Deal) (*Deal, error) {
	if _, err := NewDealType(string(d.Type)); err != nil {
		return nil, err
	}
	if err := requireText(d.Title); err != nil {
		return nil, err
	}
	if err := requirePrices(d.OriginalPrice, d.CurrentPrice); err != nil {
		return nil, err
	}
	d.ID = 0
	return &d, nil
}
