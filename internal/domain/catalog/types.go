package catalog

import (
	"strconv"
	"strings"

	"travelmate/internal/pkg/errs"
)

var (
	ErrInvalidCabinClass = errs.Mark(errs.New("class must be one of economy, business, first"), errs.ErrDomainValidation)
	ErrInvalidDealType   = errs.Mark(errs.New("deal type must be one of flights, hotels, activities, packages"), errs.ErrDomainValidation)
	ErrInvalidPrice      = errs.Mark(errs.New("price must be a non-negative decimal"), errs.ErrDomainValidation)
	ErrRequiredField     = errs.Mark(errs.New("required field is empty"), errs.ErrDomainValidation)
	ErrInvalidCount      = errs.Mark(errs.New("count must be at least 1"), errs.ErrDomainValidation)
)

type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// NewCabinClass defaults an empty class to economy.
func NewCabinClass(s string) (CabinClass, error) {
	if s == "" {
		return CabinEconomy, nil
	}
	c := CabinClass(s)
	if !c.IsValid() {
		return "", ErrInvalidCabinClass
	}
	return c, nil
}

type DealType string

const (
	DealFlights    DealType = "flights"
	DealHotels     DealType = "hotels"
	DealActivities DealType = "activities"
	DealPackages   DealType = "packages"
)

// DealTypeAll is the listing sentinel meaning "no type filter".
const DealTypeAll = "all"

func (t DealType) IsValid() bool {
	switch t {
	case DealFlights, DealHotels, DealActivities, DealPackages:
		return true
	default:
		return false
	}
}

func NewDealType(s string) (DealType, error) {
	t := DealType(s)
	if !t.IsValid() {
		return "", ErrInvalidDealType
	}
	return t, nil
}

// ParsePrice reads a decimal price such as "599.00".
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, ErrInvalidPrice
	}
	return v, nil
}

func requireText(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return ErrRequiredField
		}
	}
	return nil
}

func requirePrices(values ...string) error {
	for _, v := range values {
		if _, err := ParsePrice(v); err != nil {
			return err
		}
	}
	return nil
}

func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}
