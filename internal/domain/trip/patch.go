package trip

import (
	"strings"

	"travelmate/internal/pkg/patch"
)

// Patch is a shallow partial update. Omitted fields are left alone, present
// fields replace the stored value, and Details is replaced wholesale.
type Patch struct {
	UserID      patch.Field[int64]
	Name        patch.Field[string]
	Destination patch.Field[string]
	StartDate   patch.Field[string]
	EndDate     patch.Field[string]
	Status      patch.Field[string]
	TotalPrice  patch.Field[string]
	Details     patch.Field[Details]
}

// Validate applies the same rules NewTrip does to the fields that are present.
func (p Patch) Validate() error {
	for _, f := range []patch.Field[string]{p.Name, p.Destination, p.Status} {
		if f.Set && f.Null {
			return ErrNullField
		}
	}
	if p.UserID.Set && (p.UserID.Null || p.UserID.Value <= 0) {
		return ErrInvalidUserID
	}
	if p.Name.Set && strings.TrimSpace(p.Name.Value) == "" {
		return ErrEmptyName
	}
	if p.Destination.Set && strings.TrimSpace(p.Destination.Value) == "" {
		return ErrEmptyDestination
	}
	if p.Status.Set {
		if _, err := NewStatus(p.Status.Value); err != nil {
			return err
		}
	}
	if p.TotalPrice.Present() {
		if err := checkPrice(p.TotalPrice.Value); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return !p.UserID.Set && !p.Name.Set && !p.Destination.Set && !p.StartDate.Set &&
		!p.EndDate.Set && !p.Status.Set && !p.TotalPrice.Set && !p.Details.Set
}

// ApplyTo merges the patch onto t. Call Validate first.
func (p Patch) ApplyTo(t *Trip) {
	p.UserID.Apply(&t.UserID)
	patch.Map(p.Name, strings.TrimSpace).Apply(&t.Name)
	patch.Map(p.Destination, strings.TrimSpace).Apply(&t.Destination)
	p.StartDate.ApplyPtr(&t.StartDate)
	p.EndDate.ApplyPtr(&t.EndDate)
	patch.Map(p.Status, func(s string) Status { return Status(s) }).Apply(&t.Status)
	p.TotalPrice.ApplyPtr(&t.TotalPrice)
	p.Details.ApplyPtr(&t.Details)
}
