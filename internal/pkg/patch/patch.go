package patch

import "encoding/json"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Field is a JSON member of a partial update. It tells apart a key that was
// omitted (Set == false) from one sent as null (Set && Null).
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Value builds a Field carrying v, as if v had been decoded from a payload.
func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null builds a Field that was sent as an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Present reports whether the field carries a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// Apply overwrites *dst when the field carries a value. Null and omitted
// fields leave *dst untouched.
func (f Field[T]) Apply(dst *T) {
	if f.Present() {
		*dst = f.Value
	}
}

// ApplyPtr overwrites a nullable destination: a value replaces it, an explicit
// null clears it, and an omitted field leaves it alone.
func (f Field[T]) ApplyPtr(dst **T) {
	if !f.Set {
		return
	}
	if f.Null {
		*dst = nil
		return
	}
	v := f.Value
	*dst = &v
}

// Map converts the carried value while keeping presence information.
func Map[A, B any](f Field[A], fn func(A) B) Field[B] {
	out := Field[B]{Set: f.Set, Null: f.Null}
	if f.Present() {
		out.Value = fn(f.Value)
	}
	return out
}
