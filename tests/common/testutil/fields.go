//go:build unit || e2e

package testutil

// Field sets key to value. A nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Null sends key as an explicit JSON null, which is not the same as leaving
// it out for partial updates.
func Null(key string) func(m map[string]any) {
	return func(m map[string]any) {
		m[key] = nil
	}
}
