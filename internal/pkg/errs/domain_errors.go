package errs

// Cross-layer markers. Layers wrap their own sentinels with Mark so handlers
// can classify an error without knowing which package produced it.
var (
	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Lookup errors
	ErrNotFound = New("not found")

	// Write errors
	ErrConflict = New("conflict")
)
