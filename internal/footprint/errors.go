package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation errors returned by ParseQuantity and ParseDiet.
// Callers match them with errors.Is and re-prompt.
var (
	// ErrNotANumber indicates quantity text that is not a finite decimal number.
	ErrNotANumber = constError("not a number")

	// ErrNegativeValue indicates a quantity below zero.
	ErrNegativeValue = constError("negative value")

	// ErrNotAWholeNumber indicates diet text that is not an integer.
	ErrNotAWholeNumber = constError("not a whole number")

	// ErrDietOutOfRange indicates a diet code outside 1..4.
	ErrDietOutOfRange = constError("diet choice out of range")
)
