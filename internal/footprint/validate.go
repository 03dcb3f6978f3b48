package footprint

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseQuantity parses a yearly distance or energy amount.
//
// Surrounding whitespace is ignored. It returns ErrNotANumber for text that is
// not a finite decimal number (NaN and Inf spellings included) and
// ErrNegativeValue for values below zero.
func ParseQuantity(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if err = ValidateQuantity(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseDiet parses a diet menu code.
//
// Surrounding whitespace is ignored. It returns ErrNotAWholeNumber for text
// that is not an integer and ErrDietOutOfRange for integers outside 1..4.
func ParseDiet(raw string) (DietChoice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrNotAWholeNumber
	}
	d := DietChoice(n)
	if !d.Valid() {
		return 0, ErrDietOutOfRange
	}
	return d, nil
}

// ValidateQuantity applies the ParseQuantity rules to an already numeric value.
// It is used for values that arrive through flags instead of prompts.
func ValidateQuantity(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNotANumber
	}
	if v < 0 {
		return ErrNegativeValue
	}
	return nil
}

// ValidateInputs checks that in could have come out of the parsers above.
func ValidateInputs(in Inputs) error {
	for _, v := range []float64{in.CarKm, in.BusKm, in.ElectricityKwh} {
		if err := ValidateQuantity(v); err != nil {
			return err
		}
	}
	if !in.Diet.Valid() {
		return ErrDietOutOfRange
	}
	return nil
}

// UserMessage returns the line shown to a user whose input was rejected with err.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotANumber):
		return "Error: Invalid input. Enter a numeric value."
	case errors.Is(err, ErrNegativeValue):
		return "Error: Please enter a non-negative number."
	case errors.Is(err, ErrNotAWholeNumber):
		return "Error: Enter a whole number (1-4)."
	case errors.Is(err, ErrDietOutOfRange):
		return "Error: Choice must be between 1 and 4."
	default:
		return "Error: " + err.Error()
	}
}
