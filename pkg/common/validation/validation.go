// Package validation provides common validation utilities for the golazy library.
package validation

import (
	gferrors "github.com/vnykmshr/golazy/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return gferrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNonNegative validates that an integer value is non-negative (>= 0).
// Returns a ValidationError if the value is negative.
func ValidateNonNegative(module, field string, value int) error {
	if value < 0 {
		return gferrors.NewValidationError(module, field, value, "cannot be negative").
			WithHint("use 0 or a positive value")
	}
	return nil
}

// ValidateNonZero validates that a numeric value is not zero.
// Returns a ValidationError if the value is zero.
func ValidateNonZero(module, field string, value float64) error {
	if value == 0 {
		return gferrors.NewValidationError(module, field, value, "cannot be zero").
			WithHint("a zero " + field + " never reaches the bound")
	}
	return nil
}

// ValidateOrder validates that low <= high.
// Returns a ValidationError naming the high field if the bounds are inverted.
func ValidateOrder(module, lowField, highField string, low, high int) error {
	if high < low {
		return gferrors.NewValidationError(module, highField, high, "must not be less than "+lowField).
			WithHint("swap the bounds or use an empty range")
	}
	return nil
}

// ValidateNotNil validates that an interface value is not nil.
// Returns a ValidationError if the value is nil.
func ValidateNotNil(module, field string, value interface{}) error {
	if value == nil {
		return gferrors.NewValidationError(module, field, nil, "cannot be nil").
			WithHint("provide a valid " + field)
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func ValidateNotEmpty(module, field string, value string) error {
	if value == "" {
		return gferrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}
