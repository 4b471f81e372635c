// Package validation provides common validation utilities for adaptor and
// source arguments across the golazy library.
//
// Adaptors are lazy, so validation results are not returned from the
// constructor. Instead the constructed cursor reports the error from its
// first Next call.
package validation
