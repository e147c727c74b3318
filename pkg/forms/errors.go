package forms

import "errors"

var (
	// ErrFormNotFound is returned when a catalog has no form with the given id.
	ErrFormNotFound = errors.New("forms: form not found")
	// ErrDuplicateForm is returned when two definitions share an id.
	ErrDuplicateForm = errors.New("forms: duplicate form id")
	// ErrInvalidValues is returned when submitted data is not a mapping.
	ErrInvalidValues = errors.New("forms: expected a mapping of field values")
)
