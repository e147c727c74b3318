package site

import "errors"

var (
	// ErrLayoutMissing is returned when the configured layout file does not exist.
	ErrLayoutMissing = errors.New("site: layout not found")
	// ErrFragmentMissing is returned when a card template is not registered.
	ErrFragmentMissing = errors.New("site: fragment template not registered")
)
