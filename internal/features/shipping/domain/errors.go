package domain

import "errors"

var (
	// ErrMalformedResponse is returned when a carrier reply cannot be parsed or lacks its status block.
	ErrMalformedResponse = errors.New("malformed carrier response")
	// ErrInvalidOption is returned when a recognized option holds a value of the wrong type.
	ErrInvalidOption = errors.New("invalid option")
	// ErrNoPackages is returned when a rate request carries no packages.
	ErrNoPackages = errors.New("at least one package is required")
)
