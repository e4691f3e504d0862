package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidQuery         = errors.New("failed to parse query parameters")

	// ErrNotApplicable is returned when a request carries nothing for the
	// binder to read. handler.Wrap skips such binders.
	ErrNotApplicable = errors.New("binder not applicable")
)
