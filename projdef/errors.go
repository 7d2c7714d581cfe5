package projdef

import "errors"

var (
	// ErrInvalidDefinition is returned for a definition string that does
	// not parse or has a malformed parameter value.
	ErrInvalidDefinition = errors.New("invalid projection definition")
	// ErrUnsupported is returned for projections, units or datum shifts
	// that cannot be transformed.
	ErrUnsupported = errors.New("unsupported projection")
	// ErrNotFound is returned by Registry.Lookup for an unknown name.
	ErrNotFound = errors.New("projection not found")
)
