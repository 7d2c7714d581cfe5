package gridconv

import "errors"

// Errors returned by the converters. They are wrapped with additional
// context, so compare with errors.Is.
var (
	// ErrMalformedReference is returned for an MGRS string that cannot be
	// split into zone, band, square id and digits.
	ErrMalformedReference = errors.New("malformed MGRS reference")
	// ErrInvalidZoneLetter is returned for a latitude band letter that is
	// polar, ambiguous or not a band at all.
	ErrInvalidZoneLetter = errors.New("invalid zone letter")
	// ErrOddDigitCount is returned when the easting and northing digits of
	// an MGRS string are not the same length.
	ErrOddDigitCount = errors.New("odd number of easting/northing digits")
	// ErrBadCharacter is returned when a 100km square letter is not part
	// of the letter set for its zone.
	ErrBadCharacter = errors.New("bad 100km square character")
	// ErrInvalidZone is returned for a UTM zone number out of range.
	ErrInvalidZone = errors.New("zone out of range")
	// ErrInvalidCoordinate is returned for NaN or infinite input and for
	// points too far from a projection's central meridian.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidAccuracy is returned for an MGRS accuracy outside 0-5.
	ErrInvalidAccuracy = errors.New("accuracy out of range")
)
