package gridconv

import (
	"fmt"
	"math"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "?"
}

// InvalidBand is the band letter returned for latitudes outside the
// [-80, 84] MGRS coverage.
const InvalidBand = 'Z'

// bandLetters are the 8 degree latitude bands from 80S northwards.
const bandLetters = "CDEFGHJKLMNPQRSTUVWX"

const (
	minBandLat = -80.0
	maxBandLat = 84.0
)

// minNorthings is the minimum northing of each latitude band, indexed like
// bandLetters.
var minNorthings = [len(bandLetters)]float64{
	1100000.0, // C
	2000000.0, // D
	2800000.0, // E
	3700000.0, // F
	4600000.0, // G
	5500000.0, // H
	6400000.0, // J
	7300000.0, // K
	8200000.0, // L
	9100000.0, // M
	0.0,       // N
	800000.0,  // P
	1700000.0, // Q
	2600000.0, // R
	3500000.0, // S
	4400000.0, // T
	5300000.0, // U
	6200000.0, // V
	7000000.0, // W
	7900000.0, // X
}

// ZoneNumber returns the UTM zone for a latitude and longitude in degrees,
// including the Norway and Svalbard exceptions.
func ZoneNumber(lat, lng float64) int {
	lng = normalizeLongitude(lng)

	zone := int(math.Floor((lng+180)/6)) + 1

	// longitude 180 belongs to zone 60
	if lng == 180 {
		zone = 60
	}

	// southern Norway
	if lat >= 56.0 && lat < 64.0 && lng >= 3.0 && lng < 12.0 {
		zone = 32
	}

	// Svalbard
	if lat >= 72.0 && lat < 84.0 {
		switch {
		case lng >= 0.0 && lng < 9.0:
			zone = 31
		case lng >= 9.0 && lng < 21.0:
			zone = 33
		case lng >= 21.0 && lng < 33.0:
			zone = 35
		case lng >= 33.0 && lng < 42.0:
			zone = 37
		}
	}
	return zone
}

// LetterDesignator returns the latitude band letter for a latitude in
// degrees, or InvalidBand outside [-80, 84].
func LetterDesignator(lat float64) byte {
	if math.IsNaN(lat) || lat < minBandLat || lat > maxBandLat {
		return InvalidBand
	}
	if lat >= 72 {
		return 'X'
	}
	return bandLetters[int(math.Floor((lat-minBandLat)/8))]
}

// MinNorthing returns the minimum northing in meters of a latitude band.
func MinNorthing(letter byte) (float64, error) {
	i := bandIndex(letter)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidZoneLetter, letter)
	}
	return minNorthings[i], nil
}

func bandIndex(letter byte) int {
	for i := 0; i < len(bandLetters); i++ {
		if bandLetters[i] == letter {
			return i
		}
	}
	return -1
}

// hemisphereForLetter derives the hemisphere from a band letter.
func hemisphereForLetter(letter byte) Hemisphere {
	if letter < 'N' {
		return HemisphereSouth
	}
	return HemisphereNorth
}
