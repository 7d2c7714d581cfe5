package gridconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UTMCoord is a UTM coordinate. Easting includes the 500,000m false easting
// and southern northings include the 10,000,000m false northing.
type UTMCoord struct {
	Easting    float64
	Northing   float64
	ZoneNumber int
	ZoneLetter byte
}

// Hemisphere returns the hemisphere implied by the zone letter.
func (c UTMCoord) Hemisphere() Hemisphere {
	return hemisphereForLetter(c.ZoneLetter)
}

// String formats the coordinate as "{zone}{letter} {easting} {northing}".
func (c UTMCoord) String() string {
	return fmt.Sprintf("%d%c %s %s", c.ZoneNumber, c.ZoneLetter,
		strconv.FormatFloat(c.Easting, 'f', -1, 64),
		strconv.FormatFloat(c.Northing, 'f', -1, 64))
}

// ParseUTM parses a coordinate in the format produced by UTMCoord.String,
// e.g. "30U 582031 5670369".
func ParseUTM(s string) (UTMCoord, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return UTMCoord{}, fmt.Errorf("%w: expected zone, easting and northing in %q", ErrInvalidCoordinate, s)
	}
	zoneField := strings.ToUpper(fields[0])
	if len(zoneField) < 2 {
		return UTMCoord{}, fmt.Errorf("%w: %q", ErrInvalidZone, fields[0])
	}
	letter := zoneField[len(zoneField)-1]
	zone, err := strconv.Atoi(zoneField[:len(zoneField)-1])
	if err != nil || zone < 0 || zone > 60 {
		return UTMCoord{}, fmt.Errorf("%w: %q", ErrInvalidZone, fields[0])
	}
	if bandIndex(letter) < 0 {
		return UTMCoord{}, fmt.Errorf("%w: %q", ErrInvalidZoneLetter, letter)
	}
	easting, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return UTMCoord{}, fmt.Errorf("%w: easting %q", ErrInvalidCoordinate, fields[1])
	}
	northing, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return UTMCoord{}, fmt.Errorf("%w: northing %q", ErrInvalidCoordinate, fields[2])
	}
	return UTMCoord{
		Easting:    easting,
		Northing:   northing,
		ZoneNumber: zone,
		ZoneLetter: letter,
	}, nil
}

const utmFalseEasting = 500000.0
const utmSouthFalseNorthing = 10000000.0

// UTM is a UTM coordinate converter
type UTM struct {
	ellipsoid Ellipsoid
	// index 0 is the zone west of zone 1, centered on 183W
	transverseMercatorMap [61]*TransverseMercator
}

// NewUTM constructs a UTM converter for the given ellipsoid.
func NewUTM(ellipsoid Ellipsoid) (*UTM, error) {
	if err := ellipsoid.Validate(); err != nil {
		return nil, err
	}
	u := &UTM{ellipsoid: ellipsoid}
	for zone := 0; zone <= 60; zone++ {
		var err error
		u.transverseMercatorMap[zone], err = NewTransverseMercator(ellipsoid,
			centralMeridian(zone), 0, utmFalseEasting, 0, utmScaleFactor)
		if err != nil {
			return nil, err
		}
	}
	return u, nil
}

// centralMeridian returns the central meridian of a zone in degrees.
func centralMeridian(zone int) float64 {
	return float64((zone-1)*6 - 180 + 3)
}

// ConvertFromGeodetic converts geodetic coordinates to UTM. Easting and
// northing are rounded to the nearest meter. A latitude outside the MGRS
// bands still converts, with the zone letter InvalidBand. A non-zero
// zoneOverride forces a zone adjacent to the computed one.
func (u *UTM) ConvertFromGeodetic(ll LatLong, zoneOverride int) (UTMCoord, error) {
	if !ll.IsValid() {
		return UTMCoord{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, ll)
	}
	lat := ll.Latitude()
	zone := ZoneNumber(lat, ll.Longitude())

	// allow UTM zone override up to +/- one zone of the calculated zone
	if zoneOverride != 0 {
		switch {
		case zone == 1 && zoneOverride == 60, zone == 60 && zoneOverride == 1:
			zone = zoneOverride
		case zone-1 <= zoneOverride && zoneOverride <= zone+1 && zoneOverride >= 1 && zoneOverride <= 60:
			zone = zoneOverride
		default:
			return UTMCoord{}, fmt.Errorf("%w: override %d is not adjacent to zone %d", ErrInvalidZone, zoneOverride, zone)
		}
	}

	mc, err := u.transverseMercatorMap[zone].Forward(ll)
	if err != nil {
		return UTMCoord{}, err
	}
	northing := mc.Northing
	if lat < 0 {
		northing += utmSouthFalseNorthing
	}
	return UTMCoord{
		Easting:    math.Round(mc.Easting),
		Northing:   math.Round(northing),
		ZoneNumber: zone,
		ZoneLetter: LetterDesignator(lat),
	}, nil
}

// ConvertToGeodetic converts a UTM coordinate to geodetic coordinates. Only
// the hemisphere of the zone letter is used.
func (u *UTM) ConvertToGeodetic(c UTMCoord) (LatLong, error) {
	if c.ZoneNumber < 0 || c.ZoneNumber > 60 {
		return LatLong{}, fmt.Errorf("%w: %d", ErrInvalidZone, c.ZoneNumber)
	}
	northing := c.Northing
	if c.Hemisphere() == HemisphereSouth {
		northing -= utmSouthFalseNorthing
	}
	return u.transverseMercatorMap[c.ZoneNumber].Inverse(MapCoords{
		Easting:  c.Easting,
		Northing: northing,
	})
}

// ConvertToSquare returns the square with c as its bottom left corner and
// sides of size meters.
func (u *UTM) ConvertToSquare(c UTMCoord, size float64) (Square, error) {
	bottomLeft, err := u.ConvertToGeodetic(c)
	if err != nil {
		return Square{}, err
	}
	topRight := c
	topRight.Easting += size
	topRight.Northing += size
	tr, err := u.ConvertToGeodetic(topRight)
	if err != nil {
		return Square{}, err
	}
	return Square{BottomLeft: bottomLeft, TopRight: tr}, nil
}
