package gridconv

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// LatLong is a geodetic coordinate in degrees. The latitude is clamped to
// [-90, 90] and the longitude is normalized to (-180, 180].
type LatLong struct {
	lat float64
	lng float64
}

// NewLatLong constructs a normalized LatLong.
func NewLatLong(lat, lng float64) LatLong {
	return LatLong{
		lat: normalizeLatitude(lat),
		lng: normalizeLongitude(lng),
	}
}

// LatLongFromS2 converts an s2.LatLng.
func LatLongFromS2(ll s2.LatLng) LatLong {
	return NewLatLong(ll.Lat.Degrees(), ll.Lng.Degrees())
}

// Latitude returns the latitude in degrees.
func (l LatLong) Latitude() float64 { return l.lat }

// Longitude returns the longitude in degrees.
func (l LatLong) Longitude() float64 { return l.lng }

// LatLng returns the coordinate as an s2.LatLng.
func (l LatLong) LatLng() s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(l.lat) * s1.Degree,
		Lng: s1.Angle(l.lng) * s1.Degree,
	}
}

// Point returns the coordinate as an orb.Point, longitude first.
func (l LatLong) Point() orb.Point {
	return orb.Point{l.lng, l.lat}
}

// IsValid reports whether neither component is NaN or infinite.
func (l LatLong) IsValid() bool {
	return !math.IsNaN(l.lat) && !math.IsNaN(l.lng) &&
		!math.IsInf(l.lat, 0) && !math.IsInf(l.lng, 0)
}

func (l LatLong) String() string {
	return fmt.Sprintf("%.7f %.7f", l.lat, l.lng)
}

func normalizeLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func normalizeLongitude(lng float64) float64 {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return lng
	}
	lng = math.Mod(lng, 360)
	if lng <= -180 {
		lng += 360
	} else if lng > 180 {
		lng -= 360
	}
	return lng
}
