package gridconv

import "github.com/paulmach/orb"

// Square is the geodetic extent of a UTM or MGRS grid square.
type Square struct {
	BottomLeft LatLong
	TopRight   LatLong
}

// eastLongitude returns the top right longitude unwrapped so that it is
// within 180 degrees of the bottom left one. For a square crossing the
// antimeridian it is greater than 180.
func (s Square) eastLongitude() float64 {
	west, east := s.BottomLeft.Longitude(), s.TopRight.Longitude()
	if east-west > 180 {
		east -= 360
	} else if east-west < -180 {
		east += 360
	}
	return east
}

// Centroid returns the mean of the two corners, latitude and longitude
// averaged independently.
func (s Square) Centroid() LatLong {
	return NewLatLong(
		(s.BottomLeft.Latitude()+s.TopRight.Latitude())/2,
		(s.BottomLeft.Longitude()+s.eastLongitude())/2,
	)
}

// Bound returns the square as an orb.Bound. The maximum longitude of a
// square crossing the antimeridian is past 180.
func (s Square) Bound() orb.Bound {
	return orb.Bound{
		Min: s.BottomLeft.Point(),
		Max: orb.Point{s.eastLongitude(), s.TopRight.Latitude()},
	}
}
