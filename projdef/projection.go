package projdef

import (
	"fmt"
	"math"

	"github.com/tzneal/gridconv"
)

// longLat is the identity projection. Easting is the longitude and northing
// the latitude, both in degrees.
type longLat struct{}

func (longLat) Forward(ll gridconv.LatLong) (gridconv.MapCoords, error) {
	if !ll.IsValid() {
		return gridconv.MapCoords{}, fmt.Errorf("%w: %s", gridconv.ErrInvalidCoordinate, ll)
	}
	return gridconv.MapCoords{Easting: ll.Longitude(), Northing: ll.Latitude()}, nil
}

func (longLat) Inverse(mc gridconv.MapCoords) (gridconv.LatLong, error) {
	if math.IsNaN(mc.Easting) || math.IsNaN(mc.Northing) {
		return gridconv.LatLong{}, fmt.Errorf("%w: %v %v", gridconv.ErrInvalidCoordinate, mc.Easting, mc.Northing)
	}
	return gridconv.NewLatLong(mc.Northing, mc.Easting), nil
}

// scaled converts the planar output of a projection from meters to another
// unit.
type scaled struct {
	gridconv.Projection
	toMeter float64
}

func (s scaled) Forward(ll gridconv.LatLong) (gridconv.MapCoords, error) {
	mc, err := s.Projection.Forward(ll)
	if err != nil {
		return mc, err
	}
	return gridconv.MapCoords{Easting: mc.Easting / s.toMeter, Northing: mc.Northing / s.toMeter}, nil
}

func (s scaled) Inverse(mc gridconv.MapCoords) (gridconv.LatLong, error) {
	return s.Projection.Inverse(gridconv.MapCoords{Easting: mc.Easting * s.toMeter, Northing: mc.Northing * s.toMeter})
}
