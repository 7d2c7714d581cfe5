package gridconv

import (
	"fmt"
	"math"
)

// Ellipsoid describes a reference ellipsoid by its semi-major axis in meters
// and its first eccentricity squared.
type Ellipsoid struct {
	SemiMajorAxis       float64
	EccentricitySquared float64
}

// WGS84 is the ellipsoid used by UTM and MGRS.
var WGS84 = Ellipsoid{
	SemiMajorAxis:       6378137.0,
	EccentricitySquared: 0.00669438,
}

// utmScaleFactor is the scale factor along each UTM central meridian.
const utmScaleFactor = 0.9996

// NewEllipsoid constructs an ellipsoid from its semi-major axis and
// flattening. A flattening of zero gives a sphere.
func NewEllipsoid(semiMajorAxis, flattening float64) (Ellipsoid, error) {
	e := Ellipsoid{
		SemiMajorAxis:       semiMajorAxis,
		EccentricitySquared: flattening * (2 - flattening),
	}
	if err := e.Validate(); err != nil {
		return Ellipsoid{}, err
	}
	return e, nil
}

// Validate reports whether the ellipsoid parameters are usable.
func (e Ellipsoid) Validate() error {
	if math.IsNaN(e.SemiMajorAxis) || e.SemiMajorAxis <= 0 || math.IsInf(e.SemiMajorAxis, 0) {
		return fmt.Errorf("semi-major axis must be greater than zero, got %v", e.SemiMajorAxis)
	}
	if math.IsNaN(e.EccentricitySquared) || e.EccentricitySquared < 0 || e.EccentricitySquared >= 1 {
		return fmt.Errorf("eccentricity squared must be in [0, 1), got %v", e.EccentricitySquared)
	}
	return nil
}

// SecondEccentricitySquared returns e'^2 = e^2 / (1 - e^2).
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	return e.EccentricitySquared / (1 - e.EccentricitySquared)
}
