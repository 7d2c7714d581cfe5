package gridconv

import (
	"fmt"
	"math"
)

// MapCoords are planar projection coordinates in meters.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// Projection converts between geodetic coordinates and a planar map
// projection.
type Projection interface {
	Forward(ll LatLong) (MapCoords, error)
	Inverse(mc MapCoords) (LatLong, error)
}

// maxDeltaLong is the furthest a point may be from the central meridian
// before the series expansion is rejected.
const maxDeltaLong = 90.0

// TransverseMercator provides conversions between geodetic coordinates and
// Transverse Mercator projection coordinates using the closed form series
// expansion through the sixth power.
type TransverseMercator struct {
	ellipsoid Ellipsoid

	// Transverse Mercator projection parameters
	centralMeridian float64 // degrees
	originLatitude  float64 // degrees
	falseEasting    float64 // meters
	falseNorthing   float64 // meters
	scaleFactor     float64

	// derived from the ellipsoid
	ep2 float64 // second eccentricity squared
	e1  float64
	m0  float64 // meridional arc at the origin latitude
}

// NewTransverseMercator constructs a new TransverseMercator converter.
// Angles are in degrees and offsets in meters.
func NewTransverseMercator(ellipsoid Ellipsoid, centralMeridian, originLatitude,
	falseEasting, falseNorthing, scaleFactor float64) (*TransverseMercator, error) {
	if err := ellipsoid.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(originLatitude) || originLatitude < -90 || originLatitude > 90 {
		return nil, fmt.Errorf("origin latitude %v out of range", originLatitude)
	}
	if math.IsNaN(centralMeridian) || math.IsInf(centralMeridian, 0) {
		return nil, fmt.Errorf("central meridian %v out of range", centralMeridian)
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if math.IsNaN(scaleFactor) || scaleFactor < minScaleFactor || scaleFactor > maxScaleFactor {
		return nil, fmt.Errorf("scale factor %v out of range", scaleFactor)
	}
	if math.IsNaN(falseEasting) || math.IsNaN(falseNorthing) {
		return nil, fmt.Errorf("false easting/northing must be numbers")
	}

	e2 := ellipsoid.EccentricitySquared
	t := &TransverseMercator{
		ellipsoid:       ellipsoid,
		centralMeridian: normalizeLongitude(centralMeridian),
		originLatitude:  originLatitude,
		falseEasting:    falseEasting,
		falseNorthing:   falseNorthing,
		scaleFactor:     scaleFactor,
		ep2:             ellipsoid.SecondEccentricitySquared(),
		e1:              (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2)),
	}
	t.m0 = t.meridionalArc(originLatitude * math.Pi / 180)
	return t, nil
}

// CentralMeridian returns the central meridian in degrees.
func (t *TransverseMercator) CentralMeridian() float64 { return t.centralMeridian }

// meridionalArc returns the distance along the meridian from the equator to
// latitude phi (radians).
func (t *TransverseMercator) meridionalArc(phi float64) float64 {
	e2 := t.ellipsoid.EccentricitySquared
	e4 := e2 * e2
	e6 := e4 * e2
	return t.ellipsoid.SemiMajorAxis * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}

// Forward converts geodetic coordinates to Transverse Mercator easting and
// northing.
func (t *TransverseMercator) Forward(ll LatLong) (MapCoords, error) {
	if !ll.IsValid() {
		return MapCoords{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, ll)
	}

	// longitude from the central meridian, in (-180, 180]
	deltaLong := normalizeLongitude(ll.Longitude() - t.centralMeridian)
	if math.Abs(deltaLong) > maxDeltaLong {
		return MapCoords{}, fmt.Errorf("%w: longitude %v too far from central meridian %v",
			ErrInvalidCoordinate, ll.Longitude(), t.centralMeridian)
	}

	a := t.ellipsoid.SemiMajorAxis
	e2 := t.ellipsoid.EccentricitySquared
	k0 := t.scaleFactor
	ep2 := t.ep2

	phi := ll.Latitude() * math.Pi / 180
	lambda := deltaLong * math.Pi / 180
	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)

	N := a / math.Sqrt(1-e2*sinPhi*sinPhi)
	T := tanPhi * tanPhi
	C := ep2 * cosPhi * cosPhi
	A := cosPhi * lambda
	M := t.meridionalArc(phi)

	A2 := A * A
	A3 := A2 * A
	A4 := A3 * A
	A5 := A4 * A
	A6 := A5 * A

	easting := k0*N*(A+(1-T+C)*A3/6+(5-18*T+T*T+72*C-58*ep2)*A5/120) + t.falseEasting
	northing := k0*(M-t.m0+N*tanPhi*(A2/2+(5-T+9*C+4*C*C)*A4/24+
		(61-58*T+T*T+600*C-330*ep2)*A6/720)) + t.falseNorthing

	if math.IsNaN(easting) || math.IsNaN(northing) {
		return MapCoords{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, ll)
	}
	return MapCoords{Easting: easting, Northing: northing}, nil
}

// Inverse converts Transverse Mercator easting and northing to geodetic
// coordinates.
func (t *TransverseMercator) Inverse(mc MapCoords) (LatLong, error) {
	if math.IsNaN(mc.Easting) || math.IsNaN(mc.Northing) ||
		math.IsInf(mc.Easting, 0) || math.IsInf(mc.Northing, 0) {
		return LatLong{}, fmt.Errorf("%w: easting %v northing %v", ErrInvalidCoordinate, mc.Easting, mc.Northing)
	}

	a := t.ellipsoid.SemiMajorAxis
	e2 := t.ellipsoid.EccentricitySquared
	e4 := e2 * e2
	e6 := e4 * e2
	k0 := t.scaleFactor
	ep2 := t.ep2
	e1 := t.e1

	x := mc.Easting - t.falseEasting
	y := mc.Northing - t.falseNorthing

	// footprint latitude
	M := t.m0 + y/k0
	mu := M / (a * (1 - e2/4 - 3*e4/64 - 5*e6/256))
	phi1 := mu + (3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu)

	sinPhi1 := math.Sin(phi1)
	cosPhi1 := math.Cos(phi1)
	tanPhi1 := math.Tan(phi1)

	N1 := a / math.Sqrt(1-e2*sinPhi1*sinPhi1)
	T1 := tanPhi1 * tanPhi1
	C1 := ep2 * cosPhi1 * cosPhi1
	R1 := a * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
	D := x / (N1 * k0)

	D2 := D * D
	D3 := D2 * D
	D4 := D3 * D
	D5 := D4 * D
	D6 := D5 * D

	lat := phi1 - (N1*tanPhi1/R1)*(D2/2-
		(5+3*T1+10*C1-4*C1*C1-9*ep2)*D4/24+
		(61+90*T1+298*C1+45*T1*T1-252*ep2-3*C1*C1)*D6/720)
	lng := (D - (1+2*T1+C1)*D3/6 +
		(5-2*C1+28*T1-3*C1*C1+8*ep2+24*T1*T1)*D5/120) / cosPhi1

	lat = lat * 180 / math.Pi
	lng = t.centralMeridian + lng*180/math.Pi
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return LatLong{}, fmt.Errorf("%w: easting %v northing %v", ErrInvalidCoordinate, mc.Easting, mc.Northing)
	}
	return NewLatLong(lat, lng), nil
}
