package gridconv_test

import (
	"errors"
	"math"
	"testing"

	"github.com/tzneal/gridconv"
)

// British National Grid parameters on the Airy 1830 ellipsoid.
func newNationalGrid(t *testing.T) *gridconv.TransverseMercator {
	t.Helper()
	airy, err := gridconv.NewEllipsoid(6377563.396, 1/299.3249646)
	if err != nil {
		t.Fatalf("error creating ellipsoid: %s", err)
	}
	tm, err := gridconv.NewTransverseMercator(airy, -2, 49, 400000, -100000, 0.9996012717)
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	return tm
}

func TestTransverseMercatorOrigin(t *testing.T) {
	tm := newNationalGrid(t)
	mc, err := tm.Forward(gridconv.NewLatLong(49, -2))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(mc.Easting-400000) > 1e-6 || math.Abs(mc.Northing+100000) > 1e-6 {
		t.Fatalf("expected the origin at 400000 -100000, got %v", mc)
	}
	ll, err := tm.Inverse(gridconv.MapCoords{Easting: 400000, Northing: -100000})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(ll.Latitude()-49) > 1e-6 || math.Abs(ll.Longitude()+2) > 1e-6 {
		t.Fatalf("expected 49 -2, got %s", ll)
	}
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	var projections []gridconv.Projection
	projections = append(projections, newNationalGrid(t))

	sphere, err := gridconv.NewEllipsoid(6371000, 0)
	if err != nil {
		t.Fatalf("error creating sphere: %s", err)
	}
	tm, err := gridconv.NewTransverseMercator(sphere, 10, 0, 0, 0, 1)
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	projections = append(projections, tm)

	for _, p := range projections {
		for lat := -60.0; lat <= 60; lat += 2.5 {
			for dLng := -3.0; dLng <= 3; dLng += 0.5 {
				cm := p.(*gridconv.TransverseMercator).CentralMeridian()
				geo := gridconv.NewLatLong(lat, cm+dLng)
				mc, err := p.Forward(geo)
				if err != nil {
					t.Fatalf("%s: unexpected error: %s", geo, err)
				}
				back, err := p.Inverse(mc)
				if err != nil {
					t.Fatalf("%v: unexpected error: %s", mc, err)
				}
				if d := geo.LatLng().Distance(back.LatLng()).Radians() * 6371000; d > 0.01 {
					t.Fatalf("%s: round trip moved %gm to %s", geo, d, back)
				}
			}
		}
	}
}

func TestTransverseMercatorErrors(t *testing.T) {
	tm := newNationalGrid(t)
	if _, err := tm.Forward(gridconv.NewLatLong(50, 100)); !errors.Is(err, gridconv.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate far from the central meridian, got %v", err)
	}
	if _, err := tm.Forward(gridconv.NewLatLong(math.NaN(), 0)); !errors.Is(err, gridconv.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate for NaN, got %v", err)
	}
	if _, err := tm.Inverse(gridconv.MapCoords{Easting: math.Inf(1)}); !errors.Is(err, gridconv.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate for an infinite easting, got %v", err)
	}

	for _, k := range []float64{0, 0.05, 11, math.NaN()} {
		if _, err := gridconv.NewTransverseMercator(gridconv.WGS84, 0, 0, 0, 0, k); err == nil {
			t.Errorf("expected an error for scale factor %g", k)
		}
	}
	if _, err := gridconv.NewTransverseMercator(gridconv.WGS84, 0, 91, 0, 0, 1); err == nil {
		t.Errorf("expected an error for origin latitude 91")
	}
}

func TestNewEllipsoid(t *testing.T) {
	e, err := gridconv.NewEllipsoid(6378137, 1/298.257223563)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(e.EccentricitySquared-gridconv.WGS84.EccentricitySquared) > 1e-8 {
		t.Fatalf("expected e^2 near %g, got %g", gridconv.WGS84.EccentricitySquared, e.EccentricitySquared)
	}
	if _, err := gridconv.NewEllipsoid(0, 0); err == nil {
		t.Fatalf("expected an error for a zero semi-major axis")
	}
	if _, err := gridconv.NewEllipsoid(1, 1); err == nil {
		t.Fatalf("expected an error for a flattening of 1")
	}
}
