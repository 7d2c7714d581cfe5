package gridconv_test

import (
	"math"
	"testing"

	"github.com/tzneal/gridconv"
)

func TestSquareCentroid(t *testing.T) {
	sq := gridconv.Square{
		BottomLeft: gridconv.NewLatLong(10, 20),
		TopRight:   gridconv.NewLatLong(12, 24),
	}
	c := sq.Centroid()
	if c.Latitude() != 11 || c.Longitude() != 22 {
		t.Fatalf("expected 11 22, got %s", c)
	}

	b := sq.Bound()
	if b.Min.Lon() != 20 || b.Min.Lat() != 10 || b.Max.Lon() != 24 || b.Max.Lat() != 12 {
		t.Fatalf("unexpected bound %v", b)
	}
	if !b.Contains(c.Point()) {
		t.Fatalf("expected the bound to contain the centroid")
	}
}

func TestUTMConvertToSquare(t *testing.T) {
	c := gridconv.UTMCoord{Easting: 582000, Northing: 5670000, ZoneNumber: 30, ZoneLetter: 'U'}
	sq, err := gridconv.DefaultUTMConverter.ConvertToSquare(c, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if sq.TopRight.Latitude() <= sq.BottomLeft.Latitude() || sq.TopRight.Longitude() <= sq.BottomLeft.Longitude() {
		t.Fatalf("expected the top right corner north east of the bottom left, got %s / %s", sq.BottomLeft, sq.TopRight)
	}
	// a 1km square at 51N spans roughly 0.009 degrees of latitude
	if d := sq.TopRight.Latitude() - sq.BottomLeft.Latitude(); math.Abs(d-0.009) > 0.001 {
		t.Fatalf("unexpected latitude span %g", d)
	}

	if _, err := gridconv.DefaultUTMConverter.ConvertToSquare(gridconv.UTMCoord{ZoneNumber: 99, ZoneLetter: 'N'}, 1); err == nil {
		t.Fatalf("expected an error for zone 99")
	}
}

func TestMGRSPointNearCentroid(t *testing.T) {
	const lat, lng = 38.8977, -77.0365
	geo := gridconv.NewLatLong(lat, lng)
	for accuracy := 0; accuracy <= 5; accuracy++ {
		ref, err := gridconv.LatLongToMGRS(lat, lng, accuracy)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		mc, err := gridconv.DecodeMGRS(ref)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", ref, err)
		}
		center, err := gridconv.MGRSToPoint(ref)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", ref, err)
		}
		// within half the diagonal, plus rounding to the meter
		d := geo.LatLng().Distance(center.LatLng()).Radians() * gridconv.WGS84.SemiMajorAxis
		if d > mc.Size()*math.Sqrt2/2+2 {
			t.Errorf("%s: centroid %s is %gm from %s", ref, center, d, geo)
		}
	}
}

func TestSquareAcrossAntimeridian(t *testing.T) {
	testCases := []struct {
		bl, tr gridconv.LatLong
		center gridconv.LatLong
		maxLng float64
	}{
		{gridconv.NewLatLong(10, 179.5), gridconv.NewLatLong(11, -179.5), gridconv.NewLatLong(10.5, 180), 180.5},
		{gridconv.NewLatLong(10, 179), gridconv.NewLatLong(12, -177), gridconv.NewLatLong(11, -179), 183},
		{gridconv.NewLatLong(-45, 179.25), gridconv.NewLatLong(-44, -179.75), gridconv.NewLatLong(-44.5, 179.75), 180.25},
	}
	for _, tc := range testCases {
		sq := gridconv.Square{BottomLeft: tc.bl, TopRight: tc.tr}
		c := sq.Centroid()
		if math.Abs(c.Latitude()-tc.center.Latitude()) > 1e-9 || math.Abs(c.Longitude()-tc.center.Longitude()) > 1e-9 {
			t.Errorf("%s / %s: expected centroid %s, got %s", tc.bl, tc.tr, tc.center, c)
		}
		b := sq.Bound()
		if b.Min.Lon() != tc.bl.Longitude() || math.Abs(b.Max.Lon()-tc.maxLng) > 1e-9 {
			t.Errorf("%s / %s: unexpected bound %v", tc.bl, tc.tr, b)
		}
		if b.Min.Lon() >= b.Max.Lon() {
			t.Errorf("%s / %s: bound is inverted %v", tc.bl, tc.tr, b)
		}
	}
}

func TestMGRSPointAcrossAntimeridian(t *testing.T) {
	points := []gridconv.LatLong{
		gridconv.NewLatLong(70, 179.9),
		gridconv.NewLatLong(40, 179.99),
		gridconv.NewLatLong(10, 179.999),
		gridconv.NewLatLong(1, 179.9),
		gridconv.NewLatLong(-45, -179.95),
		gridconv.NewLatLong(-80, 180),
	}
	for _, geo := range points {
		for accuracy := 0; accuracy <= 5; accuracy++ {
			ref, err := gridconv.LatLongToMGRS(geo.Latitude(), geo.Longitude(), accuracy)
			if err != nil {
				t.Fatalf("%s: unexpected error: %s", geo, err)
			}
			mc, err := gridconv.DecodeMGRS(ref)
			if err != nil {
				t.Fatalf("%s: unexpected error: %s", ref, err)
			}
			center, err := gridconv.MGRSToPoint(ref)
			if err != nil {
				t.Fatalf("%s: unexpected error: %s", ref, err)
			}
			d := geo.LatLng().Distance(center.LatLng()).Radians() * gridconv.WGS84.SemiMajorAxis
			if d > mc.Size()*math.Sqrt2/2+2 {
				t.Errorf("%s: centroid %s is %gm from %s", ref, center, d, geo)
			}
		}
	}
}
