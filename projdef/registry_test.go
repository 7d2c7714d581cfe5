package projdef

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tzneal/gridconv"
)

func TestRegistryNationalGrid(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	d, err := r.Lookup("epsg:27700")
	if err != nil {
		t.Fatalf("Failed to look up EPSG:27700: %v", err)
	}
	p, err := d.Transform()
	if err != nil {
		t.Fatalf("Failed to create projection: %v", err)
	}

	mc, err := p.Forward(gridconv.NewLatLong(49, -2))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if math.Abs(mc.Easting-400000) > 1e-6 || math.Abs(mc.Northing+100000) > 1e-6 {
		t.Errorf("Expected the true origin at 400000 -100000, got %v", mc)
	}

	// Caister water tower, OSGB36
	mc, err = p.Forward(gridconv.NewLatLong(52.6575703056, 1.7179215833))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if math.Abs(mc.Easting-651409.903) > 0.01 || math.Abs(mc.Northing-313177.270) > 0.01 {
		t.Errorf("Expected 651409.903 313177.270, got %v", mc)
	}
	ll, err := p.Inverse(mc)
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	if math.Abs(ll.Latitude()-52.6575703056) > 1e-7 || math.Abs(ll.Longitude()-1.7179215833) > 1e-7 {
		t.Errorf("Round trip returned %s", ll)
	}
}

func TestRegistryUTMMatchesGridconv(t *testing.T) {
	r, err := NewRegistry(map[string]string{
		"stonehenge": "+proj=utm +zone=30 +datum=WGS84 +units=m +no_defs",
	})
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}

	exp, err := gridconv.GeodeticToUTM(51.178861, -1.826412)
	if err != nil {
		t.Fatalf("GeodeticToUTM failed: %v", err)
	}
	for _, name := range []string{"STONEHENGE", "EPSG:32630"} {
		d, err := r.Lookup(name)
		if err != nil {
			t.Fatalf("Failed to look up %s: %v", name, err)
		}
		p, err := d.Transform()
		if err != nil {
			t.Fatalf("Failed to create projection: %v", err)
		}
		mc, err := p.Forward(gridconv.NewLatLong(51.178861, -1.826412))
		if err != nil {
			t.Fatalf("Forward failed: %v", err)
		}
		if math.Abs(mc.Easting-exp.Easting) > 1 || math.Abs(mc.Northing-exp.Northing) > 1 {
			t.Errorf("%s: expected %s, got %v", name, exp, mc)
		}
	}
}

func TestRegistrySouthernUTM(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	d, err := r.Lookup("EPSG:32731")
	if err != nil {
		t.Fatalf("Failed to look up EPSG:32731: %v", err)
	}
	if d.Zone != 31 || !d.South {
		t.Fatalf("Expected zone 31 south, got %d %v", d.Zone, d.South)
	}
	p, err := d.Transform()
	if err != nil {
		t.Fatalf("Failed to create projection: %v", err)
	}
	mc, err := p.Forward(gridconv.NewLatLong(-1, 3))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if math.Abs(mc.Easting-500000) > 1e-6 || math.Abs(mc.Northing-9889469.841) > 0.01 {
		t.Errorf("Unexpected coordinates %v", mc)
	}
}

func TestTransformUnits(t *testing.T) {
	d, err := Parse("+proj=utm +zone=30 +datum=WGS84 +units=ft")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	p, err := d.Transform()
	if err != nil {
		t.Fatalf("Failed to create projection: %v", err)
	}
	geo := gridconv.NewLatLong(51.178861, -1.826412)
	mc, err := p.Forward(geo)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if math.Abs(mc.Easting-1909553.667) > 0.01 || math.Abs(mc.Northing-18603575.476) > 0.01 {
		t.Errorf("Unexpected coordinates in feet %v", mc)
	}
	back, err := p.Inverse(mc)
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	if math.Abs(back.Latitude()-geo.Latitude()) > 1e-7 || math.Abs(back.Longitude()-geo.Longitude()) > 1e-7 {
		t.Errorf("Round trip returned %s", back)
	}
}

func TestTransformLongLat(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	d, err := r.Lookup("EPSG:4326")
	if err != nil {
		t.Fatalf("Failed to look up EPSG:4326: %v", err)
	}
	p, err := d.Transform()
	if err != nil {
		t.Fatalf("Failed to create projection: %v", err)
	}
	mc, err := p.Forward(gridconv.NewLatLong(10, 20))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if mc.Easting != 20 || mc.Northing != 10 {
		t.Errorf("Expected 20 10, got %v", mc)
	}
	ll, err := p.Inverse(gridconv.MapCoords{Easting: 190, Northing: 10})
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	if ll.Longitude() != -170 {
		t.Errorf("Expected the longitude to be normalized, got %s", ll)
	}
}

func TestTransformErrors(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	d, err := r.Lookup("EPSG:900913")
	if err != nil {
		t.Fatalf("Failed to look up EPSG:900913: %v", err)
	}
	if _, err := d.Transform(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported for merc, got %v", err)
	}

	d, err = Parse("+proj=utm +zone=61")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if _, err := d.Transform(); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("Expected ErrInvalidDefinition for zone 61, got %v", err)
	}

	d, err = Parse("+proj=tmerc +k=0")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if _, err := d.Transform(); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("Expected ErrInvalidDefinition for a zero scale factor, got %v", err)
	}
}

func TestRegistryLookupErrors(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	for _, name := range []string{"", "EPSG:1", "EPSG:32600", "EPSG:32661", "nope"} {
		if _, err := r.Lookup(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("%q: expected ErrNotFound, got %v", name, err)
		}
	}

	if _, err := NewRegistry(map[string]string{"bad": "+proj=tmerc +k=x"}); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("Expected ErrInvalidDefinition from a bad definition, got %v", err)
	}
}

func TestRegistryNames(t *testing.T) {
	r, err := NewRegistry(map[string]string{"local": "+proj=tmerc +lon_0=10"})
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	exp := []string{"EPSG:27700", "EPSG:4269", "EPSG:4326", "EPSG:900913", "LOCAL"}
	names := r.Names()
	if !reflect.DeepEqual(names, exp) {
		t.Fatalf("Expected %v, got %v", exp, names)
	}
	// callers cannot modify the registry through the returned slice
	names[0] = "changed"
	if r.Names()[0] != "EPSG:27700" {
		t.Fatalf("Names returned the internal slice")
	}
}
