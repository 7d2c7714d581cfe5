package projdef

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tzneal/gridconv"
)

// Definition is a parsed projection definition. Angles are in degrees and
// false easting/northing in meters.
type Definition struct {
	Source string
	Title  string

	// Projection is the +proj value, e.g. "utm", "tmerc" or "longlat".
	Projection string
	Zone       int
	South      bool

	EllipsoidName string
	Datum         string
	Ellipsoid     gridconv.Ellipsoid

	LatOrigin       float64
	CentralMeridian float64
	ScaleFactor     float64
	FalseEasting    float64
	FalseNorthing   float64

	Units   string
	ToMeter float64

	// Params holds every parameter as written, including ones that are
	// otherwise ignored. Flags have an empty value.
	Params map[string]string
}

// ellipsoidParams collects the ellipsoid related parameters before the
// ellipsoid is resolved.
type ellipsoidParams struct {
	a, b, rf, f, es, r float64
}

func newDefinition(source string, ast *definitionAST) (*Definition, error) {
	d := &Definition{
		Source:      strings.TrimSpace(source),
		ScaleFactor: 1,
		Units:       "m",
		ToMeter:     1,
		Params:      map[string]string{},
	}
	var ep ellipsoidParams
	toMeterSet := false

	for _, p := range ast.Params {
		key := p.Key
		d.Params[key] = strings.Join(p.Values, ",")

		var err error
		switch key {
		case "title":
			d.Title = strings.Join(p.Values, " ")
		case "proj":
			d.Projection, err = singleValue(p)
		case "zone":
			var v string
			if v, err = singleValue(p); err == nil {
				if d.Zone, err = strconv.Atoi(v); err != nil {
					err = fmt.Errorf("%w: +zone=%s", ErrInvalidDefinition, v)
				}
			}
		case "south":
			d.South = true
		case "ellps":
			d.EllipsoidName, err = singleValue(p)
		case "datum":
			d.Datum, err = singleValue(p)
		case "a":
			ep.a, err = floatValue(p)
		case "b":
			ep.b, err = floatValue(p)
		case "rf":
			ep.rf, err = floatValue(p)
		case "f":
			ep.f, err = floatValue(p)
		case "es":
			ep.es, err = floatValue(p)
		case "R":
			ep.r, err = floatValue(p)
		case "lat_0":
			d.LatOrigin, err = floatValue(p)
		case "lon_0":
			d.CentralMeridian, err = floatValue(p)
		case "k", "k_0":
			d.ScaleFactor, err = floatValue(p)
		case "x_0":
			d.FalseEasting, err = floatValue(p)
		case "y_0":
			d.FalseNorthing, err = floatValue(p)
		case "units":
			d.Units, err = singleValue(p)
		case "to_meter":
			d.ToMeter, err = floatValue(p)
			toMeterSet = true
		case "towgs84":
			err = checkTOWGS84(p)
		}
		// anything else is kept in Params and otherwise ignored
		if err != nil {
			return nil, err
		}
	}

	if d.Projection == "" {
		return nil, fmt.Errorf("%w: missing +proj in %q", ErrInvalidDefinition, d.Source)
	}
	// angular units only apply to longlat, which is never scaled
	if !toMeterSet && d.Units != "degrees" {
		toMeter, ok := unitsToMeter[d.Units]
		if !ok {
			return nil, fmt.Errorf("%w: units %q", ErrUnsupported, d.Units)
		}
		d.ToMeter = toMeter
	}
	if d.ToMeter <= 0 || math.IsNaN(d.ToMeter) {
		return nil, fmt.Errorf("%w: to_meter %v", ErrInvalidDefinition, d.ToMeter)
	}

	ell, err := d.resolveEllipsoid(ep)
	if err != nil {
		return nil, err
	}
	d.Ellipsoid = ell
	return d, nil
}

// resolveEllipsoid picks the ellipsoid from explicit axes first, then the
// datum, then the ellipsoid name, defaulting to WGS84.
func (d *Definition) resolveEllipsoid(ep ellipsoidParams) (gridconv.Ellipsoid, error) {
	if ep.r != 0 {
		ell, err := gridconv.NewEllipsoid(ep.r, 0)
		if err != nil {
			return gridconv.Ellipsoid{}, fmt.Errorf("%w: %s", ErrInvalidDefinition, err)
		}
		return ell, nil
	}
	if ep.a != 0 {
		var ell gridconv.Ellipsoid
		var err error
		switch {
		case ep.b > 0:
			ell = gridconv.Ellipsoid{SemiMajorAxis: ep.a, EccentricitySquared: (ep.a*ep.a - ep.b*ep.b) / (ep.a * ep.a)}
			err = ell.Validate()
		case ep.rf > 0:
			ell, err = gridconv.NewEllipsoid(ep.a, 1/ep.rf)
		case ep.f > 0:
			ell, err = gridconv.NewEllipsoid(ep.a, ep.f)
		default:
			ell = gridconv.Ellipsoid{SemiMajorAxis: ep.a, EccentricitySquared: ep.es}
			err = ell.Validate()
		}
		if err != nil {
			return gridconv.Ellipsoid{}, fmt.Errorf("%w: %s", ErrInvalidDefinition, err)
		}
		return ell, nil
	}

	name := d.EllipsoidName
	if d.Datum != "" && d.Datum != "none" {
		ellps, ok := datums[d.Datum]
		if !ok {
			return gridconv.Ellipsoid{}, fmt.Errorf("%w: unknown datum %q", ErrInvalidDefinition, d.Datum)
		}
		name = ellps
		d.EllipsoidName = ellps
	}
	if name == "" {
		name = "WGS84"
		d.EllipsoidName = name
	}
	def, ok := ellipsoids[name]
	if !ok {
		return gridconv.Ellipsoid{}, fmt.Errorf("%w: unknown ellipsoid %q", ErrInvalidDefinition, name)
	}
	var f float64
	if def.rf != 0 {
		f = 1 / def.rf
	}
	return gridconv.NewEllipsoid(def.a, f)
}

// Transform returns the projection described by the definition. Projected
// coordinates are in the definition's units.
func (d *Definition) Transform() (gridconv.Projection, error) {
	var p gridconv.Projection
	switch d.Projection {
	case "longlat", "latlong", "lonlat", "latlon":
		return longLat{}, nil
	case "utm":
		if d.Zone < 1 || d.Zone > 60 {
			return nil, fmt.Errorf("%w: utm zone %d", ErrInvalidDefinition, d.Zone)
		}
		falseNorthing := 0.0
		if d.South {
			falseNorthing = 10000000
		}
		tm, err := gridconv.NewTransverseMercator(d.Ellipsoid,
			float64((d.Zone-1)*6-180+3), 0, 500000, falseNorthing, 0.9996)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDefinition, err)
		}
		p = tm
	case "tmerc":
		tm, err := gridconv.NewTransverseMercator(d.Ellipsoid, d.CentralMeridian, d.LatOrigin,
			d.FalseEasting, d.FalseNorthing, d.ScaleFactor)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDefinition, err)
		}
		p = tm
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, d.Projection)
	}
	if d.ToMeter != 1 {
		p = scaled{Projection: p, toMeter: d.ToMeter}
	}
	return p, nil
}

func singleValue(p *param) (string, error) {
	if len(p.Values) != 1 {
		return "", fmt.Errorf("%w: +%s expects one value, got %d", ErrInvalidDefinition, p.Key, len(p.Values))
	}
	return p.Values[0], nil
}

func floatValue(p *param) (float64, error) {
	v, err := singleValue(p)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: +%s=%s is not a number", ErrInvalidDefinition, p.Key, v)
	}
	return f, nil
}

// checkTOWGS84 accepts only a null shift.
func checkTOWGS84(p *param) error {
	if len(p.Values) != 3 && len(p.Values) != 7 {
		return fmt.Errorf("%w: +towgs84 expects 3 or 7 values, got %d", ErrInvalidDefinition, len(p.Values))
	}
	for _, v := range p.Values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: +towgs84 value %q", ErrInvalidDefinition, v)
		}
		if f != 0 {
			return fmt.Errorf("%w: datum shift +towgs84=%s", ErrUnsupported, strings.Join(p.Values, ","))
		}
	}
	return nil
}
