package projdef

// ellipsoidDef is a named ellipsoid by semi-major axis and reciprocal
// flattening. A reciprocal flattening of zero is a sphere.
type ellipsoidDef struct {
	a  float64
	rf float64
}

var ellipsoids = map[string]ellipsoidDef{
	"WGS84":    {6378137.0, 298.257223563},
	"GRS80":    {6378137.0, 298.257222101},
	"WGS72":    {6378135.0, 298.26},
	"airy":     {6377563.396, 299.3249646},
	"mod_airy": {6377340.189, 299.3249646},
	"bessel":   {6377397.155, 299.1528128},
	"clrk66":   {6378206.4, 294.9786982},
	"clrk80":   {6378249.145, 293.4663},
	"intl":     {6378388.0, 297.0},
	"krass":    {6378245.0, 298.3},
	"aust_SA":  {6378160.0, 298.25},
	"sphere":   {6370997.0, 0},
}

// datums maps a datum code to its ellipsoid. Datum shifts are not applied.
var datums = map[string]string{
	"WGS84":   "WGS84",
	"NAD83":   "GRS80",
	"NAD27":   "clrk66",
	"OSGB36":  "airy",
	"potsdam": "bessel",
	"GGRS87":  "GRS80",
}

// unitsToMeter is the length of each supported unit in meters.
var unitsToMeter = map[string]float64{
	"m":     1,
	"km":    1000,
	"ft":    0.3048,
	"us-ft": 1200.0 / 3937.0,
}
