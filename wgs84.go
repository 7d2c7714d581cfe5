package gridconv

import "fmt"

// DefaultMGRSConverter is a WGS84 ellipsoid based MGRS converter.
var DefaultMGRSConverter *MGRS

// DefaultUTMConverter is a WGS84 ellipsoid based UTM converter.
var DefaultUTMConverter *UTM

func init() {
	var err error
	DefaultUTMConverter, err = NewUTM(WGS84)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
	DefaultMGRSConverter = &MGRS{utm: DefaultUTMConverter}
}

// GeodeticToUTM converts a WGS84 latitude and longitude in degrees to UTM.
func GeodeticToUTM(lat, lng float64) (UTMCoord, error) {
	return DefaultUTMConverter.ConvertFromGeodetic(NewLatLong(lat, lng), 0)
}

// UTMToGeodetic converts a WGS84 UTM coordinate to latitude and longitude.
func UTMToGeodetic(c UTMCoord) (LatLong, error) {
	return DefaultUTMConverter.ConvertToGeodetic(c)
}

// LatLongToMGRS converts a WGS84 latitude and longitude in degrees to an
// MGRS reference with accuracy digits per axis.
func LatLongToMGRS(lat, lng float64, accuracy int) (string, error) {
	return DefaultMGRSConverter.ConvertFromGeodetic(NewLatLong(lat, lng), accuracy)
}

// MGRSToPoint converts an MGRS reference to the WGS84 center of its square.
func MGRSToPoint(ref string) (LatLong, error) {
	return DefaultMGRSConverter.ConvertToGeodetic(ref)
}

// MGRSToSquare converts an MGRS reference to the WGS84 extent of its square.
func MGRSToSquare(ref string) (Square, error) {
	return DefaultMGRSConverter.ConvertToSquare(ref)
}
