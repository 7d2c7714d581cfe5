package gridconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const mgrsMaxAccuracy = 5 // 1m

// DefaultTemplate renders a grid reference without separators.
const DefaultTemplate = "%z%l%k%e%n"

// 100km square letters. Columns use A-Z and rows use A-V, both without I
// and O. Each of the six sets starts at a different origin letter.
const (
	columnLetters          = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	rowLetters             = "ABCDEFGHJKLMNPQRSTUV"
	setOriginColumnLetters = "AJSAJS"
	setOriginRowLetters    = "AFAFAF"
	num100kSets            = 6
)

// rowCycle is the northing after which the row letters repeat.
const rowCycle = 2000000.0

// MGRSCoord is a decoded MGRS reference: a UTM coordinate plus the number
// of digits used for each of easting and northing.
type MGRSCoord struct {
	UTMCoord
	Accuracy int
}

// Size returns the side of the square described by the reference in meters.
func (m MGRSCoord) Size() float64 {
	return math.Pow(10, float64(mgrsMaxAccuracy-m.Accuracy))
}

// String returns the grid reference, or an empty string if the
// coordinate cannot be encoded.
func (m MGRSCoord) String() string {
	s, err := m.Format(DefaultTemplate)
	if err != nil {
		return ""
	}
	return s
}

// Format renders the reference with a template. %z is replaced by the zone
// number, %l the zone letter, %k the 100km square id, %e the easting digits
// and %n the northing digits.
func (m MGRSCoord) Format(template string) (string, error) {
	if m.Accuracy < 0 || m.Accuracy > mgrsMaxAccuracy {
		return "", fmt.Errorf("%w: %d", ErrInvalidAccuracy, m.Accuracy)
	}
	if m.ZoneNumber < 1 || m.ZoneNumber > 60 {
		return "", fmt.Errorf("%w: %d", ErrInvalidZone, m.ZoneNumber)
	}
	if bandIndex(m.ZoneLetter) < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidZoneLetter, m.ZoneLetter)
	}
	id, err := get100kID(m.Easting, m.Northing, m.ZoneNumber)
	if err != nil {
		return "", err
	}
	r := strings.NewReplacer(
		"%z", strconv.Itoa(m.ZoneNumber),
		"%l", string(m.ZoneLetter),
		"%k", id,
		"%e", gridDigits(m.Easting, m.Accuracy),
		"%n", gridDigits(m.Northing, m.Accuracy),
	)
	return strings.TrimSpace(r.Replace(template)), nil
}

// gridDigits returns the leading accuracy digits of the position within the
// 100km square.
func gridDigits(v float64, accuracy int) string {
	meters := int64(math.Floor(v)) % 100000
	return fmt.Sprintf("%05d", meters)[:accuracy]
}

// EncodeMGRS converts a UTM coordinate to an MGRS reference with accuracy
// digits (0-5) for each of easting and northing.
func EncodeMGRS(c UTMCoord, accuracy int) (string, error) {
	return MGRSCoord{UTMCoord: c, Accuracy: accuracy}.Format(DefaultTemplate)
}

// get100kSetForZone returns the 100km letter set (1-6) of a zone.
func get100kSetForZone(zone int) int {
	set := zone % num100kSets
	if set == 0 {
		set = num100kSets
	}
	return set
}

// get100kID returns the two letter 100km square id for a UTM position.
func get100kID(easting, northing float64, zone int) (string, error) {
	if easting < 0 || northing < 0 || math.IsNaN(easting) || math.IsNaN(northing) {
		return "", fmt.Errorf("%w: easting %v northing %v", ErrInvalidCoordinate, easting, northing)
	}
	set := get100kSetForZone(zone)
	column := int(math.Floor(easting / 100000))
	// there is no column letter west of 100,000m
	if column < 1 {
		return "", fmt.Errorf("%w: easting %v is west of the first column", ErrBadCharacter, easting)
	}
	row := int(math.Floor(northing/100000)) % 20
	return letter100kID(column, row, set)
}

// letter100kID derives the square id from the 1-based column, the 0-based
// row and the letter set. The column letters may wrap past Z once.
func letter100kID(column, row, set int) (string, error) {
	colOrigin := strings.IndexByte(columnLetters, setOriginColumnLetters[set-1])
	rowOrigin := strings.IndexByte(rowLetters, setOriginRowLetters[set-1])

	col := colOrigin + column - 1
	if col < 0 || col >= 2*len(columnLetters) {
		return "", fmt.Errorf("%w: column %d in set %d", ErrBadCharacter, column, set)
	}
	r := (rowOrigin + row) % len(rowLetters)

	return string([]byte{
		columnLetters[col%len(columnLetters)],
		rowLetters[r],
	}), nil
}

// eastingFromLetter returns the easting of the west edge of the 100km column
// named by e.
func eastingFromLetter(e byte, set int) (float64, error) {
	i := strings.IndexByte(columnLetters, e)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadCharacter, e)
	}
	origin := strings.IndexByte(columnLetters, setOriginColumnLetters[set-1])
	steps := (i - origin + len(columnLetters)) % len(columnLetters)
	return float64(steps+1) * 100000, nil
}

// northingFromLetter returns the northing of the south edge of the 100km row
// named by n, modulo rowCycle. The caller adds whole cycles.
func northingFromLetter(n byte, set int) (float64, error) {
	i := strings.IndexByte(rowLetters, n)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadCharacter, n)
	}
	origin := strings.IndexByte(rowLetters, setOriginRowLetters[set-1])
	steps := (i - origin + len(rowLetters)) % len(rowLetters)
	return float64(steps) * 100000, nil
}

// DecodeMGRS parses an MGRS reference. Whitespace is ignored and letters may
// be lower case. The easting and northing are the south west corner of the
// square described by the reference.
func DecodeMGRS(ref string) (MGRSCoord, error) {
	s := strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, ref))

	length := len(s)
	if length == 0 {
		return MGRSCoord{}, fmt.Errorf("%w: empty reference", ErrMalformedReference)
	}

	// up to two leading characters before the first letter are the zone
	i := 0
	for i < length && !isUpper(s[i]) {
		if i >= 2 {
			return MGRSCoord{}, fmt.Errorf("%w: %q", ErrMalformedReference, ref)
		}
		i++
	}
	if i == 0 || i+3 > length {
		return MGRSCoord{}, fmt.Errorf("%w: %q", ErrMalformedReference, ref)
	}
	zoneNumber, err := parseDecimal(s[:i])
	if err != nil {
		return MGRSCoord{}, fmt.Errorf("%w: zone %q", ErrMalformedReference, s[:i])
	}
	if zoneNumber < 1 || zoneNumber > 60 {
		return MGRSCoord{}, fmt.Errorf("%w: %d", ErrInvalidZone, zoneNumber)
	}

	zoneLetter := s[i]
	i++
	if zoneLetter <= 'A' || zoneLetter == 'B' || zoneLetter == 'Y' || zoneLetter >= 'Z' ||
		zoneLetter == 'I' || zoneLetter == 'O' {
		return MGRSCoord{}, fmt.Errorf("%w: %q not handled in %q", ErrInvalidZoneLetter, zoneLetter, ref)
	}
	minNorthing, err := MinNorthing(zoneLetter)
	if err != nil {
		return MGRSCoord{}, err
	}

	hunK := s[i : i+2]
	i += 2

	set := get100kSetForZone(zoneNumber)
	east100k, err := eastingFromLetter(hunK[0], set)
	if err != nil {
		return MGRSCoord{}, err
	}
	north100k, err := northingFromLetter(hunK[1], set)
	if err != nil {
		return MGRSCoord{}, err
	}

	// the remaining digits split into easting and northing halves
	remainder := length - i
	if remainder%2 != 0 {
		return MGRSCoord{}, fmt.Errorf("%w: %d digits in %q", ErrOddDigitCount, remainder, ref)
	}
	sep := remainder / 2
	if sep > mgrsMaxAccuracy {
		return MGRSCoord{}, fmt.Errorf("%w: %d digits per axis in %q", ErrMalformedReference, sep, ref)
	}

	// the row letters repeat every 2,000,000m, so move north until the
	// northing is inside the latitude band
	for north100k < minNorthing {
		north100k += rowCycle
	}

	var sepEasting, sepNorthing float64
	if sep > 0 {
		accuracyBonus := 100000.0 / math.Pow(10, float64(sep))
		e, err := parseDecimal(s[i : i+sep])
		if err != nil {
			return MGRSCoord{}, fmt.Errorf("%w: easting %q", ErrMalformedReference, s[i:i+sep])
		}
		n, err := parseDecimal(s[i+sep:])
		if err != nil {
			return MGRSCoord{}, fmt.Errorf("%w: northing %q", ErrMalformedReference, s[i+sep:])
		}
		sepEasting = float64(e) * accuracyBonus
		sepNorthing = float64(n) * accuracyBonus
	}

	return MGRSCoord{
		UTMCoord: UTMCoord{
			Easting:    sepEasting + east100k,
			Northing:   sepNorthing + north100k,
			ZoneNumber: zoneNumber,
			ZoneLetter: zoneLetter,
		},
		Accuracy: sep,
	}, nil
}

// parseDecimal parses an unsigned base 10 integer. Leading zeros do not
// change the base.
func parseDecimal(s string) (int, error) {
	for j := 0; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return int(v), err
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// MGRS is a coordinate converter to and from MGRS references.
type MGRS struct {
	utm *UTM
}

// NewMGRS constructs an MGRS converter for an ellipsoid.
func NewMGRS(ellipsoid Ellipsoid) (*MGRS, error) {
	utm, err := NewUTM(ellipsoid)
	if err != nil {
		return nil, err
	}
	return &MGRS{utm: utm}, nil
}

// ConvertFromGeodetic converts geodetic coordinates to an MGRS reference.
func (m *MGRS) ConvertFromGeodetic(ll LatLong, accuracy int) (string, error) {
	c, err := m.utm.ConvertFromGeodetic(ll, 0)
	if err != nil {
		return "", err
	}
	return EncodeMGRS(c, accuracy)
}

// ConvertToSquare returns the geodetic extent of an MGRS reference.
func (m *MGRS) ConvertToSquare(ref string) (Square, error) {
	c, err := DecodeMGRS(ref)
	if err != nil {
		return Square{}, err
	}
	return m.utm.ConvertToSquare(c.UTMCoord, c.Size())
}

// ConvertToGeodetic converts an MGRS reference to the center of the square
// it describes.
func (m *MGRS) ConvertToGeodetic(ref string) (LatLong, error) {
	sq, err := m.ConvertToSquare(ref)
	if err != nil {
		return LatLong{}, err
	}
	return sq.Centroid(), nil
}
