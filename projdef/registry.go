package projdef

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultDefinitions are always present in a Registry.
var DefaultDefinitions = map[string]string{
	"EPSG:4326":   "+title=WGS 84 +proj=longlat +ellps=WGS84 +datum=WGS84 +units=degrees",
	"EPSG:4269":   "+title=NAD83 +proj=longlat +ellps=GRS80 +datum=NAD83 +units=degrees",
	"EPSG:27700":  "+proj=tmerc +lat_0=49 +lon_0=-2 +k=0.9996012717 +x_0=400000 +y_0=-100000 +ellps=airy +datum=OSGB36 +units=m +no_defs",
	"EPSG:900913": "+title= Google Mercator EPSG:900913 +proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs",
}

// Registry is a read-only set of named definitions. It is safe for
// concurrent use.
type Registry struct {
	defs  map[string]*Definition
	names []string
}

// NewRegistry parses the default definitions plus defs, which may replace a
// default. Names are case insensitive. Every definition is parsed up front
// and the first failure is returned.
func NewRegistry(defs map[string]string) (*Registry, error) {
	all := map[string]string{}
	for name, def := range DefaultDefinitions {
		all[strings.ToUpper(name)] = def
	}
	for name, def := range defs {
		all[strings.ToUpper(name)] = def
	}

	r := &Registry{defs: make(map[string]*Definition, len(all))}
	for name, src := range all {
		d, err := Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		r.defs[name] = d
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup returns the definition registered under name. WGS84 UTM codes
// EPSG:32601-32660 (north) and EPSG:32701-32760 (south) resolve without
// being registered.
func (r *Registry) Lookup(name string) (*Definition, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if d, ok := r.defs[key]; ok {
		return d, nil
	}
	if src, ok := utmDefinition(key); ok {
		return Parse(src)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func utmDefinition(key string) (string, bool) {
	code, ok := strings.CutPrefix(key, "EPSG:")
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return "", false
	}
	switch {
	case n >= 32601 && n <= 32660:
		return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", n-32600), true
	case n >= 32701 && n <= 32760:
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", n-32700), true
	}
	return "", false
}
