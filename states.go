package siteindex

import (
	"math"
	"regexp"
	"strings"
)

// Coordinate is an approximate geographic center of a US state.
type Coordinate struct {
	Lat float64
	Lon float64
}

// StateCoordinates maps two-letter state codes to approximate state
// centers, used for great-circle distance between a user's region and a
// document's tagged states.
var StateCoordinates = map[string]Coordinate{
	"AL": {32.806671, -86.791130}, "AK": {61.370716, -152.404419}, "AZ": {33.729759, -111.431221},
	"AR": {34.969704, -92.373123}, "CA": {36.116203, -119.681564}, "CO": {39.059811, -105.311104},
	"CT": {41.597782, -72.755371}, "DE": {39.318523, -75.507141}, "FL": {27.766279, -81.686783},
	"GA": {33.040619, -83.643074}, "HI": {21.094318, -157.498337}, "ID": {44.240459, -114.478828},
	"IL": {40.349457, -88.986137}, "IN": {39.849426, -86.258278}, "IA": {42.011539, -93.210526},
	"KS": {38.526600, -96.726486}, "KY": {37.668140, -84.670067}, "LA": {31.169546, -91.867805},
	"ME": {44.323535, -69.765261}, "MD": {39.063946, -76.802101}, "MA": {42.230171, -71.530106},
	"MI": {43.326618, -84.536095}, "MN": {45.694454, -93.900192}, "MS": {32.741646, -89.678696},
	"MO": {38.572954, -92.189283}, "MT": {46.921925, -110.454353}, "NE": {41.125370, -98.268082},
	"NV": {38.313515, -117.055374}, "NH": {43.452492, -71.563896}, "NJ": {40.298904, -74.521011},
	"NM": {34.840515, -106.248482}, "NY": {42.165726, -74.948051}, "NC": {35.630066, -79.806419},
	"ND": {47.528912, -99.784012}, "OH": {40.388783, -82.764915}, "OK": {35.565342, -96.928917},
	"OR": {44.572021, -122.070938}, "PA": {40.590752, -77.209755}, "RI": {41.680893, -71.511780},
	"SC": {33.856892, -80.945007}, "SD": {44.299782, -99.438828}, "TN": {35.747845, -86.692345},
	"TX": {31.054487, -97.563461}, "UT": {40.150032, -111.892622}, "VT": {44.045876, -72.710686},
	"VA": {37.769337, -78.169968}, "WA": {47.400902, -121.490494}, "WV": {38.491226, -80.954453},
	"WI": {44.268543, -89.616508}, "WY": {42.755966, -107.302490}, "DC": {38.907192, -77.036873},
}

// StateNames maps lowercase full state names to their two-letter codes.
var StateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR", "california": "CA",
	"colorado": "CO", "connecticut": "CT", "delaware": "DE", "florida": "FL", "georgia": "GA",
	"hawaii": "HI", "idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV", "new hampshire": "NH", "new jersey": "NJ",
	"new mexico": "NM", "new york": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
	"district of columbia": "DC", "washington dc": "DC", "dc": "DC",
}

// StateCodeFromName maps a full state name (any case) to its two-letter
// code. The ok result is false for unrecognized names.
func StateCodeFromName(name string) (string, bool) {
	code, ok := StateNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// earthRadiusMiles is the Earth radius used for great-circle distances.
const earthRadiusMiles = 3959

// Distance returns the great-circle distance in miles between two
// coordinates, using the Haversine formula.
func Distance(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

// StateDistance returns the distance in miles between two state codes.
// The ok result is false if either code is unknown.
func StateDistance(a, b string) (float64, bool) {
	ca, ok := StateCoordinates[a]
	if !ok {
		return 0, false
	}
	cb, ok := StateCoordinates[b]
	if !ok {
		return 0, false
	}
	return Distance(ca, cb), true
}

// abbrPattern matches candidate two-letter state abbreviations on word
// boundaries, so "OR" never matches inside "for". Abbreviations are
// matched uppercase-only; lowercase two-letter words ("in", "me", "or")
// are everyday English, not location signals.
var abbrPattern = regexp.MustCompile(`\b[A-Z]{2}\b`)

// statePatterns matches full state names, case-insensitively, on word
// boundaries.
var statePatterns = buildStatePatterns()

func buildStatePatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(StateNames))
	for name := range StateNames {
		patterns[name] = regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	}
	return patterns
}

// DetectStatesInText scans free text for state abbreviations and full
// state names and returns the deduplicated set of matched codes. Unlike
// the structured location signals, which yield at most one state, this
// scan may yield several: every independent match counts.
func DetectStatesInText(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var states []string

	for _, candidate := range abbrPattern.FindAllString(text, -1) {
		if _, ok := StateCoordinates[candidate]; ok && !seen[candidate] {
			seen[candidate] = true
			states = append(states, candidate)
		}
	}

	lower := strings.ToLower(text)
	for name, pattern := range statePatterns {
		if pattern.MatchString(lower) {
			code := StateNames[name]
			if !seen[code] {
				seen[code] = true
				states = append(states, code)
			}
		}
	}

	return states
}
