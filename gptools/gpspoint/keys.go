package gpspoint

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"gpspoint-tools/gptools/coord"
	"gpspoint-tools/gptools/layer"
)

// RecordType is what a line describes, taken from its type attribute
type RecordType int

// Record types
const (
	NoRecord RecordType = iota
	WaypointRecord
	TrackpointRecord
	RoutepointRecord
	TrackRecord
	TrackEndRecord
	RouteRecord
	RouteEndRecord
)

var recordTypeNames = [...]string{
	NoRecord:         "none",
	WaypointRecord:   "waypoint",
	TrackpointRecord: "trackpoint",
	RoutepointRecord: "routepoint",
	TrackRecord:      "track",
	TrackEndRecord:   "trackend",
	RouteRecord:      "route",
	RouteEndRecord:   "routeend",
}

var recordTypes = map[string]RecordType{}

func init() {
	for rt, name := range recordTypeNames {
		if RecordType(rt) != NoRecord {
			recordTypes[name] = RecordType(rt)
		}
	}
}

func (rt RecordType) String() string {
	if rt < 0 || int(rt) >= len(recordTypeNames) {
		return "RecordType(" + strconv.Itoa(int(rt)) + ")"
	}
	return recordTypeNames[rt]
}

// ParseRecordType maps a type value, ignoring case. Unknown values,
// waypointlist markers included, give NoRecord.
func ParseRecordType(s string) RecordType {
	return recordTypes[strings.ToLower(s)]
}

type key int

const (
	keyType key = iota
	keyName
	keyComment
	keyDescription
	keySource
	keyXType
	keyColor
	keyDrawNameMode
	keyNumberDistLabels
	keyImage
	keyImageDirection
	keyImageDirectionRef
	keyLatitude
	keyLongitude
	keyAltitude
	keyVisible
	keySymbol
	keyUnixtime
	keyNewSegment
	keyExtended
	keySpeed
	keyCourse
	keySat
	keyFix
	keyHDOP
	keyVDOP
	keyPDOP
	numKeys
)

var keyNames = [numKeys]string{
	keyType:              "type",
	keyName:              "name",
	keyComment:           "comment",
	keyDescription:       "description",
	keySource:            "source",
	keyXType:             "xtype",
	keyColor:             "color",
	keyDrawNameMode:      "draw_name_mode",
	keyNumberDistLabels:  "number_dist_labels",
	keyImage:             "image",
	keyImageDirection:    "image_direction",
	keyImageDirectionRef: "image_direction_ref",
	keyLatitude:          "latitude",
	keyLongitude:         "longitude",
	keyAltitude:          "altitude",
	keyVisible:           "visible",
	keySymbol:            "symbol",
	keyUnixtime:          "unixtime",
	keyNewSegment:        "newsegment",
	keyExtended:          "extended",
	keySpeed:             "speed",
	keyCourse:            "course",
	keySat:               "sat",
	keyFix:               "fix",
	keyHDOP:              "hdop",
	keyVDOP:              "vdop",
	keyPDOP:              "pdop",
}

var keysByName = map[string]key{}

func init() {
	for k, name := range keyNames {
		keysByName[name] = key(k)
	}
}

// lineState accumulates the attributes of the line being parsed
type lineState struct {
	typ RecordType
	ll  coord.LatLon

	name        string
	comment     string
	description string
	source      string
	xtype       string
	color       string
	image       string
	symbol      string

	nameLabel int
	distLabel int

	imageDirection    float64
	imageDirectionRef layer.DirectionRef

	altitude   float64
	timestamp  float64
	visible    bool
	newSegment bool

	extended bool
	speed    float64
	course   float64
	sats     int
	fix      int
	hdop     float64
	vdop     float64
	pdop     float64
}

func (s *lineState) reset() {
	nan := math.NaN()
	*s = lineState{
		imageDirection: nan,
		altitude:       nan,
		timestamp:      nan,
		visible:        true,
		speed:          nan,
		course:         nan,
		hdop:           nan,
		vdop:           nan,
		pdop:           nan,
	}
}

// apply records one attribute, returning false when the key is unknown
func (s *lineState) apply(tag Tag) bool {
	k, ok := keysByName[strings.ToLower(tag.Key)]
	if !ok {
		return false
	}
	// a type without value clears the record type
	if tag.HasValue || k == keyType {
		keyHandlers[k](s, tag.Value)
	}
	return true
}

// text values keep their first occurrence on a line
func firstText(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

var keyHandlers = [numKeys]func(s *lineState, v string){
	keyType:              func(s *lineState, v string) { s.typ = ParseRecordType(v) },
	keyName:              func(s *lineState, v string) { firstText(&s.name, v) },
	keyComment:           func(s *lineState, v string) { firstText(&s.comment, v) },
	keyDescription:       func(s *lineState, v string) { firstText(&s.description, v) },
	keySource:            func(s *lineState, v string) { firstText(&s.source, v) },
	keyXType:             func(s *lineState, v string) { firstText(&s.xtype, v) },
	keyColor:             func(s *lineState, v string) { firstText(&s.color, v) },
	keyDrawNameMode:      func(s *lineState, v string) { s.nameLabel = parseInt(v) },
	keyNumberDistLabels:  func(s *lineState, v string) { s.distLabel = parseInt(v) },
	keyImage:             func(s *lineState, v string) { firstText(&s.image, v) },
	keyImageDirection:    func(s *lineState, v string) { s.imageDirection = parseFloat(v) },
	keyImageDirectionRef: func(s *lineState, v string) { s.imageDirectionRef = parseDirectionRef(v) },
	keyLatitude:          func(s *lineState, v string) { s.ll.Lat = parseFloat(v) },
	keyLongitude:         func(s *lineState, v string) { s.ll.Lon = parseFloat(v) },
	keyAltitude:          func(s *lineState, v string) { s.altitude = parseFloat(v) },
	keyVisible:           func(s *lineState, v string) { s.visible = isTrue(v) },
	keySymbol:            func(s *lineState, v string) { s.symbol = v },
	keyUnixtime:          func(s *lineState, v string) { s.timestamp = parseFloat(v) },
	keyNewSegment:        func(s *lineState, v string) { s.newSegment = true },
	keyExtended:          func(s *lineState, v string) { s.extended = true },
	keySpeed:             func(s *lineState, v string) { s.speed = parseFloat(v) },
	keyCourse:            func(s *lineState, v string) { s.course = parseFloat(v) },
	keySat:               func(s *lineState, v string) { s.sats = parseInt(v) },
	keyFix:               func(s *lineState, v string) { s.fix = parseInt(v) },
	keyHDOP:              func(s *lineState, v string) { s.hdop = parseFloat(v) },
	keyVDOP:              func(s *lineState, v string) { s.vdop = parseFloat(v) },
	keyPDOP:              func(s *lineState, v string) { s.pdop = parseFloat(v) },
}

// isTrue is false unless v starts with y, Y, t or T
func isTrue(v string) bool {
	if v == "" {
		return false
	}
	switch v[0] {
	case 'y', 'Y', 't', 'T':
		return true
	}
	return false
}

// parseFloat reads the longest locale independent decimal prefix of v, like
// strtod: 0 when there is none, ±Inf when out of range.
func parseFloat(v string) float64 {
	f, err := strconv.ParseFloat(floatPrefix(strings.TrimLeft(v, " \t\n\v\f\r")), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

// parseInt reads the longest integer prefix of v, like atoi
func parseInt(v string) int {
	i, err := strconv.Atoi(intPrefix(strings.TrimLeft(v, " \t\n\v\f\r")))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return i
}

func floatPrefix(v string) string {
	n := signLen(v)
	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(v)-n >= len(word) && strings.EqualFold(v[n:n+len(word)], word) {
			return v[:n+len(word)]
		}
	}

	mantissa := digitsLen(v[n:])
	n += mantissa
	if n < len(v) && v[n] == '.' {
		frac := digitsLen(v[n+1:])
		mantissa += frac
		if mantissa > 0 {
			n += 1 + frac
		}
	}
	if mantissa == 0 {
		return ""
	}

	if n < len(v) && (v[n] == 'e' || v[n] == 'E') {
		e := n + 1
		e += signLen(v[e:])
		if exp := digitsLen(v[e:]); exp > 0 {
			n = e + exp
		}
	}
	return v[:n]
}

func intPrefix(v string) string {
	n := signLen(v)
	digits := digitsLen(v[n:])
	if digits == 0 {
		return ""
	}
	return v[:n+digits]
}

func signLen(v string) int {
	if v != "" && (v[0] == '+' || v[0] == '-') {
		return 1
	}
	return 0
}

func digitsLen(v string) int {
	n := 0
	for n < len(v) && v[n] >= '0' && v[n] <= '9' {
		n++
	}
	return n
}

func parseDirectionRef(v string) layer.DirectionRef {
	if parseInt(v) == int(layer.MagneticNorth) {
		return layer.MagneticNorth
	}
	return layer.TrueNorth
}
