package extract

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pvollmer/origo/internal/model"
)

// Sub-field tags of the findspot comment fragment. The tags are part of the
// upstream wire format and must not be translated.
const (
	latTag      = "latitude="
	longTag     = "longitude="
	provinceTag = "provinz="
)

// parsePlaceComment extracts findspot name, province, and coordinates from a
// findspot comment fragment. The place name is the free text between the
// first ">" and the next tag boundary; latitude/longitude/province are
// key=value style tags. Missing tags yield the "error" sentinel (name,
// province) or absent coordinates.
func parsePlaceComment(place string) (findspot, province string, coords *model.Coordinates) {
	findspot = placeName(place)
	province = placeProvince(place)

	lat, latOK := placeCoordinate(place, latTag)
	long, longOK := placeCoordinate(place, longTag)
	if latOK && longOK {
		coords = &model.Coordinates{Lat: lat, Long: long}
	}
	return findspot, province, coords
}

// placeName returns the text between the first ">" and the following "<".
func placeName(place string) string {
	start := strings.IndexByte(place, '>')
	if start < 0 {
		return model.ErrorValue
	}
	rest := place[start+1:]
	if end := strings.IndexByte(rest, '<'); end >= 0 {
		return rest[:end]
	}
	return rest
}

// placeCoordinate scans the numeric value following tag: digits, full
// stops, and minus signs up to the first other character.
func placeCoordinate(place, tag string) (float64, bool) {
	start := strings.Index(place, tag)
	if start < 0 {
		return 0, false
	}
	var b strings.Builder
	for _, r := range place[start+len(tag):] {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			b.WriteRune(r)
		} else {
			break
		}
	}
	val, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// placeProvince accumulates alphanumeric characters, spaces, and slashes
// after the province tag.
func placeProvince(place string) string {
	start := strings.Index(place, provinceTag)
	if start < 0 {
		return model.ErrorValue
	}
	var b strings.Builder
	for _, r := range place[start+len(provinceTag):] {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '/' {
			b.WriteRune(r)
		} else {
			break
		}
	}
	return b.String()
}
