// Package gazetteer loads the Pleiades place-name export and repairs its
// coordinate gaps, locally by copying between rows of the same place and
// remotely through the Pleiades API.
package gazetteer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pvollmer/origo/internal/model"
)

// ErrNoGazetteer signals a missing gazetteer file. It is the only error the
// pipeline treats as fatal.
var ErrNoGazetteer = errors.New("gazetteer file not found")

// relevantPeriods are the time-period codes counted as ancient. An entry
// with no recorded period is kept rather than dropped.
const relevantPeriods = "HRL"

// Load reads a Pleiades names CSV. Columns are resolved by header name;
// rows with a missing place id are skipped.
func Load(path string) ([]model.GazetteerEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoGazetteer, path)
		}
		return nil, fmt.Errorf("open gazetteer: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read gazetteer header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var entries []model.GazetteerEntry
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read gazetteer row: %w", err)
		}
		entry, ok := cols.entry(row)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type columns struct {
	pid, title, name, periods, lat, long, path int
}

func columnIndex(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	c := columns{}
	required := []struct {
		name string
		dst  *int
	}{
		{"pid", &c.pid},
		{"title", &c.title},
		{"nameTransliterated", &c.name},
		{"timePeriods", &c.periods},
		{"reprLat", &c.lat},
		{"reprLong", &c.long},
		{"path", &c.path},
	}
	for _, col := range required {
		i, ok := idx[col.name]
		if !ok {
			return c, fmt.Errorf("gazetteer header lacks column %q", col.name)
		}
		*col.dst = i
	}
	return c, nil
}

func (c columns) entry(row []string) (model.GazetteerEntry, bool) {
	field := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	pid := field(c.pid)
	if pid == "" {
		return model.GazetteerEntry{}, false
	}
	entry := model.GazetteerEntry{
		PlaceID:        pid,
		Title:          field(c.title),
		Path:           field(c.path),
		TimePeriods:    field(c.periods),
		RelevantPeriod: relevantPeriod(field(c.periods)),
	}
	if name := field(c.name); name != "" {
		entry.NameVariants = []string{name}
	}
	lat, errLat := strconv.ParseFloat(field(c.lat), 64)
	long, errLong := strconv.ParseFloat(field(c.long), 64)
	if errLat == nil && errLong == nil {
		entry.Coords = &model.Coordinates{Lat: lat, Long: long}
	}
	return entry, true
}

func relevantPeriod(periods string) bool {
	if periods == "" {
		return true
	}
	return strings.ContainsAny(periods, relevantPeriods)
}

// CopyCoordinates fills missing coordinates from sibling rows of the same
// place. Entries are sorted by place id first, so siblings are adjacent;
// the nearest located sibling in either direction wins. Returns the number
// of entries fixed.
func CopyCoordinates(entries []model.GazetteerEntry) int {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PlaceID < entries[j].PlaceID
	})

	fixed := 0
	for i := range entries {
		if entries[i].Coords != nil {
			continue
		}
		for step := 1; ; step++ {
			prev := i - step
			next := i + step
			prevOK := prev >= 0 && entries[prev].PlaceID == entries[i].PlaceID
			nextOK := next < len(entries) && entries[next].PlaceID == entries[i].PlaceID
			if !prevOK && !nextOK {
				break
			}
			if prevOK && entries[prev].Coords != nil {
				c := *entries[prev].Coords
				entries[i].Coords = &c
				fixed++
				break
			}
			if nextOK && entries[next].Coords != nil {
				c := *entries[next].Coords
				entries[i].Coords = &c
				fixed++
				break
			}
		}
	}
	return fixed
}
