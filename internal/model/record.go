package model

// Sentinel values used in the tabular interchange format. Absent fields are
// "n/a"; fields flagged for manual review are "error". The two are distinct:
// an absent findspot is expected, an "error" publication means the fragment
// structure was irregular.
const (
	NotAvailable = "n/a"
	ErrorValue   = "error"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// InscriptionRecord is one normalized inscription entry.
// CleanText is a pure function of Text; ID is never reassigned once set.
type InscriptionRecord struct {
	ID          string       `json:"id"`                   // stable unique identifier (EDCS id)
	Publication string       `json:"publication"`          // reference, "n/a", or "error"
	TimeFrom    *int         `json:"time_from,omitempty"`  // earliest year, if dated
	TimeTo      *int         `json:"time_to,omitempty"`    // latest year, if dated
	Province    string       `json:"province"`             // province name, "n/a", or "error"
	Findspot    string       `json:"findspot"`             // findspot name or "n/a"
	FindCoords  *Coordinates `json:"find_coords,omitempty"`
	Text        string       `json:"text"`      // raw inscription text with annotations
	CleanText   string       `json:"cleantext"` // normalized text
	Keywords    string       `json:"keywords"`  // matched keyword terms or "n/a"
	Material    string       `json:"material"`  // matched material terms or "n/a"
	Fragments   []string     `json:"-"`         // original fragment list, kept for audit
}

// HasDates reports whether either end of the date range was parsed.
func (r *InscriptionRecord) HasDates() bool {
	return r.TimeFrom != nil || r.TimeTo != nil
}

// MigrantRecord extends an InscriptionRecord with an inferred origin.
// Migrant is false for records carried along without a toponym match.
// Distinct MigrantRecords may share an ID (multiple candidate origins)
// until the duplicate resolver runs; Ignored marks non-canonical
// duplicates without deleting them.
type MigrantRecord struct {
	InscriptionRecord

	Migrant       bool         `json:"migrant"`
	OriginPlaceID string       `json:"origin_place_id,omitempty"`
	OriginName    string       `json:"origin_name,omitempty"`
	OriginPath    string       `json:"origin_path,omitempty"` // gazetteer resource path
	OriginCoords  *Coordinates `json:"origin_coords,omitempty"`
	DistanceKm    *float64     `json:"distance_km,omitempty"` // findspot-to-origin, only when above threshold
	Ignored       bool         `json:"ignored"`

	Meta RecordMeta `json:"meta"`
}
