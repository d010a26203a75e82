package model

// GazetteerEntry is one name row of the external place-name authority.
// A place (PlaceID) usually spans several rows, one per attested name.
// Read-only after load.
type GazetteerEntry struct {
	PlaceID        string       `json:"place_id"`
	Title          string       `json:"title"` // canonical place title
	Path           string       `json:"path"`  // resource path at the authority
	NameVariants   []string     `json:"name_variants"`
	TimePeriods    string       `json:"time_periods"`
	RelevantPeriod bool         `json:"relevant_period"`
	Coords         *Coordinates `json:"coords,omitempty"`
}

// ToponymCandidate is a derived place-adjective string used as a matching
// probe. Generated once per run, immutable, shared by all matcher workers.
type ToponymCandidate struct {
	Text      string       `json:"text"`
	PlaceID   string       `json:"place_id"`
	PlaceName string       `json:"place_name"`
	Path      string       `json:"path"`
	Coords    *Coordinates `json:"coords,omitempty"`
}
