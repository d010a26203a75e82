package model

// Gender is the inferred gender of the main person of an inscription.
type Gender int

const (
	GenderUnknown Gender = iota // no name found, nothing to infer
	GenderMale
	GenderFemale
	GenderUnclear // conflicting name endings
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderUnclear:
		return "unclear"
	default:
		return "unknown"
	}
}

// RecordMeta carries derived per-record metadata. It never feeds back into
// extraction or matching; it only serves downstream aggregation.
type RecordMeta struct {
	TextLength      int      `json:"text_length"`
	Funerary        bool     `json:"funerary"`
	PossibleMigrant bool     `json:"possible_migrant"` // text hints at origin (-ensis, domo, origo)
	ProbableMigrant bool     `json:"probable_migrant"` // possible and funerary
	Names           []string `json:"names,omitempty"`  // attested Latin names found in the text
	Gender          Gender   `json:"gender"`
}

// DistanceStats summarizes migration distances over a record subset.
type DistanceStats struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// AnalysisReport is the aggregate output of a full run. Ignored duplicates
// are excluded from every figure in here.
type AnalysisReport struct {
	Inscriptions     int `json:"inscriptions"`
	Migrants         int `json:"migrants"`
	PossibleMigrants int `json:"possible_migrants"`
	ProbableMigrants int `json:"probable_migrants"`
	Funerary         int `json:"funerary"`
	IgnoredDupes     int `json:"ignored_duplicates"`

	MigrantShare float64 `json:"migrant_share_pct"` // definitive migrants per 100 inscriptions

	Distances       DistanceStats `json:"distances"`
	DistancesWomen  DistanceStats `json:"distances_women"`
	DistancesMen    DistanceStats `json:"distances_men"`
	MigrantsWomen   int           `json:"migrants_women"`
	MigrantsMen     int           `json:"migrants_men"`
	FuneraryWomen   int           `json:"funerary_women"`
	FuneraryMen     int           `json:"funerary_men"`

	Narrative *Narrative `json:"narrative,omitempty"` // optional LLM prose, never an input
}

// Narrative is an optional LLM-generated prose summary of the report.
// It is produced after all computation and never affects any field.
type Narrative struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Text     string `json:"text"`
}
