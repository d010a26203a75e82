package extract

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pvollmer/origo/internal/model"
	"github.com/pvollmer/origo/internal/normalize"
)

// Extractor maps ordered fragment lists to structured inscription records.
// Field identity is inferred from fragment position: the identifier is the
// anchor, and publication/date layout is derived from its index.
type Extractor struct {
	idPrefix      string
	commentPrefix string
}

// New creates an extractor for the given corpus markers.
func New(cfg model.CorpusConfig) *Extractor {
	return &Extractor{
		idPrefix:      cfg.IdentifierPrefix,
		commentPrefix: cfg.CommentPrefix,
	}
}

// slots holds the first fragment index matched per semantic slot (-1 when
// absent) together with the matched text.
type slots struct {
	identifier int
	comment    int
	keyword    int
	material   int

	identifierText string
	commentText    string
	keywordText    string
	materialText   string
}

// classify assigns fragment indexes to slots. A fragment matches a closed
// vocabulary either whole or through one of its semicolon-delimited parts;
// a part match records the full joined text.
func (e *Extractor) classify(fragments []string) slots {
	s := slots{identifier: -1, comment: -1, keyword: -1, material: -1}
	for i, frag := range fragments {
		switch {
		case s.identifier < 0 && strings.HasPrefix(frag, e.idPrefix):
			s.identifier = i
			s.identifierText = frag
		case strings.HasPrefix(frag, e.commentPrefix):
			if s.comment < 0 {
				s.comment = i
				s.commentText = frag
			}
		case member(keywordSet, frag):
			if s.keyword < 0 {
				s.keyword = i
				s.keywordText = frag
			}
		case member(materialSet, frag):
			if s.material < 0 {
				s.material = i
				s.materialText = frag
			}
		case strings.Contains(frag, ";"):
			parts := splitTrim(frag, ";")
			joined := strings.Join(parts, ", ")
			for _, part := range parts {
				if member(keywordSet, part) {
					if s.keyword < 0 {
						s.keyword = i
						s.keywordText = joined
					}
				} else if member(materialSet, part) {
					if s.material < 0 {
						s.material = i
						s.materialText = joined
					}
				}
			}
		}
	}
	return s
}

// Extract builds a record from one fragment list. The second return value is
// false when the list is no inscription at all: either it carries no
// identifier (a stray comment fragment) or the identifier is a bare
// reference with no other field present.
func (e *Extractor) Extract(fragments []string) (*model.InscriptionRecord, bool) {
	s := e.classify(fragments)
	if s.identifier < 0 {
		return nil, false
	}

	rec := &model.InscriptionRecord{
		ID:          s.identifierText,
		Publication: model.NotAvailable,
		Province:    model.NotAvailable,
		Findspot:    model.NotAvailable,
		Keywords:    model.NotAvailable,
		Material:    model.NotAvailable,
		Fragments:   fragments,
	}
	if s.keyword >= 0 {
		rec.Keywords = s.keywordText
	}
	if s.material >= 0 {
		rec.Material = s.materialText
	}

	e.datesAndPublication(rec, fragments, s.identifier)

	textIdx := textIndex(fragments, s)
	rec.Text = fragments[textIdx]
	rec.CleanText = normalize.Normalize(rec.Text)

	e.resolveFindspot(rec, fragments, s, textIdx)

	// An identifier with nothing around it is a reference inside a comment,
	// not an inscription.
	if s.comment < 0 && rec.Keywords == model.NotAvailable &&
		rec.Material == model.NotAvailable && rec.Findspot == model.NotAvailable &&
		rec.Province == model.NotAvailable && !rec.HasDates() {
		return nil, false
	}
	return rec, true
}

// datesAndPublication applies the positional rule table on the identifier
// index k. A date-parse failure never aborts the record: publication is set
// to the "error" sentinel and every other field stays populated.
func (e *Extractor) datesAndPublication(rec *model.InscriptionRecord, fragments []string, k int) {
	switch {
	case k == 1:
		rec.Publication = fragments[0]
	case k == 3:
		rec.Publication = fragments[0]
		failed := false
		if v, err := strconv.Atoi(strings.TrimSpace(fragments[1])); err == nil {
			rec.TimeFrom = &v
		} else {
			failed = true
		}
		if v, err := strconv.Atoi(strings.TrimSpace(fragments[2])); err == nil {
			rec.TimeTo = &v
		} else {
			failed = true
		}
		if failed {
			rec.Publication = model.ErrorValue
		}
	case k >= 5 && k%2 == 1:
		rec.Publication = fragments[0]
		dates, ok := collectDates(fragments[1:k])
		if !ok {
			rec.Publication = model.ErrorValue
		} else if len(dates) > 0 {
			lo, hi := minMax(dates)
			rec.TimeFrom = &lo
			rec.TimeTo = &hi
		}
	default:
		// irregular structure, flagged for manual review
		rec.Publication = model.ErrorValue
	}
}

// collectDates gathers every digit-bearing fragment before the identifier,
// deduplicated by text, and parses each as a year. Tokens that fail a plain
// parse are split on comma/semicolon/colon and the parts parsed; any part
// failure discards the whole date set.
func collectDates(fragments []string) ([]int, bool) {
	var nums []string
	seen := make(map[string]bool)
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if !strings.ContainsFunc(frag, unicode.IsDigit) {
			continue
		}
		if seen[frag] {
			continue
		}
		seen[frag] = true
		nums = append(nums, frag)
	}

	var dates []int
	for _, num := range nums {
		if v, err := strconv.Atoi(num); err == nil {
			dates = append(dates, v)
			continue
		}
		normalized := strings.ReplaceAll(num, ";", ",")
		normalized = strings.ReplaceAll(normalized, ":", ",")
		for _, part := range strings.Split(normalized, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, false
			}
			dates = append(dates, v)
		}
	}
	return dates, true
}

// textIndex selects the inscription-text fragment: the one preceding the
// keyword match, else preceding the material match, else two past the
// findspot comment, else the final fragment.
func textIndex(fragments []string, s slots) int {
	n := len(fragments)
	idx := n - 1
	switch {
	case s.keyword >= 0:
		idx = s.keyword - 1
	case s.material >= 0:
		idx = s.material - 1
	case s.comment >= 0:
		idx = s.comment + 2
	}
	if idx < 0 || idx >= n {
		idx = n - 1
	}
	return idx
}

// resolveFindspot fills findspot, province, and coordinates: from the
// findspot comment when one exists, otherwise by province lookup plus the
// fragment preceding the text fragment, double-checked against accidental
// reuse of the same text elsewhere in the list.
func (e *Extractor) resolveFindspot(rec *model.InscriptionRecord, fragments []string, s slots, textIdx int) {
	if s.comment >= 0 {
		rec.Findspot, rec.Province, rec.FindCoords = parsePlaceComment(s.commentText)
	} else {
		rec.Province = searchProvince(fragments)
		if len(fragments) > 1 {
			fi := textIdx - 1
			if fi < 0 {
				fi = len(fragments) - 1
			}
			rec.Findspot = fragments[fi]
			for i, frag := range fragments {
				if frag == rec.Findspot && i != fi {
					rec.Findspot = model.NotAvailable
					break
				}
			}
		}
	}
	if rec.Findspot == "?" || rec.Findspot == "" {
		rec.Findspot = model.NotAvailable
	}
}

// searchProvince tests whole fragments and their "|"-separated parts against
// the known province names. A part match returns the full fragment.
func searchProvince(fragments []string) string {
	for _, frag := range fragments {
		if member(provinceSet, frag) {
			return frag
		}
		if strings.Contains(frag, "|") {
			for _, part := range strings.Split(frag, "|") {
				if member(provinceSet, strings.TrimSpace(part)) {
					return frag
				}
			}
		}
	}
	return model.NotAvailable
}

func member(set map[string]struct{}, s string) bool {
	_, ok := set[s]
	return ok
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func minMax(vals []int) (int, int) {
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
