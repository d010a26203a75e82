// Package match links inscriptions to candidate places of origin by
// substring search of toponym adjectives in normalized text.
package match

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pvollmer/origo/internal/model"
	"github.com/pvollmer/origo/internal/worker"
)

// Matcher scans records against a shared read-only candidate set.
type Matcher struct {
	minLen  int
	workers int
}

// New creates a matcher. Candidates shorter than the configured minimum
// are too ambiguous to match and are dropped up front.
func New(cfg model.MatchConfig, workers int) *Matcher {
	if workers <= 0 {
		workers = 1
	}
	return &Matcher{minLen: cfg.MinCandidateLength, workers: workers}
}

// matchJob scans one record chunk against the full candidate set.
type matchJob struct {
	records    []model.InscriptionRecord
	candidates []model.ToponymCandidate
}

type matchResult struct {
	matches []model.MigrantRecord
}

func (r *matchResult) GetError() error { return nil }

func (j *matchJob) Execute(ctx context.Context) worker.Result {
	res := &matchResult{}
	for _, rec := range j.records {
		if ctx.Err() != nil {
			break
		}
		for _, cand := range j.candidates {
			if !strings.Contains(rec.CleanText, cand.Text) {
				continue
			}
			res.matches = append(res.matches, model.MigrantRecord{
				InscriptionRecord: rec,
				Migrant:           true,
				OriginPlaceID:     cand.PlaceID,
				OriginName:        cand.PlaceName,
				OriginPath:        cand.Path,
				OriginCoords:      cand.Coords,
			})
		}
	}
	return res
}

// Find returns one MigrantRecord per distinct (record, origin location)
// pair. Matching fans out across worker goroutines; the merged result is
// deduplicated and sorted so the output is independent of scheduling.
func (m *Matcher) Find(ctx context.Context, records []model.InscriptionRecord, candidates []model.ToponymCandidate) []model.MigrantRecord {
	usable := make([]model.ToponymCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if len(cand.Text) >= m.minLen {
			usable = append(usable, cand)
		}
	}
	if len(usable) == 0 || len(records) == 0 {
		return nil
	}

	pool := worker.NewPool(m.workers)
	pool.Start()
	for _, chunk := range chunks(records, m.workers) {
		pool.Submit(&matchJob{records: chunk, candidates: usable})
	}

	var matches []model.MigrantRecord
	for _, res := range pool.Wait() {
		matches = append(matches, res.(*matchResult).matches...)
	}
	return dedupe(matches)
}

// chunks splits records into n contiguous slices.
func chunks(records []model.InscriptionRecord, n int) [][]model.InscriptionRecord {
	size := (len(records) + n - 1) / n
	var out [][]model.InscriptionRecord
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		out = append(out, records[start:end])
	}
	return out
}

// dedupe keeps one match per (record id, origin coordinates) and orders
// the result deterministically.
func dedupe(matches []model.MigrantRecord) []model.MigrantRecord {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		if a.OriginPlaceID != b.OriginPlaceID {
			return a.OriginPlaceID < b.OriginPlaceID
		}
		if a.OriginPath != b.OriginPath {
			return a.OriginPath < b.OriginPath
		}
		return coordsKey(a.OriginCoords) < coordsKey(b.OriginCoords)
	})

	seen := make(map[string]bool, len(matches))
	out := matches[:0]
	for _, m := range matches {
		key := m.ID + "|" + coordsKey(m.OriginCoords)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}

// coordsKey folds coordinates into a map key; unlocated origins share one.
func coordsKey(c *model.Coordinates) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%v,%v", c.Lat, c.Long)
}

