// Package resolve computes findspot-to-origin distances and marks
// non-canonical duplicates among records that matched several origins.
package resolve

import (
	"math"
	"sort"

	"github.com/umahmood/haversine"

	"github.com/pvollmer/origo/internal/model"
)

// AddDistances fills DistanceKm for every record whose findspot and origin
// are both located. A distance at or below the threshold means findspot and
// origin are effectively the same place, so no distance is recorded.
func AddDistances(records []model.MigrantRecord, thresholdKm float64) {
	for i := range records {
		rec := &records[i]
		if rec.FindCoords == nil || rec.OriginCoords == nil {
			continue
		}
		_, km := haversine.Distance(
			haversine.Coord{Lat: rec.FindCoords.Lat, Lon: rec.FindCoords.Long},
			haversine.Coord{Lat: rec.OriginCoords.Lat, Lon: rec.OriginCoords.Long},
		)
		if km > thresholdKm {
			d := km
			rec.DistanceKm = &d
		}
	}
}

// Resolve groups records by identifier and, within every group that has a
// migrant-flagged member, keeps the member(s) with the shortest origin
// distance and marks the rest ignored. Records without a distance rank
// last. Groups without a migrant member are left untouched. Ignored
// records stay in the set for audit.
func Resolve(records []model.MigrantRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	start := 0
	for start < len(records) {
		end := start + 1
		for end < len(records) && records[end].ID == records[start].ID {
			end++
		}
		resolveGroup(records[start:end])
		start = end
	}
}

func resolveGroup(group []model.MigrantRecord) {
	if len(group) < 2 {
		return
	}
	migrant := false
	for i := range group {
		if group[i].Migrant {
			migrant = true
			break
		}
	}
	if !migrant {
		return
	}

	shortest := math.Inf(1)
	for i := range group {
		if d := distanceOf(&group[i]); d < shortest {
			shortest = d
		}
	}
	for i := range group {
		if distanceOf(&group[i]) != shortest {
			group[i].Ignored = true
		}
	}
}

func distanceOf(rec *model.MigrantRecord) float64 {
	if rec.DistanceKm == nil {
		return math.Inf(1)
	}
	return *rec.DistanceKm
}
