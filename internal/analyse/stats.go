package analyse

import (
	"math"
	"sort"
	"strings"

	"github.com/pvollmer/origo/internal/model"
)

// Report aggregates the resolved record set. Ignored duplicates are counted
// but excluded from every figure.
func Report(records []model.MigrantRecord) *model.AnalysisReport {
	rep := &model.AnalysisReport{}
	var all, women, men []float64

	for i := range records {
		rec := &records[i]
		if rec.Ignored {
			rep.IgnoredDupes++
			continue
		}
		rep.Inscriptions++
		if rec.Migrant {
			rep.Migrants++
		}
		if rec.Meta.PossibleMigrant {
			rep.PossibleMigrants++
		}
		if rec.Meta.ProbableMigrant {
			rep.ProbableMigrants++
		}
		if rec.Meta.Funerary {
			rep.Funerary++
			if isWoman(rec) {
				rep.FuneraryWomen++
			}
			if isMan(rec) {
				rep.FuneraryMen++
			}
		}
		if rec.DistanceKm != nil {
			d := *rec.DistanceKm
			all = append(all, d)
			if isWoman(rec) {
				women = append(women, d)
				rep.MigrantsWomen++
			}
			if isMan(rec) {
				men = append(men, d)
				rep.MigrantsMen++
			}
		}
	}

	if rep.Inscriptions > 0 {
		rep.MigrantShare = 100 * float64(rep.Migrants) / float64(rep.Inscriptions)
	}
	rep.Distances = describe(all)
	rep.DistancesWomen = describe(women)
	rep.DistancesMen = describe(men)
	return rep
}

// isWoman and isMan combine the corpus keyword classification with the
// name-ending heuristic. The two are not exclusive; an inscription naming
// both counts on both sides.
func isWoman(rec *model.MigrantRecord) bool {
	return strings.Contains(rec.Keywords, "mulier") || rec.Meta.Gender == model.GenderFemale
}

func isMan(rec *model.MigrantRecord) bool {
	return strings.Contains(rec.Keywords, "vir") || rec.Meta.Gender == model.GenderMale
}

// describe computes descriptive statistics over a sample. The standard
// deviation is the sample deviation (n-1); it is zero for samples of one.
func describe(values []float64) model.DistanceStats {
	stats := model.DistanceStats{N: len(values)}
	if len(values) == 0 {
		return stats
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	stats.Mean = sum / float64(len(sorted))

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		stats.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		stats.Median = sorted[mid]
	}

	if len(sorted) > 1 {
		sq := 0.0
		for _, v := range sorted {
			diff := v - stats.Mean
			sq += diff * diff
		}
		stats.StdDev = math.Sqrt(sq / float64(len(sorted)-1))
	}
	return stats
}
