// Package llm generates an optional prose narrative from a finished
// analysis report. The narrative is strictly output-side: it is produced
// after all computation and never feeds back into any record or figure.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/pvollmer/origo/internal/model"
)

// Provider turns an analysis report into prose.
type Provider interface {
	Name() string
	Narrate(ctx context.Context, report *model.AnalysisReport) (*model.Narrative, error)
	IsAvailable(ctx context.Context) bool
}

// BuildPrompt renders the report figures into the narration prompt. The
// model is confined to the numbers given; it must not invent any.
func BuildPrompt(report *model.AnalysisReport) string {
	var b strings.Builder
	b.WriteString(`You are summarizing the statistical results of an epigraphic migration study for a general audience.

RULES:
1. Use ONLY the figures listed below. Do not invent, extrapolate, or estimate any number.
2. If a figure is zero or absent, say the data does not show it.
3. Describe what the numbers show, not why. No historical speculation.

Figures:
`)
	fmt.Fprintf(&b, "- Inscriptions analysed: %d (plus %d ignored duplicates)\n",
		report.Inscriptions, report.IgnoredDupes)
	fmt.Fprintf(&b, "- Migrants identified: %d (%.2f per 100 inscriptions)\n",
		report.Migrants, report.MigrantShare)
	fmt.Fprintf(&b, "- Possible migrants (textual hints): %d, probable (funerary with hints): %d\n",
		report.PossibleMigrants, report.ProbableMigrants)
	fmt.Fprintf(&b, "- Funerary inscriptions: %d\n", report.Funerary)
	writeDistances(&b, "All migrants", report.Distances)
	writeDistances(&b, "Women", report.DistancesWomen)
	writeDistances(&b, "Men", report.DistancesMen)
	fmt.Fprintf(&b, "- Migrant women: %d, migrant men: %d\n",
		report.MigrantsWomen, report.MigrantsMen)

	b.WriteString("\nWrite two short paragraphs.\n")
	return b.String()
}

func writeDistances(b *strings.Builder, label string, stats model.DistanceStats) {
	if stats.N == 0 {
		fmt.Fprintf(b, "- %s: no measured distances\n", label)
		return
	}
	fmt.Fprintf(b, "- %s (n=%d): distances %.1f-%.1f km, mean %.1f, median %.1f, stddev %.1f\n",
		label, stats.N, stats.Min, stats.Max, stats.Mean, stats.Median, stats.StdDev)
}
