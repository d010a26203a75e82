package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pvollmer/origo/internal/model"
	"github.com/pvollmer/origo/internal/pipeline"
	"github.com/pvollmer/origo/internal/store"
)

var (
	corpusPath    string
	gazetteerPath string
	namesPath     string
	backfill      bool
	outPath       string
	reportPath    string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured records from a corpus file",
	Long: `Extract splits the raw corpus into per-inscription blocks, assigns
text fragments to record fields, normalizes the inscription text, and
writes the record set as CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := pipeline.New(cfg)

		records, err := p.ExtractRecords(cmd.Context(), corpusPath)
		if err != nil {
			return err
		}

		out := make([]model.MigrantRecord, len(records))
		for i := range records {
			out[i] = model.MigrantRecord{InscriptionRecord: records[i]}
		}
		dest := output(cfg, outPath, "records.csv")
		if err := store.WriteRecords(dest, out); err != nil {
			return err
		}
		fmt.Printf("Wrote %d records to %s\n", len(out), dest)
		return nil
	},
}

var migrantsCmd = &cobra.Command{
	Use:   "migrants",
	Short: "Match records against gazetteer toponyms",
	Long: `Migrants runs extraction, derives toponym candidates from the
gazetteer, matches them against the normalized texts, and resolves
duplicate origins. The output contains every record; matches carry the
origin place and unresolved duplicates are marked ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := pipeline.New(cfg)
		ctx := cmd.Context()

		records, err := p.ExtractRecords(ctx, corpusPath)
		if err != nil {
			return err
		}
		entries, err := p.LoadGazetteer(ctx, gazetteerPath, backfill)
		if err != nil {
			return err
		}
		master := p.FindMigrants(ctx, records, entries)

		dest := output(cfg, outPath, "migrants.csv")
		if err := store.WriteRecords(dest, master); err != nil {
			return err
		}
		fmt.Printf("Wrote %d records to %s\n", len(master), dest)
		return nil
	},
}

var analyseCmd = &cobra.Command{
	Use:   "analyse",
	Short: "Run the full pipeline and produce the analysis report",
	Long: `Analyse runs extraction, matching, and duplicate resolution, then
enriches every record with derived metadata (funerary markers, attested
names, inferred gender) and aggregates migration statistics into a JSON
report. With a configured LLM provider a prose narrative is appended to
the report; the narrative never alters any figure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := pipeline.New(cfg)
		ctx := cmd.Context()

		records, err := p.ExtractRecords(ctx, corpusPath)
		if err != nil {
			return err
		}
		entries, err := p.LoadGazetteer(ctx, gazetteerPath, backfill)
		if err != nil {
			return err
		}
		master := p.FindMigrants(ctx, records, entries)
		report := p.Analyse(ctx, master, namesPath)

		dest := output(cfg, outPath, "master.csv")
		if err := store.WriteRecords(dest, master); err != nil {
			return err
		}
		repDest := output(cfg, reportPath, "report.json")
		if err := store.WriteReport(repDest, report); err != nil {
			return err
		}

		fmt.Printf("Wrote %d records to %s\n", len(master), dest)
		fmt.Printf("Wrote report to %s\n", repDest)
		fmt.Printf("Inscriptions: %d, migrants: %d (%.2f per 100)\n",
			report.Inscriptions, report.Migrants, report.MigrantShare)
		return nil
	},
}

// output resolves an output path against the configured output directory.
func output(cfg *model.Config, flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return filepath.Join(cfg.Output.Dir, fallback)
}

func init() {
	for _, cmd := range []*cobra.Command{extractCmd, migrantsCmd, analyseCmd} {
		cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus source file (required)")
		_ = cmd.MarkFlagRequired("corpus")
		cmd.Flags().StringVarP(&outPath, "out", "o", "", "output CSV path")
	}
	for _, cmd := range []*cobra.Command{migrantsCmd, analyseCmd} {
		cmd.Flags().StringVar(&gazetteerPath, "gazetteer", "", "Pleiades names CSV (required)")
		_ = cmd.MarkFlagRequired("gazetteer")
		cmd.Flags().BoolVar(&backfill, "backfill", false, "fetch missing coordinates from the Pleiades API")
	}
	analyseCmd.Flags().StringVar(&namesPath, "names", "", "prosopography CSV extending the built-in name set")
	analyseCmd.Flags().StringVar(&reportPath, "report", "", "report JSON path")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(migrantsCmd)
	rootCmd.AddCommand(analyseCmd)
}
