// Package pipeline orchestrates the full batch transform: corpus to
// records, records plus gazetteer to migrants, migrants to report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/pvollmer/origo/internal/analyse"
	"github.com/pvollmer/origo/internal/cache"
	"github.com/pvollmer/origo/internal/extract"
	"github.com/pvollmer/origo/internal/gazetteer"
	"github.com/pvollmer/origo/internal/llm"
	"github.com/pvollmer/origo/internal/match"
	"github.com/pvollmer/origo/internal/model"
	"github.com/pvollmer/origo/internal/resolve"
	"github.com/pvollmer/origo/internal/toponym"
	"github.com/pvollmer/origo/internal/worker"
)

// Pipeline wires the stages together under one configuration.
type Pipeline struct {
	cfg       *model.Config
	extractor *extract.Extractor
	matcher   *match.Matcher
	narrator  llm.Provider
}

// New builds a pipeline. A misconfigured narrator is reported and disabled
// rather than failing the run; narration is optional by design.
func New(cfg *model.Config) *Pipeline {
	narrator, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM provider disabled: %v\n", err)
		narrator = nil
	}
	return &Pipeline{
		cfg:       cfg,
		extractor: extract.New(cfg.Corpus),
		matcher:   match.New(cfg.Match, cfg.Concurrency.Workers),
		narrator:  narrator,
	}
}

// extractJob tokenizes and extracts one chunk of corpus entries.
type extractJob struct {
	entries   []string
	extractor *extract.Extractor
}

type extractResult struct {
	records []model.InscriptionRecord
	skipped int
	err     error
}

func (r *extractResult) GetError() error { return r.err }

func (j *extractJob) Execute(ctx context.Context) worker.Result {
	res := &extractResult{}
	for _, entry := range j.entries {
		if ctx.Err() != nil {
			break
		}
		fragments, err := extract.Fragments(entry)
		if err != nil {
			res.err = fmt.Errorf("tokenize entry: %w", err)
			continue
		}
		rec, ok := j.extractor.Extract(fragments)
		if !ok {
			res.skipped++
			continue
		}
		res.records = append(res.records, *rec)
	}
	return res
}

// ExtractRecords turns a raw corpus file into sorted inscription records.
// Extraction fans out across workers; output order is by identifier, so
// the result does not depend on scheduling.
func (p *Pipeline) ExtractRecords(ctx context.Context, corpusPath string) ([]model.InscriptionRecord, error) {
	source, err := os.ReadFile(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	entries := extract.SplitEntries(string(source))
	if len(entries) == 0 {
		return nil, fmt.Errorf("corpus %s contains no entries", corpusPath)
	}

	workers := p.cfg.Concurrency.Workers
	if workers <= 0 {
		workers = 1
	}
	pool := worker.NewPool(workers)
	pool.Start()
	size := (len(entries) + workers - 1) / workers
	for start := 0; start < len(entries); start += size {
		end := start + size
		if end > len(entries) {
			end = len(entries)
		}
		pool.Submit(&extractJob{entries: entries[start:end], extractor: p.extractor})
	}

	var records []model.InscriptionRecord
	skipped := 0
	for _, res := range pool.Wait() {
		chunk := res.(*extractResult)
		if chunk.err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", chunk.err)
		}
		records = append(records, chunk.records...)
		skipped += chunk.skipped
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	if p.cfg.Output.Verbose {
		fmt.Printf("Extracted %d records from %d entries (%d skipped).\n",
			len(records), len(entries), skipped)
	}
	return records, nil
}

// LoadGazetteer reads the place-name export and repairs missing
// coordinates, first by copying between sibling rows, then optionally
// through the Pleiades API.
func (p *Pipeline) LoadGazetteer(ctx context.Context, path string, backfill bool) ([]model.GazetteerEntry, error) {
	entries, err := gazetteer.Load(path)
	if err != nil {
		return nil, err
	}
	copied := gazetteer.CopyCoordinates(entries)
	if p.cfg.Output.Verbose {
		fmt.Printf("Loaded %d gazetteer entries, copied %d sibling coordinates.\n",
			len(entries), copied)
	}

	if backfill {
		var store cache.Cache
		if p.cfg.Cache.Enabled {
			store = cache.NewLayeredCache(p.cfg.Cache.MemoryTTL, p.cfg.Cache.Dir, p.cfg.Cache.DiskTTL)
		}
		client := gazetteer.NewClient(p.cfg.Pleiades, store, p.cfg.Output.Verbose)
		fixed := client.Backfill(ctx, entries)
		if p.cfg.Output.Verbose {
			fmt.Printf("Backfilled %d coordinates from the Pleiades API.\n", fixed)
		}
	}
	return entries, nil
}

// FindMigrants derives toponym candidates, matches them against the
// records, folds unmatched records back in, and resolves duplicates. The
// returned set holds every record, matched or not, sorted by identifier.
func (p *Pipeline) FindMigrants(ctx context.Context, records []model.InscriptionRecord, entries []model.GazetteerEntry) []model.MigrantRecord {
	candidates := toponym.Generate(entries)
	if p.cfg.Output.Verbose {
		fmt.Printf("Generated %d toponym candidates.\n", len(candidates))
	}

	migrants := p.matcher.Find(ctx, records, candidates)
	if p.cfg.Output.Verbose {
		fmt.Printf("Matched %d record/origin pairs.\n", len(migrants))
	}

	matched := make(map[string]bool, len(migrants))
	for i := range migrants {
		matched[migrants[i].ID] = true
	}
	master := migrants
	for i := range records {
		if !matched[records[i].ID] {
			master = append(master, model.MigrantRecord{InscriptionRecord: records[i]})
		}
	}

	resolve.AddDistances(master, p.cfg.Match.DistanceThresholdKm)
	resolve.Resolve(master)
	return master
}

// Analyse enriches the record set with metadata and computes the aggregate
// report. namePath optionally points to a prosopography export extending
// the built-in name set. The narrative, if configured, is generated last
// and never alters a figure.
func (p *Pipeline) Analyse(ctx context.Context, records []model.MigrantRecord, namePath string) *model.AnalysisReport {
	names := analyse.DefaultNameSet()
	if namePath != "" {
		loaded, err := analyse.LoadNameSet(namePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v; using built-in names\n", err)
		} else {
			names = loaded
		}
	}
	analyse.Enrich(records, names)
	report := analyse.Report(records)

	if p.narrator != nil {
		narrative, err := p.narrator.Narrate(ctx, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: narrative generation failed: %v\n", err)
		} else {
			report.Narrative = narrative
		}
	}
	return report
}
