package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pvollmer/origo/internal/model"
)

const testCorpus = `<html><body>static page header</p>` +
	`<p><b>CIL 12, 04333</b><br><b>EDCS-ID:</b><a>EDCS-09302260</a><br>` +
	`Gallia Narbonensis<br>Narbo<br>civis Narbensis hic situs est<br>viri</p>` +
	`<p><b>CIL 06, 00002</b><br><b>EDCS-ID:</b><a>EDCS-00000002</a><br>` +
	`Roma<br>Urbs<br>Dis Manibus sacrum<br>tituli sepulcrales</p>`

const testGazetteer = `pid,title,nameTransliterated,timePeriods,reprLat,reprLong,path
/places/246270,Narbo,Narbo,HR,43.18,3.0,/places/246270/narbo
/places/999001,Modernia,Modernia,M,10.0,10.0,/places/999001/modernia
`

func testPipeline() *Pipeline {
	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = 2
	cfg.Cache.Enabled = false
	return New(cfg)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestExtractRecords(t *testing.T) {
	p := testPipeline()
	records, err := p.ExtractRecords(context.Background(), writeFile(t, "corpus.html", testCorpus))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	// sorted by identifier
	if records[0].ID != "EDCS-00000002" || records[1].ID != "EDCS-09302260" {
		t.Errorf("Unexpected order: %s, %s", records[0].ID, records[1].ID)
	}

	narbo := records[1]
	if narbo.Publication != "CIL 12, 04333" {
		t.Errorf("Unexpected publication: %q", narbo.Publication)
	}
	if narbo.Province != "Gallia Narbonensis" || narbo.Findspot != "Narbo" {
		t.Errorf("Unexpected place fields: %q / %q", narbo.Province, narbo.Findspot)
	}
	if narbo.CleanText != "civis Narbensis hic situs est" {
		t.Errorf("Unexpected cleantext: %q", narbo.CleanText)
	}
	if narbo.Keywords != "viri" {
		t.Errorf("Unexpected keywords: %q", narbo.Keywords)
	}
}

func TestExtractRecords_EmptyCorpus(t *testing.T) {
	p := testPipeline()
	if _, err := p.ExtractRecords(context.Background(), writeFile(t, "corpus.html", "no entries")); err == nil {
		t.Error("Expected error for a corpus without entries")
	}
}

func TestFullRun(t *testing.T) {
	p := testPipeline()
	ctx := context.Background()

	records, err := p.ExtractRecords(ctx, writeFile(t, "corpus.html", testCorpus))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	entries, err := p.LoadGazetteer(ctx, writeFile(t, "names.csv", testGazetteer), false)
	if err != nil {
		t.Fatalf("LoadGazetteer failed: %v", err)
	}

	master := p.FindMigrants(ctx, records, entries)
	if len(master) != 2 {
		t.Fatalf("Expected 2 master records, got %d", len(master))
	}

	var migrants int
	for _, rec := range master {
		if !rec.Migrant {
			continue
		}
		migrants++
		if rec.ID != "EDCS-09302260" || rec.OriginName != "Narbo" {
			t.Errorf("Unexpected migrant: %+v", rec)
		}
		if rec.OriginCoords == nil || rec.OriginCoords.Lat != 43.18 {
			t.Errorf("Migrant lost origin coordinates: %v", rec.OriginCoords)
		}
	}
	if migrants != 1 {
		t.Fatalf("Expected 1 migrant, got %d", migrants)
	}

	report := p.Analyse(ctx, master, "")
	if report.Inscriptions != 2 || report.Migrants != 1 {
		t.Errorf("Unexpected report counts: %+v", report)
	}
	if report.MigrantShare != 50 {
		t.Errorf("Expected 50%% migrant share, got %v", report.MigrantShare)
	}
	if report.Funerary != 2 {
		t.Errorf("Expected both inscriptions funerary, got %d", report.Funerary)
	}
	if report.Narrative != nil {
		t.Error("Expected no narrative without a configured provider")
	}
}

func TestLoadGazetteer_Missing(t *testing.T) {
	p := testPipeline()
	if _, err := p.LoadGazetteer(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), false); err == nil {
		t.Error("Expected error for missing gazetteer")
	}
}
