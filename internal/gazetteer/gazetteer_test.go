package gazetteer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pvollmer/origo/internal/model"
)

const namesCSV = `pid,title,nameTransliterated,timePeriods,reprLat,reprLong,path
/places/246270,Narbo,Narbo,HR,43.18,3.0,/places/246270/narbo
/places/246270,Narbo,Narbo Martius,HR,,,/places/246270/narbo-martius
/places/999001,Modernia,Modernia,M,10.0,10.0,/places/999001/modernia
/places/999002,Incerta,Incerta,,20.0,20.0,/places/999002/incerta
,orphan,orphan,H,1.0,1.0,/orphan
`

func writeNames(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pleiades-names.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	entries, err := Load(writeNames(t, namesCSV))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries (orphan row dropped), got %d", len(entries))
	}

	first := entries[0]
	if first.PlaceID != "/places/246270" || first.Title != "Narbo" {
		t.Errorf("Unexpected first entry: %+v", first)
	}
	if !first.RelevantPeriod {
		t.Error("Expected HR periods to be relevant")
	}
	if first.Coords == nil || first.Coords.Lat != 43.18 || first.Coords.Long != 3.0 {
		t.Errorf("Expected coordinates 43.18/3.0, got %v", first.Coords)
	}

	if entries[1].Coords != nil {
		t.Errorf("Expected missing coordinates on second row, got %v", entries[1].Coords)
	}
	if entries[2].RelevantPeriod {
		t.Error("Expected modern-only periods to be irrelevant")
	}
	if !entries[3].RelevantPeriod {
		t.Error("Expected empty periods to be kept as relevant")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, ErrNoGazetteer) {
		t.Errorf("Expected ErrNoGazetteer, got %v", err)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	_, err := Load(writeNames(t, "pid,title\n/places/1,X\n"))
	if err == nil {
		t.Error("Expected error for incomplete header")
	}
}

func TestCopyCoordinates(t *testing.T) {
	coords := &model.Coordinates{Lat: 43.18, Long: 3.0}
	entries := []model.GazetteerEntry{
		{PlaceID: "/places/2", Title: "b"},
		{PlaceID: "/places/1", Title: "a1", Coords: coords},
		{PlaceID: "/places/1", Title: "a2"},
	}

	fixed := CopyCoordinates(entries)
	if fixed != 1 {
		t.Fatalf("Expected 1 entry fixed, got %d", fixed)
	}
	// sorted by place id: a1, a2, b
	if entries[1].Title != "a2" || entries[1].Coords == nil {
		t.Fatalf("Expected a2 to receive sibling coordinates, got %+v", entries[1])
	}
	if *entries[1].Coords != *coords {
		t.Errorf("Expected copied value %v, got %v", *coords, *entries[1].Coords)
	}
	if entries[1].Coords == coords {
		t.Error("Expected a copy, not a shared pointer")
	}
	if entries[2].Coords != nil {
		t.Errorf("Expected lone place to stay unlocated, got %v", entries[2].Coords)
	}
}
