package resolve

import (
	"testing"

	"github.com/pvollmer/origo/internal/model"
)

func migrant(id string, distance *float64) model.MigrantRecord {
	return model.MigrantRecord{
		InscriptionRecord: model.InscriptionRecord{ID: id},
		Migrant:           true,
		DistanceKm:        distance,
	}
}

func km(v float64) *float64 { return &v }

func TestResolve_KeepsShortestDistance(t *testing.T) {
	records := []model.MigrantRecord{
		migrant("X", km(50)),
		migrant("X", km(12)),
		migrant("X", km(30)),
	}

	Resolve(records)

	kept := 0
	for _, rec := range records {
		if rec.Ignored {
			continue
		}
		kept++
		if *rec.DistanceKm != 12 {
			t.Errorf("Expected the 12km record to survive, kept %v", *rec.DistanceKm)
		}
	}
	if kept != 1 {
		t.Errorf("Expected 1 kept record, got %d", kept)
	}
}

func TestResolve_MissingDistanceRanksLast(t *testing.T) {
	records := []model.MigrantRecord{
		migrant("X", nil),
		migrant("X", km(30)),
	}

	Resolve(records)

	for _, rec := range records {
		if rec.DistanceKm == nil && !rec.Ignored {
			t.Error("Expected the distance-less record to be ignored")
		}
		if rec.DistanceKm != nil && rec.Ignored {
			t.Error("Expected the located record to be kept")
		}
	}
}

func TestResolve_AllUnlocatedKept(t *testing.T) {
	records := []model.MigrantRecord{
		migrant("X", nil),
		migrant("X", nil),
	}

	Resolve(records)

	for _, rec := range records {
		if rec.Ignored {
			t.Error("Expected distance ties to all be kept")
		}
	}
}

func TestResolve_NonMigrantGroupsUntouched(t *testing.T) {
	records := []model.MigrantRecord{
		{InscriptionRecord: model.InscriptionRecord{ID: "Y"}},
		{InscriptionRecord: model.InscriptionRecord{ID: "Y"}},
	}

	Resolve(records)

	for _, rec := range records {
		if rec.Ignored {
			t.Error("Expected no dedup in a group without migrants")
		}
	}
}

func TestResolve_SingletonUntouched(t *testing.T) {
	records := []model.MigrantRecord{migrant("Z", km(500))}
	Resolve(records)
	if records[0].Ignored {
		t.Error("Expected a lone record to be kept")
	}
}

func TestAddDistances(t *testing.T) {
	paris := &model.Coordinates{Lat: 48.8566, Long: 2.3522}
	london := &model.Coordinates{Lat: 51.5007, Long: -0.1246}

	records := []model.MigrantRecord{
		{
			InscriptionRecord: model.InscriptionRecord{ID: "A", FindCoords: paris},
			Migrant:           true,
			OriginCoords:      london,
		},
		{
			InscriptionRecord: model.InscriptionRecord{ID: "B", FindCoords: paris},
			Migrant:           true,
			OriginCoords:      &model.Coordinates{Lat: 48.86, Long: 2.35},
		},
		{
			InscriptionRecord: model.InscriptionRecord{ID: "C"},
			Migrant:           true,
			OriginCoords:      london,
		},
	}

	AddDistances(records, 10)

	if records[0].DistanceKm == nil {
		t.Fatal("Expected a distance for Paris-London")
	}
	if d := *records[0].DistanceKm; d < 330 || d > 360 {
		t.Errorf("Expected roughly 340km, got %v", d)
	}
	if records[1].DistanceKm != nil {
		t.Errorf("Expected no distance below the threshold, got %v", *records[1].DistanceKm)
	}
	if records[2].DistanceKm != nil {
		t.Error("Expected no distance without findspot coordinates")
	}
}
