package gazetteer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pvollmer/origo/internal/model"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *model.Coordinates
	}{
		{
			name: "representative point",
			body: `{"reprPoint": [3.0, 43.18]}`,
			want: &model.Coordinates{Lat: 43.18, Long: 3.0},
		},
		{
			name: "point feature fallback",
			body: `{"features": [{"geometry": {"type": "Point", "coordinates": [12.5, 41.9]}}]}`,
			want: &model.Coordinates{Lat: 41.9, Long: 12.5},
		},
		{
			name: "non-point geometry",
			body: `{"features": [{"geometry": {"type": "Polygon", "coordinates": []}}]}`,
			want: nil,
		},
		{
			name: "null geometry",
			body: `{"features": [{"geometry": null}]}`,
			want: nil,
		},
		{
			name: "empty document",
			body: `{}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePoint([]byte(tt.body))
			if err != nil {
				t.Fatalf("parsePoint failed: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Errorf("Expected no coordinates, got %v", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParsePoint_MalformedJSON(t *testing.T) {
	if _, err := parsePoint([]byte("not json")); err == nil {
		t.Error("Expected decode error")
	}
}

func TestBackfill(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			http.NotFound(w, r)
		case "/places/1/json":
			requests++
			fmt.Fprint(w, `{"reprPoint": [3.0, 43.18]}`)
		case "/places/2/json":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cfg := model.DefaultConfig().Pleiades
	cfg.BaseURL = server.URL
	cfg.RequestsPerSecond = 100
	client := NewClient(cfg, nil, false)

	entries := []model.GazetteerEntry{
		{PlaceID: "/places/1"},
		{PlaceID: "/places/2"},
		{PlaceID: "/places/3", Coords: &model.Coordinates{Lat: 1, Long: 1}},
	}

	fixed := client.Backfill(context.Background(), entries)
	if fixed != 1 {
		t.Fatalf("Expected 1 entry fixed, got %d", fixed)
	}
	if entries[0].Coords == nil || entries[0].Coords.Lat != 43.18 {
		t.Errorf("Expected backfilled coordinates, got %v", entries[0].Coords)
	}
	if entries[1].Coords != nil {
		t.Errorf("Expected failed entry to stay unlocated, got %v", entries[1].Coords)
	}
	if requests != 1 {
		t.Errorf("Expected one API request, got %d", requests)
	}
}

func TestBackfill_RobotsDisallow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			fmt.Fprint(w, "User-agent: *\nDisallow: /\n")
			return
		}
		t.Errorf("Unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	cfg := model.DefaultConfig().Pleiades
	cfg.BaseURL = server.URL
	cfg.RequestsPerSecond = 100
	client := NewClient(cfg, nil, false)

	entries := []model.GazetteerEntry{{PlaceID: "/places/1"}}
	if fixed := client.Backfill(context.Background(), entries); fixed != 0 {
		t.Errorf("Expected no fixes under a disallow-all policy, got %d", fixed)
	}
}
